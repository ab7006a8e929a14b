package config

import (
	"errors"
	"strings"

	"github.com/npesaras/clens/internal/validate"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

// Environment of the API. Note that certain features will be disabled in Production.
type Environment string

var (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// Configuration is just that.
type Configuration struct {
	// Name of the API.
	Name string `validate:"required"`
	// Environment of the API.
	//
	// Default: development
	Environment Environment `validate:"required,oneof='development' 'production' 'test'"`

	// Essentials
	//

	Log        Log
	Auth       Auth
	Server     Server
	Database   Database
	Credential Credential
}

// envBindings maps configuration keys to the environment variables that
// may override them. The first variable that is set wins.
var envBindings = map[string][]string{
	"environment":                         {"APP_ENV", "NODE_ENV"},
	"log.level":                           {"LOG_LEVEL"},
	"auth.accesstoken":                    {"ACCESS_TOKEN"},
	"server.host":                         {"HOST"},
	"server.port":                         {"PORT"},
	"server.rps":                          {"RATE_LIMIT_RPS"},
	"server.healthcheckpath":              {"HEALTH_CHECK_PATH"},
	"server.metrics":                      {"METRICS_ENABLED"},
	"database.url":                        {"DATABASE_URL"},
	"database.automigrate":                {"DB_AUTO_MIGRATE"},
	"credential.saltrounds":               {"SALT_ROUNDS"},
	"credential.minimumscore":             {"PASSWORD_MINIMUM_SCORE"},
	"credential.profanecheck":             {"USERNAME_PROFANITY_CHECK"},
	"server.accesscontrol.allowedorigins": {"CORS_ALLOWED_ORIGINS"},
}

// New retrieves configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
//
// filename is the config file name without extension, ie: "clens". If path
// is empty only the working directory is searched.
func New(filename string, filetype string, path string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(filename)
	v.SetConfigType(filetype)
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	conf := Configuration{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}
	conf.Environment = Environment(strings.ToLower(string(conf.Environment)))
	setupServer(&conf)
	if err := validate.Check(conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "clens")
	v.SetDefault("environment", string(Development))

	v.SetDefault("log.level", "info")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.rps", 100)
	v.SetDefault("server.healthcheckpath", "/health")
	v.SetDefault("server.metrics", true)
	v.SetDefault("server.accesscontrol.allowedorigins", []string{"*"})
	v.SetDefault("server.accesscontrol.allowedmethods", []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("server.accesscontrol.allowedheaders", []string{"Content-Type", "Content-Length", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With", "X-Request-ID"})
	v.SetDefault("server.accesscontrol.maxage", 86400)
	v.SetDefault("server.security.referrerpolicy", "same-origin")
	v.SetDefault("server.security.hostsproxyheaders", []string{"X-Forwarded-Hosts"})

	v.SetDefault("database.automigrate", true)
	v.SetDefault("database.loglevel", int(logger.Warn))

	v.SetDefault("credential.saltrounds", 10)
	v.SetDefault("credential.minimumscore", 0)
	v.SetDefault("credential.profanecheck", true)
}
