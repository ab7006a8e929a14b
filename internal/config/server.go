package config

import (
	"github.com/unrolled/secure"
)

type AccessControl struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge in seconds
	MaxAge int
}

type Server struct {
	// Base configurations
	//

	// Port of the server.
	//
	// Default: 3000
	Port int `validate:"min=1,max=65535"`
	// Host of the server.
	//
	// Default: ""
	Host string
	// HealthCheckPath is the unauthenticated health endpoint.
	//
	// Default: /health
	HealthCheckPath string `validate:"required,startswith=/"`
	// Metrics exposes prometheus metrics on /metrics.
	//
	// Default: true
	Metrics bool

	// Middleware configurations
	//

	// RPS is rate per second. If 0, RateLimiterMiddleware will be disabled.
	//
	// Default: 100
	RPS int `validate:"min=0"`
	// Security are the options that controls the security middleware. See
	// github.com/unrolled/secure for every available option.
	//
	// Default values:
	//  HostsProxyHeaders: []string{"X-Forwarded-Hosts"}
	//  ReferrerPolicy: "same-origin"
	Security secure.Options
	// AccessControl are the CORS options.
	//
	// Default values:
	//  AllowedOrigins: ["*"]
	//  AllowedMethods: ["GET", "PUT", "POST", "DELETE", "OPTIONS"]
	//  AllowedHeaders: ["Content-Type", "Content-Length", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With", "X-Request-ID"]
	//  MaxAge: 86400
	AccessControl AccessControl
}

func setupServer(conf *Configuration) {
	s := conf.Server
	se := s.Security
	se.IsDevelopment = conf.Environment != Production

	// Defaults for production
	if conf.Environment == Production {
		se.FrameDeny = true
		se.STSSeconds = 315360000
		se.BrowserXssFilter = true
		se.ContentTypeNosniff = true
		se.ReferrerPolicy = "same-origin"
	}

	s.Security = se
	conf.Server = s
}
