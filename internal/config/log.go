package config

type Log struct {
	// Level is the minimum level that will be logged.
	//
	// Default: info
	Level string `validate:"required,oneof='trace' 'debug' 'info' 'warn' 'warning' 'error' 'fatal' 'panic'"`
}
