package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config interface {
	EnvConfig
	CorsConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetBackendAPIURL() string
	GetAPITimeout() time.Duration
	GetLogLevel() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() []string
	GetAllowedHeaders() []string
}

type mainConfig struct {
	EnvVars
	Cors
	Session
}

// New reads the portal configuration from the environment.
func New() (Config, error) {
	c := mainConfig{}
	if err := env.Parse(&c.EnvVars); err != nil {
		return nil, err
	}
	if err := env.Parse(&c.Cors); err != nil {
		return nil, err
	}
	c.Session = Session{env: c.EnvVars.Env}
	return c, nil
}
