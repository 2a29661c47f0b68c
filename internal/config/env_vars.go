package config

import (
	"fmt"
	"strings"
	"time"
)

const envDev = "DEV"

type EnvVars struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	AppName       string        `env:"APP_NAME" envDefault:"Fringe Admin"`
	Env           string        `env:"ENV" envDefault:"DEV"`
	BackendAPIURL string        `env:"BACKEND_API_URL" envDefault:"http://localhost:5098"`
	APITimeout    time.Duration `env:"BACKEND_API_TIMEOUT" envDefault:"10s"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	port := e.Port
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return envDev
	}
	return e.Env
}

// GetBackendAPIURL returns the base URL of the festival REST API (e.g. "https://api.example.com").
// Trailing slashes are removed so paths can be appended directly.
func (e EnvVars) GetBackendAPIURL() string {
	return strings.TrimRight(e.BackendAPIURL, "/")
}

func (e EnvVars) GetAPITimeout() time.Duration {
	return e.APITimeout
}

func (e EnvVars) GetLogLevel() string {
	return e.LogLevel
}
