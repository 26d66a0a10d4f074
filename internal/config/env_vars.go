package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	portEnvVar  = "PORT"
	appNameVar  = "APP_NAME"
	envVar      = "ENV"
	logLevelVar = "LOG_LEVEL"
	baseURLVar  = "BASE_URL"
)

type EnvVars struct {
	v *viper.Viper
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	port := e.v.GetString(portEnvVar)
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.v.GetString(appNameVar)
}

func (e EnvVars) GetEnv() string {
	return e.v.GetString(envVar)
}

// GetLogLevel returns a zerolog level name ("debug", "info", ...).
func (e EnvVars) GetLogLevel() string {
	return e.v.GetString(logLevelVar)
}

// GetBaseURL returns the base URL for the server (e.g., "https://auth.example.com")
// This is used as the issuer and as the prefix of every advertised endpoint
func (e EnvVars) GetBaseURL() string {
	return strings.TrimSuffix(e.v.GetString(baseURLVar), "/")
}
