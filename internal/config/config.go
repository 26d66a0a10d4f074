package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
	ProviderConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetBaseURL() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
	Provider
}

// New reads configuration from the environment.
func New() Config {
	v := viper.New()
	v.AutomaticEnv()
	return NewFromViper(v)
}

// NewFromViper builds a Config over an existing viper instance, registering defaults on it.
func NewFromViper(v *viper.Viper) Config {
	setDefaults(v)
	return mainConfig{
		EnvVars:  EnvVars{v: v},
		Cors:     Cors{v: v},
		Security: Security{v: v},
		Provider: Provider{v: v},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(portEnvVar, "8080")
	v.SetDefault(appNameVar, "OIDC Params")
	v.SetDefault(envVar, "DEV")
	v.SetDefault(logLevelVar, "info")
	v.SetDefault(baseURLVar, "http://localhost:8080")
	v.SetDefault(allowedOriginsVar, "")
	v.SetDefault(requirePKCEVar, true)
	v.SetDefault(scopesSupportedVar, "openid profile email offline_access")
	v.SetDefault(responseTypesVar, "code")
	v.SetDefault(grantTypesVar, "authorization_code refresh_token client_credentials")
	v.SetDefault(codeChallengeMethodsVar, "S256 plain")
	v.SetDefault(authMethodsVar, "client_secret_basic client_secret_post none")
	v.SetDefault(claimsSupportedVar, "sub email email_verified given_name family_name preferred_username")
	v.SetDefault(uiLocalesVar, "en-US en")
	v.SetDefault(discoveryMaxAgeVar, "1h")
}

// list splits a comma or space separated setting.
func list(v *viper.Viper, key string) []string {
	return strings.FieldsFunc(v.GetString(key), func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
