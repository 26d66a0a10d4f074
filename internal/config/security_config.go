package config

import "github.com/spf13/viper"

const requirePKCEVar = "REQUIRE_PKCE"

type SecurityConfig interface {
	GetRequirePKCE() bool
}

type Security struct {
	v *viper.Viper
}

var _ SecurityConfig = Security{}

// GetRequirePKCE makes code_challenge mandatory on code-returning authorization requests.
func (s Security) GetRequirePKCE() bool {
	return s.v.GetBool(requirePKCEVar)
}
