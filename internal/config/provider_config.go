package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	scopesSupportedVar      = "SCOPES_SUPPORTED"
	responseTypesVar        = "RESPONSE_TYPES_SUPPORTED"
	grantTypesVar           = "GRANT_TYPES_SUPPORTED"
	codeChallengeMethodsVar = "CODE_CHALLENGE_METHODS_SUPPORTED"
	authMethodsVar          = "TOKEN_ENDPOINT_AUTH_METHODS_SUPPORTED"
	claimsSupportedVar      = "CLAIMS_SUPPORTED"
	uiLocalesVar            = "UI_LOCALES_SUPPORTED"
	discoveryMaxAgeVar      = "DISCOVERY_MAX_AGE"
)

// ProviderConfig holds the capabilities advertised in the discovery document.
type ProviderConfig interface {
	GetScopesSupported() []string
	GetResponseTypesSupported() []string
	GetGrantTypesSupported() []string
	GetCodeChallengeMethodsSupported() []string
	GetTokenEndpointAuthMethodsSupported() []string
	GetClaimsSupported() []string
	GetUILocalesSupported() []string
	GetDiscoveryMaxAge() time.Duration
}

type Provider struct {
	v *viper.Viper
}

var _ ProviderConfig = Provider{}

func (p Provider) GetScopesSupported() []string {
	return list(p.v, scopesSupportedVar)
}

func (p Provider) GetResponseTypesSupported() []string {
	// Multi-value response types contain spaces, so this list is comma separated only.
	return splitComma(p.v.GetString(responseTypesVar))
}

func (p Provider) GetGrantTypesSupported() []string {
	return list(p.v, grantTypesVar)
}

func (p Provider) GetCodeChallengeMethodsSupported() []string {
	return list(p.v, codeChallengeMethodsVar)
}

func (p Provider) GetTokenEndpointAuthMethodsSupported() []string {
	return list(p.v, authMethodsVar)
}

func (p Provider) GetClaimsSupported() []string {
	return list(p.v, claimsSupportedVar)
}

func (p Provider) GetUILocalesSupported() []string {
	return list(p.v, uiLocalesVar)
}

// GetDiscoveryMaxAge is the Cache-Control max-age of the discovery document.
func (p Provider) GetDiscoveryMaxAge() time.Duration {
	return p.v.GetDuration(discoveryMaxAgeVar)
}
