package oauth2

import (
	"slices"

	"github.com/jrsteele09/go-oidc-params/internal/utils"
	xoauth2 "golang.org/x/oauth2"
)

// DiscoveryDocument is the OpenID Provider metadata served at /.well-known/openid-configuration.
// Optional boolean capability flags are pointers so that an absent flag stays absent;
// use the *Enabled accessors to read them with the defaults of OpenID Connect Discovery.
// See: https://openid.net/specs/openid-connect-discovery-1_0.html#ProviderMetadata
// See: https://datatracker.ietf.org/doc/html/rfc8414
type DiscoveryDocument struct {
	// Issuer is the issuer identifier; it must match the iss claim of issued ID tokens.
	Issuer string `json:"issuer"`
	// AuthorizationEndpoint initiates the authorization flow.
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	// TokenEndpoint exchanges grants for tokens.
	TokenEndpoint string `json:"token_endpoint"`
	// UserInfoEndpoint returns claims about the authenticated end-user.
	UserInfoEndpoint string `json:"userinfo_endpoint,omitempty"`
	// JWKSURI locates the JSON Web Key Set used to verify signatures.
	JWKSURI string `json:"jwks_uri"`
	// RegistrationEndpoint is the dynamic client registration endpoint.
	RegistrationEndpoint string `json:"registration_endpoint,omitempty"`
	// RevocationEndpoint is the RFC 7009 token revocation endpoint.
	RevocationEndpoint string `json:"revocation_endpoint,omitempty"`
	// IntrospectionEndpoint is the RFC 7662 token introspection endpoint.
	IntrospectionEndpoint string `json:"introspection_endpoint,omitempty"`
	// EndSessionEndpoint is the RP-initiated logout endpoint.
	EndSessionEndpoint string `json:"end_session_endpoint,omitempty"`

	ResponseTypesSupported []string `json:"response_types_supported"`
	GrantTypesSupported    []string `json:"grant_types_supported"`
	ScopesSupported        []string `json:"scopes_supported"`

	ACRValuesSupported            []string `json:"acr_values_supported,omitempty"`
	CodeChallengeMethodsSupported []string `json:"code_challenge_methods_supported,omitempty"`
	ClaimsSupported               []string `json:"claims_supported,omitempty"`
	ResponseModesSupported        []string `json:"response_modes_supported,omitempty"`
	// SubjectTypesSupported lists subject identifier types, e.g. "public", "pairwise".
	SubjectTypesSupported []string `json:"subject_types_supported,omitempty"`

	IDTokenSigningAlgValuesSupported           []string `json:"id_token_signing_alg_values_supported,omitempty"`
	IDTokenEncryptionAlgValuesSupported        []string `json:"id_token_encryption_alg_values_supported,omitempty"`
	IDTokenEncryptionEncValuesSupported        []string `json:"id_token_encryption_enc_values_supported,omitempty"`
	UserInfoSigningAlgValuesSupported          []string `json:"userinfo_signing_alg_values_supported,omitempty"`
	UserInfoEncryptionAlgValuesSupported       []string `json:"userinfo_encryption_alg_values_supported,omitempty"`
	UserInfoEncryptionEncValuesSupported       []string `json:"userinfo_encryption_enc_values_supported,omitempty"`
	RequestObjectSigningAlgValuesSupported     []string `json:"request_object_signing_alg_values_supported,omitempty"`
	RequestObjectEncryptionAlgValuesSupported  []string `json:"request_object_encryption_alg_values_supported,omitempty"`
	RequestObjectEncryptionEncValuesSupported  []string `json:"request_object_encryption_enc_values_supported,omitempty"`
	TokenEndpointAuthMethodsSupported          []string `json:"token_endpoint_auth_methods_supported,omitempty"`
	TokenEndpointAuthSigningAlgValuesSupported []string `json:"token_endpoint_auth_signing_alg_values_supported,omitempty"`

	DisplayValuesSupported []string `json:"display_values_supported,omitempty"`
	// ClaimTypesSupported lists claim types, e.g. "normal", "aggregated", "distributed".
	ClaimTypesSupported    []string `json:"claim_types_supported,omitempty"`
	ServiceDocumentation   string   `json:"service_documentation,omitempty"`
	ClaimsLocalesSupported []string `json:"claims_locales_supported,omitempty"`
	UILocalesSupported     []string `json:"ui_locales_supported,omitempty"`

	ClaimsParameterSupported      *bool `json:"claims_parameter_supported,omitempty"`
	RequestParameterSupported     *bool `json:"request_parameter_supported,omitempty"`
	RequestURIParameterSupported  *bool `json:"request_uri_parameter_supported,omitempty"`
	RequireRequestURIRegistration *bool `json:"require_request_uri_registration,omitempty"`

	OPPolicyURI string `json:"op_policy_uri,omitempty"`
	OPTosURI    string `json:"op_tos_uri,omitempty"`
}

// Validate checks that the required members are populated.
// A nil slice counts as absent; an empty, non-nil slice is present.
func (d *DiscoveryDocument) Validate() error {
	required := []struct {
		name    string
		present bool
	}{
		{"issuer", d.Issuer != ""},
		{"authorization_endpoint", d.AuthorizationEndpoint != ""},
		{"token_endpoint", d.TokenEndpoint != ""},
		{"jwks_uri", d.JWKSURI != ""},
		{"response_types_supported", d.ResponseTypesSupported != nil},
		{"grant_types_supported", d.GrantTypesSupported != nil},
		{"scopes_supported", d.ScopesSupported != nil},
	}
	for _, r := range required {
		if !r.present {
			return missingField(r.name)
		}
	}
	return nil
}

// ClaimsParameterEnabled reports claims_parameter_supported, default false.
func (d *DiscoveryDocument) ClaimsParameterEnabled() bool {
	return utils.ValueOr(d.ClaimsParameterSupported, false)
}

// RequestParameterEnabled reports request_parameter_supported, default false.
func (d *DiscoveryDocument) RequestParameterEnabled() bool {
	return utils.ValueOr(d.RequestParameterSupported, false)
}

// RequestURIParameterEnabled reports request_uri_parameter_supported, default true.
func (d *DiscoveryDocument) RequestURIParameterEnabled() bool {
	return utils.ValueOr(d.RequestURIParameterSupported, true)
}

// RequestURIRegistrationRequired reports require_request_uri_registration, default false.
func (d *DiscoveryDocument) RequestURIRegistrationRequired() bool {
	return utils.ValueOr(d.RequireRequestURIRegistration, false)
}

func (d *DiscoveryDocument) SupportsResponseType(rt ResponseType) bool {
	return slices.Contains(d.ResponseTypesSupported, string(rt))
}

func (d *DiscoveryDocument) SupportsGrantType(g GrantType) bool {
	return slices.Contains(d.GrantTypesSupported, string(g))
}

func (d *DiscoveryDocument) SupportsScope(scope string) bool {
	return slices.Contains(d.ScopesSupported, scope)
}

// SupportsCodeChallengeMethod reports whether the provider advertises m.
// Providers that omit code_challenge_methods_supported are not assumed to support PKCE.
func (d *DiscoveryDocument) SupportsCodeChallengeMethod(m CodeMethodType) bool {
	return slices.Contains(d.CodeChallengeMethodsSupported, string(m))
}

// Token endpoint client authentication methods.
const (
	AuthMethodClientSecretBasic = "client_secret_basic"
	AuthMethodClientSecretPost  = "client_secret_post"
	AuthMethodNone              = "none"
)

// Endpoint converts the document into a golang.org/x/oauth2 endpoint.
// client_secret_basic is preferred, and is also the default when the provider
// does not list its token endpoint auth methods.
func (d *DiscoveryDocument) Endpoint() xoauth2.Endpoint {
	ep := xoauth2.Endpoint{
		AuthURL:  d.AuthorizationEndpoint,
		TokenURL: d.TokenEndpoint,
	}
	methods := d.TokenEndpointAuthMethodsSupported
	switch {
	case len(methods) == 0 || slices.Contains(methods, AuthMethodClientSecretBasic):
		ep.AuthStyle = xoauth2.AuthStyleInHeader
	case slices.Contains(methods, AuthMethodClientSecretPost):
		ep.AuthStyle = xoauth2.AuthStyleInParams
	default:
		ep.AuthStyle = xoauth2.AuthStyleAutoDetect
	}
	return ep
}
