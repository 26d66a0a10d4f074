package discovery

import (
	"github.com/jrsteele09/go-oidc-params/internal/config"
	"github.com/jrsteele09/go-oidc-params/internal/utils"
	"github.com/jrsteele09/go-oidc-params/oauth2"
)

// Endpoint paths advertised relative to the issuer.
const (
	PathWellKnown = "/.well-known/openid-configuration"
	PathJWKS      = "/.well-known/jwks.json"
	PathAuthorize = "/authorize"
	PathToken     = "/token"
)

// Option adjusts a document built by NewDocument.
type Option func(*oauth2.DiscoveryDocument)

// NewDocument builds a provider document whose endpoints hang off issuer.
// Without options it advertises the authorization code grant with PKCE and the openid scope.
func NewDocument(issuer string, opts ...Option) *oauth2.DiscoveryDocument {
	doc := &oauth2.DiscoveryDocument{
		Issuer:                        issuer,
		AuthorizationEndpoint:         issuer + PathAuthorize,
		TokenEndpoint:                 issuer + PathToken,
		JWKSURI:                       issuer + PathJWKS,
		ResponseTypesSupported:        []string{string(oauth2.CodeResponseType)},
		GrantTypesSupported:           []string{string(oauth2.AuthorizationCodeGrant)},
		ScopesSupported:               []string{"openid"},
		ResponseModesSupported:        []string{string(oauth2.QueryResponseMode), string(oauth2.FragmentResponseMode), string(oauth2.FormPostResponseMode)},
		CodeChallengeMethodsSupported: []string{string(oauth2.CodeMethodTypeS256)},
		SubjectTypesSupported:         []string{"public"},
		DisplayValuesSupported:        []string{string(oauth2.PageDisplay), string(oauth2.PopupDisplay), string(oauth2.TouchDisplay), string(oauth2.WapDisplay)},
		ClaimsParameterSupported:      utils.Ptr(false),
		RequestParameterSupported:     utils.Ptr(false),
		RequestURIParameterSupported:  utils.Ptr(false),
	}
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

// FromConfig copies the advertised capabilities from configuration.
func FromConfig(c config.ProviderConfig) Option {
	return func(doc *oauth2.DiscoveryDocument) {
		doc.ScopesSupported = c.GetScopesSupported()
		doc.ResponseTypesSupported = c.GetResponseTypesSupported()
		doc.GrantTypesSupported = c.GetGrantTypesSupported()
		doc.CodeChallengeMethodsSupported = c.GetCodeChallengeMethodsSupported()
		doc.TokenEndpointAuthMethodsSupported = c.GetTokenEndpointAuthMethodsSupported()
		doc.ClaimsSupported = c.GetClaimsSupported()
		doc.UILocalesSupported = c.GetUILocalesSupported()
	}
}

// WithJWKSURI points jwks_uri at a key set hosted elsewhere.
func WithJWKSURI(uri string) Option {
	return func(doc *oauth2.DiscoveryDocument) {
		doc.JWKSURI = uri
	}
}

// WithUserInfoEndpoint advertises a userinfo endpoint.
func WithUserInfoEndpoint(uri string) Option {
	return func(doc *oauth2.DiscoveryDocument) {
		doc.UserInfoEndpoint = uri
	}
}
