package oauth2

import "strings"

// ResponseType represents the OAuth 2.0 / OpenID Connect response type.
// Determines what is returned from the authorization endpoint.
// Multi-value response types are matched literally, in the order listed below.
type ResponseType string

const (
	// NoneResponseType returns no credentials, only the state and an optional redirect.
	// Used in: OAuth 2.0 Multiple Response Type Encoding Practices
	NoneResponseType ResponseType = "none"

	// CodeResponseType indicates the authorization code flow.
	// Used in: Authorization Code Flow (most secure, requires server-side client)
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"

	// TokenResponseType returns an access token directly from the authorization endpoint.
	// Used in: Implicit Flow (removed in OAuth 2.1, still advertised by some providers)
	TokenResponseType ResponseType = "token"

	// IDTokenResponseType returns an ID token directly from the authorization endpoint.
	// Used in: OpenID Connect Implicit Flow
	IDTokenResponseType ResponseType = "id_token"

	// CodeIDTokenResponseType returns a code and an ID token.
	// Used in: OpenID Connect Hybrid Flow
	CodeIDTokenResponseType ResponseType = "code id_token"

	// CodeTokenResponseType returns a code and an access token.
	// Used in: OpenID Connect Hybrid Flow
	CodeTokenResponseType ResponseType = "code token"

	// IDTokenTokenResponseType returns an ID token and an access token.
	// Used in: OpenID Connect Implicit Flow
	IDTokenTokenResponseType ResponseType = "id_token token"

	// CodeIDTokenTokenResponseType returns a code, an ID token and an access token.
	// Used in: OpenID Connect Hybrid Flow
	CodeIDTokenTokenResponseType ResponseType = "code id_token token"
)

// ResponseTypes lists every accepted response_type literal.
var ResponseTypes = []ResponseType{
	NoneResponseType,
	CodeResponseType,
	TokenResponseType,
	IDTokenResponseType,
	CodeIDTokenResponseType,
	CodeTokenResponseType,
	IDTokenTokenResponseType,
	CodeIDTokenTokenResponseType,
}

// Valid reports whether rt is one of the accepted literals.
func (rt ResponseType) Valid() bool {
	for _, v := range ResponseTypes {
		if rt == v {
			return true
		}
	}
	return false
}

// Contains reports whether component ("code", "token", "id_token") is part of rt.
func (rt ResponseType) Contains(component string) bool {
	for _, c := range strings.Fields(string(rt)) {
		if c == component {
			return true
		}
	}
	return false
}

// ResponseModeType denotes how the authorization response parameters are returned to the client.
// Determines the mechanism used to send the auth code/error back to the redirect_uri.
type ResponseModeType string

const (
	// QueryResponseMode returns parameters in the URL query string.
	// Used in: Standard Authorization Code Flow
	// Example: https://client.example.com/callback?code=ABC123&state=xyz
	QueryResponseMode ResponseModeType = "query"

	// FragmentResponseMode returns parameters in the URL fragment (after #).
	// Used in: Implicit and Hybrid flows
	// Example: https://client.example.com/callback#token=ABC123&state=xyz
	FragmentResponseMode ResponseModeType = "fragment"

	// FormPostResponseMode returns parameters via HTTP POST with auto-submitting HTML form.
	// Used in: OAuth 2.0 Form Post Response Mode
	FormPostResponseMode ResponseModeType = "form_post"
)

// Valid reports whether rm is a known response mode.
func (rm ResponseModeType) Valid() bool {
	switch rm {
	case QueryResponseMode, FragmentResponseMode, FormPostResponseMode:
		return true
	}
	return false
}

// CodeMethodType represents the PKCE (Proof Key for Code Exchange) challenge method.
// Used to prevent authorization code interception attacks (especially for public clients).
type CodeMethodType string

const (
	// CodeMethodTypeS256 indicates SHA-256 hashing is used for the code challenge.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypePlain means no hashing, code_challenge = code_verifier.
	// Default when a code_challenge is sent without a method (RFC 7636 section 4.3).
	CodeMethodTypePlain CodeMethodType = "plain"
)

// Valid reports whether m is a known challenge method.
func (m CodeMethodType) Valid() bool {
	switch m {
	case CodeMethodTypeS256, CodeMethodTypePlain:
		return true
	}
	return false
}

// DisplayType specifies how the authorization server displays the authentication
// and consent user interface pages.
// See: https://openid.net/specs/openid-connect-core-1_0.html#AuthRequest
type DisplayType string

const (
	// PageDisplay shows a full user-agent page view (the default).
	PageDisplay DisplayType = "page"
	// PopupDisplay shows a popup user-agent window.
	PopupDisplay DisplayType = "popup"
	// TouchDisplay shows a UI for devices with a touch interface.
	TouchDisplay DisplayType = "touch"
	// WapDisplay shows a "feature phone" type display.
	WapDisplay DisplayType = "wap"
)

// Valid reports whether d is a known display value.
func (d DisplayType) Valid() bool {
	switch d {
	case PageDisplay, PopupDisplay, TouchDisplay, WapDisplay:
		return true
	}
	return false
}

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: code, client_id, client_secret, redirect_uri, code_verifier (if PKCE)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	// Token request includes: client_id, client_secret, scope
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Token request includes: refresh_token, client_id, client_secret
	RefreshTokenGrant GrantType = "refresh_token"

	// PasswordGrant exchanges resource owner credentials for tokens.
	// Token request includes: username, password, client_id
	// Security: Removed from OAuth 2.1, kept for legacy clients
	PasswordGrant GrantType = "password"
)

// GrantTypes lists every accepted grant_type literal.
var GrantTypes = []GrantType{
	AuthorizationCodeGrant,
	ClientCredentialsGrant,
	RefreshTokenGrant,
	PasswordGrant,
}

// Valid reports whether g is one of the accepted literals.
func (g GrantType) Valid() bool {
	for _, v := range GrantTypes {
		if g == v {
			return true
		}
	}
	return false
}
