package oauth2

import (
	"net/url"
	"strconv"
)

// AuthorizeRequest holds parameters for the OAuth 2.1 / OpenID Connect authorization request.
// These are received as query parameters on a GET to the /authorize endpoint.
// Optional string parameters are empty when absent.
// See: https://openid.net/specs/openid-connect-core-1_0.html#AuthRequest
type AuthorizeRequest struct {
	// ClientID identifies the application requesting authorization.
	// Required: Yes
	// Example: "web-app-client"
	ClientID string `json:"client_id"`

	// ResponseType specifies what the authorization endpoint should return.
	// Required: Yes
	// Example: "code", "code id_token"
	ResponseType ResponseType `json:"response_type"`

	// RedirectURI is where the authorization response will be sent.
	// Required: No (must match a registered URI, checked downstream)
	// Example: "https://myapp.com/callback"
	RedirectURI string `json:"redirect_uri,omitempty"`

	// Scope specifies the permissions being requested, space-delimited.
	// Required: No (but includes "openid" for OIDC)
	// Example: "openid profile email"
	Scope string `json:"scope,omitempty"`

	// State is an opaque value used by the client to maintain state between request and callback.
	// Required: Recommended (CSRF protection)
	State string `json:"state,omitempty"`

	// CodeChallenge is the PKCE challenge derived from code_verifier.
	// Required: Yes for public clients when PKCE is enforced
	// Example: BASE64URL(SHA256(code_verifier))
	CodeChallenge string `json:"code_challenge,omitempty"`

	// CodeChallengeMethod specifies how code_challenge was derived.
	// Required: No
	// Default: "plain" when code_challenge is present, see EffectiveCodeChallengeMethod
	CodeChallengeMethod CodeMethodType `json:"code_challenge_method,omitempty"`

	// Nonce associates a client session with an ID token to mitigate replay attacks.
	// Required: For implicit and hybrid flows returning an id_token
	Nonce string `json:"nonce,omitempty"`

	// Display controls how the authentication UI is rendered.
	// Required: No
	// Example: "page", "popup", "touch", "wap"
	Display DisplayType `json:"display,omitempty"`

	// Prompt tells the server whether to prompt for reauthentication and consent, space-delimited.
	// Required: No
	// Example: "login consent", "none", "select_account"
	Prompt string `json:"prompt,omitempty"`

	// MaxAge is the allowable elapsed time in seconds since the last active authentication.
	// Required: No
	// Example: 3600
	MaxAge *int `json:"max_age,omitempty"`

	// UILocales lists preferred UI languages as space-delimited BCP47 tags.
	// Example: "fr-CA fr en"
	UILocales string `json:"ui_locales,omitempty"`

	// IDTokenHint is a previously issued ID token passed as a hint about the session.
	IDTokenHint string `json:"id_token_hint,omitempty"`

	// LoginHint pre-fills the login identifier on the login page.
	// Example: "user@example.com"
	LoginHint string `json:"login_hint,omitempty"`

	// ACRValues lists requested Authentication Context Class References, space-delimited.
	ACRValues string `json:"acr_values,omitempty"`

	// Request is a JWT request object carrying the authorization parameters.
	// See: https://openid.net/specs/openid-connect-core-1_0.html#JWTRequests
	Request string `json:"request,omitempty"`

	// RequestURI references a JWT request object by URL.
	RequestURI string `json:"request_uri,omitempty"`

	// Claims is the JSON encoded claims request.
	// See: https://openid.net/specs/openid-connect-core-1_0.html#ClaimsParameter
	Claims string `json:"claims,omitempty"`

	// ResponseMode controls how the authorization response is returned (query/fragment/form_post).
	// Required: No (defaults depend on the response type)
	ResponseMode ResponseModeType `json:"response_mode,omitempty"`
}

func (r *AuthorizeRequest) optionalStrings() []stringField {
	return []stringField{
		{ParamRedirectURI, &r.RedirectURI},
		{ParamScope, &r.Scope},
		{ParamState, &r.State},
		{ParamCodeChallenge, &r.CodeChallenge},
		{ParamNonce, &r.Nonce},
		{ParamPrompt, &r.Prompt},
		{ParamUILocales, &r.UILocales},
		{ParamIDTokenHint, &r.IDTokenHint},
		{ParamLoginHint, &r.LoginHint},
		{ParamACRValues, &r.ACRValues},
		{ParamRequest, &r.Request},
		{ParamRequestURI, &r.RequestURI},
		{ParamClaims, &r.Claims},
	}
}

// ParseAuthorizeRequest decodes and validates authorization endpoint query parameters.
// Coercion failures (repeated parameters, a non numeric max_age) are reported
// before missing or invalid values. Unknown parameters are ignored.
func ParseAuthorizeRequest(values url.Values) (*AuthorizeRequest, error) {
	p := &paramReader{values: values}
	req := &AuthorizeRequest{
		ClientID:            p.get(ParamClientID),
		ResponseType:        ResponseType(p.get(ParamResponseType)),
		CodeChallengeMethod: CodeMethodType(p.get(ParamCodeChallengeMethod)),
		Display:             DisplayType(p.get(ParamDisplay)),
		MaxAge:              p.nonNegativeInt(ParamMaxAge),
		ResponseMode:        ResponseModeType(p.get(ParamResponseMode)),
	}
	for _, f := range req.optionalStrings() {
		*f.dst = p.get(f.name)
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks required parameters and closed vocabularies.
// Semantic checks (URI syntax, JWT structure, locale tags) are left to the caller.
func (r *AuthorizeRequest) Validate() error {
	if r.ClientID == "" {
		return missingField(ParamClientID)
	}
	if r.ResponseType == "" {
		return missingField(ParamResponseType)
	}
	if !r.ResponseType.Valid() {
		return invalidEnum(ParamResponseType, string(r.ResponseType))
	}
	if r.CodeChallengeMethod != "" && !r.CodeChallengeMethod.Valid() {
		return invalidEnum(ParamCodeChallengeMethod, string(r.CodeChallengeMethod))
	}
	if r.Display != "" && !r.Display.Valid() {
		return invalidEnum(ParamDisplay, string(r.Display))
	}
	if r.MaxAge != nil && *r.MaxAge < 0 {
		return typeMismatch(ParamMaxAge, strconv.Itoa(*r.MaxAge))
	}
	if r.ResponseMode != "" && !r.ResponseMode.Valid() {
		return invalidEnum(ParamResponseMode, string(r.ResponseMode))
	}
	return nil
}

// Values encodes the request back into query parameters, omitting absent ones.
func (r *AuthorizeRequest) Values() url.Values {
	values := url.Values{}
	setIfPresent(values, ParamClientID, r.ClientID)
	setIfPresent(values, ParamResponseType, string(r.ResponseType))
	setIfPresent(values, ParamCodeChallengeMethod, string(r.CodeChallengeMethod))
	setIfPresent(values, ParamDisplay, string(r.Display))
	setIfPresent(values, ParamResponseMode, string(r.ResponseMode))
	if r.MaxAge != nil {
		values.Set(ParamMaxAge, strconv.Itoa(*r.MaxAge))
	}
	for _, f := range r.optionalStrings() {
		setIfPresent(values, f.name, *f.dst)
	}
	return values
}

// EffectiveCodeChallengeMethod returns the PKCE method that applies to this request.
// A challenge without a method means "plain" (RFC 7636 section 4.3); no challenge means "".
func (r *AuthorizeRequest) EffectiveCodeChallengeMethod() CodeMethodType {
	if r.CodeChallenge == "" {
		return ""
	}
	if r.CodeChallengeMethod == "" {
		return CodeMethodTypePlain
	}
	return r.CodeChallengeMethod
}

// Scopes splits the scope parameter.
func (r *AuthorizeRequest) Scopes() []string {
	return splitSpaceDelimited(r.Scope)
}

// Prompts splits the prompt parameter.
func (r *AuthorizeRequest) Prompts() []string {
	return splitSpaceDelimited(r.Prompt)
}

// Locales splits the ui_locales parameter.
func (r *AuthorizeRequest) Locales() []string {
	return splitSpaceDelimited(r.UILocales)
}

// ACRs splits the acr_values parameter.
func (r *AuthorizeRequest) ACRs() []string {
	return splitSpaceDelimited(r.ACRValues)
}
