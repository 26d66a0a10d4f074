package oauth2

import "net/url"

// TokenRequest holds parameters for the OAuth2 token request.
// This represents the application/x-www-form-urlencoded body POSTed to the /token endpoint.
// Grant specific parameters are empty when absent; which ones must be present
// for a given grant is checked by Validator, not by the shape.
type TokenRequest struct {
	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes (for all grant types)
	// Example: "web-app-client"
	ClientID string `json:"client_id"`

	// ClientSecret is the secret credential for confidential clients.
	// Required: No (public clients, or clients authenticating another way)
	// Security: Never log or expose this value
	ClientSecret string `json:"client_secret,omitempty"`

	// GrantType selects the grant being exchanged.
	// Required: Yes
	// Example: "authorization_code"
	GrantType GrantType `json:"grant_type"`

	// Code is the authorization code received from the authorization endpoint.
	// Used with: authorization_code
	// Example: "SplxlOBeZQQYbYS6WxSbIA"
	Code string `json:"code,omitempty"`

	// RedirectURI must repeat the redirect_uri of the authorization request.
	// Used with: authorization_code
	RedirectURI string `json:"redirect_uri,omitempty"`

	// CodeVerifier is the PKCE code verifier that matches the code_challenge.
	// Used with: authorization_code
	// Example: "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	CodeVerifier string `json:"code_verifier,omitempty"`

	// RefreshToken is used to obtain new access tokens without re-authentication.
	// Used with: refresh_token
	RefreshToken string `json:"refresh_token,omitempty"`

	// Username is the resource owner's login.
	// Used with: password
	Username string `json:"username,omitempty"`

	// Password is the resource owner's password.
	// Used with: password
	// Security: Never log or expose this value
	Password string `json:"password,omitempty"`

	// Scope narrows the requested access, space-delimited.
	// Used with: client_credentials, password, refresh_token
	Scope string `json:"scope,omitempty"`
}

func (r *TokenRequest) optionalStrings() []stringField {
	return []stringField{
		{ParamClientSecret, &r.ClientSecret},
		{ParamCode, &r.Code},
		{ParamRedirectURI, &r.RedirectURI},
		{ParamCodeVerifier, &r.CodeVerifier},
		{ParamRefreshToken, &r.RefreshToken},
		{ParamUsername, &r.Username},
		{ParamPassword, &r.Password},
		{ParamScope, &r.Scope},
	}
}

// ParseTokenRequest decodes and validates a token endpoint form body.
func ParseTokenRequest(values url.Values) (*TokenRequest, error) {
	p := &paramReader{values: values}
	req := &TokenRequest{
		ClientID:  p.get(ParamClientID),
		GrantType: GrantType(p.get(ParamGrantType)),
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

// Validate checks client_id and grant_type.
func (r *TokenRequest) Validate() error {
	if r.ClientID == "" {
		return missingField(ParamClientID)
	}
	if r.GrantType == "" {
		return missingField(ParamGrantType)
	}
	if !r.GrantType.Valid() {
		return invalidEnum(ParamGrantType, string(r.GrantType))
	}
	return nil
}

// Values encodes the request back into form parameters, omitting absent ones.
func (r *TokenRequest) Values() url.Values {
	values := url.Values{}
	setIfPresent(values, ParamClientID, r.ClientID)
	setIfPresent(values, ParamGrantType, string(r.GrantType))
	for _, f := range r.optionalStrings() {
		setIfPresent(values, f.name, *f.dst)
	}
	return values
}

// Scopes splits the scope parameter.
func (r *TokenRequest) Scopes() []string {
	return splitSpaceDelimited(r.Scope)
}

// Redacted returns a copy with credentials and grants masked, for logging and echoing.
func (r *TokenRequest) Redacted() *TokenRequest {
	c := *r
	for _, secret := range []*string{&c.ClientSecret, &c.Password, &c.Code, &c.CodeVerifier, &c.RefreshToken} {
		if *secret != "" {
			*secret = redactedValue
		}
	}
	return &c
}

const redactedValue = "[REDACTED]"
