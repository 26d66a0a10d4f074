package oauth2

// Validator applies the checks that depend on server policy rather than on the
// shape of a request: PKCE enforcement, grant companion parameters and, when a
// provider document is configured, the advertised vocabularies.
// A Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	requirePKCE bool
	provider    *DiscoveryDocument
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithRequirePKCE makes code_challenge mandatory for response types that return a code.
func WithRequirePKCE(required bool) ValidatorOption {
	return func(v *Validator) {
		v.requirePKCE = required
	}
}

// WithProvider restricts response types, grant types and challenge methods to
// those advertised by doc.
func WithProvider(doc *DiscoveryDocument) ValidatorOption {
	return func(v *Validator) {
		v.provider = doc
	}
}

// NewValidator creates a new Validator instance
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateAuthorizeRequest checks an authorization request against the validator's policy.
func (v *Validator) ValidateAuthorizeRequest(req *AuthorizeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := v.ValidatePKCE(req); err != nil {
		return err
	}
	if v.provider != nil {
		if !v.provider.SupportsResponseType(req.ResponseType) {
			return unsupportedValue(ParamResponseType, string(req.ResponseType))
		}
		if method := req.EffectiveCodeChallengeMethod(); method != "" && v.provider.CodeChallengeMethodsSupported != nil &&
			!v.provider.SupportsCodeChallengeMethod(method) {
			return unsupportedValue(ParamCodeChallengeMethod, string(method))
		}
	}
	return nil
}

// ValidatePKCE enforces the presence of code_challenge when PKCE is required and
// the response type returns an authorization code.
func (v *Validator) ValidatePKCE(req *AuthorizeRequest) error {
	if !v.requirePKCE || !req.ResponseType.Contains(string(CodeResponseType)) {
		return nil
	}
	if req.CodeChallenge == "" {
		return missingField(ParamCodeChallenge)
	}
	return nil
}

// ValidateTokenRequest checks that the grant specific parameters match grant_type.
func (v *Validator) ValidateTokenRequest(req *TokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v.provider != nil && !v.provider.SupportsGrantType(req.GrantType) {
		return unsupportedValue(ParamGrantType, string(req.GrantType))
	}
	return v.ValidateGrant(req)
}

// grantFields lists, per grant, the parameters it requires; every parameter in
// the table is rejected for the other grants.
var grantFields = []struct {
	grant    GrantType
	field    string
	required bool
	value    func(*TokenRequest) string
}{
	{AuthorizationCodeGrant, ParamCode, true, func(r *TokenRequest) string { return r.Code }},
	{AuthorizationCodeGrant, ParamRedirectURI, false, func(r *TokenRequest) string { return r.RedirectURI }},
	{AuthorizationCodeGrant, ParamCodeVerifier, false, func(r *TokenRequest) string { return r.CodeVerifier }},
	{RefreshTokenGrant, ParamRefreshToken, true, func(r *TokenRequest) string { return r.RefreshToken }},
	{PasswordGrant, ParamUsername, true, func(r *TokenRequest) string { return r.Username }},
	{PasswordGrant, ParamPassword, true, func(r *TokenRequest) string { return r.Password }},
}

// ValidateGrant checks the companion parameters of req.GrantType.
// scope is shared by several grants and is not checked here.
func (v *Validator) ValidateGrant(req *TokenRequest) error {
	for _, f := range grantFields {
		present := f.value(req) != ""
		switch {
		case f.grant == req.GrantType && f.required && !present:
			return missingField(f.field)
		case f.grant != req.GrantType && present:
			return unexpectedField(f.field)
		}
	}
	return nil
}
