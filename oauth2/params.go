package oauth2

import (
	"net/url"
	"strconv"
	"strings"
)

// Wire names of the authorization and token endpoint parameters.
const (
	ParamClientID            = "client_id"
	ParamClientSecret        = "client_secret"
	ParamResponseType        = "response_type"
	ParamResponseMode        = "response_mode"
	ParamRedirectURI         = "redirect_uri"
	ParamScope               = "scope"
	ParamState               = "state"
	ParamCodeChallenge       = "code_challenge"
	ParamCodeChallengeMethod = "code_challenge_method"
	ParamNonce               = "nonce"
	ParamDisplay             = "display"
	ParamPrompt              = "prompt"
	ParamMaxAge              = "max_age"
	ParamUILocales           = "ui_locales"
	ParamIDTokenHint         = "id_token_hint"
	ParamLoginHint           = "login_hint"
	ParamACRValues           = "acr_values"
	ParamRequest             = "request"
	ParamRequestURI          = "request_uri"
	ParamClaims              = "claims"
	ParamGrantType           = "grant_type"
	ParamCode                = "code"
	ParamCodeVerifier        = "code_verifier"
	ParamRefreshToken        = "refresh_token"
	ParamUsername            = "username"
	ParamPassword            = "password"
)

// stringField binds a wire parameter name to the struct field holding it.
type stringField struct {
	name string
	dst  *string
}

// paramReader pulls single values out of url.Values and keeps the first
// coercion failure it sees.
type paramReader struct {
	values url.Values
	err    error
}

// get returns the value of name, or "" when it is absent.
// A parameter sent more than once cannot be coerced to a single string.
func (p *paramReader) get(name string) string {
	vs := p.values[name]
	switch len(vs) {
	case 0:
		return ""
	case 1:
		return vs[0]
	}
	p.fail(typeMismatch(name, strings.Join(vs, " ")))
	return ""
}

// nonNegativeInt reads an optional base-10 integer >= 0 in canonical form:
// digits only, no sign and no leading zeros, so the value re-encodes unchanged.
func (p *paramReader) nonNegativeInt(name string) *int {
	raw := p.get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !isCanonicalUint(raw) {
		p.fail(typeMismatch(name, raw))
		return nil
	}
	return &n
}

func isCanonicalUint(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (p *paramReader) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// setIfPresent adds name=value to values unless value is empty.
func setIfPresent(values url.Values, name, value string) {
	if value != "" {
		values.Set(name, value)
	}
}

// splitSpaceDelimited splits a space-delimited parameter such as scope or prompt.
func splitSpaceDelimited(value string) []string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
