package oauth2_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/go-oidc-params/oauth2"
	"github.com/stretchr/testify/require"
	xoauth2 "golang.org/x/oauth2"
)

const (
	testClientID      = "client1"
	testRedirectURI   = "https://app.example/cb"
	testState         = "random-state-value"
	testNonce         = "random-nonce-value"
	testCodeChallenge = "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
	testCodeVerifier  = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
)

func authorizeValues(overrides map[string]string) url.Values {
	values := url.Values{
		"client_id":     {testClientID},
		"response_type": {"code"},
	}
	for k, v := range overrides {
		if v == "" {
			values.Del(k)
			continue
		}
		values.Set(k, v)
	}
	return values
}

func TestParseAuthorizeRequest_ResponseTypes(t *testing.T) {
	t.Run("every enumerated literal is accepted", func(t *testing.T) {
		for _, rt := range oauth2.ResponseTypes {
			req, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"response_type": string(rt)}))
			require.NoError(t, err, rt)
			require.Equal(t, rt, req.ResponseType)
		}
	})

	t.Run("values outside the enumeration are rejected", func(t *testing.T) {
		invalid := []string{
			"Code",
			"implicit",
			"id_token code",
			"token code",
			"token id_token",
			"code  token",
			" code",
			"code id_token token none",
			"none code",
		}
		for _, rt := range invalid {
			_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"response_type": rt}))
			require.ErrorIs(t, err, oauth2.ErrInvalidEnumValue, rt)
			field, ok := oauth2.FieldOf(err)
			require.True(t, ok)
			require.Equal(t, "response_type", field)
		}
	})

	t.Run("missing response_type", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(url.Values{"client_id": {testClientID}})
		require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
		require.Contains(t, err.Error(), "response_type")
	})
}

func TestParseAuthorizeRequest_RequiredFields(t *testing.T) {
	t.Run("missing client_id", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(url.Values{"response_type": {"code"}})
		require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
		field, ok := oauth2.FieldOf(err)
		require.True(t, ok)
		require.Equal(t, "client_id", field)
	})

	t.Run("empty client_id counts as missing", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(url.Values{"client_id": {""}, "response_type": {"code"}})
		require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
	})

	t.Run("minimal request", func(t *testing.T) {
		req, err := oauth2.ParseAuthorizeRequest(authorizeValues(nil))
		require.NoError(t, err)
		require.Equal(t, testClientID, req.ClientID)
		require.Nil(t, req.MaxAge)
		require.Empty(t, req.RedirectURI)
	})
}

func TestParseAuthorizeRequest_ClosedVocabularies(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		valid bool
	}{
		{"plain method", "code_challenge_method", "plain", true},
		{"S256 method", "code_challenge_method", "S256", true},
		{"lower case s256", "code_challenge_method", "s256", false},
		{"S512 method", "code_challenge_method", "S512", false},
		{"page display", "display", "page", true},
		{"popup display", "display", "popup", true},
		{"touch display", "display", "touch", true},
		{"wap display", "display", "wap", true},
		{"unknown display", "display", "fullscreen", false},
		{"form_post mode", "response_mode", "form_post", true},
		{"unknown mode", "response_mode", "web_message", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{tt.field: tt.value}))
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, oauth2.ErrInvalidEnumValue)
			field, _ := oauth2.FieldOf(err)
			require.Equal(t, tt.field, field)
		})
	}
}

func TestParseAuthorizeRequest_MaxAge(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"max_age": "not-a-number"}))
		require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
		require.Contains(t, err.Error(), "max_age")
	})

	t.Run("negative", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"max_age": "-1"}))
		require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
	})

	t.Run("fractional", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"max_age": "1.5"}))
		require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
	})

	t.Run("non canonical forms", func(t *testing.T) {
		for _, raw := range []string{"+5", "007", "00", " 5"} {
			_, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"max_age": raw}))
			require.ErrorIs(t, err, oauth2.ErrTypeMismatch, raw)
		}
	})

	t.Run("zero", func(t *testing.T) {
		req, err := oauth2.ParseAuthorizeRequest(authorizeValues(map[string]string{"max_age": "0"}))
		require.NoError(t, err)
		require.NotNil(t, req.MaxAge)
		require.Equal(t, 0, *req.MaxAge)
	})

	t.Run("coercion is reported before missing fields", func(t *testing.T) {
		_, err := oauth2.ParseAuthorizeRequest(url.Values{"max_age": {"soon"}})
		require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
	})
}

func TestParseAuthorizeRequest_RepeatedParameter(t *testing.T) {
	values := authorizeValues(nil)
	values.Add("state", "one")
	values.Add("state", "two")

	_, err := oauth2.ParseAuthorizeRequest(values)
	require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
	field, _ := oauth2.FieldOf(err)
	require.Equal(t, "state", field)
}

func TestAuthorizeRequest_RoundTrip(t *testing.T) {
	values := url.Values{
		"client_id":             {testClientID},
		"response_type":         {"code id_token"},
		"redirect_uri":          {testRedirectURI},
		"scope":                 {"openid profile email"},
		"state":                 {testState},
		"code_challenge":        {testCodeChallenge},
		"code_challenge_method": {"S256"},
		"nonce":                 {testNonce},
		"display":               {"popup"},
		"prompt":                {"login consent"},
		"max_age":               {"3600"},
		"ui_locales":            {"fr-CA fr en"},
		"id_token_hint":         {"eyJhbGciOiJSUzI1NiJ9.e30.sig"},
		"login_hint":            {"user@example.com"},
		"acr_values":            {"urn:mace:incommon:iap:silver"},
		"request":               {"eyJhbGciOiJub25lIn0.e30."},
		"request_uri":           {"https://app.example/request.jwt"},
		"claims":                {`{"userinfo":{"email":null}}`},
		"response_mode":         {"form_post"},
	}

	req, err := oauth2.ParseAuthorizeRequest(values)
	require.NoError(t, err)
	require.Equal(t, values, req.Values())

	again, err := oauth2.ParseAuthorizeRequest(req.Values())
	require.NoError(t, err)
	require.Equal(t, req, again)

	require.Equal(t, []string{"openid", "profile", "email"}, req.Scopes())
	require.Equal(t, []string{"login", "consent"}, req.Prompts())
	require.Equal(t, []string{"fr-CA", "fr", "en"}, req.Locales())
	require.Equal(t, []string{"urn:mace:incommon:iap:silver"}, req.ACRs())
}

func TestAuthorizeRequest_EffectiveCodeChallengeMethod(t *testing.T) {
	t.Run("defaults to plain", func(t *testing.T) {
		req := &oauth2.AuthorizeRequest{CodeChallenge: testCodeChallenge}
		require.Equal(t, oauth2.CodeMethodTypePlain, req.EffectiveCodeChallengeMethod())
		require.Empty(t, req.CodeChallengeMethod)
	})

	t.Run("explicit S256", func(t *testing.T) {
		req := &oauth2.AuthorizeRequest{CodeChallenge: testCodeChallenge, CodeChallengeMethod: oauth2.CodeMethodTypeS256}
		require.Equal(t, oauth2.CodeMethodTypeS256, req.EffectiveCodeChallengeMethod())
	})

	t.Run("no challenge", func(t *testing.T) {
		req := &oauth2.AuthorizeRequest{}
		require.Empty(t, req.EffectiveCodeChallengeMethod())
	})
}

func TestParseAuthorizeRequest_ClientLibraryURL(t *testing.T) {
	cfg := &xoauth2.Config{
		ClientID:    testClientID,
		RedirectURL: testRedirectURI,
		Scopes:      []string{"openid", "profile"},
		Endpoint:    xoauth2.Endpoint{AuthURL: "https://op.example/authorize"},
	}
	verifier := xoauth2.GenerateVerifier()

	authURL := cfg.AuthCodeURL(testState,
		xoauth2.S256ChallengeOption(verifier),
		xoauth2.SetAuthURLParam("nonce", testNonce),
	)
	u, err := url.Parse(authURL)
	require.NoError(t, err)

	req, err := oauth2.ParseAuthorizeRequest(u.Query())
	require.NoError(t, err)
	require.Equal(t, oauth2.CodeResponseType, req.ResponseType)
	require.Equal(t, testRedirectURI, req.RedirectURI)
	require.Equal(t, testState, req.State)
	require.Equal(t, testNonce, req.Nonce)
	require.Equal(t, oauth2.CodeMethodTypeS256, req.CodeChallengeMethod)
	require.Equal(t, xoauth2.S256ChallengeFromVerifier(verifier), req.CodeChallenge)
	require.Equal(t, []string{"openid", "profile"}, req.Scopes())
}
