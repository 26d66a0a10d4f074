package oauth2_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrsteele09/go-oidc-params/internal/utils"
	"github.com/jrsteele09/go-oidc-params/oauth2"
	"github.com/stretchr/testify/require"
	xoauth2 "golang.org/x/oauth2"
)

const testIssuer = "https://op.example"

func minimalDocument() *oauth2.DiscoveryDocument {
	return &oauth2.DiscoveryDocument{
		Issuer:                 testIssuer,
		AuthorizationEndpoint:  testIssuer + "/authorize",
		TokenEndpoint:          testIssuer + "/token",
		JWKSURI:                testIssuer + "/.well-known/jwks.json",
		ResponseTypesSupported: []string{"code", "token"},
		GrantTypesSupported:    []string{"authorization_code"},
		ScopesSupported:        []string{"openid"},
	}
}

func TestDiscoveryDocument_RoundTrip(t *testing.T) {
	t.Run("required members", func(t *testing.T) {
		doc := minimalDocument()

		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		decoded, err := oauth2.DecodeDiscoveryDocument(raw)
		require.NoError(t, err)
		if diff := cmp.Diff(doc, decoded); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("optional members and flags", func(t *testing.T) {
		doc := minimalDocument()
		doc.UserInfoEndpoint = testIssuer + "/userinfo"
		doc.CodeChallengeMethodsSupported = []string{"S256", "plain"}
		doc.SubjectTypesSupported = []string{"public"}
		doc.IDTokenSigningAlgValuesSupported = []string{"RS256"}
		doc.UILocalesSupported = []string{"en-US", "en"}
		doc.ClaimsParameterSupported = utils.Ptr(false)
		doc.RequestURIParameterSupported = utils.Ptr(false)
		doc.OPPolicyURI = testIssuer + "/policy"

		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		decoded, err := oauth2.DecodeDiscoveryDocument(raw)
		require.NoError(t, err)
		if diff := cmp.Diff(doc, decoded); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}

		again, err := json.Marshal(decoded)
		require.NoError(t, err)
		require.JSONEq(t, string(raw), string(again))
	})
}

func TestDecodeDiscoveryDocument_MissingRequired(t *testing.T) {
	required := []string{
		"issuer",
		"authorization_endpoint",
		"token_endpoint",
		"jwks_uri",
		"response_types_supported",
		"grant_types_supported",
		"scopes_supported",
	}
	for _, member := range required {
		t.Run(member, func(t *testing.T) {
			var m map[string]any
			raw, _ := json.Marshal(minimalDocument())
			require.NoError(t, json.Unmarshal(raw, &m))
			delete(m, member)
			raw, _ = json.Marshal(m)

			_, err := oauth2.DecodeDiscoveryDocument(raw)
			require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
			field, _ := oauth2.FieldOf(err)
			require.Equal(t, member, field)
		})
	}

	t.Run("null counts as missing", func(t *testing.T) {
		raw := []byte(`{
			"issuer": null,
			"authorization_endpoint": "https://op.example/authorize",
			"token_endpoint": "https://op.example/token",
			"jwks_uri": "https://op.example/jwks",
			"response_types_supported": ["code"],
			"grant_types_supported": ["authorization_code"],
			"scopes_supported": ["openid"]
		}`)
		_, err := oauth2.DecodeDiscoveryDocument(raw)
		require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
		field, _ := oauth2.FieldOf(err)
		require.Equal(t, "issuer", field)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		for _, member := range []string{"issuer", "token_endpoint", "jwks_uri"} {
			var m map[string]any
			raw, _ := json.Marshal(minimalDocument())
			require.NoError(t, json.Unmarshal(raw, &m))
			m[member] = ""
			raw, _ = json.Marshal(m)

			_, err := oauth2.DecodeDiscoveryDocument(raw)
			require.ErrorIs(t, err, oauth2.ErrMissingRequiredField, member)
			field, _ := oauth2.FieldOf(err)
			require.Equal(t, member, field)
		}
	})

	t.Run("first declared member is reported", func(t *testing.T) {
		_, err := oauth2.DecodeDiscoveryDocument([]byte(`{}`))
		require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
		field, _ := oauth2.FieldOf(err)
		require.Equal(t, "issuer", field)
	})
}

func TestDecodeDiscoveryDocument_TypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		member string
		value  any
	}{
		{"flag as string", "claims_parameter_supported", "yes"},
		{"flag as number", "request_uri_parameter_supported", 1},
		{"array as string", "response_types_supported", "code"},
		{"array of numbers", "scopes_supported", []int{1, 2}},
		{"issuer as number", "issuer", 42},
		{"optional url as bool", "userinfo_endpoint", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m map[string]any
			raw, _ := json.Marshal(minimalDocument())
			require.NoError(t, json.Unmarshal(raw, &m))
			m[tt.member] = tt.value
			raw, _ = json.Marshal(m)

			_, err := oauth2.DecodeDiscoveryDocument(raw)
			require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
			field, _ := oauth2.FieldOf(err)
			require.Equal(t, tt.member, field)
		})
	}

	t.Run("not an object", func(t *testing.T) {
		_, err := oauth2.DecodeDiscoveryDocument([]byte(`["issuer"]`))
		require.ErrorIs(t, err, oauth2.ErrTypeMismatch)
		field, _ := oauth2.FieldOf(err)
		require.Equal(t, oauth2.DocumentRoot, field)
	})
}

func TestDecodeDiscoveryDocument_UnknownMembersIgnored(t *testing.T) {
	var m map[string]any
	raw, _ := json.Marshal(minimalDocument())
	require.NoError(t, json.Unmarshal(raw, &m))
	m["frontchannel_logout_supported"] = true
	m["mtls_endpoint_aliases"] = map[string]string{"token_endpoint": "https://mtls.op.example/token"}
	raw, _ = json.Marshal(m)

	doc, err := oauth2.DecodeDiscoveryDocument(raw)
	require.NoError(t, err)
	require.Equal(t, testIssuer, doc.Issuer)
}

func TestDiscoveryDocument_Validate(t *testing.T) {
	require.NoError(t, minimalDocument().Validate())

	doc := minimalDocument()
	doc.GrantTypesSupported = nil
	err := doc.Validate()
	require.ErrorIs(t, err, oauth2.ErrMissingRequiredField)
	field, _ := oauth2.FieldOf(err)
	require.Equal(t, "grant_types_supported", field)

	doc = minimalDocument()
	doc.ScopesSupported = []string{}
	require.NoError(t, doc.Validate(), "an empty list is present")
}

func TestDiscoveryDocument_Defaults(t *testing.T) {
	doc := minimalDocument()
	require.False(t, doc.ClaimsParameterEnabled())
	require.False(t, doc.RequestParameterEnabled())
	require.True(t, doc.RequestURIParameterEnabled())
	require.False(t, doc.RequestURIRegistrationRequired())

	doc.RequestURIParameterSupported = utils.Ptr(false)
	doc.ClaimsParameterSupported = utils.Ptr(true)
	require.False(t, doc.RequestURIParameterEnabled())
	require.True(t, doc.ClaimsParameterEnabled())

	require.True(t, doc.SupportsResponseType(oauth2.CodeResponseType))
	require.False(t, doc.SupportsResponseType(oauth2.IDTokenResponseType))
	require.True(t, doc.SupportsGrantType(oauth2.AuthorizationCodeGrant))
	require.False(t, doc.SupportsGrantType(oauth2.PasswordGrant))
	require.True(t, doc.SupportsScope("openid"))
	require.False(t, doc.SupportsCodeChallengeMethod(oauth2.CodeMethodTypeS256))
}

func TestDiscoveryDocument_Endpoint(t *testing.T) {
	tests := []struct {
		name    string
		methods []string
		style   xoauth2.AuthStyle
	}{
		{"default is basic", nil, xoauth2.AuthStyleInHeader},
		{"basic preferred", []string{"client_secret_post", "client_secret_basic"}, xoauth2.AuthStyleInHeader},
		{"post only", []string{"client_secret_post", "none"}, xoauth2.AuthStyleInParams},
		{"private_key_jwt only", []string{"private_key_jwt"}, xoauth2.AuthStyleAutoDetect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := minimalDocument()
			doc.TokenEndpointAuthMethodsSupported = tt.methods

			ep := doc.Endpoint()
			require.Equal(t, doc.AuthorizationEndpoint, ep.AuthURL)
			require.Equal(t, doc.TokenEndpoint, ep.TokenURL)
			require.Equal(t, tt.style, ep.AuthStyle)
		})
	}
}
