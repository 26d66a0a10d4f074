package server

import (
	"encoding/json"
	"fmt"
	"maps"
	"mime"
	"net/http"
	"net/url"

	apperrors "github.com/jrsteele09/go-oidc-params/internal/errors"
	"github.com/jrsteele09/go-oidc-params/oauth2"
	"github.com/rs/zerolog"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// WellKnownOpenIDConfig serves the OIDC discovery document
func (s *Server) WellKnownOpenIDConfig() http.HandlerFunc {
	raw, err := json.Marshal(s.document)
	cacheControl := fmt.Sprintf("public, max-age=%d", int(s.config.GetDiscoveryMaxAge().Seconds()))

	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			zerolog.Ctx(r.Context()).Err(err).Msg("Failed to encode discovery document")
			writeJSONError(w, apperrors.CodeServerError, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Cache-Control", cacheControl)
		_, _ = w.Write(raw)
	}
}

// Authorize validates the authorization request and hands it to the configured handler
func (s *Server) Authorize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		req, err := oauth2.ParseAuthorizeRequest(query)
		if err == nil {
			err = s.validator.ValidateAuthorizeRequest(req)
		}
		if err != nil {
			// The redirect_uri is not trusted without a client registry, so errors are returned directly.
			writeOAuthError(w, r, apperrors.Wrapf(err, "authorize"), singleValue(query, oauth2.ParamState))
			return
		}
		s.authorize(w, r, req)
	}
}

// Token validates the token request and hands it to the configured handler
func (s *Server) Token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")

		values, err := tokenRequestValues(r)
		if err != nil {
			writeOAuthError(w, r, err, "")
			return
		}
		req, err := oauth2.ParseTokenRequest(values)
		if err == nil {
			err = s.validator.ValidateTokenRequest(req)
		}
		if err != nil {
			writeOAuthError(w, r, apperrors.Wrapf(err, "token"), "")
			return
		}
		s.token(w, r, req)
	}
}

// tokenRequestValues reads the form body and merges HTTP Basic client credentials
// (client_secret_basic) into it. Using Basic and a body secret together is rejected.
func tokenRequestValues(r *http.Request) (url.Values, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != contentTypeForm {
		return nil, apperrors.Wrapf(apperrors.ErrUnsupportedMedia, "token: expected %s", contentTypeForm)
	}
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRequest, "token: failed to parse form data")
	}
	values := maps.Clone(r.PostForm)
	if values == nil {
		values = url.Values{}
	}

	user, pass, ok := r.BasicAuth()
	if !ok {
		return values, nil
	}
	// RFC 6749 section 2.3.1: Basic credentials are form-urlencoded first
	clientID, err := url.QueryUnescape(user)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRequest, "token: malformed basic credentials")
	}
	clientSecret, err := url.QueryUnescape(pass)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidRequest, "token: malformed basic credentials")
	}
	if values.Has(oauth2.ParamClientSecret) {
		return nil, apperrors.Wrapf(apperrors.ErrMultipleClientAuth, "token")
	}
	if id := values.Get(oauth2.ParamClientID); id != "" && id != clientID {
		return nil, apperrors.Wrapf(apperrors.ErrMultipleClientAuth, "token: client_id does not match credentials")
	}
	values.Set(oauth2.ParamClientID, clientID)
	values.Set(oauth2.ParamClientSecret, clientSecret)
	return values, nil
}

// EchoAuthorize answers a valid authorization request with its decoded parameters.
func EchoAuthorize(w http.ResponseWriter, r *http.Request, req *oauth2.AuthorizeRequest) {
	writeJSON(w, http.StatusOK, req)
}

// EchoToken answers a valid token request with its decoded parameters, secrets redacted.
func EchoToken(w http.ResponseWriter, r *http.Request, req *oauth2.TokenRequest) {
	writeJSON(w, http.StatusOK, req.Redacted())
}

// writeOAuthError maps err to an OAuth2 error response and logs it on the request logger
func writeOAuthError(w http.ResponseWriter, r *http.Request, err error, state string) {
	resp, status := apperrors.ToResponse(err)
	resp.State = state

	event := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(r.Context()).Error()
	}
	if field, ok := oauth2.FieldOf(err); ok {
		event = event.Str("field", field)
	}
	event.Err(err).Str("path", r.URL.Path).Msg("Rejected request")

	writeJSON(w, status, resp)
}

// writeJSONError writes an OAuth2 error response
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	writeJSON(w, statusCode, oauth2.ErrorResponse{Error: errorCode, ErrorDescription: description})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// singleValue returns the parameter only when it was sent exactly once.
func singleValue(values url.Values, name string) string {
	if vs := values[name]; len(vs) == 1 {
		return vs[0]
	}
	return ""
}
