package oauth2

import "errors"

// ErrorResponse is the OAuth2 error body returned by the authorization and token endpoints.
// See: https://datatracker.ietf.org/doc/html/rfc6749#section-5.2
type ErrorResponse struct {
	// Error is a single ASCII error code.
	// Example: "invalid_request", "unsupported_grant_type"
	Error string `json:"error"`

	// ErrorDescription is human-readable text for the client developer.
	// Example: "missing required field: client_id"
	ErrorDescription string `json:"error_description,omitempty"`

	// ErrorURI points at a page with more information about the error.
	ErrorURI string `json:"error_uri,omitempty"`

	// State echoes the authorization request state, when one was sent.
	State string `json:"state,omitempty"`
}

// IsRequestError reports whether err is a malformed-request failure from this package,
// i.e. one that belongs in an invalid_request response rather than a server error.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField) ||
		errors.Is(err, ErrInvalidEnumValue) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrUnexpectedField)
}
