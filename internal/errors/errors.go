package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-oidc-params/oauth2"
)

// OAuth2 error codes (RFC 6749 section 4.1.2.1 and 5.2)
const (
	CodeInvalidRequest          = "invalid_request"
	CodeUnsupportedGrantType    = "unsupported_grant_type"
	CodeUnsupportedResponseType = "unsupported_response_type"
	CodeServerError             = "server_error"
)

// Common error types for the parameter endpoints
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrMultipleClientAuth = errors.New("client authenticated with more than one method")
	ErrUnsupportedMedia   = errors.New("unsupported content type")
	ErrInternal           = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ToResponse maps err to the OAuth2 error body and HTTP status the endpoints return.
// Response and grant types the provider does not advertise get their dedicated
// codes; every other malformed request becomes invalid_request.
func ToResponse(err error) (oauth2.ErrorResponse, int) {
	switch {
	case Is(err, oauth2.ErrUnsupportedValue):
		return oauth2.ErrorResponse{Error: unsupportedCode(err), ErrorDescription: err.Error()}, http.StatusBadRequest
	case oauth2.IsRequestError(err),
		Is(err, ErrInvalidRequest),
		Is(err, ErrMultipleClientAuth),
		Is(err, ErrUnsupportedMedia):
		return oauth2.ErrorResponse{Error: CodeInvalidRequest, ErrorDescription: err.Error()}, http.StatusBadRequest
	default:
		return oauth2.ErrorResponse{Error: CodeServerError, ErrorDescription: "internal error"}, http.StatusInternalServerError
	}
}

func unsupportedCode(err error) string {
	field, _ := oauth2.FieldOf(err)
	switch field {
	case oauth2.ParamResponseType:
		return CodeUnsupportedResponseType
	case oauth2.ParamGrantType:
		return CodeUnsupportedGrantType
	default:
		return CodeInvalidRequest
	}
}
