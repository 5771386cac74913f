package status

import "errors"

var (
	// ErrUnknownStatusCode is returned when a status line is built for a code without a
	// registered reason phrase, and no phrase was supplied explicitly.
	ErrUnknownStatusCode   = errors.New("no reason phrase registered for the status code")
	ErrBadStatusCode       = errors.New("status code must be within the 100-599 range")
	ErrMalformedStatusLine = errors.New("malformed status line")
)

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrUnauthorized        = NewError(Unauthorized, "unauthorized")
	ErrForbidden           = NewError(Forbidden, "forbidden")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrNotAcceptable       = NewError(NotAcceptable, "not acceptable")
	ErrGone                = NewError(Gone, "gone")
	ErrUnsupportedMedia    = NewError(UnsupportedMediaType, "unsupported media type")
	ErrTeapot              = NewError(Teapot, "i'm a teapot")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrNotImplemented      = NewError(NotImplemented, "not implemented")
	ErrServiceUnavailable  = NewError(ServiceUnavailable, "service unavailable")
)
