package rs

import (
	"errors"
	"fmt"

	"github.com/indigo-web/facets/http/headers"
	"github.com/indigo-web/facets/http/mime"
)

var ErrBadContentType = errors.New("content type must be in a form of type/subtype")

// WithType makes sure the response carries exactly one Content-Type header. Every
// present Content-Type line is dropped and a new one is appended, so when decorators
// are nested, the outermost one wins. Status line and body are passed through as is,
// including Content-Length.
//
// Only the first charset is taken into account. If given, it's rendered as a parameter:
// Content-Type: text/html; charset=UTF-8
func WithType(inner Response, typ mime.MIME, charset ...mime.Charset) (Response, error) {
	if !mime.Valid(typ) {
		return nil, fmt.Errorf("%w: got %q", ErrBadContentType, typ)
	}

	value := typ
	if len(charset) > 0 && charset[0] != mime.Unset {
		value += "; charset=" + charset[0]
	}

	line, err := headers.New(headers.ContentType, value)
	if err != nil {
		return nil, err
	}

	return headed{head: replace(inner.Head(), line), inner: inner}, nil
}

// Html is WithType bound to text/html.
func Html(inner Response, charset ...mime.Charset) (Response, error) {
	return WithType(inner, mime.HTML, charset...)
}

// Json is WithType bound to application/json.
func Json(inner Response, charset ...mime.Charset) (Response, error) {
	return WithType(inner, mime.JSON, charset...)
}

// Xml is WithType bound to text/xml.
func Xml(inner Response, charset ...mime.Charset) (Response, error) {
	return WithType(inner, mime.XML, charset...)
}

// Text is WithType bound to text/plain.
func Text(inner Response, charset ...mime.Charset) (Response, error) {
	return WithType(inner, mime.Plain, charset...)
}
