package rs

import (
	"io"
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/indigo-web/facets/http/headers"
	json "github.com/json-iterator/go"
)

// WithBody replaces the body and the Content-Length header. The resulting body is
// re-readable. The body of inner is not read anymore, but it's closed by Print if needed.
func WithBody(inner Response, body string) Response {
	return withBuffer(inner, []byte(body))
}

// WithBytes does the same as WithBody does. The slice is copied, so changing it later
// doesn't affect the response.
func WithBytes(inner Response, body []byte) Response {
	return withBuffer(inner, slices.Clone(body))
}

// WithJSON marshals the model and sets it as a body with application/json content type.
func WithJSON(inner Response, model any) (Response, error) {
	body, err := json.ConfigCompatibleWithStandardLibrary.Marshal(model)
	if err != nil {
		return nil, err
	}

	return Json(withBuffer(inner, body))
}

func withBuffer(inner Response, body []byte) Response {
	length := headers.Line{Name: headers.ContentLength, Value: strconv.Itoa(len(body))}
	return buffered{head: replace(inner.Head(), length), body: body, replaced: inner}
}

// WithStream replaces the body with the reader, which can be read only once. If size is
// not negative, it replaces Content-Length, otherwise any Content-Length is dropped. If
// the reader is also an io.Closer, it is closed by whoever consumes the body, normally
// Print.
func WithStream(inner Response, body io.Reader, size int64) Response {
	var head []string
	if size >= 0 {
		head = replace(inner.Head(), headers.Line{
			Name:  headers.ContentLength,
			Value: strconv.FormatInt(size, 10),
		})
	} else {
		head = without(inner.Head(), headers.ContentLength)
	}

	return streamed{head: head, taken: new(atomic.Bool), body: body, replaced: inner}
}
