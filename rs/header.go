package rs

import (
	"github.com/indigo-web/facets/http/headers"
)

// WithHeader appends a header line. Lines with the same name are never deduplicated
// here, as repeating a header is perfectly legal in HTTP.
func WithHeader(inner Response, name, value string) (Response, error) {
	line, err := headers.New(name, value)
	if err != nil {
		return nil, err
	}

	return headed{head: appended(inner.Head(), line.String()), inner: inner}, nil
}

// WithHeaders appends raw Name: Value lines, each of them being parsed and validated.
func WithHeaders(inner Response, lines ...string) (Response, error) {
	parsed := make([]string, 0, len(lines))
	for _, raw := range lines {
		line, err := headers.Parse(raw)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, line.String())
	}

	return headed{head: appended(inner.Head(), parsed...), inner: inner}, nil
}

// WithoutHeader drops every header line carrying the name.
func WithoutHeader(inner Response, name string) Response {
	return headed{head: without(inner.Head(), name), inner: inner}
}
