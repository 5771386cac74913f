package rs

import (
	"github.com/indigo-web/facets/http/proto"
	"github.com/indigo-web/facets/http/status"
)

// Status returns an empty response with a status line built for the code. The reason
// phrase is looked up unless passed explicitly. status.ErrUnknownStatusCode is returned
// when there's none.
func Status(code status.Code, reason ...status.Status) (Response, error) {
	return WithStatus(Empty(), code, reason...)
}

// WithStatus replaces the status line of the response, keeping its protocol version.
// Headers and body are left as they are.
func WithStatus(inner Response, code status.Code, reason ...status.Status) (Response, error) {
	head := inner.Head()
	protocol := proto.HTTP11
	if len(head) > 0 {
		if line, err := status.ParseLine(head[0]); err == nil {
			protocol = line.Protocol
		}
	}

	line, err := status.NewLine(protocol, code, reason...)
	if err != nil {
		return nil, err
	}

	replaced := []string{line.String()}
	if len(head) > 0 {
		replaced = append(replaced, head[1:]...)
	}

	return headed{head: replaced, inner: inner}, nil
}
