package rs

import (
	"github.com/indigo-web/facets/http/headers"
	"github.com/indigo-web/facets/http/status"
)

// Redirect returns a response pointing the user-agent to the location. The code
// defaults to 303 See Other, only the first one is taken into account.
func Redirect(location string, code ...status.Code) (Response, error) {
	c := status.SeeOther
	if len(code) > 0 {
		c = code[0]
	}

	resp, err := Status(c)
	if err != nil {
		return nil, err
	}

	line, err := headers.New(headers.Location, location)
	if err != nil {
		return nil, err
	}

	return headed{head: replace(resp.Head(), line), inner: resp}, nil
}
