// Package tk defines takes: handlers turning a request into a response. Decorating takes
// wrap other takes, so they can be stacked arbitrarily.
package tk

import (
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
)

type Take interface {
	Act(request rq.Request) (rs.Response, error)
}

// Func is an adapter allowing ordinary functions to be used as takes.
type Func func(request rq.Request) (rs.Response, error)

func (f Func) Act(request rq.Request) (rs.Response, error) {
	return f(request)
}

// Fixed always responds with the same response. As responses are immutable, it's safe
// to share it among any number of requests, unless the body is streamed.
func Fixed(response rs.Response) Take {
	return Func(func(rq.Request) (rs.Response, error) {
		return response, nil
	})
}

// Text responds with a text/plain body.
func Text(body string) Take {
	return Fixed(rs.Must(rs.Text(rs.WithBody(rs.Empty(), body))))
}

// HTML responds with a text/html body.
func HTML(body string) Take {
	return Fixed(rs.Must(rs.Html(rs.WithBody(rs.Empty(), body))))
}

// JSON marshals the model once, at construction.
func JSON(model any) (Take, error) {
	resp, err := rs.WithJSON(rs.Empty(), model)
	if err != nil {
		return nil, err
	}

	return Fixed(resp), nil
}
