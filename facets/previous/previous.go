// Package previous implements the "return to where you were" pattern. The location is kept
// by the user-agent in a cookie, so there's no server-side state at all: every request is
// classified by its own Cookie headers only.
package previous

import (
	"github.com/indigo-web/facets/config"
	"github.com/indigo-web/facets/http/cookie"
	"github.com/indigo-web/facets/http/headers"
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
	"github.com/indigo-web/facets/tk"
)

type Option func(*config.Previous)

// WithCookieName overrides the default TkPrevious cookie name.
func WithCookieName(name string) Option {
	return func(cfg *config.Previous) {
		cfg.CookieName = name
	}
}

// WithPath overrides the default / cookie path.
func WithPath(path string) Option {
	return func(cfg *config.Previous) {
		cfg.Path = path
	}
}

// WithConfig replaces all the settings at once.
func WithConfig(c config.Previous) Option {
	return func(cfg *config.Previous) {
		*cfg = c
	}
}

func settings(opts []Option) config.Previous {
	cfg := config.Default().Previous
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type take struct {
	origin tk.Take
	cfg    config.Previous
}

// New wraps the take. If a request carries the cookie, the wrapped take isn't called at
// all: the response is a 303 See Other to the cookie value, clearing the cookie so the
// redirect fires only once. Otherwise, the request is passed to the wrapped take as is.
func New(origin tk.Take, opts ...Option) tk.Take {
	return take{origin: origin, cfg: settings(opts)}
}

func (t take) Act(request rq.Request) (rs.Response, error) {
	location, found := Lookup(request, t.cfg.CookieName)
	if !found {
		return t.origin.Act(request)
	}

	resp, err := rs.Redirect(location)
	if err != nil {
		return nil, err
	}

	return rs.WithoutCookie(resp, t.cfg.CookieName, t.cfg.Path)
}

// Resolve looks the cookie up in a single Cookie header value. Segments are separated by
// semicolons, each split on the first equal sign; segments without one are skipped. If the
// name repeats, the first occurrence wins. An empty value counts as absent, as this is
// exactly what the clearing cookie sets.
func Resolve(cookieHeader, name string) (location string, found bool) {
	location, found = cookie.Get(cookieHeader, name)
	return location, found && len(location) > 0
}

// Lookup applies Resolve to every Cookie header of the request in order, so the first
// occurrence wins across headers, too.
func Lookup(request rq.Request, name string) (location string, found bool) {
	for _, value := range rq.Header(request, headers.Cookie) {
		if location, found = Resolve(value, name); found {
			return location, true
		}
	}

	return "", false
}
