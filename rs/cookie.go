package rs

import (
	"strings"

	"github.com/indigo-web/facets/http/cookie"
	"github.com/indigo-web/facets/http/headers"
)

// WithCookie adds a Set-Cookie header. A Set-Cookie for the same cookie name, added
// earlier, is replaced, while cookies with other names stay untouched.
func WithCookie(inner Response, c cookie.Cookie) (Response, error) {
	if err := cookie.Validate(c); err != nil {
		return nil, err
	}

	line, err := headers.New(headers.SetCookie, cookie.Render(c))
	if err != nil {
		return nil, err
	}

	head := inner.Head()
	if len(head) == 0 {
		return headed{inner: inner}, nil
	}

	rest := headers.Filter(head[1:], func(raw string) bool {
		return headers.Named(raw, headers.SetCookie) && setCookieName(raw) == c.Name
	})

	return headed{head: append(append([]string{head[0]}, rest...), line.String()), inner: inner}, nil
}

// WithoutCookie makes the user-agent drop the cookie by setting it to an empty
// already expired value.
func WithoutCookie(inner Response, name, path string) (Response, error) {
	return WithCookie(inner, cookie.Expired(name, path))
}

func setCookieName(raw string) string {
	value, _ := headers.Find([]string{raw}, headers.SetCookie)
	name, _, _ := strings.Cut(value, "=")
	return name
}
