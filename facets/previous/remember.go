package previous

import (
	"github.com/indigo-web/facets/http/cookie"
	"github.com/indigo-web/facets/rs"
)

// Remember sets the cookie with the location, so the next request passing through New is
// redirected there. Typically used right before sending a user to a login page.
func Remember(inner rs.Response, location string, opts ...Option) (rs.Response, error) {
	cfg := settings(opts)
	c := cookie.Build(cfg.CookieName, location).
		Path(cfg.Path).
		HttpOnly(true).
		Cookie()

	return rs.WithCookie(inner, c)
}
