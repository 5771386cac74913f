package cookie

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/indigo-web/facets/http/headers"
)

var ErrBadCookie = errors.New("cookie has a malformed syntax")

var zoneGMT = time.FixedZone("GMT", 0)

// Validate checks whether the cookie can be rendered into a Set-Cookie header without
// breaking the header syntax.
func Validate(c Cookie) error {
	if !headers.ValidName(c.Name) {
		return ErrBadCookie
	}

	for _, attr := range []string{c.Value, c.Path, c.Domain} {
		if strings.ContainsAny(attr, ";\r\n") || !headers.ValidValue(attr) {
			return ErrBadCookie
		}
	}

	return nil
}

// Render returns the Set-Cookie header value for the cookie.
func Render(c Cookie) string {
	buff := make([]byte, 0, 64)
	buff = append(buff, c.Name...)
	buff = append(buff, '=')
	buff = append(buff, c.Value...)
	buff = append(buff, ';', ' ')

	if len(c.Path) > 0 {
		buff = append(buff, "Path="...)
		buff = append(buff, c.Path...)
		buff = append(buff, ';', ' ')
	}

	if len(c.Domain) > 0 {
		buff = append(buff, "Domain="...)
		buff = append(buff, c.Domain...)
		buff = append(buff, ';', ' ')
	}

	if !c.Expires.IsZero() {
		buff = append(buff, "Expires="...)
		buff = c.Expires.In(zoneGMT).AppendFormat(buff, time.RFC1123)
		buff = append(buff, ';', ' ')
	}

	if c.MaxAge != 0 {
		maxage := "0"
		if c.MaxAge > 0 {
			maxage = strconv.Itoa(c.MaxAge)
		}

		buff = append(buff, "Max-Age="...)
		buff = append(buff, maxage...)
		buff = append(buff, ';', ' ')
	}

	if len(c.SameSite) > 0 {
		buff = append(buff, "SameSite="...)
		buff = append(buff, c.SameSite...)
		buff = append(buff, ';', ' ')
	}

	if c.Secure {
		buff = append(buff, "Secure; "...)
	}

	if c.HttpOnly {
		buff = append(buff, "HttpOnly; "...)
	}

	// strip last 2 bytes, which are always a semicolon and a space
	return string(buff[:len(buff)-2])
}

// Expired returns a cookie which makes the user-agent drop the cookie with the name
// immediately.
func Expired(name, path string) Cookie {
	return Build(name, "").Path(path).Expired().Cookie()
}
