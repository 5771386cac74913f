package cookie

import "time"

// Cookie is what goes into a Set-Cookie header. Request cookies are plain name-value
// pairs and are kept in a Jar instead.
type Cookie struct {
	Name    string
	Value   string
	Path    string
	Domain  string
	Expires time.Time
	// MaxAge is a delta in seconds, after which the cookie must be dropped. Zero means
	// the attribute is omitted, so in order to render Max-Age=0 it must be negative.
	MaxAge   int
	SameSite SameSite
	Secure   bool
	HttpOnly bool
}

func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

// String renders the cookie as a Set-Cookie header value.
func (c Cookie) String() string {
	return Render(c)
}

// Builder is a chainable way to fill a cookie. It's passed by value, so a partially
// filled builder may be reused as a template.
type Builder struct {
	cookie Cookie
}

func Build(name, value string) Builder {
	return Builder{New(name, value)}
}

func (b Builder) Path(path string) Builder {
	b.cookie.Path = path
	return b
}

func (b Builder) Domain(domain string) Builder {
	b.cookie.Domain = domain
	return b
}

func (b Builder) Expires(expires time.Time) Builder {
	b.cookie.Expires = expires
	return b
}

// MaxAge sets the Max-Age attribute. See Cookie.MaxAge on how to render a zero.
func (b Builder) MaxAge(seconds int) Builder {
	b.cookie.MaxAge = seconds
	return b
}

// Expired empties the value and sets both Expires and Max-Age to the past, so a
// user-agent drops the cookie on receiving.
func (b Builder) Expired() Builder {
	b.cookie.Value = ""
	b.cookie.Expires = time.Unix(0, 0)
	b.cookie.MaxAge = -1
	return b
}

func (b Builder) SameSite(sameSite SameSite) Builder {
	b.cookie.SameSite = sameSite
	return b
}

func (b Builder) Secure(secure bool) Builder {
	b.cookie.Secure = secure
	return b
}

func (b Builder) HttpOnly(httpOnly bool) Builder {
	b.cookie.HttpOnly = httpOnly
	return b
}

func (b Builder) Cookie() Cookie {
	return b.cookie
}

type SameSite = string

const (
	SameSiteLax    SameSite = "Lax"
	SameSiteStrict SameSite = "Strict"
	SameSiteNone   SameSite = "None"
)
