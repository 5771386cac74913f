package previous

import (
	"strings"
	"testing"

	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
	"github.com/indigo-web/facets/tk"
	"github.com/stretchr/testify/require"
)

func withCookie(t *testing.T, values ...string) rq.Request {
	t.Helper()
	req := rq.Fake("GET", "/")
	for _, value := range values {
		var err error
		req, err = rq.WithHeader(req, "Cookie", value)
		require.NoError(t, err)
	}

	return req
}

func actPrinted(t *testing.T, take tk.Take, req rq.Request) string {
	t.Helper()
	resp, err := take.Act(req)
	require.NoError(t, err)
	printed, err := rs.PrintString(resp)
	require.NoError(t, err)
	return printed
}

type counter struct {
	calls int
	take  tk.Take
}

func (c *counter) Act(req rq.Request) (rs.Response, error) {
	c.calls++
	return c.take.Act(req)
}

func TestPrevious(t *testing.T) {
	t.Run("redirects on cookie", func(t *testing.T) {
		origin := &counter{take: tk.Text("")}
		printed := actPrinted(t, New(origin), withCookie(t, "TkPrevious=/home"))
		require.True(t, strings.HasPrefix(printed, "HTTP/1.1 303 See Other"))
		require.Equal(t, strings.Join([]string{
			"HTTP/1.1 303 See Other",
			"Location: /home",
			"Set-Cookie: TkPrevious=; Path=/; Expires=Thu, 01 Jan 1970 00:00:00 GMT; Max-Age=0",
			"",
			"",
		}, "\r\n"), printed)
		require.Zero(t, origin.calls)
	})

	t.Run("no cookie header", func(t *testing.T) {
		origin := tk.Text("welcome")
		want := actPrinted(t, origin, rq.Fake("GET", "/"))
		require.Equal(t, want, actPrinted(t, New(origin), rq.Fake("GET", "/")))
	})

	t.Run("other cookies only", func(t *testing.T) {
		origin := &counter{take: tk.Text("welcome")}
		printed := actPrinted(t, New(origin), withCookie(t, "session=abc; TkPreviousX=/no"))
		require.True(t, strings.HasPrefix(printed, "HTTP/1.1 200 OK"))
		require.Equal(t, 1, origin.calls)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		printed := actPrinted(t, New(tk.Text("")), withCookie(t, "TkPrevious=/first; TkPrevious=/second"))
		require.Contains(t, printed, "Location: /first\r\n")

		printed = actPrinted(t, New(tk.Text("")), withCookie(t, "a=b", "TkPrevious=/one", "TkPrevious=/two"))
		require.Contains(t, printed, "Location: /one\r\n")
	})

	t.Run("custom cookie name and path", func(t *testing.T) {
		take := New(tk.Text(""), WithCookieName("Back"), WithPath("/app"))
		printed := actPrinted(t, take, withCookie(t, "TkPrevious=/ignored; Back=/app/cart"))
		require.Contains(t, printed, "Location: /app/cart\r\n")
		require.Contains(t, printed, "Set-Cookie: Back=; Path=/app;")
	})

	t.Run("remember then redirect", func(t *testing.T) {
		remembered, err := Remember(rs.Must(rs.Redirect("/login")), "/orders?page=2")
		require.NoError(t, err)
		_, head := rs.Head(remembered)
		require.Contains(t, head, "Set-Cookie: TkPrevious=/orders?page=2; Path=/; HttpOnly")

		// a user-agent echoes the name=value part back
		printed := actPrinted(t, New(tk.Text("")), withCookie(t, "TkPrevious=/orders?page=2"))
		require.Contains(t, printed, "Location: /orders?page=2\r\n")
	})
}

func TestResolve(t *testing.T) {
	for _, tc := range []struct {
		Header   string
		Location string
		Found    bool
	}{
		{"TkPrevious=/home", "/home", true},
		{"  TkPrevious = /home ;", "/home", true},
		{"a=1;TkPrevious=/x;b=2", "/x", true},
		{"TkPrevious=/a; TkPrevious=/b", "/a", true},
		{"TkPrevious=/search?q=a=b", "/search?q=a=b", true},
		{"TkPrevious", "", false},
		{"TkPrevious=", "", false},
		{"junk; more junk", "", false},
		{"", "", false},
	} {
		location, found := Resolve(tc.Header, "TkPrevious")
		require.Equal(t, tc.Found, found, tc.Header)
		require.Equal(t, tc.Location, location, tc.Header)
	}
}
