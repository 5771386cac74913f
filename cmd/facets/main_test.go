package main

import (
	"strings"
	"testing"

	"github.com/indigo-web/facets/config"
	"github.com/indigo-web/facets/facets/previous"
	"github.com/indigo-web/facets/http/status"
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
	"github.com/indigo-web/facets/tk"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	cfg := config.Default()
	take := previous.New(tk.Fallback(app(cfg)), previous.WithConfig(cfg.Previous))

	act := func(request rq.Request) []string {
		resp, err := take.Act(request)
		require.NoError(t, err)
		return resp.Head()
	}

	t.Run("greets", func(t *testing.T) {
		printed := func(request rq.Request) string {
			resp, err := take.Act(request)
			require.NoError(t, err)
			out, err := rs.PrintString(resp)
			require.NoError(t, err)
			return out
		}

		out := printed(rq.Fake("GET", "/"))
		require.True(t, strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n"))
		require.True(t, strings.HasSuffix(out, "\r\n\r\nhello, stranger\n"))

		request, err := rq.WithHeader(rq.Fake("GET", "/"), "Cookie", "theme=dark; name=Pavlo")
		require.NoError(t, err)
		request, err = rq.WithHeader(request, "Cookie", "name=Someone")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(printed(request), "\r\n\r\nhello, Pavlo\n"))
	})

	t.Run("remembers", func(t *testing.T) {
		head := act(rq.Fake("GET", "/remember?to=/docs"))
		require.Contains(t, head, "Set-Cookie: TkPrevious=/docs; Path=/; HttpOnly")

		request, err := rq.WithHeader(rq.Fake("GET", "/"), "Cookie", "TkPrevious=/docs")
		require.NoError(t, err)
		head = act(request)
		require.Equal(t, "HTTP/1.1 303 See Other", head[0])
		require.Contains(t, head, "Location: /docs")
	})

	t.Run("rejects foreign locations", func(t *testing.T) {
		_, err := app(cfg).Act(rq.Fake("GET", "/remember?to=https://evil.example"))
		require.ErrorIs(t, err, status.ErrBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		head := act(rq.Fake("GET", "/nowhere"))
		require.Equal(t, "HTTP/1.1 404 Not Found", head[0])
	})
}
