package cookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		require.Equal(t, "a=b", Render(New("a", "b")))
		require.Equal(t, "a=b; Secure", Build("a", "b").Secure(true).Cookie().String())
	})

	t.Run("all attributes", func(t *testing.T) {
		c := Build("session", "42").
			Path("/").
			Domain("example.com").
			Expires(time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)).
			MaxAge(3600).
			SameSite(SameSiteLax).
			Secure(true).
			HttpOnly(true).
			Cookie()

		require.Equal(t,
			"session=42; Path=/; Domain=example.com; Expires=Wed, 21 Oct 2015 07:28:00 GMT; "+
				"Max-Age=3600; SameSite=Lax; Secure; HttpOnly",
			Render(c),
		)
	})

	t.Run("expired", func(t *testing.T) {
		require.Equal(t,
			"TkPrevious=; Path=/; Expires=Thu, 01 Jan 1970 00:00:00 GMT; Max-Age=0",
			Render(Expired("TkPrevious", "/")),
		)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(New("TkPrevious", "/home")))
	require.NoError(t, Validate(Expired("TkPrevious", "/")))
	require.ErrorIs(t, Validate(New("", "value")), ErrBadCookie)
	require.ErrorIs(t, Validate(New("bad name", "value")), ErrBadCookie)
	require.ErrorIs(t, Validate(New("a", "b; Domain=evil.com")), ErrBadCookie)
	require.ErrorIs(t, Validate(New("a", "b\r\nX: y")), ErrBadCookie)
}
