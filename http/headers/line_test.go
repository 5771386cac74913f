package headers

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		line, err := Parse("Content-Type: text/html")
		require.NoError(t, err)
		require.Equal(t, Line{"Content-Type", "text/html"}, line)
		require.Equal(t, "Content-Type: text/html", line.String())
	})

	t.Run("optional whitespaces", func(t *testing.T) {
		line, err := Parse("X-Padded:\t  value with spaces  ")
		require.NoError(t, err)
		require.Equal(t, "value with spaces", line.Value)
	})

	t.Run("colon in value", func(t *testing.T) {
		line, err := Parse("Location: http://localhost:8080/")
		require.NoError(t, err)
		require.Equal(t, "Location", line.Name)
		require.Equal(t, "http://localhost:8080/", line.Value)
	})

	t.Run("empty value", func(t *testing.T) {
		line, err := Parse("X-Empty:")
		require.NoError(t, err)
		require.Empty(t, line.Value)
	})

	t.Run("no colon", func(t *testing.T) {
		_, err := Parse("Content-Type text/html")
		require.ErrorIs(t, err, ErrMalformedHeader)
	})

	t.Run("bad names", func(t *testing.T) {
		for _, raw := range []string{": value", "Bad Name: value", "Name : value", "Na\x01me: value", "Имя: value"} {
			_, err := Parse(raw)
			require.ErrorIs(t, err, ErrBadHeaderName, raw)
		}
	})

	t.Run("bad values", func(t *testing.T) {
		for _, raw := range []string{"X: a\r\nInjected: yes", "X: a\nb", "X: \x00", "X: \x7f"} {
			_, err := Parse(raw)
			require.ErrorIs(t, err, ErrBadHeaderValue, raw)
		}
	})

	t.Run("random tokens", func(t *testing.T) {
		for range 10 {
			name, value := uniuri.New(), uniuri.NewLen(32)
			line, err := Parse(name + ": " + value)
			require.NoError(t, err)
			require.Equal(t, Line{name, value}, line)
		}
	})
}

func TestLine_Is(t *testing.T) {
	line := Line{"content-TYPE", "text/plain"}
	require.True(t, line.Is(ContentType))
	require.False(t, line.Is(ContentLength))
}
