package rs

import (
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/facets/http/status"
	"github.com/stretchr/testify/require"
)

func TestWithBody(t *testing.T) {
	t.Run("replaces content length", func(t *testing.T) {
		resp := WithBody(WithBody(Empty(), "first body"), "second")
		requirePrinted(t, lines(httpOK, "Content-Length: 6", "", "second"), resp, nil)
	})

	t.Run("content length in any case", func(t *testing.T) {
		inner := Must(WithHeaders(Empty(), "content-length: 100", "X: y"))
		resp := WithBody(inner, "abc")
		require.Equal(t, []string{httpOK, "X: y", "Content-Length: 3"}, resp.Head())
	})

	t.Run("multibyte length", func(t *testing.T) {
		resp := WithBody(Empty(), "привіт")
		require.Equal(t, []string{httpOK, "Content-Length: 12"}, resp.Head())
	})

	t.Run("re-readable", func(t *testing.T) {
		resp := WithBody(Must(Status(status.Created)), "created")
		for range 3 {
			body, err := io.ReadAll(resp.Body())
			require.NoError(t, err)
			require.Equal(t, "created", string(body))
		}
	})

	t.Run("bytes are copied", func(t *testing.T) {
		raw := []byte("hello")
		resp := WithBytes(Empty(), raw)
		raw[0] = 'j'
		body, err := io.ReadAll(resp.Body())
		require.NoError(t, err)
		require.Equal(t, "hello", string(body))
	})
}

func TestWithStream(t *testing.T) {
	t.Run("sized", func(t *testing.T) {
		resp := WithStream(WithBody(Empty(), "old"), strings.NewReader("streamed"), 8)
		requirePrinted(t, lines(httpOK, "Content-Length: 8", "", "streamed"), resp, nil)
	})

	t.Run("unsized drops content length", func(t *testing.T) {
		resp := WithStream(WithBody(Empty(), "old"), strings.NewReader("streamed"), -1)
		require.Equal(t, []string{httpOK}, resp.Head())
	})

	t.Run("readable once", func(t *testing.T) {
		resp := Must(WithType(WithStream(Empty(), strings.NewReader("once"), 4), "text/plain"))
		body, err := io.ReadAll(resp.Body())
		require.NoError(t, err)
		require.Equal(t, "once", string(body))

		_, err = io.ReadAll(resp.Body())
		require.ErrorIs(t, err, ErrBodyConsumed)
	})
}

func TestWithJSON(t *testing.T) {
	resp, err := WithJSON(Empty(), map[string]any{"hello": "world"})
	requirePrinted(t, lines(
		httpOK,
		"Content-Length: 17",
		"Content-Type: application/json",
		"",
		`{"hello":"world"}`,
	), resp, err)

	_, err = WithJSON(Empty(), make(chan int))
	require.Error(t, err)
}
