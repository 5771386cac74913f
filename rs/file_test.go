package rs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/facets/http/status"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("streams file", func(t *testing.T) {
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>hi</h1>"), 0o644))

		resp, err := File(path)
		requirePrinted(t, lines(
			httpOK,
			"Content-Type: text/html",
			"Content-Length: 11",
			"",
			"<h1>hi</h1>",
		), resp, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(dir, "missing.txt"))
		require.ErrorIs(t, err, status.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := File(dir)
		require.ErrorIs(t, err, status.ErrNotFound)
	})
}
