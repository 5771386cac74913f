package rs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/indigo-web/facets/http/mime"
	"github.com/indigo-web/facets/http/status"
)

// File returns a 200 OK response streaming the file. Content-Type is guessed by the
// extension. The file descriptor is owned by the response and gets closed by Print, so
// the response must be printed exactly once.
//
// A missing file or a directory results in status.ErrNotFound.
func File(path string) (Response, error) {
	fd, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, status.ErrNotFound
		}

		return nil, err
	}

	stat, err := fd.Stat()
	if err != nil {
		_ = fd.Close()
		return nil, err
	}

	if stat.IsDir() {
		_ = fd.Close()
		return nil, status.ErrNotFound
	}

	resp, err := WithType(Empty(), mime.ByPath(path))
	if err != nil {
		_ = fd.Close()
		return nil, err
	}

	return WithStream(resp, fd, stat.Size()), nil
}
