package rs

import (
	"bytes"
	"errors"
	"io"

	"go.uber.org/multierr"
)

// ErrMalformedResponse is returned when a response has no status line.
var ErrMalformedResponse = errors.New("response has no status line")

const crlf = "\r\n"

// Print writes the response to w in the HTTP/1.1 framing: the status line, every header
// line in the order of Head, an empty line and the body. Nothing is reordered,
// deduplicated or canonicalized here.
//
// If the body is an io.Closer, it's closed on every return path, errors included. So are
// bodies overridden by WithBody, WithBytes or WithStream somewhere down the chain. A close
// error is reported alongside the write one, if any.
func Print(w io.Writer, r Response) (err error) {
	body := r.Body()
	defer func() {
		if closer, ok := body.(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}

		err = multierr.Append(err, discard(r))
	}()

	head := r.Head()
	if len(head) == 0 {
		return ErrMalformedResponse
	}

	if _, err = w.Write(AppendHead(make([]byte, 0, headLen(head)), head)); err != nil {
		return err
	}

	_, err = io.Copy(w, body)
	return err
}

// PrintBytes returns the whole response as it'd be written on the wire.
func PrintBytes(r Response) ([]byte, error) {
	var buff bytes.Buffer
	err := Print(&buff, r)
	return buff.Bytes(), err
}

// PrintString is PrintBytes returning a string.
func PrintString(r Response) (string, error) {
	b, err := PrintBytes(r)
	return string(b), err
}

// AppendHead appends the head lines, each followed by CRLF, and the empty line
// terminating the head.
func AppendHead(buff []byte, head []string) []byte {
	for _, line := range head {
		buff = append(buff, line...)
		buff = append(buff, crlf...)
	}

	return append(buff, crlf...)
}

func headLen(head []string) (n int) {
	for _, line := range head {
		n += len(line) + len(crlf)
	}

	return n + len(crlf)
}
