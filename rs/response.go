// Package rs builds HTTP responses by composition. Every constructor and decorator
// returns a new immutable Response, wrapping the previous one, so a response can be
// shared between goroutines and decorated any number of times.
package rs

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"sync/atomic"

	"github.com/indigo-web/facets/http/headers"
	"go.uber.org/multierr"
)

// Response is an immutable HTTP response.
//
// Head returns the status line as the first element, followed by header lines in the
// order they were composed. None of the lines carry a trailing CRLF. Body returns the
// raw body, no transfer coding applied. Whether Body may be read more than once depends
// on the concrete response: buffered bodies are re-readable, streamed ones are not.
type Response interface {
	Head() []string
	Body() io.Reader
}

var ErrBodyConsumed = errors.New("streamed response body has already been taken")

const emptyStatusLine = "HTTP/1.1 200 OK"

// Empty returns a 200 OK response with no headers and an empty body.
func Empty() Response {
	return buffered{head: []string{emptyStatusLine}}
}

// Must is a helper that wraps a call to a constructor returning (Response, error) and
// panics if the error is non-nil. It is intended for use in variable initializations.
func Must(r Response, err error) Response {
	if err != nil {
		panic(err)
	}

	return r
}

// Head is a convenience wrapper around r.Head, skipping the status line.
func Head(r Response) (status string, lines []string) {
	head := r.Head()
	if len(head) == 0 {
		return "", nil
	}

	return head[0], head[1:]
}

// buffered carries its body in memory, so Body is re-readable. replaced is the response
// whose body was overridden, kept in order to release it.
type buffered struct {
	head     []string
	body     []byte
	replaced Response
}

func (b buffered) Head() []string {
	return slices.Clone(b.head)
}

func (b buffered) Body() io.Reader {
	return bytes.NewReader(b.body)
}

func (b buffered) discard() error {
	return release(b.replaced)
}

// headed overrides the head only, taking the body from the wrapped response.
type headed struct {
	head  []string
	inner Response
}

func (h headed) Head() []string {
	return slices.Clone(h.head)
}

func (h headed) Body() io.Reader {
	return h.inner.Body()
}

func (h headed) discard() error {
	return discard(h.inner)
}

// streamed hands its reader out exactly once. Any following call returns a reader
// failing with ErrBodyConsumed.
type streamed struct {
	head     []string
	taken    *atomic.Bool
	body     io.Reader
	replaced Response
}

func (s streamed) Head() []string {
	return slices.Clone(s.head)
}

func (s streamed) Body() io.Reader {
	if s.taken.Swap(true) {
		return consumedReader{}
	}

	return s.body
}

func (s streamed) discard() error {
	return release(s.replaced)
}

type consumedReader struct{}

func (consumedReader) Read([]byte) (int, error) {
	return 0, ErrBodyConsumed
}

// discarder is implemented by responses which override the body of the response they
// wrap. The overridden body is never read, but still must be closed.
type discarder interface {
	discard() error
}

// discard releases every body r has overridden down the chain, leaving r's own body
// untouched.
func discard(r Response) error {
	if d, ok := r.(discarder); ok {
		return d.discard()
	}

	return nil
}

// release closes the body of r, if it's an io.Closer, and everything r has overridden.
func release(r Response) (err error) {
	if r == nil {
		return nil
	}

	if closer, ok := r.Body().(io.Closer); ok {
		err = closer.Close()
	}

	return multierr.Append(err, discard(r))
}

// replace keeps the status line of the head and overrides the header by the line. A head
// without status line stays empty, so it's still rejected when printed.
func replace(head []string, line headers.Line) []string {
	if len(head) == 0 {
		return nil
	}

	return append([]string{head[0]}, headers.Replace(head[1:], line)...)
}

// without keeps the status line and drops every header named by name.
func without(head []string, name string) []string {
	if len(head) == 0 {
		return nil
	}

	return append([]string{head[0]}, headers.Without(head[1:], name)...)
}

func appended(head []string, lines ...string) []string {
	if len(head) == 0 {
		return nil
	}

	out := make([]string, 0, len(head)+len(lines))
	return append(append(out, head...), lines...)
}
