// Package rq is the minimal request surface the takes work with. Parsing requests off
// the wire is not its business: a request is either faked or adapted from net/http.
package rq

import (
	"bytes"
	"io"
	"net/http"
	"slices"

	"github.com/indigo-web/facets/http/cookie"
	"github.com/indigo-web/facets/http/headers"
)

// Request mirrors rs.Response: Head returns the request line followed by header lines,
// Body returns the raw body.
type Request interface {
	Head() []string
	Body() io.Reader
}

type request struct {
	head []string
	body []byte
}

func (r request) Head() []string {
	return slices.Clone(r.head)
}

func (r request) Body() io.Reader {
	return bytes.NewReader(r.body)
}

// Fake returns a request consisting only of the request line, e.g. GET / HTTP/1.1.
func Fake(method, uri string) Request {
	return request{head: []string{method + " " + uri + " HTTP/1.1"}}
}

// FakeWithBody is Fake carrying a body.
func FakeWithBody(method, uri string, body []byte) Request {
	return request{
		head: []string{method + " " + uri + " HTTP/1.1"},
		body: slices.Clone(body),
	}
}

type withHeader struct {
	head  []string
	inner Request
}

func (w withHeader) Head() []string {
	return slices.Clone(w.head)
}

func (w withHeader) Body() io.Reader {
	return w.inner.Body()
}

// WithHeader appends a header line to the request.
func WithHeader(inner Request, name, value string) (Request, error) {
	line, err := headers.New(name, value)
	if err != nil {
		return nil, err
	}

	return withHeader{head: append(inner.Head(), line.String()), inner: inner}, nil
}

type adapted struct {
	head []string
	body io.Reader
}

func (a adapted) Head() []string {
	return slices.Clone(a.head)
}

func (a adapted) Body() io.Reader {
	return a.body
}

// FromHTTP adapts a request, parsed by net/http. Header names are canonicalized by
// net/http, order between different names is not preserved, but values of a single name
// keep their order. The body is the request's one and can be read only once.
func FromHTTP(r *http.Request) Request {
	head := make([]string, 0, len(r.Header)+2)
	head = append(head, r.Method+" "+r.RequestURI+" "+r.Proto)
	if len(r.Host) > 0 {
		head = append(head, "Host: "+r.Host)
	}

	for name, values := range r.Header {
		for _, value := range values {
			head = append(head, name+": "+value)
		}
	}

	body := r.Body
	if body == nil {
		body = http.NoBody
	}

	return adapted{head: head, body: body}
}

// Line returns the request line.
func Line(r Request) string {
	head := r.Head()
	if len(head) == 0 {
		return ""
	}

	return head[0]
}

// Header returns values of every header named by name, in order.
func Header(r Request, name string) []string {
	head := r.Head()
	if len(head) == 0 {
		return nil
	}

	return headers.Values(head[1:], name)
}

// Cookies fills a jar from all the Cookie headers of the request.
func Cookies(r Request) cookie.Jar {
	jar := cookie.NewJar()
	for _, value := range Header(r, headers.Cookie) {
		cookie.Parse(jar, value)
	}

	return jar
}
