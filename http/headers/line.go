package headers

import (
	"errors"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

var (
	ErrMalformedHeader = errors.New("header line has no colon")
	ErrBadHeaderName   = errors.New("header name must be a non-empty token")
	ErrBadHeaderValue  = errors.New("header value contains forbidden characters")
)

// Line is a single validated header field. It is printed as Name: Value, the name
// case is kept as is.
type Line struct {
	Name, Value string
}

// New validates the pair and returns it as a Line.
func New(name, value string) (Line, error) {
	if !ValidName(name) {
		return Line{}, ErrBadHeaderName
	}

	if !ValidValue(value) {
		return Line{}, ErrBadHeaderValue
	}

	return Line{Name: name, Value: value}, nil
}

// Parse splits a raw Name: Value string on the first colon. Optional whitespace around
// the value is stripped, while the name must be a token without any surrounding spaces.
func Parse(raw string) (Line, error) {
	name, value, found := strings.Cut(raw, ":")
	if !found {
		return Line{}, ErrMalformedHeader
	}

	return New(name, strings.Trim(value, " \t"))
}

func (l Line) String() string {
	return l.Name + ": " + l.Value
}

// Is reports whether the line carries the name, ignoring case.
func (l Line) Is(name string) bool {
	return strcomp.EqualFold(l.Name, name)
}

// ValidName reports whether the name is an RFC 9110 token.
func ValidName(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i := 0; i < len(name); i++ {
		if !tchar[name[i]] {
			return false
		}
	}

	return true
}

// ValidValue rejects CR, LF, NUL and any other control character except HTAB.
func ValidValue(value string) bool {
	for i := 0; i < len(value); i++ {
		if c := value[i]; (c < 0x20 && c != '\t') || c == 0x7f {
			return false
		}
	}

	return true
}

var tchar = func() (table [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		table[c] = true
	}

	for c := 'A'; c <= 'Z'; c++ {
		table[c] = true
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = true
	}

	for _, c := range "!#$%&'*+-.^_`|~" {
		table[c] = true
	}

	return table
}()
