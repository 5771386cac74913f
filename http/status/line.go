package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/facets/http/proto"
)

// Line is the first line of a response, e.g. HTTP/1.1 200 OK.
type Line struct {
	Protocol proto.Protocol
	Code     Code
	Reason   Status
}

// NewLine builds a status line. The reason phrase is looked up unless passed explicitly,
// only the first one is taken into account. Unknown protocol falls back to HTTP/1.1.
func NewLine(protocol proto.Protocol, code Code, reason ...Status) (Line, error) {
	if !code.Valid() {
		return Line{}, fmt.Errorf("%w: got %d", ErrBadStatusCode, code)
	}

	var text Status
	if len(reason) > 0 {
		text = reason[0]
	} else {
		text = Text(code)
	}

	if len(text) == 0 {
		return Line{}, fmt.Errorf("%w: %d", ErrUnknownStatusCode, code)
	}

	if strings.ContainsAny(string(text), "\r\n") {
		return Line{}, ErrMalformedStatusLine
	}

	if protocol == proto.Unknown {
		protocol = proto.HTTP11
	}

	return Line{
		Protocol: protocol,
		Code:     code,
		Reason:   text,
	}, nil
}

// ParseLine parses a status line previously produced by Line.String or received
// from a peer. The reason phrase may be empty.
func ParseLine(line string) (Line, error) {
	protocol, rest, found := strings.Cut(line, " ")
	if !found {
		return Line{}, ErrMalformedStatusLine
	}

	p := proto.FromString(protocol)
	if p == proto.Unknown {
		return Line{}, ErrMalformedStatusLine
	}

	rawCode, reason, _ := strings.Cut(rest, " ")
	if len(rawCode) != 3 {
		return Line{}, ErrMalformedStatusLine
	}

	code, err := strconv.ParseUint(rawCode, 10, 16)
	if err != nil || !Code(code).Valid() {
		return Line{}, ErrMalformedStatusLine
	}

	return Line{
		Protocol: p,
		Code:     Code(code),
		Reason:   Status(reason),
	}, nil
}

func (l Line) String() string {
	protocol := l.Protocol
	if protocol == proto.Unknown {
		protocol = proto.HTTP11
	}

	return protocol.String() + " " + strconv.Itoa(int(l.Code)) + " " + string(l.Reason)
}
