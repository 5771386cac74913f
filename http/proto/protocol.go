// Package proto names the protocol versions a status line may carry.
package proto

type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP10
	HTTP11
)

var tokens = [...]string{
	HTTP10: "HTTP/1.0",
	HTTP11: "HTTP/1.1",
}

// String returns the protocol token as it appears on the wire, or an empty string for
// Unknown.
func (p Protocol) String() string {
	if int(p) >= len(tokens) {
		return ""
	}

	return tokens[p]
}

// FromString recognizes a protocol token. Tokens are case-sensitive, anything else is
// Unknown.
func FromString(raw string) Protocol {
	for p, token := range tokens {
		if len(token) > 0 && token == raw {
			return Protocol(p)
		}
	}

	return Unknown
}
