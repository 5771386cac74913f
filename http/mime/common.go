package mime

import "strings"

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	YAML           MIME = "application/yaml"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	ZIP            MIME = "application/zip"
	GZIP           MIME = "application/gzip"
	AVIF           MIME = "image/avif"
	CSS            MIME = "text/css"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
	JS             MIME = "text/javascript"
	WASM           MIME = "application/wasm"
)

// Complies returns whether two MIMEs are compatible. Empty MIME is
// considered compatible with any other MIME
func Complies(mime MIME, with string) bool {
	// get rid of parameters if any
	with, _, _ = strings.Cut(with, ";")
	with = strings.TrimSpace(with)
	return len(with) == 0 || strings.EqualFold(with, mime)
}

// Valid reports whether the value looks like type/subtype and can be safely put into
// a header line.
func Valid(mime MIME) bool {
	typ, subtype, found := strings.Cut(mime, "/")
	if !found || len(typ) == 0 || len(subtype) == 0 {
		return false
	}

	return !strings.ContainsAny(mime, "\r\n;, \t")
}
