package cookie

import (
	"strings"

	"github.com/indigo-web/facets/kv"
)

// Jar is a key-value storage for cookies. Key-value pairs consists of strings,
// not cookie.Cookie, as it would lead to space wasting and require a separate
// data structure. Lookups in a jar return the first occurrence of the name,
// so with repeated names the first one always wins.
type Jar = *kv.Storage

func NewJar() Jar {
	return kv.New()
}

// Parse parses cookies, received from a user-agent. These are basically key-value pairs,
// so the function isn't applicable for Set-Cookie values. Segments without an equal
// sign or with an empty name are skipped silently.
func Parse(jar Jar, data string) Jar {
	walk(data, func(name, value string) bool {
		jar.Add(name, value)
		return true
	})

	return jar
}

// Get looks up the first cookie with the name in a raw Cookie header value without
// building a jar.
func Get(data, name string) (value string, found bool) {
	walk(data, func(key, val string) bool {
		if key == name {
			value, found = val, true
			return false
		}

		return true
	})

	return value, found
}

func walk(data string, yield func(name, value string) bool) {
	for len(data) > 0 {
		var segment string
		segment, data, _ = strings.Cut(data, ";")

		name, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if len(name) == 0 {
			continue
		}

		// empty value is fine (probably, I have no idea if it's so)
		if !yield(name, strings.TrimSpace(value)) {
			return
		}
	}
}
