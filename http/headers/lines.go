package headers

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// Named reports whether the raw header line has the name. Comparison is case-insensitive
// and doesn't allocate.
func Named(raw, name string) bool {
	return len(raw) > len(name) && raw[len(name)] == ':' && strcomp.EqualFold(raw[:len(name)], name)
}

// Without returns a copy of lines with all the lines named by name removed. The passed
// slice is never modified.
func Without(lines []string, name string) []string {
	return Filter(lines, func(line string) bool {
		return Named(line, name)
	})
}

// Filter returns a copy of lines except the ones drop reports true for. The result always
// has a spare slot, as it's usually followed by an append.
func Filter(lines []string, drop func(line string) bool) []string {
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if !drop(line) {
			out = append(out, line)
		}
	}

	return out
}

// Replace drops every line carrying the line's name and appends the line to the end.
// This is the only way decorators override a header, so no duplicates of the name are
// left behind.
func Replace(lines []string, line Line) []string {
	return append(Without(lines, line.Name), line.String())
}

// Find returns the value of the first line named by name.
func Find(lines []string, name string) (value string, found bool) {
	for _, line := range lines {
		if Named(line, name) {
			return strings.Trim(line[len(name)+1:], " \t"), true
		}
	}

	return "", false
}

// Values returns values of all the lines named by name, in order. Returns nil if there
// are none.
func Values(lines []string, name string) (values []string) {
	for _, line := range lines {
		if Named(line, name) {
			values = append(values, strings.Trim(line[len(name)+1:], " \t"))
		}
	}

	return values
}
