package util

import "strings"

// CleanLine strips a '#' comment and surrounding whitespace from a line and
// collapses inner runs of whitespace to a single space.
func CleanLine(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Join(strings.Fields(line), " ")
}
