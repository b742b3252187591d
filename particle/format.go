package particle

import (
	"strconv"
	"strings"
)

// Format is the per-line layout of a sphere record file.
type Format struct {
	Name   string
	Fields int
}

var (
	// GeometryFormat is the user supplied geometry file: every field.
	GeometryFormat = Format{Name: "geometry", Fields: 11}
	// CheckpointFormat drops the three force components, which the solver
	// recomputes on the first step after a restart.
	CheckpointFormat = Format{Name: "checkpoint", Fields: 8}
)

// parseRecord fills dst with up to f.Fields comma separated values of line.
// Parsing stops at the first malformed value, leaving the rest untouched.
func (f Format) parseRecord(line string, dst []float64) {
	parts := strings.Split(line, ",")
	for n := 0; n < f.Fields && n < len(parts) && n < len(dst); n++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[n]), 64)
		if err != nil {
			return
		}
		dst[n] = v
	}
}

// formatRecord renders the first f.Fields values at six significant digits.
func (f Format) formatRecord(src []float64) string {
	var b strings.Builder
	for n := 0; n < f.Fields; n++ {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(src[n], 'g', 6, 64))
	}
	return b.String()
}
