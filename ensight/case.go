package ensight

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"artra/model"
	"artra/util"
)

// fieldLine is one exported quantity of the case files.
type fieldLine struct {
	kind string
	name string
}

var fieldLines = []fieldLine{
	{"scalar", "rho"},
	{"scalar", "u"},
	{"scalar", "v"},
	{"scalar", "w"},
	{"scalar", "p"},
	{"scalar", "T"},
	{"scalar", "id"},
	{"vector", VectorName},
}

// stepPlaceholder stands in for the five step digits in the transient
// header's file name patterns.
const stepPlaceholder = "*****"

// timesPerLine is how many time values the header lists per line.
const timesPerLine = 5

// Session is the export history of a run. The transient header is always
// regenerated from it in full.
type Session struct {
	base  string
	times []float64
}

func NewSession(base string) *Session {
	return &Session{base: base}
}

// Base is the default file name stem shared by every file of the run.
func (s *Session) Base() string {
	return s.base
}

// TransientFile and GeometryFile name the run wide files.
func (s *Session) TransientFile() string {
	return s.base + ".case"
}

func (s *Session) GeometryFile() string {
	return s.base + ".geo"
}

// Steps is the number of exports recorded.
func (s *Session) Steps() int {
	return len(s.times)
}

// Times returns a copy of the recorded time values.
func (s *Session) Times() []float64 {
	return append([]float64(nil), s.times...)
}

// Reset forgets every recorded export.
func (s *Session) Reset() {
	s.times = s.times[:0]
}

// Record stores the time of export number order, so that Steps is always
// order+1 afterwards. Anything recorded at or after order is dropped first,
// so a resumed run overwrites the exports it repeats. Skipped orders are
// filled with t.
func (s *Session) Record(order int, t float64) {
	if order < 0 {
		order = 0
	}
	if order < len(s.times) {
		s.times = s.times[:order]
	}
	for len(s.times) < order {
		s.times = append(s.times, t)
	}
	s.times = append(s.times, t)
}

// WriteTransient regenerates the transient header at path.
func (s *Session) WriteTransient(path string) error {
	return writeText("write transient case", path, s.writeTransient)
}

func (s *Session) writeTransient(w io.Writer) {
	writeHeading(w, s.GeometryFile())
	fmt.Fprintf(w, "VARIABLE\n")
	for _, fl := range fieldLines {
		fmt.Fprintf(w, "%s per node:  1  %-4s %s%s.%s\n", fl.kind, fl.name, s.base, stepPlaceholder, fl.name)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "TIME\n")
	fmt.Fprintf(w, "time set:         1\n")
	fmt.Fprintf(w, "number of steps:          %d\n", s.Steps())
	fmt.Fprintf(w, "filename start number:    0\n")
	fmt.Fprintf(w, "filename increment:       1\n")
	fmt.Fprintf(w, "time values:  ")
	for n, t := range s.times {
		if n%timesPerLine == 0 {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "%.6g ", t)
	}
	fmt.Fprintf(w, "\n")
}

// LoadSession rebuilds the session of a previous run from its transient
// header at path.
func LoadSession(path, base string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.OpenError("load transient case", path, err)
	}
	defer f.Close()

	s := NewSession(base)
	steps := -1
	inTimes := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := util.CleanLine(sc.Text())
		switch {
		case strings.HasPrefix(line, "number of steps:"):
			steps, _ = strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "number of steps:")))
			continue
		case strings.HasPrefix(line, "time values:"):
			inTimes = true
			line = strings.TrimPrefix(line, "time values:")
		case strings.HasSuffix(line, ":") || strings.Contains(line, ": "):
			inTimes = false
		}
		if !inTimes {
			continue
		}
		for _, field := range strings.Fields(line) {
			t, err := strconv.ParseFloat(field, 64)
			if err != nil {
				inTimes = false
				break
			}
			s.times = append(s.times, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, model.IOError("load transient case", path, err)
	}
	if steps >= 0 && steps < len(s.times) {
		s.times = s.times[:steps]
	}
	return s, nil
}

// StepBase is the file name stem of export number order.
func StepBase(base string, order int) string {
	return fmt.Sprintf("%s%05d", base, order)
}

// WriteStepCase writes the case file of one export to path. stepBase is
// the stem of that export's variable files.
func (s *Session) WriteStepCase(path, stepBase string, t *model.Time) error {
	return writeText("write step case", path, func(w io.Writer) {
		writeHeading(w, s.GeometryFile())
		fmt.Fprintf(w, "VARIABLE\n")
		fmt.Fprintf(w, "constant per case:  Order %d\n", t.OutputCount)
		fmt.Fprintf(w, "constant per case:  Time  %.6g\n", t.CurrentTime)
		fmt.Fprintf(w, "constant per case:  Step  %d\n", t.StepCount)
		for _, fl := range fieldLines {
			fmt.Fprintf(w, "%s per node:    %-5s %s.%s\n", fl.kind, fl.name, stepBase, fl.name)
		}
		fmt.Fprintf(w, "\n")
	})
}

func writeHeading(w io.Writer, geometryFile string) {
	fmt.Fprintf(w, "FORMAT\n")
	fmt.Fprintf(w, "type: ensight gold\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "GEOMETRY\n")
	fmt.Fprintf(w, "model:  %s\n", geometryFile)
	fmt.Fprintf(w, "\n")
}

func writeText(op, path string, body func(w io.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return model.OpenError(op, path, err)
	}
	bw := bufio.NewWriter(f)
	body(bw)
	err = bw.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return model.IOError(op, path, err)
	}
	return nil
}
