package particle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"artra/model"
	"artra/util"
)

const (
	countSection = "sphere count begin"
	bodySection  = "sphere begin"
)

// Loader reads sphere data either from the user geometry file or from the
// checkpoint left by a previous run.
type Loader struct {
	GeometryFile string
	RestartFile  string

	// RestartFormat is the record layout expected in RestartFile.
	RestartFormat Format
}

func NewLoader(geometryFile, restartFile string) *Loader {
	return &Loader{
		GeometryFile:  geometryFile,
		RestartFile:   restartFile,
		RestartFormat: CheckpointFormat,
	}
}

// Load fills s from the geometry file, or from the restart checkpoint when
// restart is set.
func (l *Loader) Load(restart bool, s *Store) error {
	if restart {
		return l.loadRestart(s)
	}
	return l.loadGeometry(s)
}

func (l *Loader) loadGeometry(s *Store) error {
	log.WithField("file", l.GeometryFile).Info("loading geometry data ...")
	f, err := os.Open(l.GeometryFile)
	if err != nil {
		return model.OpenError("load geometry", l.GeometryFile, err)
	}
	defer f.Close()

	if err := readGeometry(f, l.GeometryFile, s); err != nil {
		return err
	}
	log.WithField("spheres", s.TotalN).Info("geometry data loaded")
	return nil
}

func (l *Loader) loadRestart(s *Store) error {
	log.WithField("file", l.RestartFile).Info("restoring geometry data ...")
	f, err := os.Open(l.RestartFile)
	if err != nil {
		return model.OpenError("load restart", l.RestartFile, err)
	}
	defer f.Close()

	if err := readCheckpoint(f, l.RestartFile, l.RestartFormat, s); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"spheres": s.TotalN,
		"fields":  s.Restored,
	}).Info("geometry data restored")
	return nil
}

// ReadGeometry parses a geometry file:
//
//	sphere count begin
//	<N>
//	sphere begin
//	<N lines of x, y, z, r, density, u, v, w, fx, fy, fz>
//
// Both sections must be present exactly once, in either order.
func ReadGeometry(r io.Reader, s *Store) error {
	return readGeometry(r, "", s)
}

func readGeometry(r io.Reader, path string, s *Store) error {
	sc := newScanner(r)
	var (
		counts, bodies int
		inBody         bool
		n              int
		body           []string
	)
	for sc.Scan() {
		line := util.CleanLine(sc.Text())
		switch line {
		case countSection:
			counts++
			inBody = false
			if sc.Scan() {
				n = parseCount(util.CleanLine(sc.Text()))
			}
			continue
		case bodySection:
			bodies++
			inBody = true
			body = body[:0]
			continue
		}
		if inBody && line != "" {
			body = append(body, line)
		}
	}
	if err := sc.Err(); err != nil {
		return model.IOError("read geometry", path, err)
	}
	if counts != 1 || bodies != 1 {
		return model.StructureError("read geometry", path,
			"missing or repeated necessary information section")
	}
	if err := checkCount("read geometry", path, n); err != nil {
		return err
	}

	s.TotalN = n
	s.EntryN = model.EntryN
	readRecords(body, GeometryFormat, s)
	return nil
}

// ReadCheckpoint parses a checkpoint written by WriteCheckpoint.
func ReadCheckpoint(r io.Reader, s *Store) error {
	return readCheckpoint(r, "", CheckpointFormat, s)
}

func readCheckpoint(r io.Reader, path string, f Format, s *Store) error {
	sc := newScanner(r)
	n := 0
	if sc.Scan() {
		header := util.CleanLine(sc.Text())
		if strings.HasPrefix(header, "N:") {
			n = parseCount(strings.TrimPrefix(header, "N:"))
		}
	}
	if err := checkCount("read restart", path, n); err != nil {
		return err
	}
	var body []string
	for len(body) < n && sc.Scan() {
		if line := util.CleanLine(sc.Text()); line != "" {
			body = append(body, line)
		}
	}
	if err := sc.Err(); err != nil {
		return model.IOError("read restart", path, err)
	}

	s.TotalN = n
	s.EntryN = model.EntryN
	readRecords(body, f, s)
	return nil
}

// readRecords allocates s for s.TotalN spheres and parses one line per
// sphere. Lines that are missing or short leave zeros behind.
func readRecords(lines []string, f Format, s *Store) {
	if s.TotalN == 0 {
		s.Data = nil
		s.Restored = 0
		return
	}
	s.Allocate(s.TotalN)
	for i := 0; i < s.TotalN && i < len(lines); i++ {
		f.parseRecord(lines[i], s.Sphere(i))
	}
	s.Restored = f.Fields
}

// parseCount reads the leading integer of line. Anything unparsable, or
// negative, counts as no spheres.
func parseCount(line string) int {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func checkCount(op, path string, n int) error {
	if n > MaxSpheres {
		return model.StructureError(op, path,
			fmt.Sprintf("sphere count %d exceeds %d", n, MaxSpheres))
	}
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return sc
}
