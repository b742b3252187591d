package particle

import (
	"bufio"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"artra/model"
)

// WriteCheckpoint writes s in CheckpointFormat: a "N: <count>" header and
// one line per sphere.
func WriteCheckpoint(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "N: %d\n", s.TotalN)
	for i := 0; i < s.TotalN; i++ {
		bw.WriteString(CheckpointFormat.formatRecord(s.Sphere(i)))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteCheckpointFile writes the checkpoint of s to path.
func WriteCheckpointFile(path string, s *Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return model.OpenError("write particle file", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = model.IOError("write particle file", path, cerr)
		}
	}()

	if err = WriteCheckpoint(f, s); err != nil {
		return model.IOError("write particle file", path, err)
	}
	log.WithFields(log.Fields{
		"file":    path,
		"spheres": s.TotalN,
	}).Debug("particle file written")
	return nil
}
