package ensight

import (
	"encoding/binary"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"artra/model"
	"artra/particle"
)

// Notifier is told about every completed export.
type Notifier interface {
	Notify(ev model.ExportEvent)
}

// Exporter writes the computed field and the sphere state of one export
// event: per-step case file, updated transient header, variable files and
// the particle checkpoint. The geometry file and a fresh transient header
// are written on step 0.
type Exporter struct {
	Dir      string
	Order    binary.ByteOrder
	Notifier Notifier

	session *Session
}

func NewExporter(dir, base string, order binary.ByteOrder) *Exporter {
	if base == "" {
		base = model.DefaultBaseName
	}
	return &Exporter{
		Dir:     dir,
		Order:   order,
		session: NewSession(base),
	}
}

func (e *Exporter) Session() *Session {
	return e.session
}

// Resume picks up the export history of a previous run from the transient
// header in Dir. Export calls it on its own when a non-zero step finds no
// history in memory.
func (e *Exporter) Resume() error {
	s, err := LoadSession(e.path(e.session.TransientFile()), e.session.Base())
	if err != nil {
		return err
	}
	e.session = s
	log.WithField("steps", s.Steps()).Info("export session resumed")
	return nil
}

func (e *Exporter) path(name string) string {
	return filepath.Join(e.Dir, name)
}

// Export writes one snapshot. U holds space.DimU conserved values per node.
func (e *Exporter) Export(U []float64, space *model.Space, particles *particle.Store,
	t *model.Time, part *model.Partition, flow *model.Flow) (model.ExportEvent, error) {
	log.WithFields(log.Fields{
		"step":     t.StepCount,
		"output":   t.OutputCount,
		"sim_time": t.CurrentTime,
	}).Info("writing field data to file...")

	if _, err := part.Single(); err != nil {
		return model.ExportEvent{}, err
	}

	// a later step needs the history already on disk
	if t.StepCount != 0 && e.session.Steps() == 0 {
		if err := e.Resume(); err != nil {
			return model.ExportEvent{}, err
		}
	}

	if t.StepCount == 0 {
		if err := e.InitializeTransient(); err != nil {
			return model.ExportEvent{}, err
		}
		if err := WriteGeometry(e.path(e.session.GeometryFile()), space, part, e.Order); err != nil {
			return model.ExportEvent{}, err
		}
	}

	base := StepBase(e.session.Base(), t.OutputCount)
	caseFile := base + ".case"
	if err := e.session.WriteStepCase(e.path(caseFile), base, t); err != nil {
		return model.ExportEvent{}, err
	}
	if err := e.AppendTime(t); err != nil {
		return model.ExportEvent{}, err
	}
	if err := WriteVariables(e.Dir, base, U, space, part, flow, e.Order); err != nil {
		return model.ExportEvent{}, err
	}
	if err := particle.WriteCheckpointFile(e.path(base+".particle"), particles); err != nil {
		return model.ExportEvent{}, err
	}

	ev := model.ExportEvent{
		Order:    t.OutputCount,
		Step:     t.StepCount,
		Time:     t.CurrentTime,
		CaseFile: caseFile,
		Spheres:  particles.TotalN,
	}
	if e.Notifier != nil {
		e.Notifier.Notify(ev)
	}
	return ev, nil
}

// InitializeTransient starts a new history and writes an empty transient
// header.
func (e *Exporter) InitializeTransient() error {
	e.session.Reset()
	return e.session.WriteTransient(e.path(e.session.TransientFile()))
}

// AppendTime records the export time and regenerates the transient header.
func (e *Exporter) AppendTime(t *model.Time) error {
	e.session.Record(t.OutputCount, t.CurrentTime)
	return e.session.WriteTransient(e.path(e.session.TransientFile()))
}
