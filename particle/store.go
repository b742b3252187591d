package particle

import "artra/model"

// Field offsets inside one sphere entry.
const (
	X = iota
	Y
	Z
	Radius
	Density
	U
	V
	W
	Fx
	Fy
	Fz
)

// MaxSpheres bounds the sphere count a file may declare.
const MaxSpheres = 1 << 24

// Store owns the packed sphere state, sphere-major: all EntryN fields of
// sphere i precede those of sphere i+1.
type Store struct {
	TotalN int
	EntryN int
	Data   []float64

	// Restored is the number of leading fields per sphere that came from
	// the last file read. Fields past it are zero.
	Restored int
}

func NewStore() *Store {
	return &Store{EntryN: model.EntryN}
}

// Allocate sizes Data for n spheres. It is called once per load.
func (s *Store) Allocate(n int) {
	s.TotalN = n
	s.EntryN = model.EntryN
	s.Data = make([]float64, n*model.EntryN)
}

// Sphere returns the storage slot of sphere i.
func (s *Store) Sphere(i int) []float64 {
	return s.Data[i*s.EntryN : (i+1)*s.EntryN]
}
