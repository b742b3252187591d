package model

// EntryN is the number of fields per sphere: x, y, z, r, density, u, v, w,
// fx, fy, fz. DimU is the number of conserved variables per node: rho,
// rho_u, rho_v, rho_w, rho_eT.

const (
	EntryN = 11
	DimU   = 5

	DefaultBaseName     = "parasight"
	DefaultGeometryFile = "artracfd.geo"
	DefaultRestartFile  = "restart.particle"
)

// Space describes the structured grid the conserved field lives on.
// IMax, JMax and KMax count nodes including the ghost layers.
type Space struct {
	IMax int
	JMax int
	KMax int
	Ng   int // ghost layers

	XMin float64
	YMin float64
	ZMin float64
	Dx   float64
	Dy   float64
	Dz   float64

	DimU     int
	NodeFlag []int
}

// NewSpace builds a Space for nx*ny*nz interior nodes padded by ng ghost
// layers on every side.
func NewSpace(nx, ny, nz, ng int) *Space {
	s := &Space{
		IMax: nx + 2*ng,
		JMax: ny + 2*ng,
		KMax: nz + 2*ng,
		Ng:   ng,
		DimU: DimU,
	}
	s.NodeFlag = make([]int, s.IMax*s.JMax*s.KMax)
	return s
}

// NodeCount is the total number of nodes, ghosts included.
func (s *Space) NodeCount() int {
	return s.IMax * s.JMax * s.KMax
}

// IndexMath maps (k, j, i) to the linear node offset.
func IndexMath(k, j, i int, space *Space) int {
	return (k*space.JMax+j)*space.IMax + i
}

// Flow holds the thermodynamic parameters used for derived quantities.
type Flow struct {
	Gamma float64
	Cv    float64 // specific heat at constant volume
}

// Time is the solver's clock at an export event.
type Time struct {
	Restart     bool
	StepCount   int
	OutputCount int
	CurrentTime float64
}
