package ensight

import (
	"encoding/binary"
	"path/filepath"

	"artra/model"
)

// ScalarNames lists the per-node scalar files in write order. Each is
// stored as <base>.<name>.
var ScalarNames = [...]string{"rho", "u", "v", "w", "p", "T", "id"}

// VectorName is the suffix of the velocity vector file.
const VectorName = "Vel"

// nodeScalar returns scalar dim of the node whose conserved record starts
// at U[idx]. node is the plain linear node index. Zero density is not
// guarded against.
func nodeScalar(dim int, U []float64, idx, node int, space *model.Space, flow *model.Flow) float64 {
	switch dim {
	case 0:
		return U[idx]
	case 1, 2, 3:
		return U[idx+dim] / U[idx]
	case 4:
		return (flow.Gamma - 1.0) * internalEnergy(U, idx)
	case 5:
		return internalEnergy(U, idx) / (U[idx] * flow.Cv)
	case 6:
		return float64(space.NodeFlag[node])
	}
	return 0
}

// internalEnergy is rho*e: total energy minus kinetic energy.
func internalEnergy(U []float64, idx int) float64 {
	return U[idx+4] - 0.5*(U[idx+1]*U[idx+1]+U[idx+2]*U[idx+2]+U[idx+3]*U[idx+3])/U[idx]
}

// WriteVariables writes the seven scalar files and the velocity vector file
// of one export. Values follow the traversal order of the geometry file.
func WriteVariables(dir, base string, U []float64, space *model.Space, part *model.Partition, flow *model.Flow, order binary.ByteOrder) error {
	win, err := part.Single()
	if err != nil {
		return err
	}
	buf := make([]float32, 0, win.Nodes())
	collect := func(dim int) []float32 {
		buf = buf[:0]
		win.Traverse(func(k, j, i int) {
			node := model.IndexMath(k, j, i, space)
			idx := node * space.DimU
			buf = append(buf, float32(nodeScalar(dim, U, idx, node, space, flow)))
		})
		return buf
	}

	for dim, name := range ScalarNames {
		if err := writeVariable(filepath.Join(dir, base+"."+name), "scalar variable", order, func(b *binaryFile) {
			b.floats(collect(dim))
		}); err != nil {
			return err
		}
	}

	// component-major: all u, then all v, then all w
	return writeVariable(filepath.Join(dir, base+"."+VectorName), "vector variable", order, func(b *binaryFile) {
		for dim := 1; dim < 4; dim++ {
			b.floats(collect(dim))
		}
	})
}

func writeVariable(path, description string, order binary.ByteOrder, body func(b *binaryFile)) error {
	const op = "write variable"
	b, err := createBinary(op, path, order)
	if err != nil {
		return err
	}
	b.str(description)
	b.str("part")
	b.int32(1)
	b.str("block")
	body(b)
	return b.close(op)
}
