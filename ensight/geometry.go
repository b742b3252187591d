package ensight

import (
	"encoding/binary"

	"artra/model"
)

// WriteGeometry writes the binary geometry file of the structured part:
// description records, the part header, the i/j/k node counts and then all
// x, all y and all z coordinates in window traversal order.
func WriteGeometry(path string, space *model.Space, part *model.Partition, order binary.ByteOrder) error {
	const op = "write geometry"
	win, err := part.Single()
	if err != nil {
		return err
	}
	b, err := createBinary(op, path, order)
	if err != nil {
		return err
	}

	b.str("C Binary")
	b.str("Parasight Geometry File")
	b.str("Written by ArtraCFD")
	b.str("node id off")
	b.str("element id off")
	b.str("part")
	b.int32(1)
	b.str("entire domain")
	b.str("block")
	counts := win.NodeCounts()
	b.int32(counts[0])
	b.int32(counts[1])
	b.int32(counts[2])

	buf := make([]float32, 0, win.Nodes())
	for axis := 0; axis < 3; axis++ {
		buf = buf[:0]
		win.Traverse(func(k, j, i int) {
			buf = append(buf, float32(coordinate(space, axis, k, j, i)))
		})
		b.floats(buf)
	}
	return b.close(op)
}

// coordinate is the physical position of node (k, j, i) along axis.
// Ghost layers are shifted out so that the first interior node sits at
// the axis minimum.
func coordinate(space *model.Space, axis, k, j, i int) float64 {
	switch axis {
	case 0:
		return space.XMin + float64(i-space.Ng)*space.Dx
	case 1:
		return space.YMin + float64(j-space.Ng)*space.Dy
	default:
		return space.ZMin + float64(k-space.Ng)*space.Dz
	}
}
