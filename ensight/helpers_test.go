package ensight

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"artra/model"
)

// binaryReader walks an exported binary file in tests.
type binaryReader struct {
	t     *testing.T
	r     *bytes.Reader
	order binary.ByteOrder
}

func openBinary(t *testing.T, path string, order binary.ByteOrder) *binaryReader {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return &binaryReader{t: t, r: bytes.NewReader(b), order: order}
}

func (b *binaryReader) str() string {
	var fs FixedString
	_, err := b.r.Read(fs[:])
	require.NoError(b.t, err)
	return fs.String()
}

func (b *binaryReader) int32() int32 {
	var v int32
	require.NoError(b.t, binary.Read(b.r, b.order, &v))
	return v
}

func (b *binaryReader) floats(n int) []float32 {
	v := make([]float32, n)
	require.NoError(b.t, binary.Read(b.r, b.order, v))
	return v
}

func (b *binaryReader) remaining() int {
	return b.r.Len()
}

// testGrid is a 2x2x2 interior block with one ghost layer.
func testGrid() (*model.Space, *model.Partition) {
	s := model.NewSpace(2, 2, 2, 1)
	s.XMin, s.YMin, s.ZMin = 1, 2, 3
	s.Dx, s.Dy, s.Dz = 0.5, 0.25, 2
	return s, model.InteriorPartition(s)
}

// uniformField fills every node with the same conserved state.
func uniformField(s *model.Space, rho, mx, my, mz, e float64) []float64 {
	U := make([]float64, s.NodeCount()*s.DimU)
	for n := 0; n < s.NodeCount(); n++ {
		copy(U[n*s.DimU:], []float64{rho, mx, my, mz, e})
	}
	return U
}
