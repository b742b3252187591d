package ensight

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artra/model"
)

func readText(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestTransientHeaderEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parasight.case")
	s := NewSession(model.DefaultBaseName)
	require.NoError(t, s.WriteTransient(path))

	want := `FORMAT
type: ensight gold

GEOMETRY
model:  parasight.geo

VARIABLE
scalar per node:  1  rho  parasight*****.rho
scalar per node:  1  u    parasight*****.u
scalar per node:  1  v    parasight*****.v
scalar per node:  1  w    parasight*****.w
scalar per node:  1  p    parasight*****.p
scalar per node:  1  T    parasight*****.T
scalar per node:  1  id   parasight*****.id
vector per node:  1  Vel  parasight*****.Vel

TIME
time set:         1
number of steps:          0
filename start number:    0
filename increment:       1
time values:  
`
	assert.Equal(t, want, readText(t, path))
}

func TestTransientHeaderAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parasight.case")
	s := NewSession(model.DefaultBaseName)
	require.NoError(t, s.WriteTransient(path))

	times := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	for k, tm := range times {
		s.Record(k, tm)
		require.NoError(t, s.WriteTransient(path))

		got := readText(t, path)
		assert.Contains(t, got, "number of steps:          "+strconv.Itoa(k+1)+"\n")
		loaded, err := LoadSession(path, model.DefaultBaseName)
		require.NoError(t, err)
		assert.Equal(t, times[:k+1], loaded.Times())
	}

	got := readText(t, path)
	assert.True(t, strings.HasSuffix(got, "time values:  \n0 0.1 0.2 0.3 0.4 \n0.5 0.6 \n"), got)
}

func TestSessionRecordOverwrites(t *testing.T) {
	s := NewSession("run")
	s.Record(0, 0)
	s.Record(1, 1)
	s.Record(2, 2)
	s.Record(1, 1.5)
	assert.Equal(t, []float64{0, 1.5}, s.Times())
	assert.Equal(t, 2, s.Steps())
	s.Reset()
	assert.Zero(t, s.Steps())
	assert.Equal(t, "run.case", s.TransientFile())
	assert.Equal(t, "run.geo", s.GeometryFile())
}

func TestSessionRecordFillsSkippedOrders(t *testing.T) {
	s := NewSession("run")
	s.Record(0, 0)
	s.Record(3, 0.3)
	assert.Equal(t, 4, s.Steps())
	assert.Equal(t, []float64{0, 0.3, 0.3, 0.3}, s.Times())

	fresh := NewSession("run")
	fresh.Record(2, 1)
	assert.Equal(t, 3, fresh.Steps())
}

func TestLoadSessionMissing(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "parasight.case"), model.DefaultBaseName)
	assert.True(t, model.IsKind(err, model.KindOpen))
}

func TestLoadSessionTruncatesToStepCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parasight.case")
	content := "TIME\ntime set: 1\nnumber of steps:          2          \n" +
		"filename start number: 0\nfilename increment: 1\ntime values:  \n0 0.5 1 "
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	s, err := LoadSession(path, model.DefaultBaseName)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, s.Times())
}

func TestWriteStepCase(t *testing.T) {
	dir := t.TempDir()
	s := NewSession(model.DefaultBaseName)
	base := StepBase(s.Base(), 12)
	assert.Equal(t, "parasight00012", base)

	path := filepath.Join(dir, base+".case")
	require.NoError(t, s.WriteStepCase(path, base, &model.Time{StepCount: 340, OutputCount: 12, CurrentTime: 0.123456789}))

	want := `FORMAT
type: ensight gold

GEOMETRY
model:  parasight.geo

VARIABLE
constant per case:  Order 12
constant per case:  Time  0.123457
constant per case:  Step  340
scalar per node:    rho   parasight00012.rho
scalar per node:    u     parasight00012.u
scalar per node:    v     parasight00012.v
scalar per node:    w     parasight00012.w
scalar per node:    p     parasight00012.p
scalar per node:    T     parasight00012.T
scalar per node:    id    parasight00012.id
vector per node:    Vel   parasight00012.Vel

`
	assert.Equal(t, want, readText(t, path))
}

func TestWriteStepCaseOpenFailure(t *testing.T) {
	s := NewSession(model.DefaultBaseName)
	err := s.WriteStepCase(filepath.Join(t.TempDir(), "no", "x.case"), "x", &model.Time{})
	assert.True(t, model.IsKind(err, model.KindOpen))
}
