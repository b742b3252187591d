package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMath(t *testing.T) {
	s := NewSpace(2, 3, 4, 1)
	assert.Equal(t, 4, s.IMax)
	assert.Equal(t, 5, s.JMax)
	assert.Equal(t, 6, s.KMax)
	assert.Equal(t, 0, IndexMath(0, 0, 0, s))
	assert.Equal(t, 1, IndexMath(0, 0, 1, s))
	assert.Equal(t, 4, IndexMath(0, 1, 0, s))
	assert.Equal(t, 20, IndexMath(1, 0, 0, s))
	assert.Equal(t, s.NodeCount()-1, IndexMath(5, 4, 3, s))
}

func TestWindowTraverse(t *testing.T) {
	w := Window{ISub: 1, ISup: 3, JSub: 1, JSup: 3, KSub: 1, KSup: 3}
	var visited [][3]int
	w.Traverse(func(k, j, i int) {
		visited = append(visited, [3]int{k, j, i})
	})
	require.Len(t, visited, w.Nodes())
	assert.Equal(t, [3]int{1, 1, 1}, visited[0])
	assert.Equal(t, [3]int{1, 1, 2}, visited[1])
	assert.Equal(t, [3]int{1, 2, 1}, visited[2])
	assert.Equal(t, [3]int{2, 1, 1}, visited[4])
	assert.Equal(t, [3]int{2, 2, 2}, visited[7])
}

func TestPartitionSingle(t *testing.T) {
	s := NewSpace(2, 2, 2, 2)
	w, err := InteriorPartition(s).Single()
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 2, 2}, w.NodeCounts())

	_, err = (&Partition{}).Single()
	assert.True(t, IsKind(err, KindStructure))

	_, err = (&Partition{Parts: []Window{w, w}}).Single()
	assert.True(t, IsKind(err, KindStructure))
	assert.Contains(t, err.Error(), "got 2")
}

func TestErrorKinds(t *testing.T) {
	err := OpenError("load geometry", "artracfd.geo", assert.AnError)
	assert.True(t, IsKind(err, KindOpen))
	assert.False(t, IsKind(err, KindIO))
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Equal(t, "load geometry artracfd.geo: open failure: "+assert.AnError.Error(), err.Error())
	assert.False(t, IsKind(assert.AnError, KindOpen))
}
