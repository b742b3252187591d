package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artra/model"
)

func TestListDeque_AddLast(t *testing.T) {
	var d Deque = NewListDeque(3)
	assert.True(t, d.IsEmpty())
	for i := 0; i < 5; i++ {
		d.AddLast(model.ExportEvent{Order: i})
	}
	assert.True(t, d.IsFull())
	assert.Equal(t, 3, d.Size())

	var orders []int
	d.Traverse(func(i int, ev model.ExportEvent) {
		orders = append(orders, ev.Order)
	})
	assert.Equal(t, []int{2, 3, 4}, orders)
	assert.Equal(t, 3, d.Get(1).Order)
}

func TestListDeque_Remove(t *testing.T) {
	d := NewListDeque(4)
	for i := 0; i < 3; i++ {
		d.AddLast(model.ExportEvent{Order: i})
	}
	d.RemoveFirst()
	d.RemoveLast()
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 1, d.Get(0).Order)
	d.RemoveLast()
	d.RemoveLast()
	assert.True(t, d.IsEmpty())
	assert.Panics(t, func() { d.Get(0) })
}

func TestListDeque_MinimumCapacity(t *testing.T) {
	d := NewListDeque(0)
	d.AddLast(model.ExportEvent{Order: 1})
	d.AddLast(model.ExportEvent{Order: 2})
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 2, d.Get(0).Order)
}

func BenchmarkListDeque_AddLast(b *testing.B) {
	d := NewListDeque(64)
	for i := 0; i < b.N; i++ {
		d.AddLast(model.ExportEvent{Order: i})
	}
}
