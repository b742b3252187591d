package deque

import (
	"artra/model"
)

type ListDeque struct {
	head *node
	tail *node

	size     int
	capacity int
}

type node struct {
	val  model.ExportEvent
	pre  *node
	next *node
}

// 工厂方法
func NewListDeque(capacity int) *ListDeque {
	if capacity < 1 {
		capacity = 1
	}
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.pre = head

	return &ListDeque{
		head:     head,
		tail:     tail,
		size:     0,
		capacity: capacity,
	}
}

func (ld *ListDeque) Size() int {
	return ld.size
}

func (ld *ListDeque) Get(i int) model.ExportEvent {
	if i < 0 || i >= ld.size {
		panic("index out of length")
	}
	iter := ld.head.next
	for n := 0; n < i; n++ {
		iter = iter.next
	}
	return iter.val
}

func (ld *ListDeque) Traverse(f func(i int, ev model.ExportEvent)) {
	i := 0
	for iter := ld.head.next; iter != ld.tail; iter = iter.next {
		f(i, iter.val)
		i++
	}
}

func (ld *ListDeque) AddLast(ev model.ExportEvent) {
	if ld.IsFull() {
		ld.RemoveFirst()
	}
	newNode := &node{
		val: ev,
	}
	tmp := ld.tail.pre
	ld.tail.pre = newNode
	newNode.next = ld.tail
	newNode.pre = tmp
	tmp.next = newNode
	ld.size++
}

func (ld *ListDeque) RemoveLast() {
	if ld.size > 0 {
		ld.tail.pre = ld.tail.pre.pre
		ld.tail.pre.next = ld.tail
		ld.size--
	}
}

func (ld *ListDeque) RemoveFirst() {
	if ld.size > 0 {
		ld.head.next = ld.head.next.next
		ld.head.next.pre = ld.head
		ld.size--
	}
}

func (ld *ListDeque) IsFull() bool {
	return ld.size == ld.capacity
}

func (ld *ListDeque) IsEmpty() bool {
	return ld.size == 0
}
