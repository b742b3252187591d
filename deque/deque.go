// Package deque keeps a bounded, ordered history of export events.
package deque

import "artra/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素
	Get(i int) model.ExportEvent

	// 正向遍历
	Traverse(f func(i int, ev model.ExportEvent))

	// 在队列结尾增加一个元素, 满时丢弃头部元素
	AddLast(ev model.ExportEvent)

	// 在队列结尾删除一个元素
	RemoveLast()

	// 在队列头部删除一个元素
	RemoveFirst()

	IsFull() bool

	IsEmpty() bool
}
