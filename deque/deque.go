package deque

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/juju/errors"
)

type node[Item any] struct {
	item Item
	next *node[Item] // toward the tail
	prev *node[Item] // toward the head
}

// Deque 表示一个双向队列
//
// The zero value is an empty deque ready to use. A Deque is not safe for
// concurrent use; callers sharing one across goroutines must guard every
// call with their own lock.
type Deque[Item any] struct {
	first *node[Item]
	last  *node[Item]
	size  int
	mods  uint64
}

// New 创建一个新的 Deque
func New[Item any]() *Deque[Item] {
	return &Deque[Item]{}
}

// IsEmpty reports whether the deque holds no items.
func (d *Deque[Item]) IsEmpty() bool {
	return d.size == 0
}

// Size 返回队列的长度
func (d *Deque[Item]) Size() int {
	return d.size
}

// AddFirst 在队列前端添加一个元素
func (d *Deque[Item]) AddFirst(item Item) error {
	if isNil(item) {
		return errors.Errorf("adding nil item: %w", ErrInvalidArgument)
	}
	oldFirst := d.first
	n := &node[Item]{item: item, next: oldFirst}
	d.first = n
	if oldFirst != nil {
		oldFirst.prev = n
	} else {
		d.last = n
	}
	d.size++
	d.mods++
	return nil
}

// AddLast 在队列后端添加一个元素
func (d *Deque[Item]) AddLast(item Item) error {
	if isNil(item) {
		return errors.Errorf("adding nil item: %w", ErrInvalidArgument)
	}
	oldLast := d.last
	n := &node[Item]{item: item, prev: oldLast}
	d.last = n
	if oldLast != nil {
		oldLast.next = n
	} else {
		d.first = n
	}
	d.size++
	d.mods++
	return nil
}

// RemoveFirst 从队列前端移除并返回一个元素
func (d *Deque[Item]) RemoveFirst() (Item, error) {
	if d.size == 0 {
		var zero Item
		return zero, errors.Errorf("removing first item: %w", ErrEmptyCollection)
	}
	old := d.first
	d.first = old.next
	d.size--
	if d.first != nil {
		d.first.prev = nil
	}
	if d.size <= 1 {
		d.last = d.first
	}
	d.mods++
	return detach(old), nil
}

// RemoveLast 从队列后端移除并返回一个元素
func (d *Deque[Item]) RemoveLast() (Item, error) {
	if d.size == 0 {
		var zero Item
		return zero, errors.Errorf("removing last item: %w", ErrEmptyCollection)
	}
	old := d.last
	d.last = old.prev
	d.size--
	if d.last != nil {
		d.last.next = nil
	}
	if d.size <= 1 {
		d.first = d.last
	}
	d.mods++
	return detach(old), nil
}

// PeekFirst 返回队列前端的元素但不移除
func (d *Deque[Item]) PeekFirst() (Item, error) {
	if d.size == 0 {
		var zero Item
		return zero, errors.Errorf("peeking first item: %w", ErrEmptyCollection)
	}
	return d.first.item, nil
}

// PeekLast 返回队列后端的元素但不移除
func (d *Deque[Item]) PeekLast() (Item, error) {
	if d.size == 0 {
		var zero Item
		return zero, errors.Errorf("peeking last item: %w", ErrEmptyCollection)
	}
	return d.last.item, nil
}

// Snapshot copies the items from head to tail. Unlike an Iterator, the
// returned slice is not affected by later mutation of the deque.
func (d *Deque[Item]) Snapshot() []Item {
	items := make([]Item, 0, d.size)
	for n := d.first; n != nil; n = n.next {
		items = append(items, n.item)
	}
	return items
}

func (d *Deque[Item]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := d.first; n != nil; n = n.next {
		if n != d.first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.item)
	}
	sb.WriteByte(']')
	return sb.String()
}

// detach clears the links of a node that has left the chain and returns
// its payload.
func detach[Item any](n *node[Item]) Item {
	item := n.item
	var zero Item
	n.item = zero
	n.next = nil
	n.prev = nil
	return item
}

// isNil reports whether v is a nil interface or a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
