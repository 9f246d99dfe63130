package deque

import "github.com/juju/errors"

// Iterator 表示一个迭代器
//
// It walks the live chain from head to tail and cannot modify the deque.
type Iterator[Item any] struct {
	d       *Deque[Item]
	current *node[Item]
	mods    uint64
}

// Iterator 创建一个新的迭代器，从当前队首开始
func (d *Deque[Item]) Iterator() *Iterator[Item] {
	return &Iterator[Item]{d: d, current: d.first, mods: d.mods}
}

// HasNext 检查是否还有下一个元素
func (it *Iterator[Item]) HasNext() bool {
	return it.current != nil
}

// Next 返回下一个元素
func (it *Iterator[Item]) Next() (Item, error) {
	var zero Item
	if it.mods != it.d.mods {
		return zero, errors.Errorf("reading next item: %w", ErrConcurrentModification)
	}
	if it.current == nil {
		return zero, errors.Errorf("reading next item: %w", ErrExhaustedIterator)
	}
	item := it.current.item
	it.current = it.current.next
	return item, nil
}

// Remove always fails.
func (it *Iterator[Item]) Remove() error {
	return errors.Errorf("removing through a deque iterator: %w", ErrUnsupportedOperation)
}
