package deque

import "github.com/juju/errors"

const (
	// ErrInvalidArgument is returned by AddFirst and AddLast when the item is
	// a nil value.
	ErrInvalidArgument = errors.ConstError("invalid argument")

	// ErrEmptyCollection is returned when removing or peeking on an empty deque.
	ErrEmptyCollection = errors.ConstError("deque is empty")

	// ErrExhaustedIterator is returned by Iterator.Next after the last item.
	ErrExhaustedIterator = errors.ConstError("no more items to return")

	// ErrUnsupportedOperation is returned when trying to modify the deque
	// through an iterator.
	ErrUnsupportedOperation = errors.ConstError("unsupported operation")

	// ErrConcurrentModification is returned by Iterator.Next when the deque
	// changed after the iterator was created.
	ErrConcurrentModification = errors.ConstError("deque modified during iteration")
)
