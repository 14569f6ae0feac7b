package circularqueue

import "github.com/timzifer/circular_queue/internal/ring"

// Iterator is a one-pass cursor over a queue's elements in FIFO order.
//
// An iterator covers exactly the elements present when it was created. Any
// Push, Pop, Append or Clear on the queue afterwards invalidates it, and Next
// reports ErrModified from then on.
type Iterator[T any] struct {
	q          *Queue[T]
	pos        *ring.Node[T]
	remaining  int
	generation uint64
}

// Iterator returns a new iterator positioned before the oldest element.
// Iterators obtained from separate calls are independent.
func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		q:          q,
		pos:        q.ring.Head(),
		remaining:  q.ring.Len(),
		generation: q.generation,
	}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.remaining > 0 && it.generation == it.q.generation
}

// Next returns the next element. It fails with ErrExhausted past the last
// element and with ErrModified once the queue has changed.
func (it *Iterator[T]) Next() (zero T, _ error) {
	if it.generation != it.q.generation {
		return zero, ErrModified
	}
	if it.remaining == 0 {
		return zero, ErrExhausted
	}

	n := it.pos
	it.pos = n.Next()
	it.remaining--
	return n.Value, nil
}
