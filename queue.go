package circularqueue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/timzifer/circular_queue/internal/ring"
)

// Queue is an unbounded FIFO queue backed by a circular singly-linked list.
//
// The queue keeps a single reference to its newest element; that element's
// successor is the oldest one. Len, Peek, Pop, Push and Append all run in
// constant time.
//
// A Queue is not safe for concurrent use. Callers sharing a queue between
// goroutines must synchronise access themselves.
type Queue[T any] struct {
	ring       ring.Ring[T]
	generation uint64
	metrics    *Metrics
}

// New creates an empty queue and applies the given options.
func New[T any](opts ...Option[T]) *Queue[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[T]{metrics: o.metrics}
	for _, v := range o.initial {
		q.ring.PushBack(v)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.ring.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.ring.Len() == 0
}

// Push adds value at the tail of the queue. The queue is unbounded, so Push
// always reports true.
func (q *Queue[T]) Push(value T) bool {
	q.ring.PushBack(value)
	q.generation++
	q.metrics.RecordPush()
	return true
}

// PushAll adds values at the tail in order. It reports whether the queue changed.
func (q *Queue[T]) PushAll(values ...T) bool {
	for _, v := range values {
		q.Push(v)
	}
	return len(values) > 0
}

// Peek returns the oldest element without removing it. The boolean is false
// if the queue is empty.
func (q *Queue[T]) Peek() (zero T, _ bool) {
	head := q.ring.Head()
	if head == nil {
		return zero, false
	}
	return head.Value, true
}

// Pop removes and returns the oldest element. The boolean is false if the
// queue is empty, in which case the queue is left untouched.
func (q *Queue[T]) Pop() (T, bool) {
	value, ok := q.ring.PopFront()
	q.metrics.RecordPop(ok)
	if ok {
		q.generation++
	}
	return value, ok
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	if q.ring.Len() == 0 {
		return
	}
	q.ring.Reset()
	q.generation++
}

// Slice returns a copy of the elements in FIFO order, or nil if the queue is empty.
func (q *Queue[T]) Slice() []T {
	if q.ring.Len() == 0 {
		return nil
	}

	result := make([]T, 0, q.ring.Len())
	n := q.ring.Head()
	for i := 0; i < q.ring.Len(); i++ {
		result = append(result, n.Value)
		n = n.Next()
	}
	return result
}

// All returns a sequence over the elements in FIFO order. Each call starts a
// fresh traversal. The sequence stops early if the queue is modified while
// it is being ranged over.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := q.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Drain returns a sequence that pops elements while it is ranged over.
// Breaking out of the loop leaves the remaining elements in the queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// String formats the queue like a slice, oldest element first.
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	n := q.ring.Head()
	for i := 0; i < q.ring.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.Value)
		n = n.Next()
	}
	sb.WriteByte(']')
	return sb.String()
}
