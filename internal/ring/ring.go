package ring

// Node is a single ring element.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the successor of n.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Ring is a circular singly-linked list. The zero value is an empty ring.
type Ring[T any] struct {
	last *Node[T]
	len  int
}

// Len returns the number of live nodes.
func (r *Ring[T]) Len() int {
	return r.len
}

// Head returns the oldest node or nil if the ring is empty.
func (r *Ring[T]) Head() *Node[T] {
	if r.len == 0 {
		return nil
	}
	return r.last.next
}

// Tail returns the newest node or nil if the ring is empty.
func (r *Ring[T]) Tail() *Node[T] {
	if r.len == 0 {
		return nil
	}
	return r.last
}

// PushBack links a new node holding value behind the current tail.
func (r *Ring[T]) PushBack(value T) *Node[T] {
	n := &Node[T]{Value: value}
	if r.len == 0 {
		n.next = n
	} else {
		n.next = r.last.next
		r.last.next = n
	}
	r.last = n
	r.len++
	return n
}

// PopFront unlinks the head node and returns its value.
func (r *Ring[T]) PopFront() (zero T, _ bool) {
	if r.len == 0 {
		return zero, false
	}

	head := r.last.next
	r.last.next = head.next
	r.len--
	if r.len == 0 {
		r.last = nil
	}

	value := head.Value
	head.Value = zero
	head.next = nil
	return value, true
}

// Splice moves every node of other behind the tail of r and leaves other
// empty. It returns the number of nodes moved. r and other must be distinct.
func (r *Ring[T]) Splice(other *Ring[T]) int {
	moved := other.len
	if moved == 0 {
		return 0
	}

	if r.len > 0 {
		head := r.last.next
		r.last.next = other.last.next
		other.last.next = head
	}
	r.last = other.last
	r.len += moved

	other.last = nil
	other.len = 0
	return moved
}

// Reset drops every node.
func (r *Ring[T]) Reset() {
	r.last = nil
	r.len = 0
}
