// Package circularqueue provides an unbounded FIFO queue backed by a circular
// singly-linked list.
//
// The queue tracks only its newest node; the successor of that node is the
// oldest one. This gives constant-time Push, Peek, Pop and Len and, more
// importantly, a constant-time Append that splices one queue's nodes onto
// another without copying elements. The source of an Append is left empty.
//
// Peek and Pop report an empty queue through their boolean result rather than
// an error. Iterators report exhaustion with ErrExhausted and fail fast with
// ErrModified when the queue changes underneath them.
//
// Queues are not safe for concurrent use.
package circularqueue
