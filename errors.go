package circularqueue

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by Append and AppendAll when a source is
	// nil, is the destination itself, or is listed more than once.
	ErrInvalidArgument = errors.New("circularqueue: invalid argument")

	// ErrExhausted is returned by Iterator.Next once every element has been produced.
	ErrExhausted = errors.New("circularqueue: no more elements")

	// ErrModified is returned by Iterator.Next when the queue changed after the
	// iterator was created.
	ErrModified = errors.New("circularqueue: queue modified during iteration")
)
