package circularqueue

import (
	"github.com/pkg/errors"

	"github.com/timzifer/circular_queue/internal/core"
)

// Append moves every element of other to the tail of q, keeping their order,
// and leaves other empty. No element is copied; the two rings are relinked in
// constant time.
//
// Appending a queue to itself or appending nil fails with ErrInvalidArgument
// and changes nothing.
func (q *Queue[T]) Append(other *Queue[T]) error {
	if err := q.checkSource(other); err != nil {
		q.metrics.RecordAppend(0, err)
		return err
	}
	q.splice(other)
	return nil
}

// AppendAll appends each queue in others to q in argument order. Either every
// source is appended or, if any source is invalid, nothing changes.
func (q *Queue[T]) AppendAll(others ...*Queue[T]) error {
	seen := make(map[*Queue[T]]struct{}, len(others))
	batch := core.NewBatch()
	for _, other := range others {
		_ = batch.Add(core.StepFunc(func() (func(), error) {
			if err := q.checkSource(other); err != nil {
				return nil, err
			}
			if _, dup := seen[other]; dup {
				return nil, errors.Wrap(ErrInvalidArgument, "queue listed more than once")
			}
			seen[other] = struct{}{}
			return func() { q.splice(other) }, nil
		}))
	}

	if err := batch.Apply(); err != nil {
		err = errors.Wrap(err, "append all")
		q.metrics.RecordAppend(0, err)
		return err
	}
	return nil
}

func (q *Queue[T]) checkSource(other *Queue[T]) error {
	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "append nil queue")
	}
	if other == q {
		return errors.Wrap(ErrInvalidArgument, "append queue to itself")
	}
	return nil
}

func (q *Queue[T]) splice(other *Queue[T]) {
	moved := q.ring.Splice(&other.ring)
	q.generation++
	other.generation++
	q.metrics.RecordAppend(moved, nil)
}
