package circularqueue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewQueueIsEmpty(t *testing.T) {
	q := New[int]()

	if !q.IsEmpty() {
		t.Fatalf("expected new queue to be empty")
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("expected len 0, got %d", got)
	}
}

func TestQueuePeekAndPopSingle(t *testing.T) {
	q := New[int]()
	if ok := q.Push(1); !ok {
		t.Fatalf("expected Push to report true")
	}

	if v, ok := q.Peek(); !ok || v != 1 {
		t.Fatalf("expected Peek to return 1,true got %v,%v", v, ok)
	}
	if got := q.Len(); got != 1 {
		t.Fatalf("expected Peek to keep len 1, got %d", got)
	}

	if v, ok := q.Pop(); !ok || v != 1 {
		t.Fatalf("expected Pop to return 1,true got %v,%v", v, ok)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("expected len 0 after pop, got %d", got)
	}
}

func TestQueuePeekAndPopOnEmpty(t *testing.T) {
	q := New[int]()

	if v, ok := q.Peek(); ok || v != 0 {
		t.Fatalf("expected Peek on empty queue to return 0,false got %v,%v", v, ok)
	}
	if v, ok := q.Pop(); ok || v != 0 {
		t.Fatalf("expected Pop on empty queue to return 0,false got %v,%v", v, ok)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("expected len to stay 0, got %d", got)
	}
}

func TestQueuePeekAfterRemovingSoleElement(t *testing.T) {
	q := New[string]()
	q.Push("only")
	q.Pop()

	if v, ok := q.Peek(); ok {
		t.Fatalf("expected Peek to signal empty after removing the sole element, got %q", v)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected Pop to signal empty after removing the sole element")
	}
	if q.Slice() != nil {
		t.Fatalf("expected nil slice for empty queue")
	}
}

func TestQueueStrings(t *testing.T) {
	q := New[string]()
	q.Push("First")
	q.Push("Second")
	q.Push("Third")

	if got := q.Len(); got != 3 {
		t.Fatalf("expected len 3, got %d", got)
	}
	if v, _ := q.Peek(); v != "First" {
		t.Fatalf("expected Peek to return First, got %q", v)
	}
	for _, want := range []string{"First", "Second", "Third"} {
		if v, ok := q.Pop(); !ok || v != want {
			t.Fatalf("expected Pop to return %q,true got %q,%v", want, v, ok)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("expected queue of strings to be empty")
	}
}

func TestQueueOrder(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}
	for i := 1; i <= 5; i++ {
		if v, ok := q.Pop(); !ok || v != i {
			t.Fatalf("pop %d expected %d got %v,%v", i, i, v, ok)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("expected queue to be empty")
	}
}

func TestQueueReusableAfterEmptied(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Pop()

	if !q.IsEmpty() {
		t.Fatalf("expected queue to be empty after pops")
	}

	q.Push(3)
	q.Push(4)
	if got := q.Len(); got != 2 {
		t.Fatalf("expected len 2 after pushes, got %d", got)
	}
	for i := 3; i <= 4; i++ {
		if v, ok := q.Pop(); !ok || v != i {
			t.Fatalf("expected Pop to return %d,true got %v,%v", i, v, ok)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("expected queue to be empty after second round")
	}
}

func TestQueueInterleavedPushPop(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Push(3)
	q.Push(4)
	q.Pop()
	q.Push(5)

	if diff := cmp.Diff([]int{3, 4, 5}, q.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestQueueWithValuesAndPushAll(t *testing.T) {
	q := New(WithValues(1, 2))

	if changed := q.PushAll(); changed {
		t.Fatalf("expected PushAll without values to report false")
	}
	if changed := q.PushAll(3, 4); !changed {
		t.Fatalf("expected PushAll to report true")
	}

	if diff := cmp.Diff([]int{1, 2, 3, 4}, q.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestQueueClear(t *testing.T) {
	q := New(WithValues("a", "b", "c"))
	q.Clear()

	if !q.IsEmpty() {
		t.Fatalf("expected queue to be empty after clear")
	}
	if _, ok := q.Peek(); ok {
		t.Fatalf("expected Peek to signal empty after clear")
	}

	q.Clear()
	q.Push("d")
	if diff := cmp.Diff([]string{"d"}, q.Slice()); diff != "" {
		t.Fatalf("unexpected contents after reuse (-want +got):\n%s", diff)
	}
}

func TestQueueString(t *testing.T) {
	tests := []struct {
		values []int
		want   string
	}{
		{nil, "[]"},
		{[]int{1}, "[1]"},
		{[]int{1, 2, 3}, "[1 2 3]"},
	}
	for _, tt := range tests {
		if got := New(WithValues(tt.values...)).String(); got != tt.want {
			t.Errorf("String() of %v = %q, expected %q", tt.values, got, tt.want)
		}
	}
}

func TestQueueDrain(t *testing.T) {
	q := New(WithValues(1, 2, 3, 4))

	var got []int
	for v := range q.Drain() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Fatalf("unexpected drained values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 4}, q.Slice()); diff != "" {
		t.Fatalf("unexpected remaining values (-want +got):\n%s", diff)
	}

	got = got[:0]
	for v := range q.Drain() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{3, 4}, got); diff != "" {
		t.Fatalf("unexpected drained values (-want +got):\n%s", diff)
	}
	if !q.IsEmpty() {
		t.Fatalf("expected queue to be empty after full drain")
	}
}

func TestQueueMetrics(t *testing.T) {
	m := new(Metrics)
	q := New(WithValues(1), WithMetrics[int](m))
	other := New(WithValues(2, 3))

	q.Push(4)
	q.Pop()
	q.Pop()
	q.Pop()
	if err := q.Append(other); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if err := q.Append(q); err == nil {
		t.Fatalf("expected self append to fail")
	}

	want := MetricsSnapshot{
		Pushes:          1,
		Pops:            2,
		EmptyPolls:      1,
		Appends:         1,
		SplicedNodes:    2,
		RejectedAppends: 1,
	}
	if got := m.Snapshot(); got != want {
		t.Fatalf("expected snapshot %+v, got %+v", want, got)
	}
}

func TestDefaultMetricsIsShared(t *testing.T) {
	if DefaultMetrics() != DefaultMetrics() {
		t.Fatalf("expected default metrics to return singleton instance")
	}
}
