// Package pqueue implements an array-backed binary min-heap with membership
// and decrease-key by value equality. container/heap wants an intrusive
// index maintained by the caller, which doesn't work when logically equal
// elements are distinct allocations; here both ranking and equality are
// supplied as closures and elements are located by value.
package pqueue

import "errors"

// ErrEmpty is returned when extracting from an empty queue. Callers are
// expected to check Len first; an empty extract is a bug, not a no-op.
var ErrEmpty = errors.New("extract from empty priority queue")

// Queue is a mutable min-heap over T. Not safe for concurrent use.
type Queue[T any] struct {
	items []T
	less  func(a, b T) bool
	eq    func(a, b T) bool
}

// New builds an empty queue ranked by less, with eq deciding membership.
// less must be consistent while an element is queued, except through
// DecreaseKey.
func New[T any](less, eq func(a, b T) bool) *Queue[T] {
	return &Queue[T]{less: less, eq: eq}
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Insert adds v to the queue.
func (q *Queue[T]) Insert(v T) {
	q.items = append(q.items, v)
	q.siftUp(len(q.items) - 1)
}

// ExtractMin removes and returns the minimum-ranked element.
func (q *Queue[T]) ExtractMin() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmpty
	}
	min := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = zero // release the reference
	q.items = q.items[:last]
	if last > 0 {
		q.siftDown(0)
	}
	return min, nil
}

// Contains reports whether an element equal to v is queued.
func (q *Queue[T]) Contains(v T) bool {
	return q.indexOf(v) >= 0
}

// DecreaseKey restores heap order for the element equal to v whose rank has
// improved. The stored element is replaced by v so that any payload rides
// along. It reports whether the element was found.
func (q *Queue[T]) DecreaseKey(v T) bool {
	i := q.indexOf(v)
	if i < 0 {
		return false
	}
	q.items[i] = v
	q.siftUp(i)
	return true
}

func (q *Queue[T]) indexOf(v T) int {
	for i, it := range q.items {
		if q.eq(it, v) {
			return i
		}
	}
	return -1
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && q.less(q.items[right], q.items[left]) {
			child = right
		}
		if !q.less(q.items[child], q.items[i]) {
			return
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
