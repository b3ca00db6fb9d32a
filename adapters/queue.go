// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Boolean Enqueue/Dequeue facade over a ring.

package adapters

import (
	"github.com/momentics/hioload-ring/api"
)

// Queue implements api.Queue on top of any api.Ring.
type Queue[T any] struct {
	api.Ring[T]
}

// NewQueue wraps r.
func NewQueue[T any](r api.Ring[T]) *Queue[T] {
	return &Queue[T]{Ring: r}
}

// Enqueue adds an item, returns false if full.
func (q *Queue[T]) Enqueue(item T) bool {
	return q.WriteOne(item) == nil
}

// Dequeue removes oldest item, returns false if empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	v, err := q.ReadOne()
	return v, err == nil
}

// Ensure compile-time compliance.
var _ api.Queue[any] = (*Queue[any])(nil)
