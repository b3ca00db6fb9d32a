// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Caller-side synchronization for rings shared between a producer goroutine
// and a consumer goroutine. The ring itself stays lock-free of any kind.

package adapters

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/ring"
)

// Locked serializes every operation on the wrapped ring with a mutex.
type Locked[T any] struct {
	mu sync.Mutex
	r  *ring.Ring[T]
}

// NewLocked wraps r. The caller must stop using r directly.
func NewLocked[T any](r *ring.Ring[T]) *Locked[T] {
	return &Locked[T]{r: r}
}

// WriteOne appends v under the lock.
func (l *Locked[T]) WriteOne(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.WriteOne(v)
}

// WriteMany appends all of vs or none of them.
func (l *Locked[T]) WriteMany(vs []T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.WriteMany(vs)
}

// ReadOne removes the oldest element.
func (l *Locked[T]) ReadOne() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.ReadOne()
}

// ReadMany fills out exactly or consumes nothing.
func (l *Locked[T]) ReadMany(out []T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.ReadMany(out)
}

// ReadAvailable reads up to len(out) elements.
func (l *Locked[T]) ReadAvailable(out []T) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.ReadAvailable(out)
}

// PeekLast returns the newest element without consuming it.
func (l *Locked[T]) PeekLast() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.PeekLast()
}

// Len returns the number of resident elements.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Len()
}

// Free returns the number of writable slots.
func (l *Locked[T]) Free() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Free()
}

// Cap returns the slot count, sentinel included.
func (l *Locked[T]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Cap()
}

// Stats returns a consistent accounting snapshot.
func (l *Locked[T]) Stats() ring.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Stats()
}

// Snapshot copies resident elements without consuming them.
func (l *Locked[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Snapshot()
}

// Close releases the wrapped ring's owned storage.
func (l *Locked[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Close()
}

var _ api.Ring[any] = (*Locked[any])(nil)
