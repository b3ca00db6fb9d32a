// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO ring contracts shared by the engine and its adapters.

package api

// Ring is the single-producer/single-consumer FIFO ring contract.
// Implementations do no internal synchronization.
type Ring[T any] interface {
	// WriteOne appends one element; ErrNoPlace if full.
	WriteOne(v T) error
	// WriteMany appends all of vs or nothing.
	WriteMany(vs []T) error
	// ReadOne removes the oldest element; ErrNoData if empty.
	ReadOne() (T, error)
	// ReadMany fills out with the oldest len(out) elements.
	ReadMany(out []T) error
	// PeekLast returns the most recently written element without consuming it.
	PeekLast() (T, error)
	// Len returns the number of resident elements.
	Len() int
	// Free returns the number of writable slots.
	Free() int
	// Cap returns the number of storage slots, sentinel included.
	Cap() int
}

// Queue is the boolean Enqueue/Dequeue contract used by pipeline code.
type Queue[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}
