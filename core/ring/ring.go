// File: core/ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity FIFO over borrowed or owned storage.
// The zero value is uninitialized; call Init or InitAllocated first.
type Ring[T any] struct {
	store    api.Storage[T]
	slots    []T
	capacity int
	write    int // next slot to write
	read     int // next slot to read
	free     int // writable slots, sentinel excluded
}

// Bytes is the byte-stream instantiation used for peripheral feeds.
type Bytes = Ring[byte]

// New creates a ring over caller-owned buf. The capacity is len(buf).
func New[T any](buf []T) (*Ring[T], error) {
	r := &Ring[T]{}
	if err := r.Init(buf); err != nil {
		return nil, err
	}
	return r, nil
}

// NewAllocated creates a ring owning capacity slots obtained from a.
// A nil allocator selects the Go heap.
func NewAllocated[T any](capacity int, a pool.Allocator[T]) (*Ring[T], error) {
	r := &Ring[T]{}
	if err := r.InitAllocated(capacity, a); err != nil {
		return nil, err
	}
	return r, nil
}

// Init binds r to caller-owned buf, zeroes it and resets both cursors.
// The ring never frees buf.
func (r *Ring[T]) Init(buf []T) error {
	if r == nil || buf == nil {
		return api.ErrNoPointer
	}
	if len(buf) == 0 {
		return api.ErrNoData
	}
	return r.bind(pool.Borrow(buf))
}

// InitAllocated obtains capacity slots from a and binds r to them. The ring
// owns the region and frees it on Close.
func (r *Ring[T]) InitAllocated(capacity int, a pool.Allocator[T]) error {
	if r == nil {
		return api.ErrNoPointer
	}
	if capacity <= 0 {
		return api.ErrNoData
	}
	st, err := pool.Allocate(capacity, a)
	if err != nil {
		return api.ErrNoPointer.WithCause(err)
	}
	if len(st.Slots()) < capacity {
		_ = st.Release()
		return api.ErrNoPointer.WithContext("alloc", "short region")
	}
	return r.bind(st)
}

func (r *Ring[T]) bind(st api.Storage[T]) error {
	slots := st.Slots()
	if slots == nil {
		return api.ErrNoPointer
	}
	if r.store != nil {
		// re-initialization drops the previous region
		_ = r.store.Release()
	}
	r.store = st
	r.slots = slots
	r.capacity = len(slots)
	r.Reset()
	return nil
}

// Reset drops all resident elements and zeroes storage.
func (r *Ring[T]) Reset() {
	if r == nil || r.slots == nil {
		return
	}
	clear(r.slots)
	r.write, r.read = 0, 0
	r.free = r.capacity - 1
}

// Close releases owned storage. Borrowed storage is left to the caller.
// The ring must be re-initialized before further use.
func (r *Ring[T]) Close() error {
	if r == nil || r.store == nil {
		return nil
	}
	err := r.store.Release()
	*r = Ring[T]{}
	return err
}

// Ownership reports whether Close frees the storage.
func (r *Ring[T]) Ownership() api.Ownership {
	if r == nil || r.store == nil {
		return api.Borrowed
	}
	return r.store.Ownership()
}

// wrap reduces a cursor that may have advanced by at most capacity.
func (r *Ring[T]) wrap(i int) int {
	if i >= r.capacity {
		return i - r.capacity
	}
	return i
}

func (r *Ring[T]) ready() bool {
	return r != nil && r.slots != nil
}
