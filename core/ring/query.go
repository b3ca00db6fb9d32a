// File: core/ring/query.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// Stats is a point-in-time view of ring accounting.
type Stats struct {
	Cap         int
	Len         int
	Free        int
	WriteCursor int
	ReadCursor  int
}

// Cap returns the number of storage slots, sentinel included.
func (r *Ring[T]) Cap() int {
	if r == nil {
		return 0
	}
	return r.capacity
}

// Free returns the number of writable slots.
func (r *Ring[T]) Free() int {
	if r == nil {
		return 0
	}
	return r.free
}

// Len returns the number of resident elements.
func (r *Ring[T]) Len() int {
	if !r.ready() {
		return 0
	}
	return r.capacity - 1 - r.free
}

// WriteCursor returns the index of the next slot to write.
func (r *Ring[T]) WriteCursor() int {
	if r == nil {
		return 0
	}
	return r.write
}

// ReadCursor returns the index of the next slot to read.
func (r *Ring[T]) ReadCursor() int {
	if r == nil {
		return 0
	}
	return r.read
}

// IsEmpty reports whether no elements are resident.
func (r *Ring[T]) IsEmpty() bool { return r.Len() == 0 }

// IsFull reports whether the next write of one element would be refused.
func (r *Ring[T]) IsFull() bool { return r.ready() && r.free == 0 }

// Snapshot copies resident elements in read order without consuming them.
func (r *Ring[T]) Snapshot() []T {
	n := r.Len()
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	r.get(r.read, out)
	return out
}

// Stats returns the current accounting.
func (r *Ring[T]) Stats() Stats {
	return Stats{
		Cap:         r.Cap(),
		Len:         r.Len(),
		Free:        r.Free(),
		WriteCursor: r.WriteCursor(),
		ReadCursor:  r.ReadCursor(),
	}
}
