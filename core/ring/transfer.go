// File: core/ring/transfer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single and batched transfers. Batches crossing the end of storage are
// split into a tail segment and a head segment.

package ring

import "github.com/momentics/hioload-ring/api"

// WriteOne appends v. Returns api.ErrNoPlace without mutation when full.
func (r *Ring[T]) WriteOne(v T) error {
	if !r.ready() {
		return api.ErrNoPointer
	}
	next := r.wrap(r.write + 1)
	if next == r.read {
		return api.ErrNoPlace
	}
	r.slots[r.write] = v
	r.write = next
	r.free--
	return nil
}

// WriteMany appends every element of vs or none of them.
func (r *Ring[T]) WriteMany(vs []T) error {
	if !r.ready() || vs == nil {
		return api.ErrNoPointer
	}
	n := len(vs)
	if n == 0 {
		return api.ErrNoData
	}
	if r.free < n {
		return api.ErrNoPlace
	}
	r.put(r.write, vs)
	r.write = r.wrap(r.write + n)
	r.free -= n
	return nil
}

// ReadOne removes and returns the oldest element.
func (r *Ring[T]) ReadOne() (T, error) {
	var v T
	if !r.ready() {
		return v, api.ErrNoPointer
	}
	if r.read == r.write {
		return v, api.ErrNoData
	}
	v = r.slots[r.read]
	r.read = r.wrap(r.read + 1)
	r.free++
	return v, nil
}

// ReadMany fills out with the len(out) oldest elements. A request longer than
// Len is refused with api.ErrNoData and nothing is consumed.
func (r *Ring[T]) ReadMany(out []T) error {
	if !r.ready() || out == nil {
		return api.ErrNoPointer
	}
	n := len(out)
	if n == 0 || r.read == r.write {
		return api.ErrNoData
	}
	if n > r.Len() {
		return api.ErrNoData.WithContext("requested", n).WithContext("available", r.Len())
	}
	r.consume(out)
	return nil
}

// ReadAvailable reads up to len(out) elements and returns how many were read.
func (r *Ring[T]) ReadAvailable(out []T) (int, error) {
	if !r.ready() || out == nil {
		return 0, api.ErrNoPointer
	}
	n := min(len(out), r.Len())
	if n == 0 {
		return 0, api.ErrNoData
	}
	r.consume(out[:n])
	return n, nil
}

// PeekLast returns the most recently written element without consuming it.
// It reads slot write-1, not the raw slot under the write cursor, which
// holds no resident element. An empty ring yields the zero value and
// api.ErrNoData.
func (r *Ring[T]) PeekLast() (T, error) {
	var v T
	if !r.ready() {
		return v, api.ErrNoPointer
	}
	if r.read == r.write {
		return v, api.ErrNoData
	}
	last := r.write - 1
	if last < 0 {
		last = r.capacity - 1
	}
	return r.slots[last], nil
}

func (r *Ring[T]) consume(out []T) {
	r.get(r.read, out)
	r.read = r.wrap(r.read + len(out))
	r.free += len(out)
}

// put copies vs into storage starting at slot at, wrapping once.
func (r *Ring[T]) put(at int, vs []T) {
	first := copy(r.slots[at:], vs)
	copy(r.slots, vs[first:])
}

// get copies len(out) elements starting at slot at, wrapping once.
func (r *Ring[T]) get(at int, out []T) {
	first := copy(out, r.slots[at:])
	copy(out[first:], r.slots)
}
