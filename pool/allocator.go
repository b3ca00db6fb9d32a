// File: pool/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Slot allocators for rings that own their storage. Concrete page-backed
// allocators are selected per platform in separate files.

package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
)

// Allocator obtains and releases slot regions of n elements.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free([]T) error
	Stats() api.AllocStats
}

// allocCounters keeps lock-free allocation accounting.
type allocCounters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

func (c *allocCounters) alloc() { c.totalAlloc.Add(1) }
func (c *allocCounters) free()  { c.totalFree.Add(1) }

func (c *allocCounters) snapshot() api.AllocStats {
	a, f := c.totalAlloc.Load(), c.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}

// HeapAllocator allocates slot regions from the Go heap.
type HeapAllocator[T any] struct {
	counters allocCounters
}

// NewHeapAllocator returns a heap allocator for element type T.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

// Alloc returns a zeroed region of n elements.
func (h *HeapAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pool: invalid allocation size %d", n)
	}
	h.counters.alloc()
	return make([]T, n), nil
}

// Free drops the region; the garbage collector reclaims it.
func (h *HeapAllocator[T]) Free(buf []T) error {
	if buf == nil {
		return nil
	}
	h.counters.free()
	return nil
}

// Stats returns allocation counters.
func (h *HeapAllocator[T]) Stats() api.AllocStats {
	return h.counters.snapshot()
}

var _ Allocator[byte] = (*HeapAllocator[byte])(nil)
