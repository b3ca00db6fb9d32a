// File: pool/storage.go
// Author: momentics <momentics@gmail.com>
//
// Borrowed and owned storage regions implementing api.Storage.

package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// BorrowedStorage wraps a caller-owned slice. Release never frees it.
type BorrowedStorage[T any] struct {
	slots []T
}

// Borrow wraps buf without taking ownership.
func Borrow[T any](buf []T) *BorrowedStorage[T] {
	return &BorrowedStorage[T]{slots: buf}
}

func (b *BorrowedStorage[T]) Slots() []T               { return b.slots }
func (b *BorrowedStorage[T]) Ownership() api.Ownership { return api.Borrowed }
func (b *BorrowedStorage[T]) Release() error           { return nil }

// OwnedStorage is a region obtained from an Allocator and returned to it
// exactly once.
type OwnedStorage[T any] struct {
	mu    sync.Mutex
	slots []T
	alloc Allocator[T]
}

// Allocate obtains n slots from a. A nil allocator selects the heap.
func Allocate[T any](n int, a Allocator[T]) (*OwnedStorage[T], error) {
	if a == nil {
		a = NewHeapAllocator[T]()
	}
	buf, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}
	return &OwnedStorage[T]{slots: buf, alloc: a}, nil
}

// Slots returns the region, or nil after Release.
func (o *OwnedStorage[T]) Slots() []T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.slots
}

func (o *OwnedStorage[T]) Ownership() api.Ownership { return api.Owned }

// Release frees the region. Subsequent calls are no-ops.
func (o *OwnedStorage[T]) Release() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.slots == nil {
		return nil
	}
	buf := o.slots
	o.slots = nil
	return o.alloc.Free(buf)
}

// Ensure compile-time compliance.
var (
	_ api.Storage[any] = (*BorrowedStorage[any])(nil)
	_ api.Storage[any] = (*OwnedStorage[any])(nil)
)
