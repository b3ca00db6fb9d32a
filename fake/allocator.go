// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocators and peripherals for testing.

package fake

import (
	"errors"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// ErrAllocFailed is returned by FailingAllocator.
var ErrAllocFailed = errors.New("fake: allocation failed")

// FailingAllocator refuses every allocation.
type FailingAllocator[T any] struct {
	mu    sync.Mutex
	calls int
}

func (f *FailingAllocator[T]) Alloc(int) ([]T, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return nil, ErrAllocFailed
}

func (f *FailingAllocator[T]) Free([]T) error        { return nil }
func (f *FailingAllocator[T]) Stats() api.AllocStats { return api.AllocStats{} }

// Calls returns how many times Alloc was invoked.
func (f *FailingAllocator[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// ShortAllocator returns regions one element shorter than requested.
type ShortAllocator[T any] struct{}

func (ShortAllocator[T]) Alloc(n int) ([]T, error) { return make([]T, n-1), nil }
func (ShortAllocator[T]) Free([]T) error           { return nil }
func (ShortAllocator[T]) Stats() api.AllocStats    { return api.AllocStats{} }
