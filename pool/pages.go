// File: pool/pages.go
// Author: momentics <momentics@gmail.com>
//
// Page-backed byte allocator shared bookkeeping. The OS mapping calls live in
// pages_unix.go, pages_windows.go and pages_other.go.

package pool

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// PageAllocator hands out page-aligned byte regions mapped outside the Go
// heap. It is meant for byte rings fed by DMA-like producers; element types
// holding pointers must use HeapAllocator instead.
type PageAllocator struct {
	mu       sync.Mutex
	regions  map[*byte][]byte // first byte -> full mapping
	counters allocCounters
}

// NewPageAllocator creates an allocator with no live mappings.
func NewPageAllocator() *PageAllocator {
	return &PageAllocator{regions: make(map[*byte][]byte)}
}

// Alloc maps at least n bytes and returns exactly n of them.
func (p *PageAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pool: invalid allocation size %d", n)
	}
	region, err := mapPages(roundToPage(n))
	if err != nil {
		return nil, fmt.Errorf("pool: map %d bytes: %w", n, err)
	}
	p.mu.Lock()
	p.regions[&region[0]] = region
	p.mu.Unlock()
	p.counters.alloc()
	return region[:n:n], nil
}

// Free unmaps a region previously returned by Alloc.
func (p *PageAllocator) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	p.mu.Lock()
	region, ok := p.regions[&buf[0]]
	if ok {
		delete(p.regions, &buf[0])
	}
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("pool: free of unknown region")
	}
	p.counters.free()
	return unmapPages(region)
}

// Stats returns allocation counters.
func (p *PageAllocator) Stats() api.AllocStats {
	return p.counters.snapshot()
}

func roundToPage(n int) int {
	ps := pageSize()
	return (n + ps - 1) / ps * ps
}

var _ Allocator[byte] = (*PageAllocator)(nil)
