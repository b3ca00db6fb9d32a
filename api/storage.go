// Package api
// Author: momentics <momentics@gmail.com>
//
// Backing storage contract for rings: borrowed or owned regions.

package api

// Ownership tells who releases a storage region.
type Ownership int

const (
	// Borrowed storage belongs to the caller and is never freed by the ring.
	Borrowed Ownership = iota
	// Owned storage was allocated for the ring and is freed on Release.
	Owned
)

func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	}
	return "unknown"
}

// Storage describes a contiguous slot region backing a ring.
type Storage[T any] interface {
	// Slots returns the full region. The slice stays valid until Release.
	Slots() []T

	// Ownership reports whether Release frees the region.
	Ownership() Ownership

	// Release returns owned memory to its allocator. No-op for borrowed
	// regions and on repeated calls.
	Release() error
}

// AllocStats aggregates allocator accounting.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
