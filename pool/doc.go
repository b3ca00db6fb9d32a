// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage and allocation layer for hioload-ring.
// Provides borrowed and owned slot regions behind api.Storage, a Go heap
// allocator for any element type, and a page-mapped byte allocator
// (mmap on unix, VirtualAlloc on Windows, heap elsewhere).
// See allocator.go, storage.go, pages.go for implementation details.
package pool
