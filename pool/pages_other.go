//go:build !unix && !windows

// File: pool/pages_other.go
// Author: momentics <momentics@gmail.com>
//
// Heap fallback for platforms without a page mapping API.

package pool

func pageSize() int { return 4096 }

func mapPages(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapPages([]byte) error { return nil }
