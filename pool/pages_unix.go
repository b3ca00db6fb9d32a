//go:build unix

// File: pool/pages_unix.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous private mappings via mmap/munmap.

package pool

import "golang.org/x/sys/unix"

func pageSize() int { return unix.Getpagesize() }

func mapPages(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapPages(region []byte) error {
	return unix.Munmap(region)
}
