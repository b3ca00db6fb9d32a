//go:build windows

// File: pool/pages_windows.go
// Author: momentics <momentics@gmail.com>
//
// Committed read/write pages via VirtualAlloc/VirtualFree.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pageSize() int { return windows.Getpagesize() }

func mapPages(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapPages(region []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}
