//go:build unix

// control/platform_unix.go
// Author: momentics <momentics@gmail.com>

package control

import "golang.org/x/sys/unix"

func pageSize() int { return unix.Getpagesize() }
