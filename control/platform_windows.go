//go:build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>

package control

import "golang.org/x/sys/windows"

func pageSize() int { return windows.Getpagesize() }
