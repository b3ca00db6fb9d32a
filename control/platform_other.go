//go:build !unix && !windows

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

import "os"

func pageSize() int { return os.Getpagesize() }
