// Package adapters
// Author: momentics <momentics@gmail.com>
//
// io.Reader / io.Writer view of a byte ring, for peripheral drivers that
// already speak io.

package adapters

import (
	"io"

	"github.com/momentics/hioload-ring/api"
)

// ByteRing is the subset of ring operations ByteStream needs. Both
// *ring.Bytes and *Locked[byte] satisfy it.
type ByteRing interface {
	WriteMany(vs []byte) error
	ReadAvailable(out []byte) (int, error)
	Len() int
}

// ByteStream adapts a byte ring to io.ReadWriter.
//
// Write is all-or-nothing: a write that does not fit returns 0 and an error
// matching api.ErrNoPlace. Read returns what is resident, up to len(p); an
// empty ring yields 0 and api.ErrNoData.
type ByteStream struct {
	r ByteRing
}

// NewByteStream wraps r.
func NewByteStream(r ByteRing) *ByteStream {
	return &ByteStream{r: r}
}

// Write stores all of p or fails with api.ErrNoPlace and writes nothing.
func (s *ByteStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.r.WriteMany(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read drains up to len(p) buffered bytes. An empty ring yields api.ErrNoData.
func (s *ByteStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return s.r.ReadAvailable(p)
}

// Buffered returns the number of bytes waiting to be read.
func (s *ByteStream) Buffered() int {
	return s.r.Len()
}

// Ensure compile-time compliance.
var _ io.ReadWriter = (*ByteStream)(nil)

// IsRetryable reports whether err is a transient ring condition a caller may
// retry after the other side has made progress.
func IsRetryable(err error) bool {
	switch api.StatusOf(err) {
	case api.StatusNoPlace, api.StatusNoData:
		return true
	}
	return false
}
