// File: core/protocol/frame_codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Frame encoding and incremental decoding with payload checksums.

package protocol

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrFrameTooLarge is returned for payloads over MaxFramePayload.
	ErrFrameTooLarge = errors.New("frame payload exceeds maximum allowed size")
	// ErrChecksum is returned when a decoded payload does not match its hash.
	ErrChecksum = errors.New("frame checksum mismatch")
)

// EncodedLen returns the wire size of a frame carrying n payload bytes.
func EncodedLen(n int) int { return Overhead + n }

// AppendFrame appends the encoding of payload to dst.
func AppendFrame(dst, payload []byte) ([]byte, error) {
	if len(payload) > MaxFramePayload {
		return dst, ErrFrameTooLarge
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(payload)))
	dst = append(dst, payload...)
	dst = binary.BigEndian.AppendUint64(dst, xxhash.Sum64(payload))
	return dst, nil
}

// EncodeFrame serializes payload into a new slice.
func EncodeFrame(payload []byte) ([]byte, error) {
	return AppendFrame(make([]byte, 0, EncodedLen(len(payload))), payload)
}

// Decoder reassembles frames from bytes drained in arbitrary chunks.
type Decoder struct {
	pending []byte
}

// Feed appends drained bytes.
func (d *Decoder) Feed(b []byte) {
	d.pending = append(d.pending, b...)
}

// Buffered returns the number of bytes not yet decoded.
func (d *Decoder) Buffered() int { return len(d.pending) }

// Next returns the next complete payload. ok is false when more bytes are
// needed. A checksum failure consumes the frame and returns ErrChecksum.
func (d *Decoder) Next() (payload []byte, ok bool, err error) {
	if len(d.pending) < HeaderLen {
		return nil, false, nil
	}
	n := int(binary.BigEndian.Uint16(d.pending))
	total := EncodedLen(n)
	if len(d.pending) < total {
		return nil, false, nil
	}
	payload = append([]byte(nil), d.pending[HeaderLen:HeaderLen+n]...)
	sum := binary.BigEndian.Uint64(d.pending[HeaderLen+n : total])
	d.pending = d.pending[total:]
	if len(d.pending) == 0 {
		d.pending = d.pending[:0:0]
	}
	if xxhash.Sum64(payload) != sum {
		return nil, true, ErrChecksum
	}
	return payload, true, nil
}
