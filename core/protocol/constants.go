// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Frame wire constants

package protocol

const (
	HeaderLen   = 2
	ChecksumLen = 8

	// Overhead is the encoded size of a frame minus its payload.
	Overhead = HeaderLen + ChecksumLen

	// MaxFramePayload is bounded by the 16-bit length prefix.
	MaxFramePayload = 1<<16 - 1
)
