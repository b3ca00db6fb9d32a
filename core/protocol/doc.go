// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Implements the peripheral frame format carried over byte rings.
//
// A frame on the wire is a big-endian uint16 payload length, the payload,
// and a big-endian xxhash64 of the payload. Frames are written to a ring in
// one all-or-nothing batch, so a frame is either fully resident or absent;
// the reader side still decodes incrementally because it drains in chunks.
package protocol
