package protocol_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/core/protocol"
)

func TestEncodeDecodeFrame(t *testing.T) {
	payload := []byte("hello")
	data, err := protocol.EncodeFrame(payload)
	require.NoError(t, err)
	assert.Len(t, data, protocol.EncodedLen(len(payload)))

	var d protocol.Decoder
	d.Feed(data)
	got, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	if !bytes.Equal(got, payload) {
		t.Error("Payload mismatch")
	}
	assert.Equal(t, 0, d.Buffered())
}

func TestDecoderChunked(t *testing.T) {
	var wire []byte
	payloads := [][]byte{[]byte("a"), {}, bytes.Repeat([]byte{7}, 300)}
	for _, p := range payloads {
		var err error
		wire, err = protocol.AppendFrame(wire, p)
		require.NoError(t, err)
	}

	var d protocol.Decoder
	var got [][]byte
	for i := 0; i < len(wire); i += 3 {
		d.Feed(wire[i:min(i+3, len(wire))])
		for {
			p, ok, err := d.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, p)
		}
	}
	require.Len(t, got, len(payloads))
	for i := range payloads {
		assert.Equal(t, len(payloads[i]), len(got[i]))
		assert.True(t, bytes.Equal(payloads[i], got[i]))
	}
}

func TestDecoderChecksumMismatch(t *testing.T) {
	data, err := protocol.EncodeFrame([]byte("payload"))
	require.NoError(t, err)
	data[3] ^= 0xFF

	var d protocol.Decoder
	d.Feed(data)
	_, ok, err := d.Next()
	assert.True(t, ok)
	assert.ErrorIs(t, err, protocol.ErrChecksum)
	assert.Equal(t, 0, d.Buffered())
}

func TestFrameTooLarge(t *testing.T) {
	_, err := protocol.EncodeFrame(make([]byte, protocol.MaxFramePayload+1))
	assert.ErrorIs(t, err, protocol.ErrFrameTooLarge)
}
