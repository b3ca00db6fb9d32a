package pump

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Source yields payloads the way a receive interrupt would.
type Source interface {
	Next() ([]byte, bool)
}

// Sink receives decoded payloads on the polling side.
type Sink interface {
	Consume(payload []byte) error
}

// RandomSource emits n pseudo-random payloads of a fixed size and digests
// everything it emits.
type RandomSource struct {
	rnd    *rand.Rand
	size   int
	left   int
	digest *xxhash.Digest
}

// NewRandomSource creates a deterministic source for seed.
func NewRandomSource(n, size int, seed int64) *RandomSource {
	return &RandomSource{
		rnd:    rand.New(rand.NewSource(seed)),
		size:   size,
		left:   n,
		digest: xxhash.New(),
	}
}

func (s *RandomSource) Next() ([]byte, bool) {
	if s.left == 0 {
		return nil, false
	}
	s.left--
	p := make([]byte, s.size)
	s.rnd.Read(p)
	_, _ = s.digest.Write(p)
	return p, true
}

// Sum64 returns the digest of all emitted payloads.
func (s *RandomSource) Sum64() uint64 { return s.digest.Sum64() }

// DigestSink hashes every payload it consumes.
type DigestSink struct {
	digest *xxhash.Digest
	bytes  int64
}

// NewDigestSink creates an empty sink.
func NewDigestSink() *DigestSink {
	return &DigestSink{digest: xxhash.New()}
}

func (s *DigestSink) Consume(p []byte) error {
	s.bytes += int64(len(p))
	_, err := s.digest.Write(p)
	return err
}

// Sum64 returns the digest of all consumed payloads.
func (s *DigestSink) Sum64() uint64 { return s.digest.Sum64() }

// Bytes returns the total payload size consumed.
func (s *DigestSink) Bytes() int64 { return s.bytes }
