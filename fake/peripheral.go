// Package fake
// Author: momentics <momentics@gmail.com>
//
// Scripted peripheral endpoints: a frame source standing in for an interrupt
// handler and a sink standing in for the polling consumer.

package fake

import "sync"

// Peripheral replays a fixed list of frames.
type Peripheral struct {
	mu     sync.Mutex
	frames [][]byte
	next   int
}

// NewPeripheral creates a source that yields frames in order.
func NewPeripheral(frames ...[]byte) *Peripheral {
	return &Peripheral{frames: frames}
}

// Next returns the next frame, or false once exhausted.
func (p *Peripheral) Next() ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.frames) {
		return nil, false
	}
	f := p.frames[p.next]
	p.next++
	return f, true
}

// Sink records every delivered frame.
type Sink struct {
	mu     sync.Mutex
	frames [][]byte
	err    error
}

// FailWith makes subsequent Consume calls return err.
func (s *Sink) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Consume stores a copy of frame.
func (s *Sink) Consume(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, append([]byte(nil), frame...))
	return nil
}

// Frames returns the delivered frames in order.
func (s *Sink) Frames() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.frames...)
}
