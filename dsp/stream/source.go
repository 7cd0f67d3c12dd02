package stream

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/buffer"
)

// Source supplies interleaved frames on demand.
//
// NextBlock returns up to frames frames; fewer only at the end of the
// stream. The returned samples stay valid until the next call and may be
// modified by the caller. Exhausted reports whether the source has nothing
// left after the most recent pull.
type Source interface {
	NextBlock(frames int) Block
	Exhausted() bool
	SampleRate() float64
	Channels() int
}

// SliceSource serves frames from an in-memory interleaved slice.
type SliceSource struct {
	data       []float64
	channels   int
	sampleRate float64
	pos        int
	scratch    *buffer.Buffer
}

// NewSliceSource wraps data, which must hold whole frames.
func NewSliceSource(data []float64, channels int, sampleRate float64) (*SliceSource, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("stream channels must be > 0: %d", channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stream sample rate must be > 0: %f", sampleRate)
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("stream data length %d is not a multiple of %d channels", len(data), channels)
	}
	return &SliceSource{
		data:       data,
		channels:   channels,
		sampleRate: sampleRate,
		scratch:    buffer.New(0),
	}, nil
}

// NextBlock copies the next frames frames into an internal buffer, leaving
// the wrapped slice untouched.
func (s *SliceSource) NextBlock(frames int) Block {
	if frames < 0 {
		frames = 0
	}
	n := min(frames*s.channels, len(s.data)-s.pos)
	s.scratch.Resize(n)
	out := s.scratch.Samples()
	copy(out, s.data[s.pos:s.pos+n])
	s.pos += n
	return Block{Samples: out, Channels: s.channels}
}

// Exhausted reports whether every frame has been served.
func (s *SliceSource) Exhausted() bool {
	return s.pos >= len(s.data)
}

// SampleRate returns sample rate in Hz.
func (s *SliceSource) SampleRate() float64 { return s.sampleRate }

// Channels returns the interleaved channel count.
func (s *SliceSource) Channels() int { return s.channels }

// Remaining returns the number of frames not yet served.
func (s *SliceSource) Remaining() int {
	return (len(s.data) - s.pos) / s.channels
}

// Rewind restarts the source from the first frame.
func (s *SliceSource) Rewind() {
	s.pos = 0
}

// Drain pulls blocks of frames from src until it is exhausted and returns
// the concatenated samples.
func Drain(src Source, frames int) []float64 {
	if frames <= 0 {
		frames = 1
	}
	var out []float64
	for !src.Exhausted() {
		b := src.NextBlock(frames)
		if b.Empty() {
			break
		}
		out = append(out, b.Samples...)
	}
	return out
}
