package audiofile

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-delayfx/dsp/buffer"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
)

// lookahead is the number of frames read past each block so Exhausted is
// accurate right after the last real frame is served.
const lookahead = 64

// Source adapts a SampleReader to stream.Source.
type Source struct {
	r          SampleReader
	closer     io.Closer
	channels   int
	sampleRate float64

	pending []float32
	raw     []float32
	out     *buffer.Buffer
	eof     bool
	err     error
}

// NewSource wraps r.
func NewSource(r SampleReader) (*Source, error) {
	if r.Channels() <= 0 {
		return nil, fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidFile, r.Channels())
	}

	if r.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidFile, r.SampleRate())
	}

	return &Source{
		r:          r,
		channels:   r.Channels(),
		sampleRate: float64(r.SampleRate()),
		out:        buffer.New(0),
	}, nil
}

// NextBlock returns up to frames frames converted to float64.
func (s *Source) NextBlock(frames int) stream.Block {
	want := max(frames, 0) * s.channels

	if cap(s.raw) < want {
		s.raw = make([]float32, want)
	}

	raw := s.raw[:want]
	n := copy(raw, s.pending)
	s.pending = s.pending[:copy(s.pending, s.pending[n:])]

	if n < want {
		n += s.fill(raw[n:])
	}

	if !s.eof && len(s.pending) == 0 {
		s.pending = s.pending[:cap(s.pending)]
		if len(s.pending) < lookahead*s.channels {
			s.pending = make([]float32, lookahead*s.channels)
		}

		s.pending = s.pending[:s.fill(s.pending)]
	}

	n -= n % s.channels

	return stream.Block{Samples: s.out.LoadFloat32(raw[:n]), Channels: s.channels}
}

func (s *Source) fill(dst []float32) int {
	total := 0

	for total < len(dst) && !s.eof {
		n, err := s.r.ReadSamples(dst[total:])
		total += n

		if err != nil {
			s.eof = true
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
		} else if n == 0 {
			s.eof = true
		}
	}

	return total
}

// Exhausted reports whether the decoder has nothing left.
func (s *Source) Exhausted() bool {
	return s.eof && len(s.pending) == 0
}

// Err returns the first decode error other than io.EOF.
func (s *Source) Err() error { return s.err }

// SampleRate returns sample rate in Hz.
func (s *Source) SampleRate() float64 { return s.sampleRate }

// Channels returns the interleaved channel count.
func (s *Source) Channels() int { return s.channels }

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	err := s.closer.Close()
	s.closer = nil

	return err
}
