package playback

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
)

// Renderer fills float32 frames from a source.
type Renderer interface {
	Render(dst []float32, src stream.Source) effectunit.Result
}

// Reader adapts a Renderer and its source to the float32 little-endian
// byte stream oto pulls from.
type Reader struct {
	mu       sync.Mutex
	r        Renderer
	src      stream.Source
	channels int
	samples  []float32
	done     bool
	stopped  atomic.Bool
	frames   atomic.Int64
}

// NewReader returns a reader that renders src through r.
func NewReader(r Renderer, src stream.Source) *Reader {
	return &Reader{
		r:        r,
		src:      src,
		channels: max(src.Channels(), 1),
	}
}

// Read renders whole frames into p. It returns io.EOF once the source is
// exhausted or Stop was called.
func (rd *Reader) Read(p []byte) (int, error) {
	if rd.stopped.Load() {
		return 0, io.EOF
	}

	frameBytes := 4 * rd.channels
	frames := len(p) / frameBytes

	if frames == 0 {
		return 0, nil
	}

	rd.mu.Lock()

	if rd.done {
		rd.mu.Unlock()
		return 0, io.EOF
	}

	n := frames * rd.channels
	if cap(rd.samples) < n {
		rd.samples = make([]float32, n)
	}

	samples := rd.samples[:n]
	res := rd.r.Render(samples, rd.src)
	rd.done = res.Exhausted

	rd.mu.Unlock()

	if res.Frames == 0 {
		return 0, io.EOF
	}

	rd.frames.Add(int64(res.Frames))

	for i, v := range samples[:res.Frames*rd.channels] {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	return res.Frames * frameBytes, nil
}

// Stop makes the next Read report io.EOF.
func (rd *Reader) Stop() { rd.stopped.Store(true) }

// Done reports whether the source has been fully rendered or stopped.
func (rd *Reader) Done() bool {
	if rd.stopped.Load() {
		return true
	}

	rd.mu.Lock()
	defer rd.mu.Unlock()

	return rd.done
}

// Frames returns the number of frames rendered so far.
func (rd *Reader) Frames() int64 { return rd.frames.Load() }
