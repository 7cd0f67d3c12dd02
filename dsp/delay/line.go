package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
)

// Line is a circular delay buffer with a single write pointer.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Capacity returns the buffer length needed to serve delays up to maxMs at
// sampleRate when the delay may be stretched by headroom (1 for fixed
// delays), plus margin extra cells.
func Capacity(maxMs, sampleRate, headroom float64, margin int) int {
	if headroom < 1 {
		headroom = 1
	}
	n := int(math.Ceil(core.MsToFractionalSamples(maxMs, sampleRate) * headroom))
	if n < 0 {
		n = 0
	}
	return n + max(margin, 1)
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// WritePos returns the index the next Write stores to.
func (d *Line) WritePos() int {
	return d.writePos
}

// Samples exposes the ring storage for interpolated reads.
func (d *Line) Samples() []float64 {
	return d.buffer
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads the sample written delay writes ago (delay 1 is the newest).
func (d *Line) Read(delay int) float64 {
	return d.At(d.writePos - delay)
}

// At returns the cell at pos taken mod Len, negative positions included.
func (d *Line) At(pos int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	pos %= size
	if pos < 0 {
		pos += size
	}
	return d.buffer[pos]
}

// ReadFractional reads the ring at the absolute fractional position pos
// using r. stdFreq and newFreq are handed to the bandlimited kernel.
func (d *Line) ReadFractional(pos float64, r *interp.Reader, stdFreq, newFreq float64) float64 {
	return r.Read(d.buffer, pos, stdFreq, newFreq)
}

// Reset clears line state.
func (d *Line) Reset() {
	clear(d.buffer)
	d.writePos = 0
}
