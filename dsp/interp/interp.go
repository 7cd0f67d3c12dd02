package interp

import "math"

// ExactThreshold is the largest fractional part still read as an integral
// position.
const ExactThreshold = 1e-5

// Wrap maps pos into [0, n).
func Wrap(pos float64, n int) float64 {
	size := float64(n)
	pos = math.Mod(pos, size)
	if pos < 0 {
		pos += size
	}
	if pos >= size {
		pos = 0
	}
	return pos
}

// LinearAt reads buf at the fractional position pos, which must lie in
// [0, len(buf)). The right neighbour wraps to the start of the ring.
func LinearAt(buf []float64, pos float64) float64 {
	f := int(pos)
	t := pos - float64(f)
	next := f + 1
	if next >= len(buf) {
		next -= len(buf)
	}
	return buf[f] + t*(buf[next]-buf[f])
}

// Reader performs fractional reads with a fixed policy.
type Reader struct {
	mode   Mode
	kernel Kernel
}

// NewReader returns a reader using mode.
func NewReader(mode Mode) *Reader {
	if mode != Bandlimited {
		mode = Linear
	}
	return &Reader{mode: mode}
}

// Mode returns the configured policy.
func (r *Reader) Mode() Mode {
	return r.mode
}

// Read returns the value of the ring buf at pos. Positions outside
// [0, len(buf)) are wrapped. stdFreq and newFreq parameterise the sinc
// kernel and are ignored by the linear policy.
func (r *Reader) Read(buf []float64, pos, stdFreq, newFreq float64) float64 {
	n := len(buf)
	if n == 0 {
		return 0
	}

	pos = Wrap(pos, n)
	f := int(pos)
	if pos-float64(f) < ExactThreshold {
		return buf[f]
	}

	if r.mode == Bandlimited {
		r.kernel.Prepare(stdFreq, newFreq)
		return r.kernel.Apply(buf, f)
	}
	return LinearAt(buf, pos)
}
