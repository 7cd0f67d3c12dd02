package interp

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// HalfWidth is the number of kernel taps on each side of the read position.
const HalfWidth = 256

// Kernel holds 2*HalfWidth sinc taps for relative offsets
// 1-HalfWidth .. HalfWidth. It is rebuilt only when the frequency pair
// changes.
type Kernel struct {
	taps    [2 * HalfWidth]float64
	stdFreq float64
	newFreq float64
	ready   bool
}

// Prepare builds the taps for (stdFreq, newFreq) unless they are already
// current. Tap i is min(1, newFreq/stdFreq) * sinc(min(stdFreq, newFreq) * i).
// Non-positive frequencies fall back to newFreq == stdFreq == 1.
func (k *Kernel) Prepare(stdFreq, newFreq float64) {
	if stdFreq <= 0 || !isFinite(stdFreq) {
		stdFreq = 1
	}
	if newFreq <= 0 || !isFinite(newFreq) {
		newFreq = stdFreq
	}
	if k.ready && k.stdFreq == stdFreq && k.newFreq == newFreq {
		return
	}

	gain := math.Min(1, newFreq/stdFreq)
	cutoff := math.Min(stdFreq, newFreq)

	// sin(i*theta) by the Chebyshev recurrence; sinc is even in i.
	theta := math.Pi * cutoff
	twoCos := 2 * math.Cos(theta)
	prev, cur := 0.0, math.Sin(theta)

	k.taps[HalfWidth-1] = gain
	for i := 1; i <= HalfWidth; i++ {
		v := gain * cur / (theta * float64(i))
		k.taps[HalfWidth-1+i] = v
		if i < HalfWidth {
			k.taps[HalfWidth-1-i] = v
		}
		prev, cur = cur, twoCos*cur-prev
	}

	k.stdFreq = stdFreq
	k.newFreq = newFreq
	k.ready = true
}

// Taps returns the current kernel, index 0 holding offset 1-HalfWidth.
func (k *Kernel) Taps() []float64 {
	return k.taps[:]
}

// Apply sums buf[(f+i) mod len(buf)] * tap(i) over every offset i.
func (k *Kernel) Apply(buf []float64, f int) float64 {
	n := len(buf)
	idx := (f + 1 - HalfWidth) % n
	if idx < 0 {
		idx += n
	}

	sum := 0.0
	off := 0
	remaining := len(k.taps)
	for remaining > 0 {
		seg := min(remaining, n-idx)
		sum += vecmath.DotProduct(buf[idx:idx+seg], k.taps[off:off+seg])
		off += seg
		remaining -= seg
		idx = 0
	}
	return sum
}

// BandlimitedAt reads buf at pos with a kernel built for (stdFreq, newFreq).
// It allocates the kernel on every call; effects use a Reader instead.
func BandlimitedAt(buf []float64, pos, stdFreq, newFreq float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	var k Kernel
	k.Prepare(stdFreq, newFreq)
	return k.Apply(buf, int(Wrap(pos, len(buf))))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
