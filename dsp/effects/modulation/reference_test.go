package modulation

import (
	"math"

	"github.com/cwbudde/algo-delayfx/dsp/interp"
)

// at returns hist[i], or 0 for cells never written.
func at(hist []float64, i int) float64 {
	if i < 0 || i >= len(hist) {
		return 0
	}

	return hist[i]
}

// linearRef interpolates hist at the absolute position pos.
func linearRef(hist []float64, pos float64) float64 {
	f := math.Floor(pos)
	t := pos - f
	i := int(f)

	return at(hist, i) + t*(at(hist, i+1)-at(hist, i))
}

// sincRef evaluates the bandlimited read of hist at pos straight from the
// kernel definition.
func sincRef(hist []float64, pos, stdFreq, newFreq float64) float64 {
	f := math.Floor(pos)
	i0 := int(f)
	if pos-f < interp.ExactThreshold {
		return at(hist, i0)
	}

	gain := math.Min(1, newFreq/stdFreq)
	cutoff := math.Min(stdFreq, newFreq)

	sum := 0.0
	for i := 1 - interp.HalfWidth; i <= interp.HalfWidth; i++ {
		tap := gain
		if i != 0 {
			x := math.Pi * cutoff * float64(i)
			tap = gain * math.Sin(x) / x
		}

		sum += at(hist, i0+i) * tap
	}

	return sum
}
