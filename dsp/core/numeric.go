package core

import "math"

// denormalFloor is the magnitude below which recirculated state is zeroed.
const denormalFloor = 1e-30

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// InRange reports whether x is finite and lo <= x <= hi.
func InRange(x, lo, hi float64) bool {
	return IsFinite(x) && lo <= x && x <= hi
}

// FlushDenormals returns 0 for values too small to matter in a feedback
// path. Comb and allpass stages call it on the sample they store.
func FlushDenormals(x float64) float64 {
	if math.Abs(x) < denormalFloor {
		return 0
	}

	return x
}

// MsToFractionalSamples converts milliseconds to a sample count without
// rounding.
func MsToFractionalSamples(ms, sampleRate float64) float64 {
	return ms * sampleRate / 1000
}

// MsToSamples truncates MsToFractionalSamples toward zero. Non-positive
// inputs give 0.
func MsToSamples(ms, sampleRate float64) int {
	if ms <= 0 || sampleRate <= 0 {
		return 0
	}

	return int(MsToFractionalSamples(ms, sampleRate))
}

// Percent maps a 0..100 parameter to a 0..1 ratio.
func Percent(p float64) float64 {
	return p / 100
}

// LinearToDB converts an amplitude ratio to decibels. Zero maps to -Inf and
// negative input to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}
