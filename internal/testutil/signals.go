// Package testutil provides deterministic test signals and assertions
// shared by the effect tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a sine starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}

	return out
}

// DeterministicNoise returns seeded uniform noise in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)

	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns length zeros with a 1 at pos, if pos is in range.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Interleave merges equal-length channels into one frame-ordered slice.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	n := len(channels[0])
	out := make([]float64, n*len(channels))

	for ch, data := range channels {
		for i := 0; i < n && i < len(data); i++ {
			out[i*len(channels)+ch] = data[i]
		}
	}

	return out
}

// Channel extracts channel ch from interleaved data with the given count.
func Channel(data []float64, ch, channels int) []float64 {
	out := make([]float64, 0, len(data)/channels)
	for i := ch; i < len(data); i += channels {
		out = append(out, data[i])
	}

	return out
}
