package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-delayfx/dsp/core"
)

// Magnitude returns |H(k)| for k = 0..fftSize/2 of the impulse response
// zero-padded (or truncated) to fftSize. fftSize 0 selects the next power
// of two at or above len(h).
func Magnitude(h []float64, fftSize int) ([]float64, error) {
	re, im, err := halfSpectrum(h, fftSize)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// Power returns |H(k)|² over the same bins as Magnitude.
func Power(h []float64, fftSize int) ([]float64, error) {
	re, im, err := halfSpectrum(h, fftSize)
	if err != nil {
		return nil, err
	}

	pow := make([]float64, len(re))
	vecmath.Power(pow, re, im)

	return pow, nil
}

func halfSpectrum(h []float64, fftSize int) (re, im []float64, err error) {
	if len(h) == 0 {
		return nil, nil, ErrEmptyResponse
	}

	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(h))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i := range min(len(h), fftSize) {
		padded[i] = complex(h[i], 0)
	}

	spectrum := make([]complex128, fftSize)

	err = plan.Forward(spectrum, padded)
	if err != nil {
		return nil, nil, err
	}

	bins := fftSize/2 + 1
	re = make([]float64, bins)
	im = make([]float64, bins)

	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	return re, im, nil
}

// MagnitudeDB converts Magnitude output to dB in place.
func MagnitudeDB(mag []float64) {
	for i, v := range mag {
		mag[i] = core.LinearToDB(v)
	}
}

// Ripple returns the spread in dB between the loudest and quietest bins
// of mag.
func Ripple(mag []float64) float64 {
	if len(mag) == 0 {
		return 0
	}

	lo, hi := math.Inf(1), 0.0
	for _, v := range mag {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return core.LinearToDB(hi) - core.LinearToDB(lo)
}

// BinFrequency returns the centre frequency in Hz of bin k.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
