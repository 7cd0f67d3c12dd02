package response

import (
	"errors"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by response analysis functions.
var (
	ErrEmptyResponse     = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrNoDecay           = errors.New("response: insufficient decay for RT calculation")
)

// DefaultOnsetThreshold is the onset level relative to the peak (-40 dB).
const DefaultOnsetThreshold = 0.01

// Metrics holds impulse response analysis results.
type Metrics struct {
	Peak        float64 // absolute maximum
	PeakIndex   int     // sample index of Peak
	Onsets      []int   // sample indices where echoes begin
	FirstEchoMs float64 // time of the second onset in ms, 0 if none
	RT60        float64 // reverberation time in seconds (T30, else T20)
	EDT         float64 // early decay time in seconds (0 to -10 dB)
	CenterTime  float64 // energy centroid in seconds
	Energy      float64 // sum of squares
}

// Analyzer computes metrics from impulse response data.
type Analyzer struct {
	SampleRate float64
	// OnsetThreshold is relative to the peak; DefaultOnsetThreshold when 0.
	OnsetThreshold float64
}

// NewAnalyzer creates an analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all metrics. Decay times are 0 when the response does
// not decay far enough to measure them.
func (a *Analyzer) Analyze(h []float64) (Metrics, error) {
	if len(h) == 0 {
		return Metrics{}, ErrEmptyResponse
	}

	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	peakIdx := findPeak(h)
	onsets := Onsets(h, a.threshold())
	curve := schroederIntegral(h)

	m := Metrics{
		Peak:       vecmath.MaxAbs(h),
		PeakIndex:  peakIdx,
		Onsets:     onsets,
		CenterTime: a.centerTime(h),
		Energy:     vecmath.DotProduct(h, h),
		EDT:        a.reverbTime(curve, 0, -10),
	}

	if len(onsets) > 1 {
		m.FirstEchoMs = float64(onsets[1]-onsets[0]) * 1000 / a.SampleRate
	}

	m.RT60 = a.reverbTime(curve, -5, -35)
	if m.RT60 == 0 {
		m.RT60 = a.reverbTime(curve, -5, -25)
	}

	return m, nil
}

func (a *Analyzer) threshold() float64 {
	if a.OnsetThreshold > 0 {
		return a.OnsetThreshold
	}

	return DefaultOnsetThreshold
}

// Onsets returns the indices where |h| rises to at least ratio times the
// peak after having been below it.
func Onsets(h []float64, ratio float64) []int {
	peak := vecmath.MaxAbs(h)
	if peak == 0 {
		return nil
	}

	level := peak * ratio

	var onsets []int

	above := false

	for i, v := range h {
		hit := math.Abs(v) >= level
		if hit && !above {
			onsets = append(onsets, i)
		}

		above = hit
	}

	return onsets
}

// SchroederIntegral computes the Schroeder backward integration of the
// squared impulse response, returned in dB.
//
// S(t) = 10*log10( ∫_t^∞ h²(τ) dτ / ∫_0^∞ h²(τ) dτ )
func SchroederIntegral(h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, ErrEmptyResponse
	}

	return schroederIntegral(h), nil
}

func schroederIntegral(h []float64) []float64 {
	n := len(h)
	result := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		cumSum += h[i] * h[i]
		result[i] = cumSum
	}

	total := result[0]
	if total <= 0 {
		return result
	}

	for i := range result {
		ratio := result[i] / total
		if ratio <= 0 {
			result[i] = -200
		} else {
			result[i] = 10 * math.Log10(ratio)
		}
	}

	return result
}

// RT60 computes the time for a 60 dB decay from T30, falling back to T20.
func (a *Analyzer) RT60(h []float64) (float64, error) {
	if len(h) == 0 {
		return 0, ErrEmptyResponse
	}

	if a.SampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	curve := schroederIntegral(h)

	if rt := a.reverbTime(curve, -5, -35); rt > 0 {
		return rt, nil
	}

	if rt := a.reverbTime(curve, -5, -25); rt > 0 {
		return rt, nil
	}

	return 0, ErrNoDecay
}

// reverbTime fits a line to the Schroeder curve between startDB and endDB
// and extrapolates it to -60 dB.
func (a *Analyzer) reverbTime(curve []float64, startDB, endDB float64) float64 {
	startIdx := -1
	endIdx := -1

	for i, v := range curve {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64

	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := curve[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	nf := float64(endIdx - startIdx + 1)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60.0 / (slope * a.SampleRate)
}

func (a *Analyzer) centerTime(h []float64) float64 {
	var numerator, denominator float64

	for i, v := range h {
		e := v * v
		numerator += float64(i) / a.SampleRate * e
		denominator += e
	}

	if denominator <= 0 {
		return 0
	}

	return numerator / denominator
}

func findPeak(h []float64) int {
	peakIdx := 0
	peakVal := 0.0

	for i, v := range h {
		if av := math.Abs(v); av > peakVal {
			peakVal = av
			peakIdx = i
		}
	}

	return peakIdx
}
