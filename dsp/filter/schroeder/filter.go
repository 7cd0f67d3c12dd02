package schroeder

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
)

const (
	// AllpassMaxDelayMs is the longest allpass delay.
	AllpassMaxDelayMs = 5000.0
	// CombMaxDelayMs is the longest comb and low-pass comb delay.
	CombMaxDelayMs = 50.0

	defaultDecay = 50.0
)

// Filter is the per-sample contract shared by all primitives.
type Filter interface {
	ProcessSample(x float64) float64
	Reset()
}

// stage holds the state common to every primitive: a delay line and the
// current-sample cursor.
type stage struct {
	sampleRate float64
	delayMs    float64
	samples    int
	line       *delay.Line
	tap        delay.Tap
}

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, sampleRate)
	}
	return nil
}

// sanitizeDelay maps an out-of-range delay to half the maximum.
func sanitizeDelay(ms, maxMs float64) float64 {
	if !core.InRange(ms, 0, maxMs) {
		return maxMs / 2
	}
	return ms
}

// sanitizeDecay maps a decay outside [0, 100) to 50 %.
func sanitizeDecay(pct float64) float64 {
	if !core.IsFinite(pct) || pct < 0 || pct >= 100 {
		return defaultDecay
	}
	return pct
}

// configure reallocates the line for delayMs with extra cells beyond the
// delay and rewinds the cursor.
func (s *stage) configure(delayMs float64, extra int) error {
	s.delayMs = delayMs
	s.samples = max(core.MsToSamples(delayMs, s.sampleRate), 1)
	line, err := delay.New(s.samples + extra)
	if err != nil {
		return err
	}
	s.line = line
	s.tap = delay.NewTap(s.samples)
	return nil
}

func (s *stage) reset() {
	s.line.Reset()
	s.tap.Reset()
}

func processInPlace(f Filter, buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

func processBlock(f Filter, dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = f.ProcessSample(src[i])
	}
}
