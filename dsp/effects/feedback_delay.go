package effects

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
)

// FeedbackDelayParams configures a FeedbackDelay.
type FeedbackDelayParams struct {
	Gain     float64 // output gain in [0, 2]
	DecayPct float64 // feedback in [0, 100)
	DelayMs  float64 // delay in [0, MaxDelayMs]
}

// DefaultFeedbackDelayParams returns the fallback configuration.
func DefaultFeedbackDelayParams() FeedbackDelayParams {
	return FeedbackDelayParams{Gain: 1, DecayPct: 10, DelayMs: 200}
}

// Valid reports whether every field is in range.
func (p FeedbackDelayParams) Valid() bool {
	return core.InRange(p.Gain, 0, 2) &&
		core.InRange(p.DecayPct, 0, 100) && p.DecayPct < 100 &&
		validDelay(p.DelayMs)
}

// FeedbackDelay recirculates its delayed signal into the line.
type FeedbackDelay struct {
	sampleRate float64
	params     FeedbackDelayParams
	decay      float64
	line       *delay.Line
	tap        delay.Tap
}

// NewFeedbackDelay creates a feedback delay. Invalid params fall back to
// DefaultFeedbackDelayParams.
func NewFeedbackDelay(sampleRate float64, p FeedbackDelayParams) (*FeedbackDelay, error) {
	if err := validateSampleRate("feedback delay", sampleRate); err != nil {
		return nil, err
	}
	d := &FeedbackDelay{sampleRate: sampleRate}
	if err := d.Configure(p); err != nil {
		return nil, err
	}
	return d, nil
}

// Configure applies p and reallocates the line, discarding all state.
func (d *FeedbackDelay) Configure(p FeedbackDelayParams) error {
	if !p.Valid() {
		p = DefaultFeedbackDelayParams()
	}
	samples := core.MsToSamples(p.DelayMs, d.sampleRate)
	line, err := delay.New(samples + 2)
	if err != nil {
		return fmt.Errorf("feedback delay: %w", err)
	}
	d.params = p
	d.decay = core.Percent(p.DecayPct)
	d.line = line
	d.tap = delay.NewTap(samples)
	return nil
}

// ProcessSample processes one sample.
func (d *FeedbackDelay) ProcessSample(x float64) float64 {
	s := x
	if d.tap.Ready() {
		s += d.decay * d.line.At(d.tap.Pos())
	}
	d.line.Write(core.FlushDenormals(s))
	d.tap.Advance(d.line.Len())
	return core.Limit(d.params.Gain*s, core.DelayCeiling)
}

// ProcessInPlace applies the delay to buf in place.
func (d *FeedbackDelay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// ProcessBlock writes the processed src into dst.
func (d *FeedbackDelay) ProcessBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = d.ProcessSample(src[i])
	}
}

// Reset clears the line and restarts the warm-up.
func (d *FeedbackDelay) Reset() {
	d.line.Reset()
	d.tap.Reset()
}

// Params returns the parameters in effect.
func (d *FeedbackDelay) Params() FeedbackDelayParams { return d.params }

// SampleRate returns sample rate in Hz.
func (d *FeedbackDelay) SampleRate() float64 { return d.sampleRate }

// WarmupSamples returns the number of samples before feedback starts.
func (d *FeedbackDelay) WarmupSamples() int { return d.tap.Delay() }
