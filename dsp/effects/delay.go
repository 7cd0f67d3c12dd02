package effects

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
)

// MaxDelayMs is the longest delay accepted by the basic delays.
const MaxDelayMs = 1000.0

// SingleDelayParams configures a SingleDelay.
type SingleDelayParams struct {
	Dry     float64 // dry gain in [0, 1]
	Wet     float64 // wet gain in [0, 1]
	DelayMs float64 // delay in [0, MaxDelayMs]
}

// DefaultSingleDelayParams returns a pass-through configuration.
func DefaultSingleDelayParams() SingleDelayParams {
	return SingleDelayParams{Dry: 1, Wet: 0, DelayMs: 200}
}

// Valid reports whether every field is in range.
func (p SingleDelayParams) Valid() bool {
	return validGain(p.Dry) && validGain(p.Wet) && validDelay(p.DelayMs)
}

// SingleDelay mixes the input with one delayed copy of itself.
type SingleDelay struct {
	sampleRate float64
	params     SingleDelayParams
	line       *delay.Line
	tap        delay.Tap
}

// NewSingleDelay creates a single-tap delay. Invalid params fall back to
// DefaultSingleDelayParams.
func NewSingleDelay(sampleRate float64, p SingleDelayParams) (*SingleDelay, error) {
	if err := validateSampleRate("single delay", sampleRate); err != nil {
		return nil, err
	}
	d := &SingleDelay{sampleRate: sampleRate}
	if err := d.Configure(p); err != nil {
		return nil, err
	}
	return d, nil
}

// Configure applies p and reallocates the line, discarding all state.
func (d *SingleDelay) Configure(p SingleDelayParams) error {
	if !p.Valid() {
		p = DefaultSingleDelayParams()
	}
	samples := core.MsToSamples(p.DelayMs, d.sampleRate)
	line, err := delay.New(samples + 2)
	if err != nil {
		return fmt.Errorf("single delay: %w", err)
	}
	d.params = p
	d.line = line
	d.tap = delay.NewTap(samples)
	return nil
}

// ProcessSample processes one sample.
func (d *SingleDelay) ProcessSample(x float64) float64 {
	d.line.Write(x)
	out := d.params.Dry * x
	if d.tap.Ready() {
		out += d.params.Wet * d.line.At(d.tap.Pos())
	}
	d.tap.Advance(d.line.Len())
	return core.Limit(out, core.DelayCeiling)
}

// ProcessInPlace applies the delay to buf in place.
func (d *SingleDelay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// ProcessBlock writes the processed src into dst.
func (d *SingleDelay) ProcessBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = d.ProcessSample(src[i])
	}
}

// Reset clears the line and restarts the warm-up.
func (d *SingleDelay) Reset() {
	d.line.Reset()
	d.tap.Reset()
}

// Params returns the parameters in effect.
func (d *SingleDelay) Params() SingleDelayParams { return d.params }

// SampleRate returns sample rate in Hz.
func (d *SingleDelay) SampleRate() float64 { return d.sampleRate }

// WarmupSamples returns the number of samples before the tap contributes.
func (d *SingleDelay) WarmupSamples() int { return d.tap.Delay() }

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, sampleRate)
	}
	return nil
}

func validGain(g float64) bool { return core.InRange(g, 0, 1) }

func validDelay(ms float64) bool { return core.InRange(ms, 0, MaxDelayMs) }
