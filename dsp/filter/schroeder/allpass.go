package schroeder

import "github.com/cwbudde/algo-delayfx/dsp/core"

// Allpass is a Schroeder allpass: the stored value is input plus g times
// the delayed value, the output is -g times that plus the delayed value.
type Allpass struct {
	stage
	decay float64
	g     float64
}

// NewAllpass returns an allpass with delayMs in [0, 5000] and decayPct in
// [0, 100).
func NewAllpass(sampleRate, delayMs, decayPct float64) (*Allpass, error) {
	if err := validateSampleRate("allpass", sampleRate); err != nil {
		return nil, err
	}
	a := &Allpass{stage: stage{sampleRate: sampleRate}}
	if err := a.Configure(delayMs, decayPct); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure replaces delay and decay, discarding all stored samples.
func (a *Allpass) Configure(delayMs, decayPct float64) error {
	a.decay = sanitizeDecay(decayPct)
	a.g = core.Percent(a.decay)
	return a.configure(sanitizeDelay(delayMs, AllpassMaxDelayMs), 2)
}

// ProcessSample filters one sample.
func (a *Allpass) ProcessSample(x float64) float64 {
	var out float64
	if a.tap.Ready() {
		d := a.line.At(a.tap.Pos())
		s := x + a.g*d
		a.line.Write(core.FlushDenormals(s))
		out = -a.g*s + d
	} else {
		a.line.Write(x)
		out = -a.g * x
	}
	a.tap.Advance(a.line.Len())
	return core.ClampSymmetric(out, core.FilterCeiling)
}

// ProcessInPlace filters buf in place.
func (a *Allpass) ProcessInPlace(buf []float64) { processInPlace(a, buf) }

// ProcessBlock filters src into dst.
func (a *Allpass) ProcessBlock(dst, src []float64) { processBlock(a, dst, src) }

// Reset clears the delay line and restarts the warm-up.
func (a *Allpass) Reset() { a.reset() }

// DelayMs returns the effective delay in milliseconds.
func (a *Allpass) DelayMs() float64 { return a.delayMs }

// DelaySamples returns the effective delay in samples.
func (a *Allpass) DelaySamples() int { return a.samples }

// Decay returns the effective decay in percent.
func (a *Allpass) Decay() float64 { return a.decay }
