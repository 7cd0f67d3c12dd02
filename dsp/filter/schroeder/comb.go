package schroeder

import "github.com/cwbudde/algo-delayfx/dsp/core"

// Comb is a feedback comb whose output is the stored value scaled by -g
// rather than the delayed value.
type Comb struct {
	stage
	decay float64
	g     float64
}

// NewComb returns a comb with delayMs in [0, 50] and decayPct in [0, 100).
func NewComb(sampleRate, delayMs, decayPct float64) (*Comb, error) {
	if err := validateSampleRate("comb", sampleRate); err != nil {
		return nil, err
	}
	c := &Comb{stage: stage{sampleRate: sampleRate}}
	if err := c.Configure(delayMs, decayPct); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure replaces delay and decay, discarding all stored samples.
func (c *Comb) Configure(delayMs, decayPct float64) error {
	c.decay = sanitizeDecay(decayPct)
	c.g = core.Percent(c.decay)
	return c.configure(sanitizeDelay(delayMs, CombMaxDelayMs), 2)
}

// ProcessSample filters one sample.
func (c *Comb) ProcessSample(x float64) float64 {
	s := x
	if c.tap.Ready() {
		s += c.g * c.line.At(c.tap.Pos())
	}
	c.line.Write(core.FlushDenormals(s))
	c.tap.Advance(c.line.Len())
	return core.ClampSymmetric(-c.g*s, core.FilterCeiling)
}

// ProcessInPlace filters buf in place.
func (c *Comb) ProcessInPlace(buf []float64) { processInPlace(c, buf) }

// ProcessBlock filters src into dst.
func (c *Comb) ProcessBlock(dst, src []float64) { processBlock(c, dst, src) }

// Reset clears the delay line and restarts the warm-up.
func (c *Comb) Reset() { c.reset() }

// DelayMs returns the effective delay in milliseconds.
func (c *Comb) DelayMs() float64 { return c.delayMs }

// DelaySamples returns the effective delay in samples.
func (c *Comb) DelaySamples() int { return c.samples }

// Decay returns the effective decay in percent.
func (c *Comb) Decay() float64 { return c.decay }
