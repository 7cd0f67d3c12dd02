package schroeder

import (
	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
)

// LowPassComb is a comb whose feedback mixes the delayed sample with the
// one before it: feedback = g1 * (d[n-D] + g2 * d[n-D-1]).
type LowPassComb struct {
	stage
	prev   delay.Tap
	decay1 float64
	decay2 float64
	g1     float64
	g2     float64
}

// NewLowPassComb returns a low-pass comb with delayMs in [0, 50] and both
// decays in [0, 100).
func NewLowPassComb(sampleRate, delayMs, decay1Pct, decay2Pct float64) (*LowPassComb, error) {
	if err := validateSampleRate("low-pass comb", sampleRate); err != nil {
		return nil, err
	}
	c := &LowPassComb{stage: stage{sampleRate: sampleRate}}
	if err := c.Configure(delayMs, decay1Pct, decay2Pct); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure replaces delay and decays, discarding all stored samples.
func (c *LowPassComb) Configure(delayMs, decay1Pct, decay2Pct float64) error {
	c.decay1 = sanitizeDecay(decay1Pct)
	c.decay2 = sanitizeDecay(decay2Pct)
	c.g1 = core.Percent(c.decay1)
	c.g2 = core.Percent(c.decay2)
	if err := c.configure(sanitizeDelay(delayMs, CombMaxDelayMs), 3); err != nil {
		return err
	}
	c.prev = delay.NewTap(c.samples + 1)
	return nil
}

// ProcessSample filters one sample.
func (c *LowPassComb) ProcessSample(x float64) float64 {
	s := x
	if c.tap.Ready() {
		d0 := c.line.At(c.tap.Pos())
		if c.prev.Ready() {
			s += c.g1 * (d0 + c.g2*c.line.At(c.prev.Pos()))
		} else {
			s += c.g1 * d0
		}
	}
	c.line.Write(core.FlushDenormals(s))

	size := c.line.Len()
	c.tap.Advance(size)
	c.prev.Advance(size)
	return core.ClampSymmetric(-c.g1*s, core.FilterCeiling)
}

// ProcessInPlace filters buf in place.
func (c *LowPassComb) ProcessInPlace(buf []float64) { processInPlace(c, buf) }

// ProcessBlock filters src into dst.
func (c *LowPassComb) ProcessBlock(dst, src []float64) { processBlock(c, dst, src) }

// Reset clears the delay line and restarts both warm-ups.
func (c *LowPassComb) Reset() {
	c.reset()
	c.prev.Reset()
}

// DelayMs returns the effective delay in milliseconds.
func (c *LowPassComb) DelayMs() float64 { return c.delayMs }

// DelaySamples returns the effective delay in samples.
func (c *LowPassComb) DelaySamples() int { return c.samples }

// Decays returns the effective decays in percent.
func (c *LowPassComb) Decays() (float64, float64) { return c.decay1, c.decay2 }
