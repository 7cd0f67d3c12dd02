package modulation

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

// MaxTaps is the largest number of chorus taps.
const MaxTaps = 3

const defaultChorusMixPct = 50.0

var defaultChorusDelaysMs = [MaxTaps]float64{10, 20, 40}

// MultiChorusParams configures a MultiChorus. Dry and wet are percentages.
type MultiChorusParams struct {
	DryPct        float64
	WetPct        float64
	DelaysMs      []float64    // 1..MaxTaps nominal delays, each in (0, MaxDelayMs]
	Modulators    []lfo.Config // 1..len(DelaysMs) modulators
	Interpolation interp.Mode
}

// DefaultMultiChorusParams returns three taps driven by one sine modulator.
func DefaultMultiChorusParams() MultiChorusParams {
	return MultiChorusParams{
		DryPct:        defaultChorusMixPct,
		WetPct:        defaultChorusMixPct,
		DelaysMs:      slices.Clone(defaultChorusDelaysMs[:]),
		Modulators:    []lfo.Config{lfo.DefaultConfig()},
		Interpolation: interp.Linear,
	}
}

// Sanitize replaces out-of-range fields with their defaults and returns a
// copy with the delays sorted ascending.
func (p MultiChorusParams) Sanitize() MultiChorusParams {
	out := MultiChorusParams{
		DryPct:        p.DryPct,
		WetPct:        p.WetPct,
		Interpolation: sanitizeMode(p.Interpolation),
	}

	if !core.InRange(out.DryPct, 0, 100) {
		out.DryPct = defaultChorusMixPct
	}

	if !core.InRange(out.WetPct, 0, 100) {
		out.WetPct = defaultChorusMixPct
	}

	taps := len(p.DelaysMs)
	if taps < 1 || taps > MaxTaps {
		out.DelaysMs = slices.Clone(defaultChorusDelaysMs[:])
	} else {
		out.DelaysMs = make([]float64, taps)
		for i, ms := range p.DelaysMs {
			if !validTapDelay(ms) {
				ms = defaultChorusDelaysMs[i]
			}

			out.DelaysMs[i] = ms
		}
	}

	slices.Sort(out.DelaysMs)

	mods := len(p.Modulators)
	if mods < 1 || mods > len(out.DelaysMs) {
		out.Modulators = []lfo.Config{lfo.DefaultConfig()}
	} else {
		out.Modulators = make([]lfo.Config, mods)
		for i, cfg := range p.Modulators {
			out.Modulators[i] = cfg.Sanitize()
		}
	}

	return out
}

// MultiChorus sums up to three modulated taps over one write stream.
//
// Tap k is driven by modulator k mod len(Modulators): one modulator drives
// every tap, two share the outer taps, three drive one tap each.
type MultiChorus struct {
	sampleRate float64
	params     MultiChorusParams

	dry    float64
	wet    float64
	delays [MaxTaps]float64 // nominal delays in fractional samples
	taps   int

	mods    []*lfo.Modulator
	factors [MaxTaps]float64

	line   *delay.Line
	warmup delay.Tap
	reader *interp.Reader
}

// NewMultiChorus creates a chorus. Invalid fields fall back to their
// defaults.
func NewMultiChorus(sampleRate float64, p MultiChorusParams) (*MultiChorus, error) {
	if err := validateSampleRate("chorus", sampleRate); err != nil {
		return nil, err
	}

	c := &MultiChorus{sampleRate: sampleRate}

	if err := c.Configure(p); err != nil {
		return nil, err
	}

	return c, nil
}

// Configure applies p, rebuilding the line and every modulator.
func (c *MultiChorus) Configure(p MultiChorusParams) error {
	p = p.Sanitize()

	line, err := newModulatedLine(c.sampleRate)
	if err != nil {
		return fmt.Errorf("chorus: %w", err)
	}

	mods := make([]*lfo.Modulator, len(p.Modulators))
	for i, cfg := range p.Modulators {
		mods[i], err = lfo.New(c.sampleRate, cfg)
		if err != nil {
			return fmt.Errorf("chorus modulator %d: %w", i+1, err)
		}
	}

	c.params = p
	c.dry = core.Percent(p.DryPct)
	c.wet = core.Percent(p.WetPct)
	c.taps = len(p.DelaysMs)

	for i, ms := range p.DelaysMs {
		c.delays[i] = core.MsToFractionalSamples(ms, c.sampleRate)
	}

	c.mods = mods
	c.line = line
	c.warmup = delay.NewTap(core.MsToSamples(p.DelaysMs[0], c.sampleRate))
	c.reader = interp.NewReader(p.Interpolation)

	return nil
}

// ProcessSample processes one sample.
func (c *MultiChorus) ProcessSample(x float64) float64 {
	wp := c.line.WritePos()
	c.line.Write(x)

	if !c.warmup.Ready() {
		c.warmup.Advance(c.line.Len())
		return core.ClampSymmetric(c.dry*x, core.FilterCeiling)
	}

	for i, m := range c.mods {
		c.factors[i] = m.Next()
	}

	n := len(c.mods)
	sum := 0.0

	for k := 0; k < c.taps; k++ {
		factor := c.factors[k%n]
		pos := float64(wp) - c.delays[k]*factor
		sum += c.line.ReadFractional(pos, c.reader, c.sampleRate, c.sampleRate*factor)
	}

	return core.ClampSymmetric(c.dry*x+c.wet*sum, core.FilterCeiling)
}

// ProcessInPlace applies the chorus to buf in place.
func (c *MultiChorus) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = c.ProcessSample(buf[i])
	}
}

// ProcessBlock writes the processed src into dst.
func (c *MultiChorus) ProcessBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = c.ProcessSample(src[i])
	}
}

// Reset clears the line, rewinds the modulators and restarts the warm-up.
func (c *MultiChorus) Reset() {
	c.line.Reset()
	c.warmup.Reset()

	for _, m := range c.mods {
		m.Reset()
	}
}

// Params returns the sanitized parameters in effect.
func (c *MultiChorus) Params() MultiChorusParams {
	p := c.params
	p.DelaysMs = slices.Clone(p.DelaysMs)
	p.Modulators = slices.Clone(p.Modulators)

	return p
}

// SampleRate returns sample rate in Hz.
func (c *MultiChorus) SampleRate() float64 { return c.sampleRate }

// WarmupSamples returns the warm-up of the shortest tap.
func (c *MultiChorus) WarmupSamples() int { return c.warmup.Delay() }

// LineLen returns the delay-line capacity in samples.
func (c *MultiChorus) LineLen() int { return c.line.Len() }
