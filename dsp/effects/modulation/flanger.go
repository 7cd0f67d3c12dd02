package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

const (
	defaultFlangerDecayPct = 70.0
	defaultFlangerDelayMs  = 20.0
)

// FlangerParams configures a Flanger.
type FlangerParams struct {
	DecayPct      float64 // feedback in [0, 100]
	DelayMs       float64 // nominal delay in (0, MaxDelayMs]
	Modulator     lfo.Config
	Interpolation interp.Mode
}

// DefaultFlangerParams returns a 20 ms flanger with 70 % feedback.
func DefaultFlangerParams() FlangerParams {
	return FlangerParams{
		DecayPct:      defaultFlangerDecayPct,
		DelayMs:       defaultFlangerDelayMs,
		Modulator:     lfo.DefaultConfig(),
		Interpolation: interp.Linear,
	}
}

// Sanitize replaces out-of-range fields with their defaults.
func (p FlangerParams) Sanitize() FlangerParams {
	if !core.InRange(p.DecayPct, 0, 100) {
		p.DecayPct = defaultFlangerDecayPct
	}

	if !validTapDelay(p.DelayMs) {
		p.DelayMs = defaultFlangerDelayMs
	}

	p.Modulator = p.Modulator.Sanitize()
	p.Interpolation = sanitizeMode(p.Interpolation)

	return p
}

// Flanger is a feedback chorus: one modulated tap whose mixed output is
// written back into the line.
type Flanger struct {
	sampleRate float64
	params     FlangerParams

	decay  float64
	delay  float64
	mod    *lfo.Modulator
	line   *delay.Line
	warmup delay.Tap
	reader *interp.Reader
}

// NewFlanger creates a flanger. Invalid fields fall back to their defaults.
func NewFlanger(sampleRate float64, p FlangerParams) (*Flanger, error) {
	if err := validateSampleRate("flanger", sampleRate); err != nil {
		return nil, err
	}

	f := &Flanger{sampleRate: sampleRate}

	if err := f.Configure(p); err != nil {
		return nil, err
	}

	return f, nil
}

// Configure applies p, rebuilding the line and the modulator.
func (f *Flanger) Configure(p FlangerParams) error {
	p = p.Sanitize()

	line, err := newModulatedLine(f.sampleRate)
	if err != nil {
		return fmt.Errorf("flanger: %w", err)
	}

	mod, err := lfo.New(f.sampleRate, p.Modulator)
	if err != nil {
		return fmt.Errorf("flanger modulator: %w", err)
	}

	f.params = p
	f.decay = core.Percent(p.DecayPct)
	f.delay = core.MsToFractionalSamples(p.DelayMs, f.sampleRate)
	f.mod = mod
	f.line = line
	f.warmup = delay.NewTap(core.MsToSamples(p.DelayMs, f.sampleRate))
	f.reader = interp.NewReader(p.Interpolation)

	return nil
}

// ProcessSample processes one sample.
func (f *Flanger) ProcessSample(x float64) float64 {
	if !f.warmup.Ready() {
		f.line.Write(x)
		f.warmup.Advance(f.line.Len())

		return x
	}

	factor := f.mod.Next()
	pos := float64(f.line.WritePos()) - f.delay*factor
	v := f.line.ReadFractional(pos, f.reader, f.sampleRate, f.sampleRate*factor)

	out := core.ClampSymmetric(x+f.decay*v, core.FilterCeiling)
	f.line.Write(out)

	return out
}

// ProcessInPlace applies the flanger to buf in place.
func (f *Flanger) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// ProcessBlock writes the processed src into dst.
func (f *Flanger) ProcessBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = f.ProcessSample(src[i])
	}
}

// Reset clears the line, rewinds the modulator and restarts the warm-up.
func (f *Flanger) Reset() {
	f.line.Reset()
	f.warmup.Reset()
	f.mod.Reset()
}

// Params returns the sanitized parameters in effect.
func (f *Flanger) Params() FlangerParams { return f.params }

// SampleRate returns sample rate in Hz.
func (f *Flanger) SampleRate() float64 { return f.sampleRate }

// WarmupSamples returns the number of samples before the tap contributes.
func (f *Flanger) WarmupSamples() int { return f.warmup.Delay() }
