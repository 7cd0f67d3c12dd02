package effects

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
)

// DoubleDelayParams configures a DoubleDelay. Wet1 belongs to Delay1Ms and
// Wet2 to Delay2Ms.
type DoubleDelayParams struct {
	Dry      float64
	Wet1     float64
	Wet2     float64
	Delay1Ms float64
	Delay2Ms float64
}

// DefaultDoubleDelayParams returns a pass-through configuration.
func DefaultDoubleDelayParams() DoubleDelayParams {
	return DoubleDelayParams{Dry: 1, Delay1Ms: 200, Delay2Ms: 400}
}

// Valid reports whether every field is in range.
func (p DoubleDelayParams) Valid() bool {
	return validGain(p.Dry) && validGain(p.Wet1) && validGain(p.Wet2) &&
		validDelay(p.Delay1Ms) && validDelay(p.Delay2Ms)
}

// ordered returns p with the shorter delay first, each wet gain kept with
// its delay.
func (p DoubleDelayParams) ordered() DoubleDelayParams {
	if p.Delay1Ms > p.Delay2Ms {
		p.Delay1Ms, p.Delay2Ms = p.Delay2Ms, p.Delay1Ms
		p.Wet1, p.Wet2 = p.Wet2, p.Wet1
	}
	return p
}

// DoubleDelay reads two taps from one write stream.
type DoubleDelay struct {
	sampleRate float64
	params     DoubleDelayParams
	line       *delay.Line
	taps       [2]delay.Tap
}

// NewDoubleDelay creates a two-tap delay. Invalid params fall back to
// DefaultDoubleDelayParams.
func NewDoubleDelay(sampleRate float64, p DoubleDelayParams) (*DoubleDelay, error) {
	if err := validateSampleRate("double delay", sampleRate); err != nil {
		return nil, err
	}
	d := &DoubleDelay{sampleRate: sampleRate}
	if err := d.Configure(p); err != nil {
		return nil, err
	}
	return d, nil
}

// Configure applies p and reallocates the line, discarding all state.
func (d *DoubleDelay) Configure(p DoubleDelayParams) error {
	if !p.Valid() {
		p = DefaultDoubleDelayParams()
	}
	p = p.ordered()

	first := core.MsToSamples(p.Delay1Ms, d.sampleRate)
	second := core.MsToSamples(p.Delay2Ms, d.sampleRate)
	line, err := delay.New(second + 2)
	if err != nil {
		return fmt.Errorf("double delay: %w", err)
	}
	d.params = p
	d.line = line
	d.taps[0] = delay.NewTap(first)
	d.taps[1] = delay.NewTap(second)
	return nil
}

// ProcessSample processes one sample.
func (d *DoubleDelay) ProcessSample(x float64) float64 {
	d.line.Write(x)
	out := d.params.Dry * x
	if d.taps[0].Ready() {
		out += d.params.Wet1 * d.line.At(d.taps[0].Pos())
	}
	if d.taps[1].Ready() {
		out += d.params.Wet2 * d.line.At(d.taps[1].Pos())
	}
	size := d.line.Len()
	d.taps[0].Advance(size)
	d.taps[1].Advance(size)
	return core.Limit(out, core.DelayCeiling)
}

// ProcessInPlace applies the delay to buf in place.
func (d *DoubleDelay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// ProcessBlock writes the processed src into dst.
func (d *DoubleDelay) ProcessBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = d.ProcessSample(src[i])
	}
}

// Reset clears the line and restarts both warm-ups.
func (d *DoubleDelay) Reset() {
	d.line.Reset()
	d.taps[0].Reset()
	d.taps[1].Reset()
}

// Params returns the parameters in effect, shorter delay first.
func (d *DoubleDelay) Params() DoubleDelayParams { return d.params }

// SampleRate returns sample rate in Hz.
func (d *DoubleDelay) SampleRate() float64 { return d.sampleRate }

// WarmupSamples returns the warm-up of the shorter tap.
func (d *DoubleDelay) WarmupSamples() int { return d.taps[0].Delay() }

// TapDelays returns both tap delays in samples, shorter first.
func (d *DoubleDelay) TapDelays() (int, int) { return d.taps[0].Delay(), d.taps[1].Delay() }
