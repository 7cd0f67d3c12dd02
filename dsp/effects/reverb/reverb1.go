package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/filter/schroeder"
)

// Reverb1Stages is the number of allpass stages in Reverb1.
const Reverb1Stages = 5

var defaultReverb1Allpasses = [Reverb1Stages]Stage{
	{3500, 68}, {3495, 50}, {3480, 40}, {3505, 50}, {3520, 40},
}

// Reverb1Params configures a Reverb1.
type Reverb1Params struct {
	MixPct    float64
	Allpasses [Reverb1Stages]Stage
}

// DefaultReverb1Params returns the stock allpass chain at 50 % mix.
func DefaultReverb1Params() Reverb1Params {
	return Reverb1Params{MixPct: DefaultMixPct, Allpasses: defaultReverb1Allpasses}
}

// Reverb1 runs the input through five allpass filters in series.
type Reverb1 struct {
	sampleRate float64
	mix        mixer
	allpasses  [Reverb1Stages]*schroeder.Allpass

	wet     []float64
	chunkFn func(dst, src []float64)
}

// NewReverb1 creates a Reverb1. blockSize sizes the scratch buffer; longer
// blocks are processed in pieces. Invalid stage fields fall back per field.
func NewReverb1(sampleRate float64, blockSize int, p Reverb1Params) (*Reverb1, error) {
	if err := validateSampleRate("reverb1", sampleRate); err != nil {
		return nil, err
	}

	r := &Reverb1{
		sampleRate: sampleRate,
		wet:        make([]float64, blockSizeOrDefault(blockSize)),
	}
	r.chunkFn = r.processChunk
	r.mix.set(p.MixPct)

	for i, st := range p.Allpasses {
		ap, err := schroeder.NewAllpass(sampleRate, st.DelayMs, st.DecayPct)
		if err != nil {
			return nil, fmt.Errorf("reverb1 allpass %d: %w", i, err)
		}
		r.allpasses[i] = ap
	}
	return r, nil
}

// SetAllpass reconfigures allpass stage i, discarding its state.
func (r *Reverb1) SetAllpass(i int, delayMs, decayPct float64) error {
	if i < 0 || i >= Reverb1Stages {
		return stageIndexError("allpass", i, Reverb1Stages)
	}
	return r.allpasses[i].Configure(delayMs, decayPct)
}

// SetMix sets the wet percentage. Values outside [0, 100] select 50.
func (r *Reverb1) SetMix(pct float64) { r.mix.set(pct) }

// ProcessSample processes one sample.
func (r *Reverb1) ProcessSample(x float64) float64 {
	w := x
	for _, ap := range r.allpasses {
		w = ap.ProcessSample(w)
	}
	return r.mix.sample(x, w)
}

// ProcessBlock writes the processed src into dst. dst may alias src.
func (r *Reverb1) ProcessBlock(dst, src []float64) {
	chunks(dst, src, len(r.wet), r.chunkFn)
}

// ProcessInPlace applies the reverb to buf in place.
func (r *Reverb1) ProcessInPlace(buf []float64) {
	r.ProcessBlock(buf, buf)
}

func (r *Reverb1) processChunk(dst, src []float64) {
	wet := r.wet[:len(src)]
	copy(wet, src)
	for _, ap := range r.allpasses {
		ap.ProcessInPlace(wet)
	}
	r.mix.block(dst, src, wet)
}

// Reset clears every stage.
func (r *Reverb1) Reset() {
	for _, ap := range r.allpasses {
		ap.Reset()
	}
}

// Params returns the parameters in effect.
func (r *Reverb1) Params() Reverb1Params {
	p := Reverb1Params{MixPct: r.mix.pct}
	for i, ap := range r.allpasses {
		p.Allpasses[i] = Stage{DelayMs: ap.DelayMs(), DecayPct: ap.Decay()}
	}
	return p
}

// SampleRate returns sample rate in Hz.
func (r *Reverb1) SampleRate() float64 { return r.sampleRate }
