package reverb

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/filter/schroeder"
)

// Reverb3Combs is the number of parallel low-pass combs in Reverb3.
const Reverb3Combs = 6

var (
	defaultReverb3Combs = [Reverb3Combs]LowPassStage{
		{30, 40, 35}, {31, 41, 36}, {32, 42, 37}, {33, 43, 38}, {34, 44, 39}, {35, 45, 40},
	}
	defaultReverb3Allpass = Stage{3500, 30}
)

// Reverb3Params configures a Reverb3.
type Reverb3Params struct {
	MixPct  float64
	Combs   [Reverb3Combs]LowPassStage
	Allpass Stage
}

// DefaultReverb3Params returns the stock low-pass comb bank at 50 % mix.
func DefaultReverb3Params() Reverb3Params {
	return Reverb3Params{
		MixPct:  DefaultMixPct,
		Combs:   defaultReverb3Combs,
		Allpass: defaultReverb3Allpass,
	}
}

// Reverb3 sums six parallel low-pass combs, bounds the sum, and diffuses it
// through one allpass.
type Reverb3 struct {
	sampleRate float64
	mix        mixer
	combs      [Reverb3Combs]*schroeder.LowPassComb
	allpass    *schroeder.Allpass

	acc     []float64
	tmp     []float64
	chunkFn func(dst, src []float64)
}

// NewReverb3 creates a Reverb3. blockSize sizes the scratch buffers.
func NewReverb3(sampleRate float64, blockSize int, p Reverb3Params) (*Reverb3, error) {
	if err := validateSampleRate("reverb3", sampleRate); err != nil {
		return nil, err
	}

	n := blockSizeOrDefault(blockSize)
	r := &Reverb3{
		sampleRate: sampleRate,
		acc:        make([]float64, n),
		tmp:        make([]float64, n),
	}
	r.chunkFn = r.processChunk
	r.mix.set(p.MixPct)

	for i, st := range p.Combs {
		c, err := schroeder.NewLowPassComb(sampleRate, st.DelayMs, st.Decay1Pct, st.Decay2Pct)
		if err != nil {
			return nil, fmt.Errorf("reverb3 low-pass comb %d: %w", i, err)
		}
		r.combs[i] = c
	}

	ap, err := schroeder.NewAllpass(sampleRate, p.Allpass.DelayMs, p.Allpass.DecayPct)
	if err != nil {
		return nil, fmt.Errorf("reverb3 allpass: %w", err)
	}
	r.allpass = ap
	return r, nil
}

// SetLowPassComb reconfigures low-pass comb i, discarding its state.
func (r *Reverb3) SetLowPassComb(i int, delayMs, decay1Pct, decay2Pct float64) error {
	if i < 0 || i >= Reverb3Combs {
		return stageIndexError("low-pass comb", i, Reverb3Combs)
	}
	return r.combs[i].Configure(delayMs, decay1Pct, decay2Pct)
}

// SetAllpass reconfigures the allpass stage. Only index 0 exists.
func (r *Reverb3) SetAllpass(i int, delayMs, decayPct float64) error {
	if i != 0 {
		return stageIndexError("allpass", i, 1)
	}
	return r.allpass.Configure(delayMs, decayPct)
}

// SetMix sets the wet percentage. Values outside [0, 100] select 50.
func (r *Reverb3) SetMix(pct float64) { r.mix.set(pct) }

// ProcessSample processes one sample.
func (r *Reverb3) ProcessSample(x float64) float64 {
	w := 0.0
	for _, c := range r.combs {
		w += c.ProcessSample(x)
	}
	w = r.allpass.ProcessSample(core.ClampSymmetric(w, core.FilterCeiling))
	return r.mix.sample(x, w)
}

// ProcessBlock writes the processed src into dst. dst may alias src.
func (r *Reverb3) ProcessBlock(dst, src []float64) {
	chunks(dst, src, len(r.acc), r.chunkFn)
}

// ProcessInPlace applies the reverb to buf in place.
func (r *Reverb3) ProcessInPlace(buf []float64) {
	r.ProcessBlock(buf, buf)
}

func (r *Reverb3) processChunk(dst, src []float64) {
	acc := r.acc[:len(src)]
	tmp := r.tmp[:len(src)]

	r.combs[0].ProcessBlock(acc, src)
	for _, c := range r.combs[1:] {
		c.ProcessBlock(tmp, src)
		vecmath.AddBlockInPlace(acc, tmp)
	}
	core.ClampBlock(acc, core.FilterCeiling)
	r.allpass.ProcessInPlace(acc)
	r.mix.block(dst, src, acc)
}

// Reset clears every stage.
func (r *Reverb3) Reset() {
	for _, c := range r.combs {
		c.Reset()
	}
	r.allpass.Reset()
}

// Params returns the parameters in effect.
func (r *Reverb3) Params() Reverb3Params {
	p := Reverb3Params{MixPct: r.mix.pct}
	for i, c := range r.combs {
		d1, d2 := c.Decays()
		p.Combs[i] = LowPassStage{DelayMs: c.DelayMs(), Decay1Pct: d1, Decay2Pct: d2}
	}
	p.Allpass = Stage{DelayMs: r.allpass.DelayMs(), DecayPct: r.allpass.Decay()}
	return p
}

// SampleRate returns sample rate in Hz.
func (r *Reverb3) SampleRate() float64 { return r.sampleRate }
