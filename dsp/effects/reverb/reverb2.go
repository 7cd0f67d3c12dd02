package reverb

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-delayfx/dsp/filter/schroeder"
)

const (
	// Reverb2Combs is the number of parallel combs in Reverb2.
	Reverb2Combs = 4
	// Reverb2Allpasses is the number of series allpass stages in Reverb2.
	Reverb2Allpasses = 2
)

var (
	defaultReverb2Combs     = [Reverb2Combs]Stage{{32, 50}, {33, 51}, {34, 52}, {35, 53}}
	defaultReverb2Allpasses = [Reverb2Allpasses]Stage{{4995, 65}, {3995, 50}}
)

// Reverb2Params configures a Reverb2.
type Reverb2Params struct {
	MixPct    float64
	Combs     [Reverb2Combs]Stage
	Allpasses [Reverb2Allpasses]Stage
}

// DefaultReverb2Params returns the stock comb bank and allpass pair at 50 %
// mix.
func DefaultReverb2Params() Reverb2Params {
	return Reverb2Params{
		MixPct:    DefaultMixPct,
		Combs:     defaultReverb2Combs,
		Allpasses: defaultReverb2Allpasses,
	}
}

// Reverb2 sums four parallel combs and diffuses the sum through two allpass
// filters in series.
type Reverb2 struct {
	sampleRate float64
	mix        mixer
	combs      [Reverb2Combs]*schroeder.Comb
	allpasses  [Reverb2Allpasses]*schroeder.Allpass

	acc     []float64
	tmp     []float64
	chunkFn func(dst, src []float64)
}

// NewReverb2 creates a Reverb2. blockSize sizes the scratch buffers.
func NewReverb2(sampleRate float64, blockSize int, p Reverb2Params) (*Reverb2, error) {
	if err := validateSampleRate("reverb2", sampleRate); err != nil {
		return nil, err
	}

	n := blockSizeOrDefault(blockSize)
	r := &Reverb2{
		sampleRate: sampleRate,
		acc:        make([]float64, n),
		tmp:        make([]float64, n),
	}
	r.chunkFn = r.processChunk
	r.mix.set(p.MixPct)

	for i, st := range p.Combs {
		c, err := schroeder.NewComb(sampleRate, st.DelayMs, st.DecayPct)
		if err != nil {
			return nil, fmt.Errorf("reverb2 comb %d: %w", i, err)
		}
		r.combs[i] = c
	}
	for i, st := range p.Allpasses {
		ap, err := schroeder.NewAllpass(sampleRate, st.DelayMs, st.DecayPct)
		if err != nil {
			return nil, fmt.Errorf("reverb2 allpass %d: %w", i, err)
		}
		r.allpasses[i] = ap
	}
	return r, nil
}

// SetComb reconfigures comb i, discarding its state.
func (r *Reverb2) SetComb(i int, delayMs, decayPct float64) error {
	if i < 0 || i >= Reverb2Combs {
		return stageIndexError("comb", i, Reverb2Combs)
	}
	return r.combs[i].Configure(delayMs, decayPct)
}

// SetAllpass reconfigures allpass stage i, discarding its state.
func (r *Reverb2) SetAllpass(i int, delayMs, decayPct float64) error {
	if i < 0 || i >= Reverb2Allpasses {
		return stageIndexError("allpass", i, Reverb2Allpasses)
	}
	return r.allpasses[i].Configure(delayMs, decayPct)
}

// SetMix sets the wet percentage. Values outside [0, 100] select 50.
func (r *Reverb2) SetMix(pct float64) { r.mix.set(pct) }

// ProcessSample processes one sample.
func (r *Reverb2) ProcessSample(x float64) float64 {
	w := 0.0
	for _, c := range r.combs {
		w += c.ProcessSample(x)
	}
	for _, ap := range r.allpasses {
		w = ap.ProcessSample(w)
	}
	return r.mix.sample(x, w)
}

// ProcessBlock writes the processed src into dst. dst may alias src.
func (r *Reverb2) ProcessBlock(dst, src []float64) {
	chunks(dst, src, len(r.acc), r.chunkFn)
}

// ProcessInPlace applies the reverb to buf in place.
func (r *Reverb2) ProcessInPlace(buf []float64) {
	r.ProcessBlock(buf, buf)
}

func (r *Reverb2) processChunk(dst, src []float64) {
	acc := r.acc[:len(src)]
	tmp := r.tmp[:len(src)]

	r.combs[0].ProcessBlock(acc, src)
	for _, c := range r.combs[1:] {
		c.ProcessBlock(tmp, src)
		vecmath.AddBlockInPlace(acc, tmp)
	}
	for _, ap := range r.allpasses {
		ap.ProcessInPlace(acc)
	}
	r.mix.block(dst, src, acc)
}

// Reset clears every stage.
func (r *Reverb2) Reset() {
	for _, c := range r.combs {
		c.Reset()
	}
	for _, ap := range r.allpasses {
		ap.Reset()
	}
}

// Params returns the parameters in effect.
func (r *Reverb2) Params() Reverb2Params {
	p := Reverb2Params{MixPct: r.mix.pct}
	for i, c := range r.combs {
		p.Combs[i] = Stage{DelayMs: c.DelayMs(), DecayPct: c.Decay()}
	}
	for i, ap := range r.allpasses {
		p.Allpasses[i] = Stage{DelayMs: ap.DelayMs(), DecayPct: ap.Decay()}
	}
	return p
}

// SampleRate returns sample rate in Hz.
func (r *Reverb2) SampleRate() float64 { return r.sampleRate }
