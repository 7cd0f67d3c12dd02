package effectunit

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/effects/reverb"
)

func stageFromParams(p Params, prefix string, def reverb.Stage) reverb.Stage {
	return reverb.Stage{
		DelayMs:  p.GetNum(prefix+".delay", def.DelayMs),
		DecayPct: p.GetNum(prefix+".decay", def.DecayPct),
	}
}

func setStageParams(p *Params, prefix string, st reverb.Stage) {
	p.SetNum(prefix+".delay", st.DelayMs)
	p.SetNum(prefix+".decay", st.DecayPct)
}

func indexed(name string, i int) string { return fmt.Sprintf("%s%d", name, i+1) }

type reverb1Runtime struct {
	fx *reverb.Reverb1
}

func (r *reverb1Runtime) Configure(ctx Context, p Params) error {
	def := reverb.DefaultReverb1Params()
	rp := reverb.Reverb1Params{MixPct: p.GetNum("mix", def.MixPct)}

	for i := range rp.Allpasses {
		rp.Allpasses[i] = stageFromParams(p, indexed("ap", i), def.Allpasses[i])
	}

	fx, err := reverb.NewReverb1(ctx.SampleRate, ctx.BlockSize, rp)
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *reverb1Runtime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *reverb1Runtime) Reset() { r.fx.Reset() }

func (r *reverb1Runtime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("mix", e.MixPct)

	for i, st := range e.Allpasses {
		setStageParams(&p, indexed("ap", i), st)
	}

	return p
}

type reverb2Runtime struct {
	fx *reverb.Reverb2
}

func (r *reverb2Runtime) Configure(ctx Context, p Params) error {
	def := reverb.DefaultReverb2Params()
	rp := reverb.Reverb2Params{MixPct: p.GetNum("mix", def.MixPct)}

	for i := range rp.Combs {
		rp.Combs[i] = stageFromParams(p, indexed("comb", i), def.Combs[i])
	}

	for i := range rp.Allpasses {
		rp.Allpasses[i] = stageFromParams(p, indexed("ap", i), def.Allpasses[i])
	}

	fx, err := reverb.NewReverb2(ctx.SampleRate, ctx.BlockSize, rp)
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *reverb2Runtime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *reverb2Runtime) Reset() { r.fx.Reset() }

func (r *reverb2Runtime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("mix", e.MixPct)

	for i, st := range e.Combs {
		setStageParams(&p, indexed("comb", i), st)
	}

	for i, st := range e.Allpasses {
		setStageParams(&p, indexed("ap", i), st)
	}

	return p
}

type reverb3Runtime struct {
	fx *reverb.Reverb3
}

func (r *reverb3Runtime) Configure(ctx Context, p Params) error {
	def := reverb.DefaultReverb3Params()
	rp := reverb.Reverb3Params{
		MixPct:  p.GetNum("mix", def.MixPct),
		Allpass: stageFromParams(p, "ap", def.Allpass),
	}

	for i := range rp.Combs {
		prefix := indexed("lpc", i)
		rp.Combs[i] = reverb.LowPassStage{
			DelayMs:   p.GetNum(prefix+".delay", def.Combs[i].DelayMs),
			Decay1Pct: p.GetNum(prefix+".decay1", def.Combs[i].Decay1Pct),
			Decay2Pct: p.GetNum(prefix+".decay2", def.Combs[i].Decay2Pct),
		}
	}

	fx, err := reverb.NewReverb3(ctx.SampleRate, ctx.BlockSize, rp)
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *reverb3Runtime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *reverb3Runtime) Reset() { r.fx.Reset() }

func (r *reverb3Runtime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("mix", e.MixPct)
	setStageParams(&p, "ap", e.Allpass)

	for i, st := range e.Combs {
		prefix := indexed("lpc", i)
		p.SetNum(prefix+".delay", st.DelayMs)
		p.SetNum(prefix+".decay1", st.Decay1Pct)
		p.SetNum(prefix+".decay2", st.Decay2Pct)
	}

	return p
}
