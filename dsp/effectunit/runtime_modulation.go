package effectunit

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/effects/modulation"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

// modulatorFromParams reads prefix+"shape", prefix+"rate" and
// prefix+"depth" (percent). Unparseable shapes become invalid and are
// replaced by the modulator's own default.
func modulatorFromParams(p Params, prefix string) lfo.Config {
	def := lfo.DefaultConfig()

	shape, err := lfo.ParseShape(p.GetText(prefix+"shape", def.Shape.String()))
	if err != nil {
		shape = lfo.Shape(-1)
	}

	return lfo.Config{
		Shape:     shape,
		Frequency: p.GetNum(prefix+"rate", def.Frequency),
		Depth:     core.Percent(p.GetNum(prefix+"depth", def.Depth*100)),
	}
}

func setModulatorParams(p *Params, prefix string, cfg lfo.Config) {
	p.SetStr(prefix+"shape", cfg.Shape.String())
	p.SetNum(prefix+"rate", cfg.Frequency)
	p.SetNum(prefix+"depth", cfg.Depth*100)
}

func modeFromParams(p Params) interp.Mode {
	mode, err := interp.ParseMode(p.GetText("interp", interp.Linear.String()))
	if err != nil {
		return interp.Linear
	}

	return mode
}

func chorusDelayKey(i int) string { return fmt.Sprintf("delay%d", i+1) }

func chorusModPrefix(i int) string { return fmt.Sprintf("mod%d.", i+1) }

type chorusRuntime struct {
	fx *modulation.MultiChorus
}

func (r *chorusRuntime) Configure(ctx Context, p Params) error {
	def := modulation.DefaultMultiChorusParams()

	cp := modulation.MultiChorusParams{
		DryPct:        p.GetNum("dry", def.DryPct),
		WetPct:        p.GetNum("wet", def.WetPct),
		Interpolation: modeFromParams(p),
	}

	// Counts outside their range leave the slices empty so the effect
	// substitutes its defaults.
	if taps := p.GetInt("taps", len(def.DelaysMs)); taps >= 1 && taps <= modulation.MaxTaps {
		cp.DelaysMs = make([]float64, taps)
		for i := range cp.DelaysMs {
			cp.DelaysMs[i] = p.GetNum(chorusDelayKey(i), def.DelaysMs[i])
		}
	}

	if mods := p.GetInt("modulators", len(def.Modulators)); mods >= 1 && mods <= modulation.MaxTaps {
		cp.Modulators = make([]lfo.Config, mods)
		for i := range cp.Modulators {
			cp.Modulators[i] = modulatorFromParams(p, chorusModPrefix(i))
		}
	}

	fx, err := modulation.NewMultiChorus(ctx.SampleRate, cp)
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *chorusRuntime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *chorusRuntime) Reset() { r.fx.Reset() }

func (r *chorusRuntime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("dry", e.DryPct)
	p.SetNum("wet", e.WetPct)
	p.SetNum("taps", float64(len(e.DelaysMs)))
	p.SetNum("modulators", float64(len(e.Modulators)))
	p.SetStr("interp", e.Interpolation.String())

	for i, ms := range e.DelaysMs {
		p.SetNum(chorusDelayKey(i), ms)
	}

	for i, m := range e.Modulators {
		setModulatorParams(&p, chorusModPrefix(i), m)
	}

	return p
}

type flangerRuntime struct {
	fx *modulation.Flanger
}

func (r *flangerRuntime) Configure(ctx Context, p Params) error {
	def := modulation.DefaultFlangerParams()

	fx, err := modulation.NewFlanger(ctx.SampleRate, modulation.FlangerParams{
		DecayPct:      p.GetNum("decay", def.DecayPct),
		DelayMs:       p.GetNum("delay", def.DelayMs),
		Modulator:     modulatorFromParams(p, ""),
		Interpolation: modeFromParams(p),
	})
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *flangerRuntime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *flangerRuntime) Reset() { r.fx.Reset() }

func (r *flangerRuntime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("decay", e.DecayPct)
	p.SetNum("delay", e.DelayMs)
	p.SetStr("interp", e.Interpolation.String())
	setModulatorParams(&p, "", e.Modulator)

	return p
}
