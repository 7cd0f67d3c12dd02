package effectunit

import (
	"github.com/cwbudde/algo-delayfx/dsp/effects"
)

type singleRuntime struct {
	fx *effects.SingleDelay
}

func (r *singleRuntime) Configure(ctx Context, p Params) error {
	def := effects.DefaultSingleDelayParams()

	fx, err := effects.NewSingleDelay(ctx.SampleRate, effects.SingleDelayParams{
		Dry:     p.GetNum("dry", def.Dry),
		Wet:     p.GetNum("wet", def.Wet),
		DelayMs: p.GetNum("delay", def.DelayMs),
	})
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *singleRuntime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *singleRuntime) Reset() { r.fx.Reset() }

func (r *singleRuntime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("dry", e.Dry)
	p.SetNum("wet", e.Wet)
	p.SetNum("delay", e.DelayMs)

	return p
}

type doubleRuntime struct {
	fx *effects.DoubleDelay
}

func (r *doubleRuntime) Configure(ctx Context, p Params) error {
	def := effects.DefaultDoubleDelayParams()

	fx, err := effects.NewDoubleDelay(ctx.SampleRate, effects.DoubleDelayParams{
		Dry:      p.GetNum("dry", def.Dry),
		Wet1:     p.GetNum("wet1", def.Wet1),
		Wet2:     p.GetNum("wet2", def.Wet2),
		Delay1Ms: p.GetNum("delay1", def.Delay1Ms),
		Delay2Ms: p.GetNum("delay2", def.Delay2Ms),
	})
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *doubleRuntime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *doubleRuntime) Reset() { r.fx.Reset() }

func (r *doubleRuntime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("dry", e.Dry)
	p.SetNum("wet1", e.Wet1)
	p.SetNum("wet2", e.Wet2)
	p.SetNum("delay1", e.Delay1Ms)
	p.SetNum("delay2", e.Delay2Ms)

	return p
}

type feedbackRuntime struct {
	fx *effects.FeedbackDelay
}

func (r *feedbackRuntime) Configure(ctx Context, p Params) error {
	def := effects.DefaultFeedbackDelayParams()

	fx, err := effects.NewFeedbackDelay(ctx.SampleRate, effects.FeedbackDelayParams{
		Gain:     p.GetNum("gain", def.Gain),
		DecayPct: p.GetNum("decay", def.DecayPct),
		DelayMs:  p.GetNum("delay", def.DelayMs),
	})
	if err != nil {
		return err
	}

	r.fx = fx

	return nil
}

func (r *feedbackRuntime) Process(block []float64) { r.fx.ProcessInPlace(block) }

func (r *feedbackRuntime) Reset() { r.fx.Reset() }

func (r *feedbackRuntime) Effective() Params {
	e := r.fx.Params()

	var p Params
	p.SetNum("gain", e.Gain)
	p.SetNum("decay", e.DecayPct)
	p.SetNum("delay", e.DelayMs)

	return p
}
