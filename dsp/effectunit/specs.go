package effectunit

import (
	"strconv"

	"github.com/cwbudde/algo-delayfx/dsp/effects"
	"github.com/cwbudde/algo-delayfx/dsp/effects/modulation"
	"github.com/cwbudde/algo-delayfx/dsp/effects/reverb"
	"github.com/cwbudde/algo-delayfx/dsp/filter/schroeder"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

// ParamSpec describes one parameter of a kind for prompting and listing.
type ParamSpec struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Default float64

	// Choices is set for string parameters; DefaultChoice is then the
	// default instead of Default.
	Choices       []string
	DefaultChoice string

	// CountKey and Index mark a parameter that only applies while the
	// value of CountKey is at least Index.
	CountKey string
	Index    int
}

// IsText reports whether the parameter takes one of Choices.
func (s ParamSpec) IsText() bool { return len(s.Choices) > 0 }

var (
	shapeChoices  = []string{"sine", "saw", "triangle", "square"}
	interpChoices = []string{"linear", "bandlimited"}
)

// ParamSpecs lists the parameters of kind in prompting order. It returns
// nil for an unknown kind.
func ParamSpecs(kind Kind) []ParamSpec {
	switch kind {
	case SingleDelay:
		d := effects.DefaultSingleDelayParams()

		return []ParamSpec{
			{Key: "dry", Label: "dry gain", Min: 0, Max: 1, Default: d.Dry},
			{Key: "wet", Label: "wet gain", Min: 0, Max: 1, Default: d.Wet},
			{Key: "delay", Label: "delay (ms)", Min: 0, Max: effects.MaxDelayMs, Default: d.DelayMs},
		}
	case DoubleDelay:
		d := effects.DefaultDoubleDelayParams()

		return []ParamSpec{
			{Key: "dry", Label: "dry gain", Min: 0, Max: 1, Default: d.Dry},
			{Key: "wet1", Label: "first wet gain", Min: 0, Max: 1, Default: d.Wet1},
			{Key: "wet2", Label: "second wet gain", Min: 0, Max: 1, Default: d.Wet2},
			{Key: "delay1", Label: "first delay (ms)", Min: 0, Max: effects.MaxDelayMs, Default: d.Delay1Ms},
			{Key: "delay2", Label: "second delay (ms)", Min: 0, Max: effects.MaxDelayMs, Default: d.Delay2Ms},
		}
	case FeedbackDelay:
		d := effects.DefaultFeedbackDelayParams()

		return []ParamSpec{
			{Key: "gain", Label: "output gain", Min: 0, Max: 2, Default: d.Gain},
			{Key: "decay", Label: "decay (%)", Min: 0, Max: 99.99, Default: d.DecayPct},
			{Key: "delay", Label: "delay (ms)", Min: 0, Max: effects.MaxDelayMs, Default: d.DelayMs},
		}
	case Chorus:
		return chorusSpecs()
	case Flanger:
		d := modulation.DefaultFlangerParams()
		specs := []ParamSpec{
			{Key: "decay", Label: "decay (%)", Min: 0, Max: 100, Default: d.DecayPct},
			{Key: "delay", Label: "delay (ms)", Min: 0, Max: modulation.MaxDelayMs, Default: d.DelayMs},
		}
		specs = append(specs, modulatorSpecs("", "", 0)...)

		return append(specs, interpSpec())
	case Reverb1:
		d := reverb.DefaultReverb1Params()
		specs := []ParamSpec{mixSpec(d.MixPct)}

		for i, st := range d.Allpasses {
			specs = append(specs, stageSpecs(indexed("ap", i), "allpass "+strconv.Itoa(i+1), schroeder.AllpassMaxDelayMs, st)...)
		}

		return specs
	case Reverb2:
		d := reverb.DefaultReverb2Params()
		specs := []ParamSpec{mixSpec(d.MixPct)}

		for i, st := range d.Combs {
			specs = append(specs, stageSpecs(indexed("comb", i), "comb "+strconv.Itoa(i+1), schroeder.CombMaxDelayMs, st)...)
		}

		for i, st := range d.Allpasses {
			specs = append(specs, stageSpecs(indexed("ap", i), "allpass "+strconv.Itoa(i+1), schroeder.AllpassMaxDelayMs, st)...)
		}

		return specs
	case Reverb3:
		d := reverb.DefaultReverb3Params()
		specs := []ParamSpec{mixSpec(d.MixPct)}

		for i, st := range d.Combs {
			prefix := indexed("lpc", i)
			label := "low-pass comb " + strconv.Itoa(i+1)
			specs = append(specs,
				ParamSpec{Key: prefix + ".delay", Label: label + " delay (ms)", Min: 0, Max: schroeder.CombMaxDelayMs, Default: st.DelayMs},
				ParamSpec{Key: prefix + ".decay1", Label: label + " decay 1 (%)", Min: 0, Max: 99.99, Default: st.Decay1Pct},
				ParamSpec{Key: prefix + ".decay2", Label: label + " decay 2 (%)", Min: 0, Max: 99.99, Default: st.Decay2Pct},
			)
		}

		return append(specs, stageSpecs("ap", "allpass", schroeder.AllpassMaxDelayMs, d.Allpass)...)
	default:
		return nil
	}
}

func chorusSpecs() []ParamSpec {
	d := modulation.DefaultMultiChorusParams()
	specs := []ParamSpec{
		{Key: "dry", Label: "dry (%)", Min: 0, Max: 100, Default: d.DryPct},
		{Key: "wet", Label: "wet (%)", Min: 0, Max: 100, Default: d.WetPct},
		{Key: "taps", Label: "number of delays", Min: 1, Max: modulation.MaxTaps, Default: float64(len(d.DelaysMs))},
	}

	for i, ms := range d.DelaysMs {
		specs = append(specs, ParamSpec{
			Key: chorusDelayKey(i), Label: "delay " + strconv.Itoa(i+1) + " (ms)",
			Min: 0, Max: modulation.MaxDelayMs, Default: ms,
			CountKey: "taps", Index: i + 1,
		})
	}

	specs = append(specs, ParamSpec{
		Key: "modulators", Label: "number of modulators",
		Min: 1, Max: modulation.MaxTaps, Default: float64(len(d.Modulators)),
	})

	for i := 0; i < modulation.MaxTaps; i++ {
		specs = append(specs, modulatorSpecs(chorusModPrefix(i), "modulator "+strconv.Itoa(i+1)+" ", i+1)...)
	}

	return append(specs, interpSpec())
}

func modulatorSpecs(prefix, label string, index int) []ParamSpec {
	d := lfo.DefaultConfig()
	count := ""

	if index > 0 {
		count = "modulators"
	}

	return []ParamSpec{
		{Key: prefix + "shape", Label: label + "shape", Choices: shapeChoices, DefaultChoice: d.Shape.String(), CountKey: count, Index: index},
		{Key: prefix + "rate", Label: label + "frequency (Hz)", Min: lfo.MinFrequency, Max: lfo.MaxFrequency, Default: d.Frequency, CountKey: count, Index: index},
		{Key: prefix + "depth", Label: label + "depth (%)", Min: 0, Max: lfo.MaxDepth * 100, Default: d.Depth * 100, CountKey: count, Index: index},
	}
}

func interpSpec() ParamSpec {
	return ParamSpec{Key: "interp", Label: "interpolation", Choices: interpChoices, DefaultChoice: interpChoices[0]}
}

func mixSpec(def float64) ParamSpec {
	return ParamSpec{Key: "mix", Label: "mix (%)", Min: 0, Max: 100, Default: def}
}

func stageSpecs(prefix, label string, maxMs float64, st reverb.Stage) []ParamSpec {
	return []ParamSpec{
		{Key: prefix + ".delay", Label: label + " delay (ms)", Min: 0, Max: maxMs, Default: st.DelayMs},
		{Key: prefix + ".decay", Label: label + " decay (%)", Min: 0, Max: 99.99, Default: st.DecayPct},
	}
}

// Applies reports whether s is in use under p. An unset count is assumed
// to cover the parameter.
func (s ParamSpec) Applies(p Params) bool {
	if s.CountKey == "" {
		return true
	}

	return p.GetInt(s.CountKey, s.Index) >= s.Index
}
