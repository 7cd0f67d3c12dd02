package modulation

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
	"github.com/cwbudde/algo-delayfx/internal/testutil"
)

func TestFlangerUnmodulatedFeedback(t *testing.T) {
	f, err := NewFlanger(1000, FlangerParams{DecayPct: 50, DelayMs: 3, Modulator: steadyModulator()})
	if err != nil {
		t.Fatalf("NewFlanger() error = %v", err)
	}

	buf := testutil.Impulse(10, 0)
	f.ProcessInPlace(buf)

	want := []float64{1, 0, 0, 0.5, 0, 0, 0.25, 0, 0, 0.125}
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)
}

func TestFlangerWarmupPassesInput(t *testing.T) {
	f, _ := NewFlanger(1000, DefaultFlangerParams())

	if got := f.WarmupSamples(); got != 20 {
		t.Fatalf("WarmupSamples() = %d, want 20", got)
	}

	for i := 0; i < 20; i++ {
		x := math.Sin(float64(i))
		if got := f.ProcessSample(x); got != x {
			t.Fatalf("sample %d = %v, want %v", i, got, x)
		}
	}
}

func TestFlangerOutputBounded(t *testing.T) {
	f, _ := NewFlanger(44100, FlangerParams{
		DecayPct:  100,
		DelayMs:   2,
		Modulator: lfo.Config{Shape: lfo.Triangle, Frequency: 10, Depth: 0.99},
	})

	buf := testutil.DC(0.9, 20000)
	f.ProcessInPlace(buf)

	testutil.RequireBounded(t, buf, 0.9999)
}

func TestFlangerSanitize(t *testing.T) {
	got := FlangerParams{
		DecayPct:  120,
		DelayMs:   0,
		Modulator: lfo.Config{Shape: lfo.Shape(9), Frequency: 20, Depth: 0.5},
	}.Sanitize()

	want := FlangerParams{
		DecayPct:  defaultFlangerDecayPct,
		DelayMs:   defaultFlangerDelayMs,
		Modulator: lfo.Config{Shape: lfo.Sine, Frequency: lfo.DefaultFrequency, Depth: 0.5},
	}
	if got != want {
		t.Fatalf("Sanitize() = %+v, want %+v", got, want)
	}
}

func TestFlangerResetRestoresState(t *testing.T) {
	f, _ := NewFlanger(8000, DefaultFlangerParams())
	src := testutil.DeterministicSine(300, 8000, 0.4, 2048)

	first := make([]float64, len(src))
	f.ProcessBlock(first, src)

	f.Reset()

	second := make([]float64, len(src))
	f.ProcessBlock(second, src)
	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestFlangerInvalidSampleRate(t *testing.T) {
	if _, err := NewFlanger(math.NaN(), DefaultFlangerParams()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFlangerBandlimitedTapMatchesSincSum(t *testing.T) {
	const rate = 44100.0
	mod := lfo.Config{Shape: lfo.Square, Frequency: 10, Depth: 0.3}

	f, err := NewFlanger(rate, FlangerParams{
		DecayPct:      50,
		DelayMs:       10,
		Modulator:     mod,
		Interpolation: interp.Bandlimited,
	})
	if err != nil {
		t.Fatalf("NewFlanger() error = %v", err)
	}

	ref, _ := lfo.New(rate, mod)
	src := testutil.DeterministicNoise(7, 0.3, 441+4410)
	written := make([]float64, 0, len(src))
	warmup := f.WarmupSamples()

	for n, x := range src {
		got := f.ProcessSample(x)

		want := x
		if n >= warmup {
			factor := ref.Next()
			v := sincRef(written, float64(n)-441*factor, rate, rate*factor)
			want = core.ClampSymmetric(x+0.5*v, core.FilterCeiling)
		}

		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", n, got, want)
		}

		written = append(written, want)
	}
}
