package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-delayfx/internal/testutil"
)

func TestSingleDelayImpulse(t *testing.T) {
	d, err := NewSingleDelay(44100, SingleDelayParams{Dry: 1, Wet: 0.5, DelayMs: 10})
	if err != nil {
		t.Fatalf("NewSingleDelay() error = %v", err)
	}
	if got := d.WarmupSamples(); got != 441 {
		t.Fatalf("WarmupSamples() = %d, want 441", got)
	}

	buf := testutil.Impulse(1000, 0)
	d.ProcessInPlace(buf)

	for i, v := range buf {
		want := 0.0
		switch i {
		case 0:
			want = 1
		case 441:
			want = 0.5
		}
		if v != want {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestWarmupSamplesFollowRate(t *testing.T) {
	tests := []struct {
		delayMs float64
		rate    float64
	}{
		{delayMs: 10, rate: 44100},
		{delayMs: 200, rate: 48000},
		{delayMs: 333, rate: 22050},
		{delayMs: 999, rate: 96000},
	}

	for _, tt := range tests {
		d, err := NewSingleDelay(tt.rate, SingleDelayParams{Dry: 1, Wet: 1, DelayMs: tt.delayMs})
		if err != nil {
			t.Fatalf("NewSingleDelay() error = %v", err)
		}
		want := math.Round(tt.delayMs * tt.rate / 1000)
		if diff := math.Abs(float64(d.WarmupSamples()) - want); diff > 1 {
			t.Fatalf("WarmupSamples(%v ms @ %v) = %d, want %v ±1", tt.delayMs, tt.rate, d.WarmupSamples(), want)
		}
	}
}

func TestSingleDelayInvalidParamsUseDefaults(t *testing.T) {
	tests := []SingleDelayParams{
		{Dry: 1.5, Wet: 0.5, DelayMs: 10},
		{Dry: 1, Wet: -0.1, DelayMs: 10},
		{Dry: 1, Wet: 0.5, DelayMs: 1001},
		{Dry: math.NaN(), Wet: 0.5, DelayMs: 10},
	}

	for _, p := range tests {
		d, err := NewSingleDelay(1000, p)
		if err != nil {
			t.Fatalf("NewSingleDelay() error = %v", err)
		}
		if got := d.Params(); got != DefaultSingleDelayParams() {
			t.Fatalf("Params() = %+v, want defaults", got)
		}
	}
}

func TestSingleDelayZeroDelayReadsCurrentSample(t *testing.T) {
	d, _ := NewSingleDelay(1000, SingleDelayParams{Dry: 0.5, Wet: 0.25, DelayMs: 0})
	if got := d.ProcessSample(0.8); math.Abs(got-0.6) > 1e-12 {
		t.Fatalf("ProcessSample() = %v, want 0.6", got)
	}
}

func TestDelayOutputLimited(t *testing.T) {
	d, _ := NewSingleDelay(1000, SingleDelayParams{Dry: 1, Wet: 1, DelayMs: 0})
	if got := d.ProcessSample(0.8); got != 0.999 {
		t.Fatalf("ProcessSample(0.8) = %v, want 0.999", got)
	}
	if got := d.ProcessSample(-0.8); got != -0.999 {
		t.Fatalf("ProcessSample(-0.8) = %v, want -0.999", got)
	}
	if got := d.ProcessSample(0.5); got != 1 {
		t.Fatalf("ProcessSample(0.5) = %v, want 1", got)
	}
}

func TestDoubleDelaySwapsTaps(t *testing.T) {
	d, err := NewDoubleDelay(1000, DoubleDelayParams{
		Dry: 1, Wet1: 0.3, Wet2: 0.7, Delay1Ms: 300, Delay2Ms: 100,
	})
	if err != nil {
		t.Fatalf("NewDoubleDelay() error = %v", err)
	}

	first, second := d.TapDelays()
	if first != 100 || second != 300 {
		t.Fatalf("TapDelays() = (%d, %d), want (100, 300)", first, second)
	}
	p := d.Params()
	if p.Wet1 != 0.7 || p.Wet2 != 0.3 {
		t.Fatalf("wet weights = (%v, %v), want (0.7, 0.3)", p.Wet1, p.Wet2)
	}

	buf := testutil.Impulse(400, 0)
	d.ProcessInPlace(buf)
	want := make([]float64, 400)
	want[0] = 1
	want[100] = 0.7
	want[300] = 0.3
	testutil.RequireSliceNearlyEqual(t, buf, want, 0)
}

func TestDoubleDelayEachTapWarmsUpSeparately(t *testing.T) {
	d, _ := NewDoubleDelay(1000, DoubleDelayParams{
		Dry: 0, Wet1: 0.5, Wet2: 0.25, Delay1Ms: 2, Delay2Ms: 4,
	})

	got := make([]float64, 6)
	d.ProcessBlock(got, testutil.DC(0.4, 6))
	want := []float64{0, 0, 0.2, 0.2, 0.3, 0.3}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFeedbackDelayImpulse(t *testing.T) {
	d, err := NewFeedbackDelay(1000, FeedbackDelayParams{Gain: 1, DecayPct: 50, DelayMs: 3})
	if err != nil {
		t.Fatalf("NewFeedbackDelay() error = %v", err)
	}

	buf := testutil.Impulse(10, 0)
	d.ProcessInPlace(buf)
	want := []float64{1, 0, 0, 0.5, 0, 0, 0.25, 0, 0, 0.125}
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)
}

func TestFeedbackDelayZeroDecayIsGain(t *testing.T) {
	d, _ := NewFeedbackDelay(44100, FeedbackDelayParams{Gain: 0.7, DecayPct: 0, DelayMs: 5})
	src := testutil.DeterministicNoise(7, 0.9, 2048)
	got := make([]float64, len(src))
	d.ProcessBlock(got, src)

	for i := range src {
		if math.Abs(got[i]-0.7*src[i]) > 1e-15 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], 0.7*src[i])
		}
	}
}

func TestFeedbackDelayInvalidDecay(t *testing.T) {
	d, _ := NewFeedbackDelay(1000, FeedbackDelayParams{Gain: 1, DecayPct: 100, DelayMs: 10})
	if got := d.Params(); got != DefaultFeedbackDelayParams() {
		t.Fatalf("Params() = %+v, want defaults", got)
	}
}

func TestDelayReset(t *testing.T) {
	d, _ := NewFeedbackDelay(1000, FeedbackDelayParams{Gain: 1, DecayPct: 60, DelayMs: 4})
	first := testutil.Impulse(32, 0)
	d.ProcessInPlace(first)

	d.Reset()
	second := testutil.Impulse(32, 0)
	d.ProcessInPlace(second)
	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestDelayInvalidSampleRate(t *testing.T) {
	if _, err := NewSingleDelay(0, DefaultSingleDelayParams()); err == nil {
		t.Fatal("expected single delay error")
	}
	if _, err := NewDoubleDelay(math.Inf(1), DefaultDoubleDelayParams()); err == nil {
		t.Fatal("expected double delay error")
	}
	if _, err := NewFeedbackDelay(-44100, DefaultFeedbackDelayParams()); err == nil {
		t.Fatal("expected feedback delay error")
	}
}
