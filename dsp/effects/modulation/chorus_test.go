package modulation

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
	"github.com/cwbudde/algo-delayfx/internal/testutil"
)

func steadyModulator() lfo.Config {
	return lfo.Config{Shape: lfo.Sine, Frequency: 2, Depth: 0}
}

func TestMultiChorusUnmodulatedTaps(t *testing.T) {
	for _, mode := range []interp.Mode{interp.Linear, interp.Bandlimited} {
		t.Run(mode.String(), func(t *testing.T) {
			c, err := NewMultiChorus(1000, MultiChorusParams{
				DryPct:        0,
				WetPct:        50,
				DelaysMs:      []float64{4, 2},
				Modulators:    []lfo.Config{steadyModulator()},
				Interpolation: mode,
			})
			if err != nil {
				t.Fatalf("NewMultiChorus() error = %v", err)
			}

			buf := testutil.Impulse(8, 0)
			c.ProcessInPlace(buf)

			want := []float64{0, 0, 0.5, 0, 0.5, 0, 0, 0}
			testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)
		})
	}
}

func TestMultiChorusWarmupIsScaledDry(t *testing.T) {
	c, err := NewMultiChorus(1000, MultiChorusParams{
		DryPct:     30,
		WetPct:     80,
		DelaysMs:   []float64{5, 10, 20},
		Modulators: []lfo.Config{lfo.DefaultConfig()},
	})
	if err != nil {
		t.Fatalf("NewMultiChorus() error = %v", err)
	}

	if got := c.WarmupSamples(); got != 5 {
		t.Fatalf("WarmupSamples() = %d, want 5", got)
	}

	for i := 0; i < 5; i++ {
		x := 0.1 * float64(i+1)
		if got := c.ProcessSample(x); math.Abs(got-0.3*x) > 1e-15 {
			t.Fatalf("sample %d = %v, want %v", i, got, 0.3*x)
		}
	}
}

func TestMultiChorusOutputBounded(t *testing.T) {
	p := DefaultMultiChorusParams()
	p.DryPct = 100
	p.WetPct = 100
	p.Modulators = []lfo.Config{
		{Shape: lfo.Saw, Frequency: 5, Depth: 0.9},
		{Shape: lfo.Square, Frequency: 0.5, Depth: 0.5},
	}

	c, err := NewMultiChorus(44100, p)
	if err != nil {
		t.Fatalf("NewMultiChorus() error = %v", err)
	}

	buf := testutil.DeterministicSine(220, 44100, 0.9, 44100)
	c.ProcessInPlace(buf)
	testutil.RequireFinite(t, buf)

	testutil.RequireBounded(t, buf, 0.9999)
}

func TestMultiChorusModulationMovesTaps(t *testing.T) {
	steady, _ := NewMultiChorus(44100, MultiChorusParams{
		DryPct: 0, WetPct: 50, DelaysMs: []float64{20},
		Modulators: []lfo.Config{steadyModulator()},
	})
	moving, _ := NewMultiChorus(44100, MultiChorusParams{
		DryPct: 0, WetPct: 50, DelaysMs: []float64{20},
		Modulators: []lfo.Config{{Shape: lfo.Sine, Frequency: 5, Depth: 0.5}},
	})

	src := testutil.DeterministicSine(440, 44100, 0.5, 8192)
	a := make([]float64, len(src))
	b := make([]float64, len(src))
	steady.ProcessBlock(a, src)
	moving.ProcessBlock(b, src)

	diff, err := testutil.MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}

	if diff < 1e-3 {
		t.Fatalf("modulated output matches steady output (max diff %g)", diff)
	}
}

func TestMultiChorusSanitize(t *testing.T) {
	tests := []struct {
		name       string
		in         MultiChorusParams
		wantDelays []float64
		wantMods   int
		wantDry    float64
	}{
		{
			name:       "sorted",
			in:         MultiChorusParams{DryPct: 40, WetPct: 60, DelaysMs: []float64{40, 10}, Modulators: []lfo.Config{lfo.DefaultConfig()}},
			wantDelays: []float64{10, 40},
			wantMods:   1,
			wantDry:    40,
		},
		{
			name:       "too many taps",
			in:         MultiChorusParams{DryPct: 40, WetPct: 60, DelaysMs: []float64{1, 2, 3, 4}},
			wantDelays: []float64{10, 20, 40},
			wantMods:   1,
			wantDry:    40,
		},
		{
			name:       "more modulators than taps",
			in:         MultiChorusParams{DryPct: 40, WetPct: 60, DelaysMs: []float64{5, 6}, Modulators: make([]lfo.Config, 3)},
			wantDelays: []float64{5, 6},
			wantMods:   1,
			wantDry:    40,
		},
		{
			name:       "invalid delay and dry",
			in:         MultiChorusParams{DryPct: 150, WetPct: 60, DelaysMs: []float64{0, 120, 30}, Modulators: make([]lfo.Config, 3)},
			wantDelays: []float64{10, 20, 30},
			wantMods:   3,
			wantDry:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sanitize()
			testutil.RequireSliceNearlyEqual(t, got.DelaysMs, tt.wantDelays, 0)

			if len(got.Modulators) != tt.wantMods {
				t.Fatalf("modulators = %d, want %d", len(got.Modulators), tt.wantMods)
			}

			if got.DryPct != tt.wantDry {
				t.Fatalf("DryPct = %v, want %v", got.DryPct, tt.wantDry)
			}

			for i, m := range got.Modulators {
				if !m.Valid() {
					t.Fatalf("modulator %d invalid: %+v", i, m)
				}
			}
		})
	}
}

func TestMultiChorusSanitizeDoesNotMutateInput(t *testing.T) {
	delays := []float64{30, 10}
	_ = MultiChorusParams{DelaysMs: delays}.Sanitize()

	if delays[0] != 30 || delays[1] != 10 {
		t.Fatalf("input delays mutated: %v", delays)
	}
}

func TestMultiChorusResetRestoresState(t *testing.T) {
	c, _ := NewMultiChorus(8000, DefaultMultiChorusParams())
	src := testutil.DeterministicNoise(3, 0.5, 1024)

	first := make([]float64, len(src))
	c.ProcessBlock(first, src)

	c.Reset()

	second := make([]float64, len(src))
	c.ProcessBlock(second, src)
	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestMultiChorusLineCoversDeepestModulation(t *testing.T) {
	c, _ := NewMultiChorus(48000, DefaultMultiChorusParams())

	need := int(math.Ceil(MaxDelayMs * 48 * (1 + 2*lfo.MaxDepth)))
	if c.LineLen() < need {
		t.Fatalf("LineLen() = %d, want >= %d", c.LineLen(), need)
	}
}

func TestMultiChorusInvalidSampleRate(t *testing.T) {
	if _, err := NewMultiChorus(0, DefaultMultiChorusParams()); err == nil {
		t.Fatal("expected error")
	}
}

func TestMultiChorusBandlimitedTapMatchesSincSum(t *testing.T) {
	const rate = 44100.0
	mod := lfo.Config{Shape: lfo.Square, Frequency: 10, Depth: 0.3}

	c, err := NewMultiChorus(rate, MultiChorusParams{
		DryPct:        0,
		WetPct:        100,
		DelaysMs:      []float64{10},
		Modulators:    []lfo.Config{mod},
		Interpolation: interp.Bandlimited,
	})
	if err != nil {
		t.Fatalf("NewMultiChorus() error = %v", err)
	}

	ref, _ := lfo.New(rate, mod)
	src := testutil.DeterministicNoise(11, 0.5, 441+4410)
	d := 441.0
	warmup := c.WarmupSamples()

	for n, x := range src {
		got := c.ProcessSample(x)
		if n < warmup {
			continue
		}

		factor := ref.Next()
		want := sincRef(src[:n+1], float64(n)-d*factor, rate, rate*factor)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d (factor %v) = %v, want %v", n, factor, got, want)
		}

		// Below unit speed the kernel scales the tap by the factor.
		if n == warmup {
			if scaled := 0.7 * src[n-309]; math.Abs(got-scaled) > 1e-9 {
				t.Fatalf("first wet sample = %v, want %v", got, scaled)
			}
		}
	}
}

func TestMultiChorusTwoModulatorsShareOuterTaps(t *testing.T) {
	const rate = 8000.0
	fast := lfo.Config{Shape: lfo.Square, Frequency: 10, Depth: 0.3}
	slow := lfo.Config{Shape: lfo.Square, Frequency: 4, Depth: 0.1}

	c, err := NewMultiChorus(rate, MultiChorusParams{
		DryPct:     0,
		WetPct:     100,
		DelaysMs:   []float64{5.125, 10.25, 15.375},
		Modulators: []lfo.Config{fast, slow},
	})
	if err != nil {
		t.Fatalf("NewMultiChorus() error = %v", err)
	}

	m1, _ := lfo.New(rate, fast)
	m2, _ := lfo.New(rate, slow)
	delays := []float64{41, 82, 123}
	src := testutil.DeterministicNoise(5, 0.3, 2000)
	warmup := c.WarmupSamples()

	var swappedDiff float64

	for n, x := range src {
		got := c.ProcessSample(x)
		if n < warmup {
			continue
		}

		f1, f2 := m1.Next(), m2.Next()
		hist := src[:n+1]
		read := func(k int, factor float64) float64 {
			return linearRef(hist, float64(n)-delays[k]*factor)
		}

		want := read(0, f1) + read(1, f2) + read(2, f1)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", n, got, want)
		}

		swapped := read(0, f1) + read(1, f1) + read(2, f2)
		swappedDiff = math.Max(swappedDiff, math.Abs(got-swapped))
	}

	if swappedDiff < 1e-3 {
		t.Fatalf("output also matches taps 1 and 2 sharing a modulator (max diff %g)", swappedDiff)
	}
}
