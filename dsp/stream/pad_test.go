package stream

import (
	"testing"

	"github.com/cwbudde/algo-delayfx/internal/testutil"
)

func TestPadAppendsSilence(t *testing.T) {
	src, err := NewSliceSource([]float64{1, 2, 3, 4}, 2, 1000)
	if err != nil {
		t.Fatalf("NewSliceSource() error = %v", err)
	}

	p := Pad(src, 3)

	got := Drain(p, 2)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 3, 4, 0, 0, 0, 0, 0, 0}, 0)

	if !p.Exhausted() {
		t.Fatal("Exhausted() = false after padding")
	}

	if p.Channels() != 2 || p.SampleRate() != 1000 {
		t.Fatalf("format = %d ch @ %v Hz, want 2 ch @ 1000 Hz", p.Channels(), p.SampleRate())
	}
}

func TestPadZeroReturnsSource(t *testing.T) {
	src, err := NewSliceSource([]float64{1}, 1, 1000)
	if err != nil {
		t.Fatalf("NewSliceSource() error = %v", err)
	}

	if Pad(src, 0) != Source(src) {
		t.Fatal("Pad(src, 0) should return src")
	}
}

func TestPadDoesNotLeakPreviousSamples(t *testing.T) {
	src, err := NewSliceSource([]float64{0.5, 0.5, 0.5}, 1, 1000)
	if err != nil {
		t.Fatalf("NewSliceSource() error = %v", err)
	}

	p := Pad(src, 4)
	_ = p.NextBlock(3)

	b := p.NextBlock(4)
	testutil.RequireSliceNearlyEqual(t, b.Samples, []float64{0, 0, 0, 0}, 0)
}
