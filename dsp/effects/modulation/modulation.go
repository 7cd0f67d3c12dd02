package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/delay"
	"github.com/cwbudde/algo-delayfx/dsp/interp"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

// MaxDelayMs is the longest nominal tap delay.
const MaxDelayMs = 100.0

// lineMargin covers the linear neighbour and the current write cell.
const lineMargin = 2

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, sampleRate)
	}

	return nil
}

// newModulatedLine sizes a line for MaxDelayMs stretched by the deepest
// modulation.
func newModulatedLine(sampleRate float64) (*delay.Line, error) {
	return delay.New(delay.Capacity(MaxDelayMs, sampleRate, 1+2*lfo.MaxDepth, lineMargin))
}

func validTapDelay(ms float64) bool {
	return core.InRange(ms, 0, MaxDelayMs) && ms > 0
}

func sanitizeMode(m interp.Mode) interp.Mode {
	if m != interp.Bandlimited {
		return interp.Linear
	}

	return m
}
