package reverb

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-delayfx/dsp/core"
)

// DefaultMixPct is the dry/wet balance used when none or an invalid one is
// given.
const DefaultMixPct = 50.0

// ErrStageIndex is returned by the per-stage setters for an index outside
// the topology.
var ErrStageIndex = errors.New("reverb: stage index out of range")

// Stage configures an allpass or comb stage.
type Stage struct {
	DelayMs  float64
	DecayPct float64
}

// LowPassStage configures a low-pass comb stage.
type LowPassStage struct {
	DelayMs   float64
	Decay1Pct float64
	Decay2Pct float64
}

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, sampleRate)
	}
	return nil
}

func stageIndexError(kind string, i, n int) error {
	return fmt.Errorf("%w: %s %d not in [0, %d)", ErrStageIndex, kind, i, n)
}

// mixer blends the dry input with the wet path.
type mixer struct {
	pct float64
	dry float64
	wet float64
}

func (m *mixer) set(pct float64) {
	if !core.InRange(pct, 0, 100) {
		pct = DefaultMixPct
	}
	m.pct = pct
	m.wet = core.Percent(pct)
	m.dry = 1 - m.wet
}

func (m *mixer) sample(x, w float64) float64 {
	return core.ClampSymmetric(m.dry*x+m.wet*w, core.FilterCeiling)
}

// block writes the mix of src and wet into dst. wet is scaled in place.
func (m *mixer) block(dst, src, wet []float64) {
	vecmath.ScaleBlockInPlace(wet, m.wet)
	vecmath.ScaleBlock(dst, src, m.dry)
	vecmath.AddBlockInPlace(dst, wet)
	core.ClampBlock(dst, core.FilterCeiling)
}

func blockSizeOrDefault(blockSize int) int {
	if blockSize <= 0 {
		return core.DefaultBlockSize
	}
	return blockSize
}

// chunks calls fn over consecutive spans of at most size samples.
func chunks(dst, src []float64, size int, fn func(dst, src []float64)) {
	n := min(len(dst), len(src))
	for off := 0; off < n; off += size {
		end := min(off+size, n)
		fn(dst[off:end], src[off:end])
	}
}
