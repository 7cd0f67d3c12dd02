package response

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
)

// Processor is anything that filters a mono buffer in place.
type Processor interface {
	ProcessInPlace(buf []float64)
}

// Capture feeds a unit impulse followed by silence through p and returns
// the first length output samples.
func Capture(p Processor, length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	h := make([]float64, length)
	h[0] = 1
	p.ProcessInPlace(h)

	return h, nil
}

// CaptureUnit drives a configured unit with an impulse on every channel
// and returns the response of the first channel.
func CaptureUnit(u *effectunit.Unit, length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	ctx := u.Context()
	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("response: unit not configured: %w", err)
	}

	data := make([]float64, length*ctx.Channels)
	for ch := 0; ch < ctx.Channels; ch++ {
		data[ch] = 1
	}

	src, err := stream.NewSliceSource(data, ctx.Channels, ctx.SampleRate)
	if err != nil {
		return nil, err
	}

	h := make([]float64, 0, length)
	for !src.Exhausted() {
		b, _ := u.Process(src, ctx.BlockSize)
		for i := 0; i < b.Frames(); i++ {
			h = append(h, b.Samples[i*b.Channels])
		}
	}

	return h, nil
}
