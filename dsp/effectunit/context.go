package effectunit

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
)

// ErrInvalidContext is returned when a context cannot host an effect.
var ErrInvalidContext = errors.New("effectunit: invalid context")

// Context provides the stream-wide settings every runtime is built for.
type Context struct {
	SampleRate float64
	Channels   int
	BlockSize  int
}

// NewContext derives a Context from a processor configuration.
func NewContext(cfg core.ProcessorConfig) Context {
	return Context{
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
		BlockSize:  cfg.BlockSize,
	}
}

// Validate reports whether every field is positive.
func (c Context) Validate() error {
	if c.SampleRate <= 0 || !core.IsFinite(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidContext, c.SampleRate)
	}

	if c.Channels <= 0 {
		return fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidContext, c.Channels)
	}

	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be > 0: %d", ErrInvalidContext, c.BlockSize)
	}

	return nil
}
