package core

// Defaults for a processing stream.
const (
	DefaultSampleRate = 44100.0
	DefaultBlockSize  = 256
	DefaultChannels   = 2
)

// ProcessorConfig carries the stream settings effects size their buffers
// from.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	Channels   int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 44.1 kHz stereo with 256-frame blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
		Channels:   DefaultChannels,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.SampleRate = sampleRate }
}

// WithBlockSize sets the block size in frames.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.BlockSize = blockSize }
}

// WithChannels sets the interleaved channel count.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.Channels = channels }
}

// ApplyProcessorOptions starts from DefaultProcessorConfig, applies opts in
// order and then restores the default for any field left unusable.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cfg.normalize()

	return cfg
}

func (c *ProcessorConfig) normalize() {
	if !(c.SampleRate > 0) || !IsFinite(c.SampleRate) {
		c.SampleRate = DefaultSampleRate
	}

	if c.BlockSize <= 0 {
		c.BlockSize = DefaultBlockSize
	}

	if c.Channels <= 0 {
		c.Channels = DefaultChannels
	}
}
