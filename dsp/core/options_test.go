package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []ProcessorOption
		want ProcessorConfig
	}{
		{
			name: "defaults",
			want: ProcessorConfig{SampleRate: 44100, BlockSize: 256, Channels: 2},
		},
		{
			name: "all set",
			opts: []ProcessorOption{WithSampleRate(96000), WithBlockSize(2048), WithChannels(1)},
			want: ProcessorConfig{SampleRate: 96000, BlockSize: 2048, Channels: 1},
		},
		{
			name: "later option wins",
			opts: []ProcessorOption{WithSampleRate(22050), WithSampleRate(8000)},
			want: ProcessorConfig{SampleRate: 8000, BlockSize: 256, Channels: 2},
		},
		{
			name: "unusable values fall back",
			opts: []ProcessorOption{WithSampleRate(math.NaN()), WithBlockSize(-1), WithChannels(0), nil},
			want: ProcessorConfig{SampleRate: 44100, BlockSize: 256, Channels: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ApplyProcessorOptions(tt.opts...); got != tt.want {
				t.Fatalf("ApplyProcessorOptions() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
