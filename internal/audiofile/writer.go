package audiofile

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-delayfx/dsp/stream"
)

// DefaultBitDepth is the WAV sample width used when none is requested.
const DefaultBitDepth = 16

// Writer encodes interleaved float64 blocks to a PCM WAV file.
type Writer struct {
	f        *os.File
	enc      *wav.Encoder
	channels int
	peak     float64
	buf      *goaudio.IntBuffer
	frames   int
}

// Create opens path for writing. bitDepth is 16 or 24; 0 selects
// DefaultBitDepth.
func Create(path string, sampleRate, channels, bitDepth int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audiofile: sample rate must be > 0: %d", sampleRate)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("audiofile: channels must be > 0: %d", channels)
	}

	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	return &Writer{
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, channels, 1),
		channels: channels,
		peak:     float64(int(1)<<(bitDepth-1) - 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Write appends the samples of b, which must match the writer's channel
// count. Samples outside [-1, 1] are clipped.
func (w *Writer) Write(b stream.Block) error {
	if b.Channels != w.channels {
		return fmt.Errorf("audiofile: block has %d channels, writer has %d", b.Channels, w.channels)
	}

	return w.WriteSamples(b.Samples)
}

// WriteSamples appends interleaved samples.
func (w *Writer) WriteSamples(samples []float64) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}

	w.buf.Data = w.buf.Data[:len(samples)]

	for i, v := range samples {
		v = min(max(v, -1), 1)
		w.buf.Data[i] = int(v * w.peak)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	w.frames += len(samples) / w.channels

	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the WAV header and closes the file.
func (w *Writer) Close() error {
	encErr := w.enc.Close()
	fileErr := w.f.Close()

	if encErr != nil {
		return fmt.Errorf("audiofile: %w", encErr)
	}

	if fileErr != nil {
		return fmt.Errorf("audiofile: %w", fileErr)
	}

	return nil
}
