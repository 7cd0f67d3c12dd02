package audiofile

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

type pcmDecoder interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// pcmReader normalizes integer PCM from the go-audio decoders.
type pcmReader struct {
	dec        pcmDecoder
	format     *goaudio.Format
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
}

func newPCMReader(dec pcmDecoder, bitDepth int) (*pcmReader, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrInvalidFile
	}

	var scale float32

	switch bitDepth {
	case 16:
		scale = 1.0 / 32768
	case 24:
		scale = 1.0 / 8388608
	case 32:
		scale = 1.0 / 2147483648
	default:
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	return &pcmReader{
		dec:        dec,
		format:     format,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}, nil
}

func (r *pcmReader) SampleRate() int { return r.sampleRate }
func (r *pcmReader) Channels() int   { return r.channels }

func (r *pcmReader) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if r.buf == nil || cap(r.buf.Data) < len(dst) {
		r.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: r.format}
	}

	r.buf.Data = r.buf.Data[:len(dst)]

	n, err := r.dec.PCMBuffer(r.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}

		return 0, io.EOF
	}

	for i, v := range r.buf.Data[:n] {
		dst[i] = float32(v) * r.scale
	}

	return n, err
}

type wavDecoder struct{}

func (wavDecoder) Decode(rs io.ReadSeeker) (SampleReader, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}

	dec.ReadInfo()

	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%w: WAV audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	return newPCMReader(dec, int(dec.BitDepth))
}

type aiffDecoder struct{}

func (aiffDecoder) Decode(rs io.ReadSeeker) (SampleReader, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}

	dec.ReadInfo()

	return newPCMReader(dec, int(dec.BitDepth))
}

type mp3Stream interface {
	Read(p []byte) (int, error)
	SampleRate() int
}

// mp3Reader converts go-mp3's 16-bit little-endian stereo output.
type mp3Reader struct {
	dec mp3Stream
	buf []byte
}

func (r *mp3Reader) SampleRate() int { return r.dec.SampleRate() }
func (r *mp3Reader) Channels() int   { return 2 }

func (r *mp3Reader) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}

	r.buf = r.buf[:need]

	n, err := r.dec.Read(r.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}

		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(r.buf[2*i:]))
		dst[i] = float32(v) / 32768
	}

	return samples, err
}

type mp3Decoder struct{}

func (mp3Decoder) Decode(rs io.ReadSeeker) (SampleReader, error) {
	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return &mp3Reader{dec: dec}, nil
}

type vorbisDecoder struct{}

func (vorbisDecoder) Decode(rs io.ReadSeeker) (SampleReader, error) {
	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return &vorbisReader{dec: dec}, nil
}

type vorbisStream interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type vorbisReader struct {
	dec vorbisStream
}

func (r *vorbisReader) SampleRate() int { return r.dec.SampleRate() }
func (r *vorbisReader) Channels() int   { return r.dec.Channels() }

func (r *vorbisReader) ReadSamples(dst []float32) (int, error) {
	ch := r.dec.Channels()

	whole := len(dst) - len(dst)%ch
	if whole == 0 {
		return 0, nil
	}

	return r.dec.Read(dst[:whole])
}
