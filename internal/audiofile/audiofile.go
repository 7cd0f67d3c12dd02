package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Errors returned by the decoders and the writer.
var (
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")
	ErrInvalidFile       = errors.New("audiofile: invalid file")
	ErrBitDepth          = errors.New("audiofile: unsupported bit depth")
)

// Decoder turns a seekable byte stream into a sample reader.
type Decoder interface {
	Decode(r io.ReadSeeker) (SampleReader, error)
}

// SampleReader yields interleaved float32 samples in [-1, 1].
//
// ReadSamples returns the number of values written to dst; n == 0 with
// io.EOF ends the stream.
type SampleReader interface {
	SampleRate() int
	Channels() int
	ReadSamples(dst []float32) (n int, err error)
}

var (
	mu       sync.Mutex
	decoders = map[string]Decoder{
		".wav":  wavDecoder{},
		".wave": wavDecoder{},
		".aif":  aiffDecoder{},
		".aiff": aiffDecoder{},
		".mp3":  mp3Decoder{},
		".ogg":  vorbisDecoder{},
		".oga":  vorbisDecoder{},
	}
)

// Register adds or replaces the decoder used for files with extension ext.
func Register(ext string, d Decoder) {
	mu.Lock()
	defer mu.Unlock()

	decoders[normalizeExt(ext)] = d
}

// Lookup returns the decoder registered for the extension of path.
func Lookup(path string) (Decoder, bool) {
	mu.Lock()
	defer mu.Unlock()

	d, ok := decoders[normalizeExt(filepath.Ext(path))]

	return d, ok
}

// Extensions returns the registered extensions, unsorted.
func Extensions() []string {
	mu.Lock()
	defer mu.Unlock()

	out := make([]string, 0, len(decoders))
	for ext := range decoders {
		out = append(out, ext)
	}

	return out
}

// Open decodes the file at path and returns it as a stream source. The
// caller must Close it.
func Open(path string) (*Source, error) {
	d, ok := Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	sr, err := d.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audiofile: decoding %s: %w", path, err)
	}

	src, err := NewSource(sr)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	src.closer = f

	return src, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
