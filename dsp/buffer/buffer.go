package buffer

// Buffer is a mono scratch slice whose capacity is kept across Resize
// calls, so a source can hand out blocks of varying length without
// allocating in steady state.
type Buffer struct {
	samples []float64
}

// New returns a zeroed Buffer holding length samples; negative lengths
// give an empty buffer.
func New(length int) *Buffer {
	return &Buffer{samples: make([]float64, max(length, 0))}
}

// Samples returns the live slice. It is invalidated by the next Resize.
func (b *Buffer) Samples() []float64 { return b.samples }

// Len returns the number of live samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Resize sets the live length to n. Samples exposed by growing are zero;
// existing samples keep their values.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	old := len(b.samples)

	if n > cap(b.samples) {
		grown := make([]float64, n)
		copy(grown, b.samples)
		b.samples = grown

		return
	}

	b.samples = b.samples[:n]
	if n > old {
		clear(b.samples[old:])
	}
}

// Zero clears every live sample.
func (b *Buffer) Zero() { clear(b.samples) }

// LoadFloat32 resizes b to len(src) and widens src into it.
func (b *Buffer) LoadFloat32(src []float32) []float64 {
	b.Resize(len(src))

	for i, v := range src {
		b.samples[i] = float64(v)
	}

	return b.samples
}
