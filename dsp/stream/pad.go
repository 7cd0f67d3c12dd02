package stream

import "github.com/cwbudde/algo-delayfx/dsp/buffer"

// PaddedSource appends frames of silence after src is exhausted, letting
// delay and reverb tails ring out.
type PaddedSource struct {
	src     Source
	left    int
	scratch *buffer.Buffer
}

// Pad wraps src with n frames of trailing silence. n <= 0 returns src.
func Pad(src Source, n int) Source {
	if n <= 0 {
		return src
	}

	return &PaddedSource{src: src, left: n, scratch: buffer.New(0)}
}

// NextBlock serves frames from src, then silence.
func (p *PaddedSource) NextBlock(frames int) Block {
	if !p.src.Exhausted() {
		b := p.src.NextBlock(frames)
		if b.Frames() > 0 || !p.src.Exhausted() {
			return b
		}
	}

	n := min(max(frames, 0), p.left)
	p.left -= n

	p.scratch.Resize(n * p.src.Channels())
	p.scratch.Zero()

	return Block{Samples: p.scratch.Samples(), Channels: p.src.Channels()}
}

// Exhausted reports whether src and the padding are both used up.
func (p *PaddedSource) Exhausted() bool {
	return p.src.Exhausted() && p.left == 0
}

// SampleRate returns the wrapped source's rate.
func (p *PaddedSource) SampleRate() float64 { return p.src.SampleRate() }

// Channels returns the wrapped source's channel count.
func (p *PaddedSource) Channels() int { return p.src.Channels() }
