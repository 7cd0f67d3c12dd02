package buffer

// Planar holds one Buffer per channel, all of the same length.
type Planar struct {
	channels []*Buffer
}

// NewPlanar allocates channels buffers of frames samples each.
func NewPlanar(channels, frames int) *Planar {
	p := &Planar{}
	p.Resize(channels, frames)
	return p
}

// Resize sets the channel count and per-channel length. Existing capacity
// is reused.
func (p *Planar) Resize(channels, frames int) {
	if channels < 0 {
		channels = 0
	}
	for len(p.channels) < channels {
		p.channels = append(p.channels, New(0))
	}
	p.channels = p.channels[:channels]
	for _, b := range p.channels {
		b.Resize(frames)
	}
}

// Channels returns the number of channels.
func (p *Planar) Channels() int {
	return len(p.channels)
}

// Frames returns the per-channel length.
func (p *Planar) Frames() int {
	if len(p.channels) == 0 {
		return 0
	}
	return p.channels[0].Len()
}

// Channel returns the samples of channel ch.
func (p *Planar) Channel(ch int) []float64 {
	return p.channels[ch].Samples()
}

// Deinterleave splits the interleaved src into the channel buffers and
// returns the number of frames copied. Frames beyond the planar length are
// ignored.
func (p *Planar) Deinterleave(src []float64) int {
	nch := len(p.channels)
	if nch == 0 {
		return 0
	}
	frames := min(len(src)/nch, p.Frames())
	for ch, b := range p.channels {
		dst := b.Samples()
		for i := 0; i < frames; i++ {
			dst[i] = src[i*nch+ch]
		}
	}
	return frames
}

// Interleave writes the first frames samples of every channel into dst.
func (p *Planar) Interleave(dst []float64, frames int) {
	nch := len(p.channels)
	for ch, b := range p.channels {
		src := b.Samples()
		for i := 0; i < frames; i++ {
			dst[i*nch+ch] = src[i]
		}
	}
}

// Zero clears every channel.
func (p *Planar) Zero() {
	for _, b := range p.channels {
		b.Zero()
	}
}
