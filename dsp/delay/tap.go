package delay

// Tap is a read cursor trailing the write pointer by a fixed number of
// samples. It starts that many samples before the first cell and is Ready
// once it reaches it; until then the owning unit must leave it out of the
// wet path while still writing input.
type Tap struct {
	pos   int
	delay int
}

// NewTap returns a cursor for a delay of delaySamples.
func NewTap(delaySamples int) Tap {
	if delaySamples < 0 {
		delaySamples = 0
	}
	return Tap{pos: -delaySamples, delay: delaySamples}
}

// Ready reports whether the warm-up has elapsed.
func (t *Tap) Ready() bool {
	return t.pos >= 0
}

// Pos returns the buffer cell the cursor addresses. It is negative during
// warm-up.
func (t *Tap) Pos() int {
	return t.pos
}

// Delay returns the delay in samples.
func (t *Tap) Delay() int {
	return t.delay
}

// Advance moves the cursor one sample, wrapping at size.
func (t *Tap) Advance(size int) {
	t.pos++
	if t.pos >= size {
		t.pos -= size
	}
}

// Reset restarts the warm-up.
func (t *Tap) Reset() {
	t.pos = -t.delay
}
