package stream

// Block is a run of interleaved frames. Samples holds Frames()*Channels
// values.
type Block struct {
	Samples  []float64
	Channels int
}

// Frames returns the number of complete frames in the block.
func (b Block) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Empty reports whether the block carries no frames.
func (b Block) Empty() bool {
	return b.Frames() == 0
}
