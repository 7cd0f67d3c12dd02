package effectunit

// Runtime is the per-channel processing and configuration contract.
type Runtime interface {
	Configure(ctx Context, params Params) error
	Process(block []float64)
	// Effective returns the parameters in force after substitution of
	// defaults.
	Effective() Params
	Reset()
}
