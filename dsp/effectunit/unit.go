package effectunit

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/buffer"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
)

// Result describes one pull through a Unit.
type Result struct {
	// Frames is the number of frames produced.
	Frames int
	// Exhausted mirrors the source after the pull.
	Exhausted bool
}

// Unit holds one configured effect and applies it to pulled blocks.
type Unit struct {
	registry *Registry
	ctx      Context
	kind     Kind

	runtimes  []Runtime
	planar    *buffer.Planar
	effective Params
}

// New creates an unconfigured Unit backed by reg, or by DefaultRegistry
// when reg is nil. An unconfigured Unit passes audio through.
func New(reg *Registry) *Unit {
	if reg == nil {
		reg = DefaultRegistry()
	}

	return &Unit{registry: reg}
}

// Configure builds one runtime per channel for kind, discarding any prior
// state. A kind without a registered factory falls back to SingleDelay
// with default parameters. Only context and allocation problems are
// errors.
func (u *Unit) Configure(kind Kind, params Params, ctx Context) error {
	err := ctx.Validate()
	if err != nil {
		return err
	}

	factory := u.registry.Lookup(kind)
	if factory == nil {
		kind = SingleDelay
		params = Params{}

		factory = u.registry.Lookup(kind)
		if factory == nil {
			return fmt.Errorf("effectunit: no factory for %s", kind)
		}
	}

	runtimes := make([]Runtime, ctx.Channels)
	for ch := range runtimes {
		rt, err := factory(ctx)
		if err != nil {
			return fmt.Errorf("effectunit: create %s channel %d: %w", kind, ch, err)
		}

		err = rt.Configure(ctx, params)
		if err != nil {
			return fmt.Errorf("effectunit: configure %s channel %d: %w", kind, ch, err)
		}

		runtimes[ch] = rt
	}

	u.ctx = ctx
	u.kind = kind
	u.runtimes = runtimes
	u.planar = buffer.NewPlanar(ctx.Channels, ctx.BlockSize)
	u.effective = runtimes[0].Effective()

	return nil
}

// Process pulls up to frames frames from src and applies the effect in
// place. The returned block is owned by src.
func (u *Unit) Process(src stream.Source, frames int) (stream.Block, Result) {
	b := src.NextBlock(frames)
	u.ProcessBlock(b)

	return b, Result{Frames: b.Frames(), Exhausted: src.Exhausted()}
}

// ProcessBlock applies the effect to b in place. Blocks whose channel count
// differs from the configured context pass through unchanged.
func (u *Unit) ProcessBlock(b stream.Block) {
	if len(u.runtimes) == 0 || b.Channels != len(u.runtimes) {
		return
	}

	frames := b.Frames()
	step := u.planar.Frames()

	for off := 0; off < frames; off += step {
		n := min(step, frames-off)
		span := b.Samples[off*b.Channels : (off+n)*b.Channels]

		u.planar.Deinterleave(span)

		for ch, rt := range u.runtimes {
			rt.Process(u.planar.Channel(ch)[:n])
		}

		u.planar.Interleave(span, n)
	}
}

// Render pulls enough frames from src to fill dst and writes them as
// float32. Samples past the end of the source are zeroed.
func (u *Unit) Render(dst []float32, src stream.Source) Result {
	channels := src.Channels()
	if channels <= 0 {
		return Result{Exhausted: src.Exhausted()}
	}

	b, res := u.Process(src, len(dst)/channels)

	n := copyToFloat32(dst, b.Samples)
	clear(dst[n:])

	return res
}

func copyToFloat32(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}

	return n
}

// Reset clears every runtime's delay state without reconfiguring.
func (u *Unit) Reset() {
	for _, rt := range u.runtimes {
		rt.Reset()
	}
}

// Kind returns the configured kind, or 0 before Configure.
func (u *Unit) Kind() Kind { return u.kind }

// Context returns the configured context.
func (u *Unit) Context() Context { return u.ctx }

// Effective returns a copy of the parameters in force.
func (u *Unit) Effective() Params { return u.effective.Clone() }
