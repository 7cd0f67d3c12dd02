package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
	"github.com/cwbudde/algo-delayfx/internal/audiofile"
	"github.com/cwbudde/algo-delayfx/internal/playback"
	"github.com/cwbudde/algo-delayfx/measure/response"
)

type app struct {
	in       io.Reader
	out      io.Writer
	log      *log.Logger
	terminal bool
	cfg      core.ProcessorConfig
	bits     int
	irMs     float64

	// play streams a configured unit to the audio device.
	play func(ctx context.Context, u *effectunit.Unit, src stream.Source) error
}

// job is one effect run: an input rendered through one configured effect.
type job struct {
	kind    effectunit.Kind
	params  effectunit.Params
	input   string
	output  string
	analyze bool
	tailMs  float64
}

func (a *app) runJob(ctx context.Context, j job) error {
	if j.analyze {
		if err := a.analyze(j); err != nil {
			return err
		}
	}

	if j.input == "" {
		return nil
	}

	src, err := audiofile.Open(j.input)
	if err != nil {
		return err
	}
	defer src.Close()

	a.log.Printf("opened %s: %d ch @ %g Hz", j.input, src.Channels(), src.SampleRate())

	u, err := a.configure(j, effectunit.Context{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
		BlockSize:  a.cfg.BlockSize,
	})
	if err != nil {
		return err
	}

	in := stream.Pad(src, core.MsToSamples(j.tailMs, src.SampleRate()))

	if j.output != "" {
		err = a.renderFile(u, in, j.output)
	} else {
		err = a.play(ctx, u, in)
	}

	if err != nil {
		return err
	}

	if err := src.Err(); err != nil {
		return fmt.Errorf("decoding %s: %w", j.input, err)
	}

	return nil
}

// configure builds the unit and logs every requested value the effect
// replaced.
func (a *app) configure(j job, ctx effectunit.Context) (*effectunit.Unit, error) {
	u := effectunit.New(nil)
	if err := u.Configure(j.kind, j.params, ctx); err != nil {
		return nil, err
	}

	if u.Kind() != j.kind {
		a.log.Printf("unknown effect %s, using %s", j.kind, u.Kind())
	}

	eff := u.Effective()
	for _, key := range j.params.Keys() {
		want, got := j.params.Format(key), eff.Format(key)

		switch {
		case got == "":
			a.log.Printf("%s: unused parameter %q", u.Kind(), key)
		case !sameValue(want, got):
			a.log.Printf("%s: %s=%s not accepted, using %s", u.Kind(), key, want, got)
		}
	}

	a.log.Printf("%s: %s", u.Kind(), formatParams(eff))

	return u, nil
}

func sameValue(want, got string) bool {
	return strings.EqualFold(want, got)
}

func formatParams(p effectunit.Params) string {
	keys := p.Keys()
	parts := make([]string, len(keys))

	for i, k := range keys {
		parts[i] = k + "=" + p.Format(k)
	}

	return strings.Join(parts, " ")
}

func (a *app) renderFile(u *effectunit.Unit, src stream.Source, path string) error {
	w, err := audiofile.Create(path, int(src.SampleRate()), src.Channels(), a.bits)
	if err != nil {
		return err
	}

	for {
		b, res := u.Process(src, a.cfg.BlockSize)

		if err := w.Write(b); err != nil {
			_ = w.Close()
			return err
		}

		if res.Exhausted || res.Frames == 0 {
			break
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	a.log.Printf("wrote %d frames to %s", w.Frames(), path)

	return nil
}

func playLive(ctx context.Context, u *effectunit.Unit, src stream.Source) error {
	p, err := playback.New(int(src.SampleRate()), src.Channels(), 0)
	if err != nil {
		return err
	}
	defer p.Close()

	rd := playback.NewReader(u, src)
	p.Play(rd)

	log.Printf("playing %s (Ctrl+C stops)", u.Kind())

	err = p.Wait(ctx)
	log.Printf("played %d frames", rd.Frames())

	if ctx.Err() != nil {
		return nil
	}

	return err
}

func (a *app) analyze(j job) error {
	u, err := a.configure(j, effectunit.Context{
		SampleRate: a.cfg.SampleRate,
		Channels:   1,
		BlockSize:  a.cfg.BlockSize,
	})
	if err != nil {
		return err
	}

	h, err := response.CaptureUnit(u, max(core.MsToSamples(a.irMs, a.cfg.SampleRate), 1))
	if err != nil {
		return err
	}

	m, err := response.NewAnalyzer(a.cfg.SampleRate).Analyze(h)
	if err != nil {
		return err
	}

	mag, err := response.Magnitude(h, 0)
	if err != nil {
		return err
	}

	onsets := make([]string, 0, 8)
	for i, n := range m.Onsets {
		if i == cap(onsets) {
			onsets = append(onsets, fmt.Sprintf("(+%d)", len(m.Onsets)-i))
			break
		}

		onsets = append(onsets, fmt.Sprintf("%.1f", float64(n)*1000/a.cfg.SampleRate))
	}

	tw := newTable(a.out)
	tw.row("Metric", "Value")
	tw.row("effect", u.Kind().Title())
	tw.row("peak", fmt.Sprintf("%.4f @ %d", m.Peak, m.PeakIndex))
	tw.row("onsets [ms]", strings.Join(onsets, " "))
	tw.row("first echo [ms]", fmt.Sprintf("%.2f", m.FirstEchoMs))
	tw.row("RT60 [s]", fmt.Sprintf("%.3f", m.RT60))
	tw.row("EDT [s]", fmt.Sprintf("%.3f", m.EDT))
	tw.row("center time [ms]", fmt.Sprintf("%.2f", m.CenterTime*1000))
	tw.row("energy", fmt.Sprintf("%.4f", m.Energy))
	tw.row("magnitude ripple [dB]", fmt.Sprintf("%.2f", response.Ripple(mag)))

	return tw.Flush()
}

type table struct {
	*tabwriter.Writer
}

func newTable(w io.Writer) table {
	return table{tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t table) row(cols ...string) {
	fmt.Fprintln(t, strings.Join(cols, "\t"))
}
