// Command delayfx applies one delay-based effect to an audio file and
// plays the result or writes it to WAV.
//
// Usage:
//
//	delayfx [flags] [input-file]
//
// Without -effect on a terminal it asks for everything interactively and
// offers to run again when done.
//
// Examples:
//
//	delayfx -list
//	delayfx -params chorus
//	delayfx -effect single -set delay=350 -set wet=0.6 -out echo.wav voice.wav
//	delayfx -effect reverb2 -set mix=35 -tail 2000 drums.ogg
//	delayfx -effect feedback -set decay=60 -analyze
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/cwbudde/algo-delayfx/dsp/core"
	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
)

// assignments collects repeated -set key=value flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(s string) error {
	*a = append(*a, s)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("delayfx: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		in:       os.Stdin,
		out:      os.Stdout,
		log:      log.Default(),
		terminal: term.IsTerminal(int(os.Stdin.Fd())),
		play:     playLive,
	}

	err := a.run(ctx, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delayfx", flag.ContinueOnError)
	fs.SetOutput(a.out)

	effect := fs.String("effect", "", "effect name or number (see -list)")
	output := fs.String("out", "", "write the result to this WAV file instead of playing it")
	bits := fs.Int("bits", 16, "output WAV bit depth (16 or 24)")
	tail := fs.Float64("tail", 0, "milliseconds of silence appended to the input")
	block := fs.Int("block", core.DefaultBlockSize, "processing block size in frames")
	rate := fs.Float64("rate", core.DefaultSampleRate, "sample rate used by -analyze without an input file")
	analyze := fs.Bool("analyze", false, "print impulse response metrics of the configured effect")
	irMs := fs.Float64("ir", 2000, "impulse response length for -analyze in milliseconds")
	list := fs.Bool("list", false, "list available effects")
	params := fs.String("params", "", "list parameters of an effect")
	interactive := fs.Bool("i", false, "prompt for all settings")

	var sets assignments
	fs.Var(&sets, "set", "effect parameter as key=value (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: delayfx [flags] [input-file]\n\n")
		fmt.Fprintf(fs.Output(), "Applies a delay, chorus, flanger or reverb effect to an audio file.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	a.cfg = core.ApplyProcessorOptions(core.WithSampleRate(*rate), core.WithBlockSize(*block))
	a.bits = *bits
	a.irMs = *irMs

	switch {
	case *list:
		return a.printKinds()
	case *params != "":
		kind, err := effectunit.ParseKind(*params)
		if err != nil {
			return err
		}

		return a.printParams(kind)
	case *interactive || (*effect == "" && a.terminal):
		return a.interactive(ctx)
	}

	if *effect == "" {
		return errors.New("no effect selected (use -effect or -i)")
	}

	kind, err := effectunit.ParseKind(*effect)
	if err != nil {
		return err
	}

	var p effectunit.Params
	for _, s := range sets {
		if err := p.ParseAssignment(s); err != nil {
			return err
		}
	}

	j := job{
		kind:    kind,
		params:  p,
		output:  *output,
		analyze: *analyze,
		tailMs:  *tail,
	}

	switch fs.NArg() {
	case 0:
		if !j.analyze {
			return errors.New("no input file given")
		}
	case 1:
		j.input = fs.Arg(0)
	default:
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}

	return a.runJob(ctx, j)
}

// printKinds writes the effect menu.
func (a *app) printKinds() error {
	tw := newTable(a.out)
	tw.row("#", "Name", "Effect")

	for _, k := range effectunit.Kinds() {
		tw.row(fmt.Sprint(int(k)), k.String(), k.Title())
	}

	return tw.Flush()
}

func (a *app) printParams(kind effectunit.Kind) error {
	tw := newTable(a.out)
	tw.row("Key", "Description", "Range", "Default")

	for _, s := range effectunit.ParamSpecs(kind) {
		if s.IsText() {
			tw.row(s.Key, s.Label, strings.Join(s.Choices, "|"), s.DefaultChoice)
			continue
		}

		tw.row(s.Key, s.Label, fmt.Sprintf("%g..%g", s.Min, s.Max), fmt.Sprintf("%g", s.Default))
	}

	return tw.Flush()
}
