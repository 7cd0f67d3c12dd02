package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
	"github.com/cwbudde/algo-delayfx/internal/audiofile"
)

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

// line prints label and returns the trimmed answer. io.EOF means the user
// closed input.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

// number asks for a value in [s.Min, s.Max]. An empty answer keeps the
// default. Values outside the range are passed on; the effect replaces
// them with its defaults.
func (p *prompter) number(s effectunit.ParamSpec) (float64, error) {
	for {
		ans, err := p.line(fmt.Sprintf("Enter %s (%g-%g) [%g]: ", s.Label, s.Min, s.Max, s.Default))
		if err != nil {
			return 0, err
		}

		if ans == "" {
			return s.Default, nil
		}

		v, err := strconv.ParseFloat(ans, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Not a number, please try again.")
			continue
		}

		if v < s.Min || v > s.Max {
			fmt.Fprintln(p.out, "Value out of range; the default will be used.")
		}

		return v, nil
	}
}

func (p *prompter) choice(s effectunit.ParamSpec) (string, error) {
	for {
		ans, err := p.line(fmt.Sprintf("Enter %s (%s) [%s]: ", s.Label, strings.Join(s.Choices, "/"), s.DefaultChoice))
		if err != nil {
			return "", err
		}

		if ans == "" {
			return s.DefaultChoice, nil
		}

		for _, c := range s.Choices {
			if strings.EqualFold(ans, c) {
				return c, nil
			}
		}

		fmt.Fprintln(p.out, "Unknown choice, please try again.")
	}
}

func (p *prompter) yes(label string) (bool, error) {
	ans, err := p.line(label)
	if err != nil {
		return false, err
	}

	return !strings.HasPrefix(strings.ToLower(ans), "n"), nil
}

// interactive runs jobs assembled from prompts until the user declines
// another run or closes input.
func (a *app) interactive(ctx context.Context) error {
	p := newPrompter(a.in, a.out)

	for {
		j, err := a.promptJob(p)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := a.runJob(ctx, j); err != nil {
			a.log.Printf("run failed: %v", err)
		}

		again, err := p.yes("Would you like to run the program again (y/n)? ")
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (a *app) promptJob(p *prompter) (job, error) {
	var j job

	for {
		path, err := p.line("Enter the path of an input file (wav, aiff, mp3, ogg): ")
		if err != nil {
			return j, err
		}

		if _, ok := audiofile.Lookup(path); ok && path != "" {
			j.input = path
			break
		}

		fmt.Fprintln(p.out, "Unsupported file type, please try again.")
	}

	for {
		mode, err := p.line("Select (0) real-time output or (1) file output: ")
		if err != nil {
			return j, err
		}

		if mode == "0" {
			break
		}

		if mode == "1" {
			name, err := p.line("Enter the name of the output file: ")
			if err != nil {
				return j, err
			}

			if !strings.HasSuffix(strings.ToLower(name), ".wav") {
				name += ".wav"
			}

			j.output = name

			break
		}
	}

	kind, err := a.promptKind(p)
	if err != nil {
		return j, err
	}

	j.kind = kind

	j.params, err = promptParams(p, kind)

	return j, err
}

func (a *app) promptKind(p *prompter) (effectunit.Kind, error) {
	fmt.Fprintln(p.out, "Choose the effect to apply:")

	for _, k := range effectunit.Kinds() {
		fmt.Fprintf(p.out, "   %d) %s\n", int(k), k.Title())
	}

	for {
		ans, err := p.line("Enter choice: ")
		if err != nil {
			return 0, err
		}

		k, err := effectunit.ParseKind(ans)
		if err == nil {
			return k, nil
		}

		fmt.Fprintln(p.out, "Invalid choice, please try again.")
	}
}

// promptParams asks for every parameter of kind in order, skipping those
// a previous answer made irrelevant.
func promptParams(p *prompter, kind effectunit.Kind) (effectunit.Params, error) {
	var params effectunit.Params

	fmt.Fprintf(p.out, "Parameters for %s (press Enter for the default):\n", kind.Title())

	for _, s := range effectunit.ParamSpecs(kind) {
		if !s.Applies(params) {
			continue
		}

		if s.IsText() {
			v, err := p.choice(s)
			if err != nil {
				return params, err
			}

			params.SetStr(s.Key, v)

			continue
		}

		v, err := p.number(s)
		if err != nil {
			return params, err
		}

		params.SetNum(s.Key, v)
	}

	return params, nil
}
