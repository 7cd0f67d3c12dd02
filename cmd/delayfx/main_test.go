package main

import (
	"bytes"
	"context"
	"log"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-delayfx/dsp/effectunit"
	"github.com/cwbudde/algo-delayfx/dsp/stream"
	"github.com/cwbudde/algo-delayfx/internal/audiofile"
	"github.com/cwbudde/algo-delayfx/internal/testutil"
)

type testApp struct {
	*app
	stdout *bytes.Buffer
	logs   *bytes.Buffer
	played int
}

func newTestApp(stdin string) *testApp {
	ta := &testApp{stdout: &bytes.Buffer{}, logs: &bytes.Buffer{}}
	ta.app = &app{
		in:  strings.NewReader(stdin),
		out: ta.stdout,
		log: log.New(ta.logs, "", 0),
		play: func(_ context.Context, u *effectunit.Unit, src stream.Source) error {
			ta.played++
			for !src.Exhausted() {
				if _, res := u.Process(src, 64); res.Frames == 0 {
					break
				}
			}

			return nil
		},
	}

	return ta
}

func writeImpulse(t *testing.T, path string, frames int) {
	t.Helper()

	w, err := audiofile.Create(path, 8000, 1, 16)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := w.WriteSamples(testutil.Impulse(frames, 0)); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func readAll(t *testing.T, path string) []float64 {
	t.Helper()

	src, err := audiofile.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	return stream.Drain(src, 256)
}

func TestListKinds(t *testing.T) {
	ta := newTestApp("")

	if err := ta.run(context.Background(), []string{"-list"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, k := range effectunit.Kinds() {
		if !strings.Contains(ta.stdout.String(), k.Title()) {
			t.Fatalf("-list output missing %q:\n%s", k.Title(), ta.stdout)
		}
	}
}

func TestListParams(t *testing.T) {
	ta := newTestApp("")

	if err := ta.run(context.Background(), []string{"-params", "flanger"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := ta.stdout.String()
	for _, want := range []string{"decay", "shape", "sine|saw|triangle|square", "interp"} {
		if !strings.Contains(out, want) {
			t.Fatalf("-params output missing %q:\n%s", want, out)
		}
	}
}

func TestBatchRenderToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeImpulse(t, in, 64)

	ta := newTestApp("")

	args := []string{"-effect", "single", "-set", "delay=2", "-set", "wet=0.5", "-out", out, "-tail", "4", in}
	if err := ta.run(context.Background(), args); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := readAll(t, out)
	if len(got) != 64+32 {
		t.Fatalf("len(out) = %d, want 96", len(got))
	}

	if math.Abs(got[0]-1) > 1e-3 || math.Abs(got[16]-0.5) > 1e-3 || got[8] != 0 {
		t.Fatalf("out[0], out[8], out[16] = %v, %v, %v, want 1, 0, 0.5", got[0], got[8], got[16])
	}

	if !strings.Contains(ta.logs.String(), "single: delay=2 dry=1 wet=0.5") {
		t.Fatalf("effective parameters not logged:\n%s", ta.logs)
	}
}

func TestBatchLogsReplacedParameters(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	writeImpulse(t, in, 16)

	ta := newTestApp("")

	args := []string{"-effect", "feedback", "-set", "decay=250", "-set", "bogus=1", in}
	if err := ta.run(context.Background(), args); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	logs := ta.logs.String()
	if !strings.Contains(logs, "decay=250 not accepted") {
		t.Fatalf("replacement not logged:\n%s", logs)
	}

	if !strings.Contains(logs, `unused parameter "bogus"`) {
		t.Fatalf("unused parameter not logged:\n%s", logs)
	}

	if ta.played != 1 {
		t.Fatalf("played = %d, want 1", ta.played)
	}
}

func TestAnalyze(t *testing.T) {
	ta := newTestApp("")

	args := []string{"-effect", "feedback", "-set", "decay=50", "-set", "delay=10", "-rate", "1000", "-ir", "500", "-analyze"}
	if err := ta.run(context.Background(), args); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := ta.stdout.String()
	for _, want := range []string{"Feedback Delay", "RT60 [s]", "first echo [ms]", "10.00", "0.0 10.0 20.0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("analysis missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no effect", []string{"in.wav"}},
		{"unknown effect", []string{"-effect", "wah", "in.wav"}},
		{"no input", []string{"-effect", "single"}},
		{"two inputs", []string{"-effect", "single", "a.wav", "b.wav"}},
		{"bad assignment", []string{"-effect", "single", "-set", "novalue", "in.wav"}},
		{"unsupported input", []string{"-effect", "single", "in.flac"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp("")
			if err := ta.run(context.Background(), tt.args); err == nil {
				t.Fatalf("run(%v) should fail", tt.args)
			}
		})
	}
}

func TestInteractiveSession(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "echo")
	writeImpulse(t, in, 32)

	script := strings.Join([]string{
		"song.xyz", // rejected
		in,
		"2", // rejected output mode
		"1",
		out,
		"9", // rejected kind
		"1",
		"",    // dry default
		"abc", // rejected number
		"0.5",
		"2",
		"n",
	}, "\n") + "\n"

	ta := newTestApp(script)

	if err := ta.run(context.Background(), []string{"-i"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := readAll(t, out+".wav")
	if math.Abs(got[16]-0.5) > 1e-3 {
		t.Fatalf("out[16] = %v, want 0.5", got[16])
	}

	prompts := ta.stdout.String()
	for _, want := range []string{
		"Unsupported file type",
		"Invalid choice",
		"Not a number",
		"Enter delay (ms) (0-1000) [200]: ",
		"Would you like to run the program again (y/n)? ",
	} {
		if !strings.Contains(prompts, want) {
			t.Fatalf("prompts missing %q:\n%s", want, prompts)
		}
	}
}

func TestInteractiveChorusSkipsUnusedTaps(t *testing.T) {
	var answers []string
	answers = append(answers, "", "", "1", "15", "1", "triangle", "", "", "")

	p := newPrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), &bytes.Buffer{})

	params, err := promptParams(p, effectunit.Chorus)
	if err != nil {
		t.Fatalf("promptParams() error = %v", err)
	}

	if got := params.GetInt("taps", 0); got != 1 {
		t.Fatalf("taps = %d, want 1", got)
	}

	if _, ok := params.Num["delay2"]; ok {
		t.Fatal("delay2 prompted with one tap")
	}

	if got := params.GetStr("mod1.shape", ""); got != "triangle" {
		t.Fatalf("mod1.shape = %q, want triangle", got)
	}

	if got := params.GetStr("interp", ""); got != "linear" {
		t.Fatalf("interp = %q, want linear", got)
	}
}

func TestInteractiveEndsOnEOF(t *testing.T) {
	ta := newTestApp("")

	if err := ta.run(context.Background(), []string{"-i"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.HasPrefix(ta.stdout.String(), "Enter the path") {
		t.Fatalf("unexpected output:\n%s", ta.stdout)
	}
}
