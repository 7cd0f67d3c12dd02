package effectunit

import (
	"math"
	"slices"
	"testing"
)

func TestParamsGetNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Params
		key  string
		def  float64
		want float64
	}{
		{
			name: "existing key returns value",
			p:    Params{Num: map[string]float64{"wet": 0.75}},
			key:  "wet",
			def:  1.0,
			want: 0.75,
		},
		{
			name: "missing key returns default",
			p:    Params{Num: map[string]float64{"wet": 0.75}},
			key:  "dry",
			def:  0.5,
			want: 0.5,
		},
		{
			name: "nil map returns default",
			p:    Params{},
			key:  "wet",
			def:  1.0,
			want: 1.0,
		},
		{
			name: "NaN returns default",
			p:    Params{Num: map[string]float64{"wet": math.NaN()}},
			key:  "wet",
			def:  1.0,
			want: 1.0,
		},
		{
			name: "negative Inf returns default",
			p:    Params{Num: map[string]float64{"wet": math.Inf(-1)}},
			key:  "wet",
			def:  1.0,
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.p.GetNum(tt.key, tt.def)
			if got != tt.want {
				t.Fatalf("GetNum(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
			}
		})
	}
}

func TestParamsGetInt(t *testing.T) {
	t.Parallel()

	p := Params{Num: map[string]float64{"taps": 2.6, "huge": 1e300}}

	if got := p.GetInt("taps", 9); got != 3 {
		t.Fatalf("GetInt(taps) = %d, want 3", got)
	}

	if got := p.GetInt("missing", 7); got != 7 {
		t.Fatalf("GetInt(missing) = %d, want 7", got)
	}

	if got := p.GetInt("huge", 1); got != 1 {
		t.Fatalf("GetInt(huge) = %d, want 1", got)
	}
}

func TestParamsGetText(t *testing.T) {
	t.Parallel()

	var p Params
	p.SetStr("shape", "saw")
	p.SetNum("mod1.shape", 3)
	p.SetStr("empty", "")

	tests := []struct {
		key  string
		want string
	}{
		{"shape", "saw"},
		{"mod1.shape", "3"},
		{"empty", "def"},
		{"missing", "def"},
	}

	for _, tt := range tests {
		if got := p.GetText(tt.key, "def"); got != tt.want {
			t.Fatalf("GetText(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParamsParseAssignment(t *testing.T) {
	t.Parallel()

	var p Params

	for _, s := range []string{"delay=250", " Wet = 0.5", "interp=bandlimited", "mod1.shape=square"} {
		if err := p.ParseAssignment(s); err != nil {
			t.Fatalf("ParseAssignment(%q) error = %v", s, err)
		}
	}

	if got := p.GetNum("delay", 0); got != 250 {
		t.Fatalf("delay = %v, want 250", got)
	}

	if got := p.GetNum("wet", 0); got != 0.5 {
		t.Fatalf("wet = %v, want 0.5", got)
	}

	if got := p.GetStr("interp", ""); got != "bandlimited" {
		t.Fatalf("interp = %q, want bandlimited", got)
	}

	want := []string{"delay", "interp", "mod1.shape", "wet"}
	if got := p.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	for _, bad := range []string{"delay", "=5", ""} {
		if err := p.ParseAssignment(bad); err == nil {
			t.Fatalf("ParseAssignment(%q) expected error", bad)
		}
	}
}

func TestParamsCloneIsDeep(t *testing.T) {
	t.Parallel()

	var p Params
	p.SetNum("mix", 30)
	p.SetStr("interp", "linear")

	c := p.Clone()
	c.SetNum("mix", 80)
	c.SetStr("interp", "bandlimited")

	if p.GetNum("mix", 0) != 30 || p.GetStr("interp", "") != "linear" {
		t.Fatalf("Clone shares storage: %+v", p)
	}

	if got := c.Format("mix"); got != "80" {
		t.Fatalf("Format(mix) = %q, want 80", got)
	}
}
