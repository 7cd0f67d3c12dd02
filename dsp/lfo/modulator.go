package lfo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-delayfx/dsp/core"
)

const (
	MinFrequency     = 0.5
	MaxFrequency     = 10.0
	MaxDepth         = 0.99
	DefaultFrequency = 2.0
	DefaultDepth     = 0.2
)

// Config describes one modulator. Depth is a ratio in [0, MaxDepth].
type Config struct {
	Shape     Shape
	Frequency float64
	Depth     float64
}

// DefaultConfig returns a 2 Hz sine at depth 0.2.
func DefaultConfig() Config {
	return Config{Shape: Sine, Frequency: DefaultFrequency, Depth: DefaultDepth}
}

// Sanitize replaces each out-of-range field with its default.
func (c Config) Sanitize() Config {
	if !c.Shape.Valid() {
		c.Shape = Sine
	}
	if !core.InRange(c.Frequency, MinFrequency, MaxFrequency) {
		c.Frequency = DefaultFrequency
	}
	if !core.InRange(c.Depth, 0, MaxDepth) {
		c.Depth = DefaultDepth
	}
	return c
}

// Valid reports whether every field is in range.
func (c Config) Valid() bool {
	return c == c.Sanitize()
}

// Modulator cycles through one precomputed period of delay-length factors.
type Modulator struct {
	cfg   Config
	table []float64
	index int
}

// New returns a modulator for sampleRate. Invalid config fields fall back
// to their defaults.
func New(sampleRate float64, cfg Config) (*Modulator, error) {
	m := &Modulator{}
	if err := m.Configure(sampleRate, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure rebuilds the table for cfg and restarts the cycle.
func (m *Modulator) Configure(sampleRate float64, cfg Config) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("lfo sample rate must be > 0: %f", sampleRate)
	}
	cfg = cfg.Sanitize()

	n := max(int(math.Round(sampleRate/cfg.Frequency)), 1)
	if cap(m.table) >= n {
		m.table = m.table[:n]
	} else {
		m.table = make([]float64, n)
	}
	fill(m.table, cfg.Shape, cfg.Depth)

	m.cfg = cfg
	m.index = 0
	return nil
}

// Next returns the current coefficient and advances the cycle.
func (m *Modulator) Next() float64 {
	v := m.table[m.index]
	m.index++
	if m.index >= len(m.table) {
		m.index = 0
	}
	return v
}

// Reset rewinds to the start of the period.
func (m *Modulator) Reset() {
	m.index = 0
}

// Len returns the period length in samples.
func (m *Modulator) Len() int {
	return len(m.table)
}

// Config returns the effective configuration.
func (m *Modulator) Config() Config {
	return m.cfg
}

// Table returns a copy of one period.
func (m *Modulator) Table() []float64 {
	out := make([]float64, len(m.table))
	copy(out, m.table)
	return out
}

func fill(table []float64, shape Shape, depth float64) {
	n := float64(len(table))
	switch shape {
	case Saw:
		for i := range table {
			t := float64(i) / n
			table[i] = (1 - 2*depth) + (t-math.Floor(t+0.5)+1)*2*depth
		}
	case Triangle:
		// Two-unit period starting at -0.5.
		for i := range table {
			t := -0.5 + 2*float64(i)/n
			table[i] = 2*depth*math.Abs(t-2*math.Floor(t/2)-1) + (1 - depth)
		}
	case Square:
		half := len(table) / 2
		for i := range table {
			if i < half {
				table[i] = 1 - depth
			} else {
				table[i] = 1 + depth
			}
		}
	default:
		for i := range table {
			t := float64(i) / n
			table[i] = 1 + depth*math.Sin(2*math.Pi*t)
		}
	}
}
