package lfo

import (
	"errors"
	"fmt"
	"strings"
)

// Shape is the modulator waveform.
type Shape int

const (
	Sine Shape = iota
	Saw
	Triangle
	Square
)

// ErrUnknownShape is returned by ParseShape for unrecognised names.
var ErrUnknownShape = errors.New("lfo: unknown shape")

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Valid reports whether s is one of the four defined shapes.
func (s Shape) Valid() bool {
	return s >= Sine && s <= Square
}

// ParseShape accepts shape names or their menu numbers 0-3.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin", "0":
		return Sine, nil
	case "saw", "sawtooth", "1":
		return Saw, nil
	case "triangle", "tri", "triangular", "2":
		return Triangle, nil
	case "square", "sq", "3":
		return Square, nil
	default:
		return Sine, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}
