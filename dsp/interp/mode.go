package interp

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the fractional-read policy.
type Mode int

const (
	// Linear interpolates between the two neighbouring samples.
	Linear Mode = iota
	// Bandlimited sums a windowed-sinc kernel around the position.
	Bandlimited
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("interp: unknown mode")

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Bandlimited:
		return "bandlimited"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "linear"/"0" and "bandlimited"/"sinc"/"1".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin", "0":
		return Linear, nil
	case "bandlimited", "sinc", "1":
		return Bandlimited, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
