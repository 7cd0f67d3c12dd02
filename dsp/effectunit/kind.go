package effectunit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the built-in effects.
type Kind int

const (
	SingleDelay Kind = iota + 1
	DoubleDelay
	FeedbackDelay
	Chorus
	Flanger
	Reverb1
	Reverb2
	Reverb3
)

// ErrUnknownKind is returned by ParseKind for unrecognised input.
var ErrUnknownKind = errors.New("effectunit: unknown effect kind")

var kindNames = [...]string{
	SingleDelay:   "single",
	DoubleDelay:   "double",
	FeedbackDelay: "feedback",
	Chorus:        "chorus",
	Flanger:       "flanger",
	Reverb1:       "reverb1",
	Reverb2:       "reverb2",
	Reverb3:       "reverb3",
}

var kindTitles = [...]string{
	SingleDelay:   "Single Delay",
	DoubleDelay:   "Double Delay",
	FeedbackDelay: "Feedback Delay",
	Chorus:        "Multi Chorus",
	Flanger:       "Feedback Chorus (Flanger)",
	Reverb1:       "Reverb 1 (allpass chain)",
	Reverb2:       "Reverb 2 (combs + allpasses)",
	Reverb3:       "Reverb 3 (low-pass combs + allpass)",
}

// Kinds returns every kind in menu order.
func Kinds() []Kind {
	return []Kind{SingleDelay, DoubleDelay, FeedbackDelay, Chorus, Flanger, Reverb1, Reverb2, Reverb3}
}

// Valid reports whether k is a built-in kind.
func (k Kind) Valid() bool {
	return k >= SingleDelay && k <= Reverb3
}

// String returns the short name used on the command line.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Title returns a human-readable name.
func (k Kind) Title() string {
	if !k.Valid() {
		return k.String()
	}

	return kindTitles[k]
}

// ParseKind accepts a short name or a menu number 1..8.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k.Valid() {
			return k, nil
		}

		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}

	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
