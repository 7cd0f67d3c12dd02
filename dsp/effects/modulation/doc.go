// Package modulation provides delay effects whose tap positions are driven
// by periodic modulators.
//
// Included processors:
//   - MultiChorus: up to three modulated taps mixed with the dry signal.
//   - Flanger: one modulated tap fed back into the line.
//
// Tap positions are fractional and read through an interp.Reader chosen at
// configuration (linear or bandlimited).
package modulation
