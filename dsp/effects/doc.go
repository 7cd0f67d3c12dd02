// Package effects provides the basic tapped delay effects.
//
// Subpackages:
//   - github.com/cwbudde/algo-delayfx/dsp/effects/modulation
//   - github.com/cwbudde/algo-delayfx/dsp/effects/reverb
//
// Effects in this package:
//   - SingleDelay: dry signal plus one delayed tap.
//   - DoubleDelay: dry signal plus two taps on a single write stream.
//   - FeedbackDelay: recirculating delay with output gain.
//
// Every effect writes the input to its line from the first sample but leaves
// a tap out of the wet path until that tap's delay has elapsed. Parameters
// outside their documented range replace the whole parameter set with the
// defaults. Outputs beyond ±1 are folded to ±0.999.
package effects
