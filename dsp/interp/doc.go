// Package interp reconstructs samples at fractional positions of a circular
// delay buffer.
//
// Two policies are available and chosen once per effect instance:
//
//   - [Linear]: straight line between the two neighbouring samples
//   - [Bandlimited]: windowed-sinc sum over 512 neighbouring samples
//
// A [Reader] wraps positions into the ring, short-circuits positions that
// are already integral, and caches the sinc [Kernel] between calls.
package interp
