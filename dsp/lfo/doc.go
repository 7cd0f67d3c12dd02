// Package lfo generates the periodic delay-length factors that drive the
// chorus and flanger.
//
// A [Modulator] precomputes one period of its waveform as a table of
// multiplicative coefficients centred on 1.0 and hands them out one per
// sample, cycling forever. Changing the shape, rate or depth rebuilds the
// table and restarts the cycle.
package lfo
