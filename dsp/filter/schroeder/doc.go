// Package schroeder implements the single-sample recursive building blocks
// of the reverbs: an allpass, a feedback comb and a comb with a one-sample
// low-pass in its loop.
//
// Each filter owns one delay line sized to its configured delay and clamps
// its output to ±0.9999. Decays are given in percent; delays in
// milliseconds. Out-of-range settings fall back to per-field defaults.
package schroeder
