// Package reverb provides Schroeder-style reverberators assembled from the
// primitives in dsp/filter/schroeder.
//
// Included processors:
//   - Reverb1: five allpass stages in series.
//   - Reverb2: four parallel combs followed by two allpass stages.
//   - Reverb3: six parallel low-pass combs followed by one allpass stage.
//
// Every reverb blends dry and wet by a mix percentage and bounds its output
// to ±0.9999. Block processing runs through scratch buffers allocated at
// construction.
package reverb
