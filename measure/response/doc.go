// Package response captures and analyses the impulse response of a
// configured effect.
//
// The analysis covers what a delay-based effect is judged by:
//
//   - Onsets: sample indices where echoes begin
//   - Schroeder backward integration and RT60 / EDT decay times
//   - Center time: temporal energy centroid
//   - Magnitude response: FFT of the zero-padded impulse response
//
// # Usage
//
//	h, err := response.CaptureUnit(unit, 44100)
//	metrics, err := response.NewAnalyzer(44100).Analyze(h)
//	fmt.Printf("first echo %.1f ms, RT60 %.2f s\n", metrics.FirstEchoMs, metrics.RT60)
package response
