// Package effectunit exposes the eight delay-based effects behind one
// façade.
//
// A Unit holds exactly one effect Kind. It is configured from a string-keyed
// Params map, runs one mono Runtime per channel, and pulls interleaved
// blocks from a stream.Source. Parameters outside their range are replaced
// by defaults without error; Effective reports what actually runs.
package effectunit
