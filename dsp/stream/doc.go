// Package stream defines interleaved sample blocks and the pull-based
// source contract effects consume them from.
package stream
