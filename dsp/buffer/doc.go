// Package buffer provides reusable sample storage for block processing:
// a growable mono Buffer and a Planar set of per-channel buffers that
// converts to and from interleaved frame blocks without allocating once
// sized.
package buffer
