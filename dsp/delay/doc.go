// Package delay provides the circular buffer every delay-based effect is
// built on, plus a warm-up aware read cursor.
//
// A [Line] is sized from the largest delay its owner can ever request, so
// modulated reads never run past the stored history. A [Tap] starts
// negative and only becomes readable once enough samples have been written
// to serve the requested delay.
package delay
