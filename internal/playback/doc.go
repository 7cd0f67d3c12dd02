// Package playback streams a processed source to the default audio device
// through oto.
package playback
