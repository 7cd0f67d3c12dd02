// Package audiofile reads audio files as stream sources and writes
// rendered output to WAV.
//
// Supported inputs are WAV and AIFF (16, 24 or 32-bit integer PCM), MP3
// and Ogg Vorbis. The format is chosen from the file extension.
package audiofile
