// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files through
// github.com/go-audio/wav.
//
// Decoder yields an audio.Source of interleaved samples in [-1, 1). Write16
// stores a mono render, which is how the soundscape CLI exports a scene:
//
//	f, _ := os.Create("intro.wav")
//	defer f.Close()
//	err := wav.Write16(f, 44100, samples)
package wav
