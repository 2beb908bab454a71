// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III files with
// github.com/hajimehoshi/go-mp3. Output is always interleaved stereo at the
// file's sample rate, scaled to [-1, 1).
package mp3
