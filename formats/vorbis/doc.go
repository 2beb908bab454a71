// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Reads are always a whole number of frames, so a destination shorter than
// one frame reads nothing.
package vorbis
