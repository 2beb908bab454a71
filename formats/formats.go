// SPDX-License-Identifier: EPL-2.0

// Package formats wires the file codecs into an audio.Registry and picks a
// codec from a file name.
package formats

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/formats/aiff"
	"github.com/ik5/soundscape/formats/mp3"
	"github.com/ik5/soundscape/formats/vorbis"
	"github.com/ik5/soundscape/formats/wav"
)

// ErrNoWriter indicates a format that can only be decoded.
var ErrNoWriter = errors.New("format has no writer")

// Writer stores mono 16-bit PCM.
type Writer func(ws io.WriteSeeker, sampleRate int, samples []int16) error

// Registry returns a registry holding every supported decoder.
func Registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// FromPath maps a file extension to its registry key.
func FromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "aif", "aifc":
		return "aiff"
	case "oga":
		return "ogg"
	}
	return ext
}

// WriterFor returns the encoder registered for format.
func WriterFor(format string) (Writer, error) {
	switch format {
	case "wav":
		return wav.Write16, nil
	case "aiff":
		return aiff.Write16, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrNoWriter)
}
