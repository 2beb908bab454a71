// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/formats/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks.
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}

// Write16 writes mono 16-bit PCM samples as an AIFF file.
func Write16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := aiff.NewEncoder(ws, sampleRate, 16, 1)
	if err := enc.Write(pcm.Mono16(sampleRate, samples)); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}
	return nil
}
