// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio WAV and AIFF decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and scales it to [-1, 1).
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
	eof        bool
}

// NewSource wraps dec. bitDepth selects the scale factor.
func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      Scale(bitDepth),
	}
}

// Scale returns the full-scale magnitude of a signed integer sample.
func Scale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("pcm: %w", err)
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	if n < len(dst) || err == io.EOF {
		s.eof = true
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pcm: buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Mono16 wraps mono 16-bit samples for the go-audio encoders.
func Mono16(sampleRate int, samples []int16) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
}
