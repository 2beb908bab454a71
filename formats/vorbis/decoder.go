// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/soundscape/audio"
	"github.com/jfreymuth/oggvorbis"
)

// ErrNoChannels indicates a stream header with zero channels.
var ErrNoChannels = errors.New("vorbis: stream has no channels")

type floatReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote,
	// always a whole number of frames.
	Read(p []float32) (int, error)
}

type source struct {
	dec      floatReader
	channels int
	eof      bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:whole])
	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return newSource(dec)
}

func newSource(dec floatReader) (*source, error) {
	if dec.Channels() < 1 {
		return nil, ErrNoChannels
	}
	return &source{dec: dec, channels: dec.Channels()}, nil
}
