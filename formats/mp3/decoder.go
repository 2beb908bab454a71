// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/utils"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	odd        int // bytes of a split sample carried to the next read
	eof        bool
}

func newSource(dec pcmReader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), buf: make([]byte, 8192)}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.odd])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.odd:])
	n += s.odd
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("mp3: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = utils.PCM16ToFloat32(int(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))))
	}
	s.odd = n % 2
	if s.odd == 1 {
		s.buf[0] = s.buf[n-1]
	}

	if err != nil {
		s.eof = true
		return samples, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return newSource(dec), nil
}
