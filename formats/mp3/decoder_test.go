// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/soundscape/audio"
)

// mockReader serves little-endian int16 PCM in chunks of at most step bytes.
type mockReader struct {
	rate int
	data []byte
	step int
	err  error
}

func newMock(rate, step int, samples ...int16) *mockReader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockReader{rate: rate, data: data, step: step}
}

func (m *mockReader) SampleRate() int { return m.rate }

func (m *mockReader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := min(len(buf), len(m.data))
	if m.step > 0 {
		n = min(n, m.step)
	}
	copy(buf, m.data[:n])
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3 stream"))); err == nil {
		t.Error("Decode() accepted garbage")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newMock(44100, 0))
	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("got %d Hz x%d, want 44100 Hz stereo", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		step int
	}{
		{"whole reads", 0},
		{"split samples", 3},
		{"single bytes", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(newMock(22050, tt.step, 0, 16384, -16384, -32768, 8192, 32767))
			got, err := audio.ReadAll(src, 4)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			want := []float32{0, 0.5, -0.5, -1, 0.25, 32767.0 / 32768}
			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	src := newSource(newMock(8000, 0, 1, 2))
	buf := make([]float32, 8)
	if n, err := src.ReadSamples(buf); n != 2 || err != nil {
		t.Fatalf("first read = (%d, %v), want (2, nil)", n, err)
	}
	for range 2 {
		if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
			t.Errorf("read after end = (%d, %v), want (0, EOF)", n, err)
		}
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	m := newMock(8000, 0)
	m.err = io.ErrUnexpectedEOF
	if _, err := newSource(m).ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v, want wrapped ErrUnexpectedEOF", err)
	}
}
