// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/soundscape/audio"
)

type mockReader struct {
	rate, channels int
	data           []float32
	err            error
}

func (m *mockReader) SampleRate() int { return m.rate }
func (m *mockReader) Channels() int   { return m.channels }

func (m *mockReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, m.data)
	n -= n % m.channels
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) accepted invalid input", data)
		}
	}
}

func TestNewSource_NoChannels(t *testing.T) {
	t.Parallel()

	if _, err := newSource(&mockReader{rate: 8000}); !errors.Is(err, ErrNoChannels) {
		t.Errorf("newSource() error = %v, want ErrNoChannels", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		buf      int
	}{
		{"mono", 1, 3},
		{"stereo", 2, 3},
		{"five channels", 5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := make([]float32, 10*tt.channels)
			for i := range want {
				want[i] = float32(i) / float32(len(want))
			}
			src, err := newSource(&mockReader{rate: 48000, channels: tt.channels, data: append([]float32(nil), want...)})
			if err != nil {
				t.Fatal(err)
			}
			if src.Channels() != tt.channels || src.SampleRate() != 48000 {
				t.Errorf("got %d Hz x%d", src.SampleRate(), src.Channels())
			}
			if src.BufSize()%tt.channels != 0 {
				t.Errorf("BufSize() = %d, not a whole number of frames", src.BufSize())
			}

			buf := make([]float32, tt.buf)
			var got []float32
			for {
				n, err := src.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("read %d samples, not whole frames", n)
				}
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
			}
			if len(got) != len(want) {
				t.Fatalf("read %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_ShortDestination(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockReader{rate: 8000, channels: 2, data: []float32{1, 1}})
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src, _ := newSource(&mockReader{rate: 8000, channels: 1, err: boom})
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}

	done, _ := newSource(&mockReader{rate: 8000, channels: 1})
	for range 2 {
		if n, err := done.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
			t.Errorf("exhausted read = (%d, %v), want (0, EOF)", n, err)
		}
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	src, _ := newSource(&mockReader{rate: 8000, channels: 2, data: []float32{0.1, -0.1, 0.2, -0.2}})
	got, err := audio.ReadAll(src, 0)
	if err != nil || len(got) != 4 {
		t.Errorf("ReadAll() = %v, %v", got, err)
	}
}
