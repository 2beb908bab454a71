// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/internal/audiotest"
)

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"mono passthrough", 1, 0},
		{"stereo", 2, 0.05},
		{"quad", 4, 0.15},
		{"five channels", 5, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, ch int) float32 {
				return float32(ch) / 10
			})
			m := audio.NewMonoMixer(src)
			if m.Channels() != 1 {
				t.Fatalf("Channels() = %d, want 1", m.Channels())
			}

			buf := make([]float32, 10)
			n, err := m.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	m := audio.NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	buf := make([]float32, 10)

	n, err := m.ReadSamples(buf)
	if n != 5 || err != io.EOF {
		t.Errorf("first read = (%d, %v), want (5, EOF)", n, err)
	}
	n, err = m.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second read = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := audio.NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_ZeroAllocsAfterWarmup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	m := audio.NewMonoMixer(audiotest.NewSineSource(44100, 2, math.MaxInt32, 440))
	buf := make([]float32, 1024)
	_, _ = m.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = m.ReadSamples(buf)
	})
	if allocs > 0 {
		t.Errorf("ReadSamples allocated %v times per run, want 0", allocs)
	}
}
