// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic sources for tests. It mirrors
// audio.Source without importing it so any package can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of one sample on one channel.
type Waveform func(sample, channel int) float32

// MockSource generates totalSamples frames from a Waveform and then ends.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int
	generated    int
	waveform     Waveform
	closed       bool

	// ChunkLimit, when positive, caps the frames returned per read to mimic
	// sources that deliver short reads.
	ChunkLimit int
}

func NewMockSource(sampleRate, channels, totalSamples int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewSineSource plays frequency Hz at full scale on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource rises linearly from -1 towards 1 over totalSamples frames.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		return -1 + 2*float32(sample)/float32(totalSamples)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.ChunkLimit > 0 {
		frames = min(frames, m.ChunkLimit)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
