// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"
)

// NoiseColor selects the spectrum of a noise buffer.
type NoiseColor uint8

const (
	White NoiseColor = iota
	Brown
)

func (c NoiseColor) String() string {
	switch c {
	case White:
		return "white"
	case Brown:
		return "brown"
	default:
		return "unknown"
	}
}

const (
	// BrownLeak is the weight of each new white sample in the brown walk.
	BrownLeak = 0.02
	// BrownGain restores loudness lost to the integrator. Brown samples lie in
	// [-BrownGain, BrownGain].
	BrownGain = 3.5
)

// NewNoiseBuffer fills seconds of noise at sampleRate. White samples are
// uniform in [-1, 1]; brown samples follow a leaky random walk scaled by
// BrownGain. A nil rng uses the global source.
func NewNoiseBuffer(rng *rand.Rand, sampleRate int, seconds float64, color NoiseColor) []float32 {
	n := max(int(math.Round(seconds*float64(sampleRate))), 0)
	buf := make([]float32, n)

	white := func() float64 {
		if rng == nil {
			return rand.Float64()*2 - 1
		}
		return rng.Float64()*2 - 1
	}

	switch color {
	case Brown:
		var last float64
		for i := range buf {
			last = (last + BrownLeak*white()) / (1 + BrownLeak)
			buf[i] = float32(last * BrownGain)
		}
	default:
		for i := range buf {
			buf[i] = float32(white())
		}
	}

	return buf
}
