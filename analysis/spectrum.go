// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultFFTSize is the frame size used by Analyze.
const DefaultFFTSize = 2048

// Spectrum is an averaged one-sided power spectrum. Power[k] belongs to
// frequency k*BinWidth, from DC up to Nyquist.
type Spectrum struct {
	SampleRate int
	BinWidth   float64
	Power      []float64
	Frames     int
}

// Analyzer computes averaged power spectra with a fixed frame size. It keeps
// scratch buffers and is not safe for concurrent use.
type Analyzer struct {
	size   int
	plan   *algofft.Plan[complex128]
	window []float64
	frame  []float64
	in     []complex128
	out    []complex128
	re, im []float64
	power  []float64
}

func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("%d: %w", size, ErrFFTSize)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: fft plan: %w", err)
	}

	win := make([]float64, size)
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(size))
	}

	bins := size/2 + 1
	return &Analyzer{
		size:   size,
		plan:   plan,
		window: win,
		frame:  make([]float64, size),
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		power:  make([]float64, bins),
	}, nil
}

// Size is the frame length in samples.
func (a *Analyzer) Size() int { return a.size }

// Power averages the spectra of half-overlapping frames of samples. A block
// shorter than one frame is zero-padded.
func (a *Analyzer) Power(samples []float32, sampleRate int) (Spectrum, error) {
	if sampleRate <= 0 {
		return Spectrum{}, ErrSampleRate
	}

	bins := a.size/2 + 1
	sum := make([]float64, bins)
	hop := a.size / 2
	frames := 0

	for start := 0; frames == 0 || start+a.size <= len(samples); start += hop {
		if err := a.transform(samples[min(start, len(samples)):]); err != nil {
			return Spectrum{}, err
		}
		vecmath.AddBlockInPlace(sum, a.power)
		frames++
	}

	vecmath.ScaleBlock(sum, sum, 1/float64(frames))
	return Spectrum{
		SampleRate: sampleRate,
		BinWidth:   float64(sampleRate) / float64(a.size),
		Power:      sum,
		Frames:     frames,
	}, nil
}

// transform windows the first frame of block into a.power.
func (a *Analyzer) transform(block []float32) error {
	clear(a.frame)
	for i := range min(len(block), a.size) {
		a.frame[i] = float64(block[i])
	}
	vecmath.MulBlockInPlace(a.frame, a.window)

	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("analysis: fft: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Power(a.power, a.re, a.im)
	return nil
}

// Total is the summed power over every bin.
func (s Spectrum) Total() float64 {
	var t float64
	for _, p := range s.Power {
		t += p
	}
	return t
}

// Centroid is the power-weighted mean frequency in Hz. Silence has no
// centroid and returns 0.
func (s Spectrum) Centroid() float64 {
	var num, den float64
	for k, p := range s.Power {
		num += float64(k) * s.BinWidth * p
		den += p
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// BandEnergy is the share of total power in bins whose frequency lies in
// [lo, hi].
func (s Spectrum) BandEnergy(lo, hi float64) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	var band float64
	for k, p := range s.Power {
		if f := float64(k) * s.BinWidth; f >= lo && f <= hi {
			band += p
		}
	}
	return band / total
}

// PeakFrequency is the frequency of the strongest bin.
func (s Spectrum) PeakFrequency() float64 {
	best := 0
	for k, p := range s.Power {
		if p > s.Power[best] {
			best = k
		}
	}
	return float64(best) * s.BinWidth
}
