// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// FilterType selects a BiquadFilter response.
type FilterType uint8

const (
	Lowpass FilterType = iota
	Bandpass
)

func (f FilterType) String() string {
	switch f {
	case Lowpass:
		return "lowpass"
	case Bandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// coefficients of a second-order section with a0 normalized to 1.
type coefficients struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// BiquadFilter is a second-order RBJ filter run in Direct Form II
// Transposed. For Lowpass, Q is the resonance peak in dB; for Bandpass it is
// the usual bandwidth quality factor.
type BiquadFilter struct {
	node

	Frequency *Param
	Q         *Param

	kind FilterType
	c    coefficients
	d0   float64
	d1   float64

	lastFreq float64
	lastQ    float64
}

// NewBiquadFilter returns a 350 Hz filter with Q 1.
func NewBiquadFilter(ctx *Context, kind FilterType) *BiquadFilter {
	f := &BiquadFilter{
		kind:      kind,
		Frequency: newParam(ctx, 350),
		Q:         newParam(ctx, 1),
		lastFreq:  math.NaN(),
	}
	f.init(ctx, f)
	return f
}

func (f *BiquadFilter) Type() FilterType { return f.kind }

func (f *BiquadFilter) process(t float64) float64 {
	x := f.sumInputs(t)

	freq := f.Frequency.at(t)
	q := f.Q.at(t)
	if freq != f.lastFreq || q != f.lastQ {
		f.c = design(f.kind, f.ctx.clampFrequency(freq), q, float64(f.ctx.sampleRate))
		f.lastFreq, f.lastQ = freq, q
	}

	y := f.c.b0*x + f.d0
	f.d0 = f.c.b1*x - f.c.a1*y + f.d1
	f.d1 = f.c.b2*x - f.c.a2*y
	return y
}

// response returns the filter's magnitude at freq Hz for the current
// coefficients.
func (f *BiquadFilter) response(freq float64) float64 {
	w := 2 * math.Pi * freq / float64(f.ctx.sampleRate)
	c := f.c
	// |B(e^jw)| / |A(e^jw)|
	br := c.b0 + c.b1*math.Cos(w) + c.b2*math.Cos(2*w)
	bi := -c.b1*math.Sin(w) - c.b2*math.Sin(2*w)
	ar := 1 + c.a1*math.Cos(w) + c.a2*math.Cos(2*w)
	ai := -c.a1*math.Sin(w) - c.a2*math.Sin(2*w)
	return math.Hypot(br, bi) / math.Hypot(ar, ai)
}

// design computes RBJ cookbook coefficients.
func design(kind FilterType, freq, q, sampleRate float64) coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	sw, cw := math.Sincos(w0)

	var b0, b1, b2 float64
	var alpha float64

	switch kind {
	case Bandpass:
		if q <= 0 {
			q = 1e-4
		}
		alpha = sw / (2 * q)
		b0, b1, b2 = alpha, 0, -alpha
	default:
		alpha = sw / (2 * math.Pow(10, q/20))
		b1 = 1 - cw
		b0, b2 = b1/2, b1/2
	}

	a0 := 1 + alpha
	return coefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: -2 * cw / a0,
		a2: (1 - alpha) / a0,
	}
}
