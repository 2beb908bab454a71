// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/soundscape/utils"
)

// Waveform selects an oscillator shape.
type Waveform uint8

const (
	Sine Waveform = iota
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Oscillator is a periodic generator. Its pitch is Frequency (Hz) shifted by
// Detune (cents).
type Oscillator struct {
	scheduled

	Frequency *Param
	Detune    *Param

	wave  Waveform
	phase float64
}

// NewOscillator returns a 440 Hz oscillator of the given shape.
func NewOscillator(ctx *Context, wave Waveform) *Oscillator {
	o := &Oscillator{
		wave:      wave,
		Frequency: newParam(ctx, 440),
		Detune:    newParam(ctx, 0),
	}
	o.initSource(ctx, o)
	return o
}

func (o *Oscillator) Waveform() Waveform { return o.wave }

func (o *Oscillator) process(t float64) float64 {
	if !o.playing(t) {
		return 0
	}

	var v float64
	switch o.wave {
	case Sawtooth:
		v = 2 * (o.phase - math.Floor(o.phase+0.5))
	default:
		v = math.Sin(2 * math.Pi * o.phase)
	}

	freq := o.Frequency.at(t) * utils.CentsToRatio(o.Detune.at(t))
	o.phase += freq / float64(o.ctx.sampleRate)
	o.phase -= math.Floor(o.phase)
	return v
}
