// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"fmt"

	"github.com/ik5/soundscape/synth"
	"github.com/ik5/soundscape/utils"
)

const (
	ambientLoopSeconds = 4
	ambientCutoff      = 400
	ambientQ           = 0.5
	ambientLFORate     = 0.15
	ambientLFODepth    = 0.3

	sparkleFrequency = 3200
	sparkleLow       = 2800
	sparkleSpread    = 1200
	sparkleLevel     = 0.04
	sparkleAttack    = 0.05
	sparkleRelease   = 0.15
	chirpMinInterval = 2
	chirpSpread      = 3

	ambientFade    = 0.5
	ambientRelease = 0.6
)

// PlayAmbient starts a looping wind bed: brown noise through a soft
// low-pass, breathing slowly around volume, with sparse high chirps.
func (e *Engine) PlayAmbient(volume float64) (*SoundHandle, error) {
	ctx, err := e.acquire()
	if err != nil {
		return nil, err
	}
	volume = utils.ClampVolume(volume)

	noise := synth.NewBufferSource(ctx, e.noise(ctx, ambientLoopSeconds, synth.Brown))
	noise.SetLoop(true)

	lpf := synth.NewBiquadFilter(ctx, synth.Lowpass)
	lpf.Frequency.SetValue(ambientCutoff)
	lpf.Q.SetValue(ambientQ)

	lfo := synth.NewOscillator(ctx, synth.Sine)
	lfo.Frequency.SetValue(ambientLFORate)
	depth := synth.NewGain(ctx)
	depth.Gain.SetValue(volume * ambientLFODepth)
	lfo.Connect(depth)

	gain := synth.NewGain(ctx)
	gain.Gain.SetValue(volume)
	depth.ConnectParam(gain.Gain)

	noise.Connect(lpf)
	lpf.Connect(gain)

	sparkle := synth.NewOscillator(ctx, synth.Sine)
	sparkle.Frequency.SetValue(sparkleFrequency)
	sparkleGain := synth.NewGain(ctx)
	sparkleGain.Gain.SetValue(0)
	sparkle.Connect(sparkleGain)

	now := ctx.Now()
	if err := startAll(ctx, map[synth.Source]float64{noise: now, lfo: now, sparkle: now}); err != nil {
		return nil, fmt.Errorf("ambient: %w", err)
	}
	gain.Connect(ctx.Destination())
	sparkleGain.Connect(ctx.Destination())

	chirp := ctx.Every(
		func() float64 { return chirpMinInterval + e.random()*chirpSpread },
		func() {
			t := ctx.Now()
			sparkle.Frequency.SetValueAtTime(sparkleLow+e.random()*sparkleSpread, t)
			sparkleGain.Gain.SetValueAtTime(0, t)
			sparkleGain.Gain.LinearRampToValueAtTime(volume*sparkleLevel, t+sparkleAttack)
			sparkleGain.Gain.LinearRampToValueAtTime(0, t+sparkleRelease)
		},
	)

	h := newHandle("ambient", gain, []synth.Source{noise, sparkle, lfo})
	h.stop = func() {
		chirp.Cancel()

		t := ctx.Now()
		fadeOut(gain.Gain, t, t+ambientFade)
		fadeOut(depth.Gain, t, t+ambientFade)
		fadeOut(sparkleGain.Gain, t, t+ambientFade)
		for _, src := range h.sources {
			src.Stop(t + ambientRelease)
		}

		ctx.At(t+ambientRelease, func() {
			gain.Disconnect()
			sparkleGain.Disconnect()
			depth.Disconnect()
			close(h.done)
			e.log.Debugf("ambient released")
		})
	}

	e.log.Debugf("ambient started at %.3fs, volume %.2f", now, volume)
	return h, nil
}
