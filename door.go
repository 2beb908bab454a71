// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"fmt"

	"github.com/ik5/soundscape/synth"
	"github.com/ik5/soundscape/utils"
)

// Door layer timings, in seconds from the trigger.
const (
	doorNoiseSeconds = 3
	doorEnd          = 3.5
	doorDetach       = 3.6

	thudEnd = 1.5

	creakStart = 0.5
	creakEnd   = 3
)

// DoorDuration is how long PlayDoorOpen sounds.
const DoorDuration = doorEnd

// PlayDoorOpen plays a heavy door easing open: a swept band-passed noise
// creak, a low thud and a sawtooth creak layered on top. It runs to the end
// and cannot be stopped. All envelopes are relative to one captured time.
func (e *Engine) PlayDoorOpen(volume float64) error {
	ctx, err := e.acquire()
	if err != nil {
		return err
	}
	volume = utils.ClampVolume(volume)

	noise := synth.NewBufferSource(ctx, e.noise(ctx, doorNoiseSeconds, synth.White))
	bpf := synth.NewBiquadFilter(ctx, synth.Bandpass)
	bpf.Q.SetValue(8)
	creakGain := synth.NewGain(ctx)
	noise.Connect(bpf)
	bpf.Connect(creakGain)

	thud := synth.NewOscillator(ctx, synth.Sine)
	thudGain := synth.NewGain(ctx)
	thud.Connect(thudGain)

	creak2 := synth.NewOscillator(ctx, synth.Sawtooth)
	creak2Filter := synth.NewBiquadFilter(ctx, synth.Bandpass)
	creak2Filter.Frequency.SetValue(350)
	creak2Filter.Q.SetValue(12)
	creak2Gain := synth.NewGain(ctx)
	creak2.Connect(creak2Filter)
	creak2Filter.Connect(creak2Gain)

	now := ctx.Now()

	bpf.Frequency.SetValueAtTime(200, now)
	creakGain.Gain.SetValueAtTime(0, now)
	creakGain.Gain.LinearRampToValueAtTime(volume*0.6, now+0.3)
	creakGain.Gain.LinearRampToValueAtTime(volume*0.3, now+1.5)
	creakGain.Gain.LinearRampToValueAtTime(volume*0.5, now+2)
	creakGain.Gain.LinearRampToValueAtTime(0, now+doorEnd)

	thud.Frequency.SetValueAtTime(80, now)
	thudGain.Gain.SetValueAtTime(volume*0.4, now)

	creak2.Frequency.SetValueAtTime(150, now+creakStart)
	creak2Gain.Gain.SetValueAtTime(0, now+creakStart)
	creak2Gain.Gain.LinearRampToValueAtTime(volume*0.08, now+1)
	creak2Gain.Gain.LinearRampToValueAtTime(0, now+creakEnd)

	ramps := []struct {
		p *synth.Param
		v float64
		t float64
	}{
		{bpf.Frequency, 600, now + 1.5},
		{bpf.Frequency, 250, now + 3},
		{thud.Frequency, 40, now + 1},
		{thudGain.Gain, 0.01, now + thudEnd},
		{creak2.Frequency, 400, now + 2},
		{creak2.Frequency, 180, now + creakEnd},
	}
	for _, r := range ramps {
		if err := r.p.ExponentialRampToValueAtTime(r.v, r.t); err != nil {
			return fmt.Errorf("door: %w", err)
		}
	}

	noise.Stop(now + doorEnd)
	thud.Stop(now + thudEnd)
	creak2.Stop(now + creakEnd)

	if err := startAll(ctx, map[synth.Source]float64{noise: now, thud: now, creak2: now + creakStart}); err != nil {
		return fmt.Errorf("door: %w", err)
	}

	layers := []*synth.Gain{creakGain, thudGain, creak2Gain}
	for _, g := range layers {
		g.Connect(ctx.Destination())
	}

	ctx.At(now+doorDetach, func() {
		for _, g := range layers {
			g.Disconnect()
		}
		e.log.Debugf("door released")
	})

	e.log.Debugf("door opened at %.3fs, volume %.2f", now, volume)
	return nil
}
