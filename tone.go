// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"fmt"

	"github.com/ik5/soundscape/synth"
	"github.com/ik5/soundscape/utils"
)

// Voices of the drone, rooted on D3.
var toneFrequencies = [...]float64{146.83, 220, 293.66, 440}

const (
	toneFadeIn     = 3
	toneFadeOut    = 2
	toneRelease    = 2.2
	toneDetune     = 8 // cents, peak to peak
	toneVoiceStep  = 0.15
	toneTremBase   = 0.1
	toneTremStep   = 0.05
	toneTremDepth  = 0.3
	toneDelay      = 0.3
	toneFeedback   = 0.3
	toneTailCutoff = 800
)

// PlaySpiritualTone starts a sustained drone of four detuned sine voices, each
// with its own slow tremolo, fading in over three seconds and fed through a
// filtered feedback delay.
func (e *Engine) PlaySpiritualTone(volume float64) (*SoundHandle, error) {
	ctx, err := e.acquire()
	if err != nil {
		return nil, err
	}
	volume = utils.ClampVolume(volume)

	// master sets the level, bus carries master plus the delay tail so that
	// one fade silences both.
	master := synth.NewGain(ctx)
	bus := synth.NewGain(ctx)
	master.Connect(bus)

	starts := make(map[synth.Source]float64, 2*len(toneFrequencies))
	voices := make([]synth.Source, 0, 2*len(toneFrequencies))

	for i, freq := range toneFrequencies {
		osc := synth.NewOscillator(ctx, synth.Sine)
		osc.Frequency.SetValue(freq)
		osc.Detune.SetValue((e.random() - 0.5) * toneDetune)

		level := (volume / float64(len(toneFrequencies))) * (1 - float64(i)*toneVoiceStep)
		voice := synth.NewGain(ctx)
		voice.Gain.SetValue(level)

		trem := synth.NewOscillator(ctx, synth.Sine)
		trem.Frequency.SetValue(toneTremBase + float64(i)*toneTremStep)
		tremGain := synth.NewGain(ctx)
		tremGain.Gain.SetValue(level * toneTremDepth)
		trem.Connect(tremGain)
		tremGain.ConnectParam(voice.Gain)

		osc.Connect(voice)
		voice.Connect(master)

		voices = append(voices, osc, trem)
	}

	delay := synth.NewDelay(ctx, 1)
	delay.DelayTime.SetValue(toneDelay)
	feedback := synth.NewGain(ctx)
	feedback.Gain.SetValue(toneFeedback)
	tail := synth.NewBiquadFilter(ctx, synth.Lowpass)
	tail.Frequency.SetValue(toneTailCutoff)

	master.Connect(delay)
	delay.Connect(tail)
	tail.Connect(feedback)
	feedback.Connect(delay)
	delay.Connect(bus)

	now := ctx.Now()
	master.Gain.SetValueAtTime(0, now)
	master.Gain.LinearRampToValueAtTime(volume, now+toneFadeIn)

	for _, src := range voices {
		starts[src] = now
	}
	if err := startAll(ctx, starts); err != nil {
		delay.Disconnect()
		return nil, fmt.Errorf("tone: %w", err)
	}
	bus.Connect(ctx.Destination())

	h := newHandle("spiritual tone", master, voices)
	h.stop = func() {
		t := ctx.Now()
		fadeOut(master.Gain, t, t+toneFadeOut)
		fadeOut(bus.Gain, t, t+toneFadeOut)
		for _, src := range voices {
			src.Stop(t + toneRelease)
		}

		ctx.At(t+toneRelease, func() {
			bus.Disconnect()
			delay.Disconnect()
			close(h.done)
			e.log.Debugf("spiritual tone released")
		})
	}

	e.log.Debugf("spiritual tone started at %.3fs, volume %.2f", now, volume)
	return h, nil
}
