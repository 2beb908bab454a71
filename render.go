// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"fmt"
	"math"

	"github.com/ik5/soundscape/audio"
)

// RenderMono16 reads seconds of src, converts it to targetRate and folds it
// to mono 16-bit PCM. An endless source such as Engine.Source is bounded to
// the requested length; a finite one may end sooner. With seconds <= 0 a
// finite source is read to its end.
//
// The pipeline is Take -> Resampler -> MonoMixer. The resampler is skipped
// when the rates already match.
func RenderMono16(src audio.Source, seconds float64, targetRate, bufferSize int) ([]int16, error) {
	if targetRate <= 0 {
		targetRate = src.SampleRate()
	}

	stream := src
	if seconds > 0 {
		stream = audio.Take(src, int(math.Round(seconds*float64(src.SampleRate()))))
	}
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(stream, targetRate)
	}
	stream = audio.NewMonoMixer(stream)

	samples, err := audio.ReadAll(stream, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return audio.ToPCM16(samples), nil
}
