// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"time"

	"github.com/ik5/soundscape/audio"
)

// Report describes a whole stream.
type Report struct {
	SampleRate int
	Channels   int
	Duration   time.Duration
	Stats      Stats
	Centroid   float64
	PeakFreq   float64 // strongest bin in Hz
}

func (r Report) String() string {
	return fmt.Sprintf("%d Hz x%d, %v, peak %.1f dBFS, rms %.1f dBFS, centroid %.0f Hz",
		r.SampleRate, r.Channels, r.Duration.Round(time.Millisecond),
		DBFS(r.Stats.Peak), DBFS(r.Stats.RMS), r.Centroid)
}

// Analyze reads src to the end, folded to mono, and measures it.
func Analyze(src audio.Source) (Report, error) {
	rep := Report{SampleRate: src.SampleRate(), Channels: src.Channels()}
	if rep.SampleRate <= 0 {
		return rep, ErrSampleRate
	}

	samples, err := audio.ReadAll(audio.NewMonoMixer(src), 0)
	if err != nil {
		return rep, fmt.Errorf("analysis: %w", err)
	}

	rep.Duration = time.Duration(float64(len(samples)) / float64(rep.SampleRate) * float64(time.Second))
	rep.Stats = Measure(samples)

	an, err := NewAnalyzer(DefaultFFTSize)
	if err != nil {
		return rep, err
	}
	spec, err := an.Power(samples, rep.SampleRate)
	if err != nil {
		return rep, err
	}
	rep.Centroid = spec.Centroid()
	rep.PeakFreq = spec.PeakFrequency()
	return rep, nil
}
