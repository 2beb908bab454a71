// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// Stats summarizes a block of samples.
type Stats struct {
	Samples      int
	Peak         float64
	RMS          float64
	Mean         float64
	Variance     float64
	DiffVariance float64 // variance of x[i]-x[i-1]
}

// Measure computes Stats over samples. An empty block yields the zero value.
func Measure(samples []float32) Stats {
	st := Stats{Samples: len(samples)}
	if len(samples) == 0 {
		return st
	}

	var sum, sq float64
	for _, s := range samples {
		v := float64(s)
		st.Peak = max(st.Peak, math.Abs(v))
		sum += v
		sq += v * v
	}
	n := float64(len(samples))
	st.Mean = sum / n
	st.RMS = math.Sqrt(sq / n)
	st.Variance = max(sq/n-st.Mean*st.Mean, 0)

	if len(samples) > 1 {
		var dsum, dsq float64
		for i := 1; i < len(samples); i++ {
			d := float64(samples[i]) - float64(samples[i-1])
			dsum += d
			dsq += d * d
		}
		m := float64(len(samples) - 1)
		mean := dsum / m
		st.DiffVariance = max(dsq/m-mean*mean, 0)
	}
	return st
}

// DBFS converts a linear amplitude to decibels relative to full scale.
// Silence maps to -Inf.
func DBFS(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(amplitude)
}
