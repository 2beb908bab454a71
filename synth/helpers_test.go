// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

const testRate = 8000

// render advances ctx by seconds, rounded up to whole frames.
func render(t *testing.T, ctx *Context, seconds float64) []float32 {
	t.Helper()

	out := make([]float32, int(math.Ceil(seconds*float64(ctx.SampleRate()))))
	n, err := ctx.ReadSamples(out)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	return out[:n]
}

func constant(ctx *Context, v float32) *BufferSource {
	buf := make([]float32, 64)
	for i := range buf {
		buf[i] = v
	}
	src := NewBufferSource(ctx, buf)
	src.SetLoop(true)
	return src
}

func peak(samples []float32) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, math.Abs(float64(s)))
	}
	return p
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
