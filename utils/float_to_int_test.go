// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"full scale", 1, math.MaxInt16},
		{"negative full scale", -1, -math.MaxInt16},
		{"half", 0.5, 16383},
		{"small negative", -0.001, -32},
		{"clamp over", 1.5, math.MaxInt16},
		{"clamp under", -100, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat64ToPCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-1, -0.5, -0.01, 0, 0.25, 0.75, 1} {
		back := PCM16ToFloat32(Float64ToPCM16(x))
		if math.Abs(float64(back)-x) > 1.0/16384 {
			t.Errorf("round trip of %v gave %v", x, back)
		}
	}
}

func TestClampUnit(t *testing.T) {
	t.Parallel()

	if got := ClampUnit(3.5); got != 1 {
		t.Errorf("ClampUnit(3.5) = %v, want 1", got)
	}
	if got := ClampUnit(float32(-2)); got != -1 {
		t.Errorf("ClampUnit(-2) = %v, want -1", got)
	}
	if got := ClampUnit(0.3); got != 0.3 {
		t.Errorf("ClampUnit(0.3) = %v, want 0.3", got)
	}
}

func TestClampVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{-0.2, 0},
		{0, 0},
		{0.12, 0.12},
		{1, 1},
		{7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}

	for _, tt := range tests {
		if got := ClampVolume(tt.in); got != tt.want {
			t.Errorf("ClampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCentsToRatio(t *testing.T) {
	t.Parallel()

	if got := CentsToRatio(1200); math.Abs(got-2) > 1e-12 {
		t.Errorf("CentsToRatio(1200) = %v, want 2", got)
	}
	if got := CentsToRatio(0); got != 1 {
		t.Errorf("CentsToRatio(0) = %v, want 1", got)
	}

	// ±4 cents stays within a fraction of a percent.
	up, down := CentsToRatio(4), CentsToRatio(-4)
	if up < 1.002 || up > 1.003 || down > 0.998 || down < 0.997 {
		t.Errorf("CentsToRatio(±4) = %v/%v", up, down)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	buf := make([]float32, 8000)
	for i := range buf {
		buf[i] = float32(math.Sin(float64(i) * 0.1))
	}
	out := make([]int16, len(buf))

	b.ReportAllocs()
	for range b.N {
		for j := range buf {
			out[j] = Float32ToInt16(buf[j])
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})
	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
