// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples. x is the fractional position between y1 and y2 (0 <= x <= 1).
//
// It is shared by the resampler (float32 streams) and the synth delay line
// (float64 state).
func CubicInterpolate[T ~float32 | ~float64](y0, y1, y2, y3, x T) T {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
