// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// anything outside [-1, 1].
func Float32ToInt16(x float32) int16 {
	return int16(ClampUnit(x) * 32767.0)
}

// Float64ToPCM16 is the float64 counterpart of Float32ToInt16, widened to int
// for go-audio IntBuffer payloads.
func Float64ToPCM16(x float64) int {
	return int(ClampUnit(x) * 32767.0)
}

// PCM16ToFloat32 maps a 16-bit PCM value back to [-1, 1).
func PCM16ToFloat32(v int) float32 {
	return float32(v) / 32768.0
}

// ClampUnit clamps x to [-1, 1].
func ClampUnit[T ~float32 | ~float64](x T) T {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// ClampVolume clamps a caller supplied volume to [0, 1]. NaN maps to silence.
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CentsToRatio converts a detune amount in cents to a frequency ratio.
func CentsToRatio(cents float64) float64 {
	return math.Exp2(cents / 1200)
}
