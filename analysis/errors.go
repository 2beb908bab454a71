// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	// ErrFFTSize indicates a frame size that is not a power of two of at
	// least 2.
	ErrFFTSize = errors.New("analysis: fft size must be a power of two")
	// ErrSampleRate indicates a non-positive sample rate.
	ErrSampleRate = errors.New("analysis: sample rate must be positive")
)
