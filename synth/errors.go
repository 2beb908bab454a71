// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrSourceLimit is returned when starting a generator would exceed the
	// context's MaxSources.
	ErrSourceLimit = errors.New("synth: too many active sources")

	// ErrInvalidRampTarget is returned by exponential ramps whose target is
	// not strictly positive.
	ErrInvalidRampTarget = errors.New("synth: exponential ramp target must be positive")

	// ErrAlreadyStarted is returned when Start is called twice on a source.
	ErrAlreadyStarted = errors.New("synth: source already started")
)
