// SPDX-License-Identifier: EPL-2.0

package soundscape

import "errors"

var (
	// ErrDeviceUnavailable wraps failures to open or resume the output
	// device. The next play call tries again.
	ErrDeviceUnavailable = errors.New("soundscape: audio device unavailable")

	// ErrNoOpener is returned when the engine has no way to open an output.
	ErrNoOpener = errors.New("soundscape: no output opener configured")
)
