// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"sync"

	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/device"
)

// Output is a running audio sink that pulls from the engine's context.
type Output interface {
	// Suspended reports whether the sink is paused, for example by a host
	// autoplay policy.
	Suspended() bool
	// Resume restarts a suspended sink.
	Resume() error
}

// Opener starts an Output that reads src.
type Opener func(src audio.Source) (Output, error)

// DeviceOpener plays on the system audio device.
func DeviceOpener() Opener {
	return func(src audio.Source) (Output, error) {
		out, err := device.Open(src)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// OfflineOutput never plays anything; the caller renders by reading
// Engine.Source. It can be suspended to mimic a blocked device.
type OfflineOutput struct {
	mu        sync.Mutex
	suspended bool
	resumes   int
}

// Offline returns an Opener for rendering without a device. Every call hands
// out out, or a fresh OfflineOutput when out is nil.
func Offline(out *OfflineOutput) Opener {
	if out == nil {
		out = &OfflineOutput{}
	}
	return func(audio.Source) (Output, error) {
		return out, nil
	}
}

func (o *OfflineOutput) Suspended() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.suspended
}

func (o *OfflineOutput) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.suspended = false
	o.resumes++
	return nil
}

// Suspend pauses the output until the next Resume.
func (o *OfflineOutput) Suspend() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.suspended = true
}

// Resumes counts Resume calls.
func (o *OfflineOutput) Resumes() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resumes
}
