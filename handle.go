// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/soundscape/synth"
)

// SoundHandle controls a running soundscape. Stop fades it out and releases
// its generators once the fade is over. A nil handle is safe to use.
type SoundHandle struct {
	name    string
	output  *synth.Gain
	sources []synth.Source

	once     sync.Once
	stopping atomic.Bool
	stop     func()
	done     chan struct{}
}

func newHandle(name string, output *synth.Gain, sources []synth.Source) *SoundHandle {
	return &SoundHandle{
		name:    name,
		output:  output,
		sources: sources,
		done:    make(chan struct{}),
	}
}

// Stop schedules the fade-out. Only the first call has any effect.
func (h *SoundHandle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.stopping.Store(true)
		h.stop()
	})
}

// Stopping reports whether Stop was called.
func (h *SoundHandle) Stopping() bool {
	return h != nil && h.stopping.Load()
}

// Output is the gain node that sets the soundscape's volume.
func (h *SoundHandle) Output() *synth.Gain {
	if h == nil {
		return nil
	}
	return h.output
}

// Sources lists the generators released after the fade.
func (h *SoundHandle) Sources() []synth.Source {
	if h == nil {
		return nil
	}
	return h.sources
}

// Done is closed once the generators are released and the graph detached.
func (h *SoundHandle) Done() <-chan struct{} {
	if h == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return h.done
}

func (h *SoundHandle) String() string {
	if h == nil {
		return "<nil>"
	}
	return h.name
}

// fadeOut holds p at now and ramps it to silence at end.
func fadeOut(p *synth.Param, now, end float64) {
	p.CancelAndHoldAtTime(now)
	p.LinearRampToValueAtTime(0, end)
}

// startAll starts every source at its time from one reservation.
func startAll(ctx *synth.Context, starts map[synth.Source]float64) error {
	r, err := ctx.Reserve(len(starts))
	if err != nil {
		return err
	}
	defer r.Release()

	for src, t := range starts {
		if err := r.Start(src, t); err != nil {
			return err
		}
	}
	return nil
}
