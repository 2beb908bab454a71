// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"
	"math"
	"slices"
	"sync"
)

// RenderQuantum is the number of frames rendered under one graph lock.
const RenderQuantum = 128

// DefaultMaxSources caps concurrently active generators.
const DefaultMaxSources = 64

// Context is the audio clock and the root of a node graph. It implements
// audio.Source as an endless mono stream.
type Context struct {
	mu sync.Mutex

	sampleRate int
	frame      int64
	closed     bool

	dest   *destination
	delays []*Delay

	maxSources int
	active     []Source
	pending    int

	sched scheduler
}

// NewContext returns a context running at sampleRate with DefaultMaxSources.
func NewContext(sampleRate int) *Context {
	c := &Context{
		sampleRate: sampleRate,
		maxSources: DefaultMaxSources,
	}
	c.dest = &destination{}
	c.dest.init(c, c.dest)
	return c
}

// SetMaxSources changes the active source cap. Values below one disable it.
func (c *Context) SetMaxSources(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSources = n
}

// Destination is the node whose inputs make up the rendered output.
func (c *Context) Destination() Node { return c.dest }

// Now returns the audio clock in seconds.
func (c *Context) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now()
}

func (c *Context) now() float64 {
	return float64(c.frame) / float64(c.sampleRate)
}

// ActiveSources returns the number of started generators that have not ended.
func (c *Context) ActiveSources() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

// Reservation holds source slots claimed ahead of starting a group of
// generators, so that the group is never left half-started.
type Reservation struct {
	ctx  *Context
	left int
}

// Reserve claims n source slots.
func (c *Context) Reserve(n int) (*Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSources > 0 && len(c.active)+c.pending+n > c.maxSources {
		return nil, ErrSourceLimit
	}
	c.pending += n
	return &Reservation{ctx: c, left: n}, nil
}

// Start starts src at t using one claimed slot. Once the claims are used up
// it behaves like src.Start.
func (r *Reservation) Start(src Source, t float64) error {
	return src.sourceBase().startAt(t, r)
}

// Release hands back the claims that were not used.
func (r *Reservation) Release() {
	if r == nil {
		return
	}
	r.ctx.mu.Lock()
	defer r.ctx.mu.Unlock()
	r.ctx.pending -= r.left
	r.left = 0
}

// admit registers s as active. Called with c.mu held.
func (c *Context) admit(s Source, r *Reservation) error {
	if r != nil && r.left > 0 {
		r.left--
		c.pending--
	} else if c.maxSources > 0 && len(c.active)+c.pending >= c.maxSources {
		return ErrSourceLimit
	}
	c.active = append(c.active, s)
	return nil
}

// At runs fn once the clock reaches t.
func (c *Context) At(t float64, fn func()) *Task {
	return c.sched.at(t, fn)
}

// Every runs fn repeatedly. next returns the wait in seconds before each run,
// starting from the current clock time.
func (c *Context) Every(next func() float64, fn func()) *Task {
	return c.sched.every(c.Now(), next, fn)
}

func (c *Context) SampleRate() int { return c.sampleRate }
func (c *Context) Channels() int   { return 1 }
func (c *Context) BufSize() int    { return RenderQuantum * 8 }

// Close makes further reads return io.EOF. The graph is left intact.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// ReadSamples renders len(dst) frames. Due tasks run between quanta.
func (c *Context) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		n, ok := c.renderQuantum(dst[written:])
		if !ok {
			if written == 0 {
				return 0, io.EOF
			}
			return written, nil
		}
		written += n
		c.sched.runDue(c.Now())
	}
	return written, nil
}

// renderQuantum renders up to the next quantum boundary.
func (c *Context) renderQuantum(dst []float32) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, false
	}

	n := min(len(dst), RenderQuantum-int(c.frame%RenderQuantum))
	for i := range n {
		t := c.now()
		v := c.pull(c.dest, t)
		for _, d := range c.delays {
			d.commit(t)
		}
		dst[i] = float32(v)
		c.frame++
	}

	c.reap()
	return n, true
}

// reap drops sources whose end time has passed.
func (c *Context) reap() {
	now := c.now()
	c.active = slices.DeleteFunc(c.active, func(s Source) bool {
		b := s.sourceBase()
		if b.endTime() <= now {
			b.ended = true
			return true
		}
		return false
	})
}

// pull evaluates n once per frame. A node that is re-entered while it is
// being evaluated yields zero for that edge.
func (c *Context) pull(n Node, t float64) float64 {
	b := n.base()
	if b.frame == c.frame {
		return b.value
	}
	b.frame = c.frame
	b.value = 0
	b.value = n.process(t)
	return b.value
}

func (c *Context) addDelay(d *Delay) {
	c.delays = append(c.delays, d)
}

func (c *Context) removeDelay(d *Delay) {
	c.delays = slices.DeleteFunc(c.delays, func(x *Delay) bool { return x == d })
}

func (c *Context) secondsToFrames(s float64) float64 {
	return s * float64(c.sampleRate)
}

func (c *Context) nyquist() float64 {
	return float64(c.sampleRate) / 2
}

// clampFrequency keeps a filter or oscillator frequency inside (0, nyquist).
func (c *Context) clampFrequency(f float64) float64 {
	ny := c.nyquist()
	if math.IsNaN(f) || f < 1e-3 {
		return 1e-3
	}
	if f > ny*0.999 {
		return ny * 0.999
	}
	return f
}
