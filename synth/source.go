// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Source is a generator node with a start and stop time on the audio clock.
type Source interface {
	Node
	// Start begins playback at t. A source can be started once.
	Start(t float64) error
	// Stop ends playback at t. Repeated calls keep the earliest stop time and
	// a time before the start is clamped to the start.
	Stop(t float64)
	// Ended reports whether the source has finished and released its slot.
	Ended() bool

	sourceBase() *scheduled
}

// scheduled is the start/stop bookkeeping shared by every Source.
type scheduled struct {
	node

	started  bool
	ended    bool
	start    float64
	stop     float64
	duration float64 // natural length, +Inf for endless sources
}

func (s *scheduled) initSource(ctx *Context, self Source) {
	s.init(ctx, self)
	s.stop = math.Inf(1)
	s.duration = math.Inf(1)
}

func (s *scheduled) sourceBase() *scheduled { return s }

func (s *scheduled) Start(t float64) error {
	return s.startAt(t, nil)
}

func (s *scheduled) startAt(t float64, r *Reservation) error {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	if err := s.ctx.admit(s.self.(Source), r); err != nil {
		return err
	}
	s.started = true
	s.start = max(t, 0)
	s.stop = max(s.stop, s.start)
	return nil
}

func (s *scheduled) Stop(t float64) {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	if s.started {
		t = max(t, s.start)
	}
	s.stop = min(s.stop, t)
}

func (s *scheduled) Ended() bool {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()
	return s.ended
}

func (s *scheduled) endTime() float64 {
	return min(s.stop, s.start+s.duration)
}

// playing reports whether t falls inside the source's active span.
func (s *scheduled) playing(t float64) bool {
	return s.started && !s.ended && t >= s.start && t < s.endTime()
}

// BufferSource plays a sample buffer once or in a loop.
type BufferSource struct {
	scheduled

	buffer []float32
	loop   bool
	pos    int
}

// NewBufferSource plays buffer, which must be at the context's sample rate.
func NewBufferSource(ctx *Context, buffer []float32) *BufferSource {
	b := &BufferSource{buffer: buffer}
	b.initSource(ctx, b)
	b.updateDuration()
	return b
}

// SetLoop makes the buffer repeat until the source is stopped.
func (b *BufferSource) SetLoop(loop bool) {
	b.ctx.mu.Lock()
	defer b.ctx.mu.Unlock()
	b.loop = loop
	b.updateDuration()
}

// Loop reports whether the buffer repeats.
func (b *BufferSource) Loop() bool {
	b.ctx.mu.Lock()
	defer b.ctx.mu.Unlock()
	return b.loop
}

// Duration returns the buffer length in seconds.
func (b *BufferSource) Duration() float64 {
	return float64(len(b.buffer)) / float64(b.ctx.sampleRate)
}

func (b *BufferSource) updateDuration() {
	if b.loop {
		b.duration = math.Inf(1)
		return
	}
	b.duration = b.Duration()
}

func (b *BufferSource) process(t float64) float64 {
	if !b.playing(t) || len(b.buffer) == 0 {
		return 0
	}
	if b.pos >= len(b.buffer) {
		if !b.loop {
			return 0
		}
		b.pos = 0
	}
	v := b.buffer[b.pos]
	b.pos++
	return float64(v)
}
