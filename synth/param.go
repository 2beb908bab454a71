// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"sort"
)

type eventKind uint8

const (
	setValue eventKind = iota
	linearRamp
	exponentialRamp
)

type event struct {
	kind  eventKind
	time  float64
	value float64
}

// Param is an automatable node parameter. Its value at a time is the
// automation timeline at that time plus the output of every node connected
// to it.
type Param struct {
	ctx    *Context
	value  float64
	events []event
	mods   []Node
}

func newParam(ctx *Context, value float64) *Param {
	return &Param{ctx: ctx, value: value}
}

// Value returns the intrinsic value used before the first event.
func (p *Param) Value() float64 {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	return p.value
}

// SetValue sets the intrinsic value.
func (p *Param) SetValue(v float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.value = v
}

// SetValueAtTime jumps to v at t.
func (p *Param) SetValueAtTime(v, t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.insert(event{kind: setValue, time: t, value: v})
}

// LinearRampToValueAtTime ramps linearly from the previous event to v at t.
func (p *Param) LinearRampToValueAtTime(v, t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.anchor()
	p.insert(event{kind: linearRamp, time: t, value: v})
}

// ExponentialRampToValueAtTime ramps geometrically from the previous event
// to v at t. v must be positive.
func (p *Param) ExponentialRampToValueAtTime(v, t float64) error {
	if !(v > 0) {
		return ErrInvalidRampTarget
	}

	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.anchor()
	p.insert(event{kind: exponentialRamp, time: t, value: v})
	return nil
}

// CancelAndHoldAtTime drops every event after t and holds the value the
// timeline had at t. A ramp in progress at t is cut short at that value.
func (p *Param) CancelAndHoldAtTime(t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	v := p.automation(t)
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].time > t })

	kind := setValue
	if i < len(p.events) && i > 0 && p.events[i].kind != setValue {
		kind = p.events[i].kind
	}
	p.events = append(p.events[:i], event{kind: kind, time: t, value: v})
}

// ValueAt returns the automation timeline at t, without modulation.
func (p *Param) ValueAt(t float64) float64 {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	return p.automation(t)
}

// anchor pins the start of a ramp scheduled on an empty timeline to the
// current time and value.
func (p *Param) anchor() {
	if len(p.events) > 0 {
		return
	}
	p.events = append(p.events, event{kind: setValue, time: p.ctx.now(), value: p.value})
}

// insert adds e after any events at the same time and prunes the past.
func (p *Param) insert(e event) {
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].time > e.time })
	p.events = append(p.events, event{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
	p.prune(p.ctx.now())
}

// prune drops events that can no longer influence values at or after now.
func (p *Param) prune(now float64) {
	drop := 0
	for drop+1 < len(p.events) && p.events[drop+1].time <= now {
		drop++
	}
	if drop > 0 {
		p.events = append(p.events[:0], p.events[drop:]...)
	}
}

// at returns the full value at t for the frame being rendered.
func (p *Param) at(t float64) float64 {
	v := p.automation(t)
	for _, m := range p.mods {
		v += p.ctx.pull(m, t)
	}
	return v
}

func (p *Param) automation(t float64) float64 {
	ev := p.events
	if len(ev) == 0 || t < ev[0].time {
		return p.value
	}

	i := sort.Search(len(ev), func(i int) bool { return ev[i].time > t }) - 1
	cur := ev[i]
	if i+1 == len(ev) {
		return cur.value
	}

	next := ev[i+1]
	span := next.time - cur.time
	if span <= 0 {
		return cur.value
	}
	x := (t - cur.time) / span

	switch next.kind {
	case linearRamp:
		return cur.value + (next.value-cur.value)*x
	case exponentialRamp:
		if cur.value <= 0 {
			return cur.value
		}
		return cur.value * math.Pow(next.value/cur.value, x)
	default:
		return cur.value
	}
}
