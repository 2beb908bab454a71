// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/internal/log"
	"github.com/ik5/soundscape/synth"
)

// Engine synthesizes the ambient bed, the door-open effect and the spiritual
// tone. The synthesis context is created on first use and the output is
// opened, or resumed when suspended, on every play call. An Engine lives as
// long as the process that owns it.
type Engine struct {
	cfg Config
	log *log.Logger

	mu  sync.Mutex
	ctx *synth.Context
	out Output

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New returns an engine. Nothing is opened until the first play call.
func New(opts ...Option) *Engine {
	cfg := applyOptions(opts...)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Engine{
		cfg: cfg,
		log: cfg.Logger,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// context returns the synthesis context, creating it on first use.
// Called with e.mu held.
func (e *Engine) context() *synth.Context {
	if e.ctx == nil {
		e.ctx = synth.NewContext(e.cfg.SampleRate)
		e.ctx.SetMaxSources(e.cfg.MaxSources)
		e.log.Debugf("synthesis context created at %d Hz", e.cfg.SampleRate)
	}
	return e.ctx
}

// acquire returns a context whose output is open and running.
func (e *Engine) acquire() (*synth.Context, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := e.context()

	if e.out == nil {
		if e.cfg.Opener == nil {
			return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, ErrNoOpener)
		}
		out, err := e.cfg.Opener(ctx)
		if err != nil {
			e.log.Warnf("open output: %v", err)
			return nil, fmt.Errorf("%w: open: %w", ErrDeviceUnavailable, err)
		}
		e.out = out
		e.log.Debugf("output opened")
	}

	if e.out.Suspended() {
		if err := e.out.Resume(); err != nil {
			e.log.Warnf("resume output: %v", err)
			return nil, fmt.Errorf("%w: resume: %w", ErrDeviceUnavailable, err)
		}
		e.log.Debugf("output resumed")
	}

	return ctx, nil
}

// Source exposes the synthesis context as an endless mono stream. Reading it
// advances the audio clock, which is how offline rendering drives the engine.
func (e *Engine) Source() audio.Source {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.context()
}

// Now returns the audio clock in seconds.
func (e *Engine) Now() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.context().Now()
}

// After runs fn once d has elapsed on the audio clock.
func (e *Engine) After(d time.Duration, fn func()) (*synth.Task, error) {
	ctx, err := e.acquire()
	if err != nil {
		return nil, err
	}
	return ctx.At(ctx.Now()+d.Seconds(), fn), nil
}

func (e *Engine) random() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) noise(ctx *synth.Context, seconds float64, color synth.NoiseColor) []float32 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return synth.NewNoiseBuffer(e.rng, ctx.SampleRate(), seconds, color)
}
