// SPDX-License-Identifier: EPL-2.0

// Package device plays an audio.Source on the system output through oto.
//
// oto allows one context per process, so the first Open fixes the sample
// rate. Later opens must use the same rate.
package device

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/soundscape/audio"
)

var (
	ErrRateMismatch = errors.New("device: sample rate differs from the open context")
	ErrChannels     = errors.New("device: only mono sources are supported")
)

const bufferDuration = 50 * time.Millisecond

var (
	once    sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoErr  error
)

func context(sampleRate int) (*oto.Context, error) {
	once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   bufferDuration,
		})
		if err != nil {
			otoErr = fmt.Errorf("device: %w", err)
			return
		}
		<-ready
		otoCtx, otoRate = ctx, sampleRate
	})

	if otoErr != nil {
		return nil, otoErr
	}
	if otoRate != sampleRate {
		return nil, fmt.Errorf("%w: %d != %d", ErrRateMismatch, sampleRate, otoRate)
	}
	return otoCtx, nil
}

// Output is a player pulling from one source.
type Output struct {
	mu        sync.Mutex
	ctx       *oto.Context
	player    *oto.Player
	suspended bool
}

// Open starts playing src, which must be mono.
func Open(src audio.Source) (*Output, error) {
	if src.Channels() != 1 {
		return nil, ErrChannels
	}

	ctx, err := context(src.SampleRate())
	if err != nil {
		return nil, err
	}

	p := ctx.NewPlayer(&reader{src: src})
	p.Play()

	return &Output{ctx: ctx, player: p}, nil
}

func (o *Output) Suspended() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.suspended
}

// Suspend pauses the whole device.
func (o *Output) Suspend() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.ctx.Suspend(); err != nil {
		return fmt.Errorf("device: suspend: %w", err)
	}
	o.suspended = true
	return nil
}

func (o *Output) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.ctx.Resume(); err != nil {
		return fmt.Errorf("device: resume: %w", err)
	}
	o.suspended = false
	if !o.player.IsPlaying() {
		o.player.Play()
	}
	return nil
}

// Err reports a playback error raised by the device, if any.
func (o *Output) Err() error {
	if err := o.ctx.Err(); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	return nil
}

// Close stops the player. The shared context stays open.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.player.Close(); err != nil {
		return fmt.Errorf("device: close: %w", err)
	}
	return nil
}

// reader adapts a float32 source to the little-endian byte stream oto reads.
type reader struct {
	src audio.Source
	buf []float32
}

func (r *reader) Read(p []byte) (int, error) {
	samples := len(p) / 4
	if samples == 0 {
		return 0, nil
	}
	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}
	buf := r.buf[:samples]

	n, err := r.src.ReadSamples(buf)
	encode(p, buf[:n])
	if err != nil && !errors.Is(err, io.EOF) {
		return n * 4, fmt.Errorf("device: read: %w", err)
	}
	return n * 4, err
}

// encode writes samples as float32 little-endian into p.
func encode(p []byte, samples []float32) {
	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
}
