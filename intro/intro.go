// SPDX-License-Identifier: EPL-2.0

// Package intro drives the soundscape of the opening scene: a muted start,
// an ambient bed toggled by the mute control, and a single door opening that
// leads into the spiritual tone before the scene exits.
package intro

import (
	"errors"
	"sync"
	"time"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/internal/log"
	"github.com/ik5/soundscape/synth"
)

// Scene timings, measured from the door opening.
const (
	ToneDelay = 1200 * time.Millisecond
	ExitDelay = 5500 * time.Millisecond
)

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("intro: sequencer closed")

// Player is the part of soundscape.Engine the sequencer drives.
type Player interface {
	PlayAmbient(volume float64) (*soundscape.SoundHandle, error)
	PlayDoorOpen(volume float64) error
	PlaySpiritualTone(volume float64) (*soundscape.SoundHandle, error)
	After(d time.Duration, fn func()) (*synth.Task, error)
}

// Sequencer owns the handles of one intro scene. It starts muted.
type Sequencer struct {
	player Player
	log    *log.Logger

	mu        sync.Mutex
	muted     bool
	triggered bool
	closed    bool
	ambient   *soundscape.SoundHandle
	tone      *soundscape.SoundHandle
	toneTask  *synth.Task
	exitTask  *synth.Task
	exited    chan struct{}
}

// New returns a muted sequencer. A nil logger discards.
func New(p Player, l *log.Logger) *Sequencer {
	if l == nil {
		l = log.Discard()
	}
	return &Sequencer{
		player: p,
		log:    l,
		muted:  true,
		exited: make(chan struct{}),
	}
}

// Muted reports the mute state.
func (s *Sequencer) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Triggered reports whether the door has been opened.
func (s *Sequencer) Triggered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggered
}

// ToggleMute flips the mute state and returns the new one. Unmuting starts
// the ambient bed unless one is already playing. Muting stops the bed, the
// tone and a tone that is still waiting to start.
func (s *Sequencer) ToggleMute() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.muted, ErrClosed
	}
	s.muted = !s.muted

	if s.muted {
		s.silence()
		s.log.Infof("muted")
		return true, nil
	}

	s.log.Infof("unmuted")
	if s.ambient != nil {
		return false, nil
	}
	h, err := s.player.PlayAmbient(soundscape.DefaultAmbientVolume)
	if err != nil {
		s.log.Errorf("ambient: %v", err)
		return false, err
	}
	s.ambient = h
	return false, nil
}

// OpenDoor opens the door once; later calls do nothing. With sound on it
// plays the door and starts the tone ToneDelay later. The scene exits
// ExitDelay after the door opens either way.
func (s *Sequencer) OpenDoor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.triggered {
		return nil
	}
	s.triggered = true
	s.log.Infof("door opening")

	var errs []error
	if !s.muted {
		if err := s.player.PlayDoorOpen(soundscape.DefaultDoorVolume); err != nil {
			s.log.Errorf("door: %v", err)
			errs = append(errs, err)
		}
		task, err := s.player.After(ToneDelay, s.startTone)
		if err != nil {
			errs = append(errs, err)
		}
		s.toneTask = task
	}

	task, err := s.player.After(ExitDelay, s.exit)
	if err != nil {
		errs = append(errs, err)
	}
	s.exitTask = task

	return errors.Join(errs...)
}

func (s *Sequencer) startTone() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.muted || s.toneTask == nil || s.toneTask.Canceled() {
		return
	}
	s.toneTask = nil

	h, err := s.player.PlaySpiritualTone(soundscape.DefaultToneVolume)
	if err != nil {
		s.log.Errorf("spiritual tone: %v", err)
		return
	}
	s.tone = h
}

func (s *Sequencer) exit() {
	s.log.Infof("scene exit")
	s.Close()
}

// Exited is closed when the scene ends, by timing out or by Close.
func (s *Sequencer) Exited() <-chan struct{} {
	return s.exited
}

// Close stops every sound and cancels pending work. It is safe to call more
// than once.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.silence()
	s.exitTask.Cancel()
	close(s.exited)
}

// Handles returns the running ambient and tone handles, nil when absent.
func (s *Sequencer) Handles() (ambient, tone *soundscape.SoundHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ambient, s.tone
}

// silence is called with s.mu held.
func (s *Sequencer) silence() {
	s.toneTask.Cancel()
	s.toneTask = nil
	s.ambient.Stop()
	s.ambient = nil
	s.tone.Stop()
	s.tone = nil
}
