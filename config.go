// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"github.com/ik5/soundscape/internal/log"
	"github.com/ik5/soundscape/synth"
)

// DefaultSampleRate is the synthesis and device rate when none is set.
const DefaultSampleRate = 44100

// Default volumes of the three soundscapes.
const (
	DefaultAmbientVolume = 0.12
	DefaultDoorVolume    = 0.5
	DefaultToneVolume    = 0.15
)

// Config holds the engine settings.
type Config struct {
	// SampleRate of the synthesis clock and the output device.
	SampleRate int
	// MaxSources caps concurrently active generators; below one disables it.
	MaxSources int
	// Seed for noise and randomized parameters. Zero picks a random seed.
	Seed uint64
	// Opener creates the output on first use.
	Opener Opener
	Logger *log.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig plays on the system device at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		MaxSources: synth.DefaultMaxSources,
		Opener:     DeviceOpener(),
		Logger:     log.Discard(),
	}
}

func WithSampleRate(rate int) Option {
	return func(cfg *Config) {
		if rate > 0 {
			cfg.SampleRate = rate
		}
	}
}

func WithMaxSources(n int) Option {
	return func(cfg *Config) {
		cfg.MaxSources = n
	}
}

// WithSeed makes noise and random detuning reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

func WithLogger(l *log.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithOpener replaces the output device, for example with Offline.
func WithOpener(o Opener) Option {
	return func(cfg *Config) {
		cfg.Opener = o
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
