// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/formats"
	"github.com/ik5/soundscape/internal/log"
	"github.com/ik5/soundscape/intro"
)

// releaseWait bounds how long play waits for fades after the scene ends.
const releaseWait = 3 * time.Second

func cmdPlay(args []string, stderr io.Writer) error {
	fs := newFlagSet("play", stderr)
	duration := fs.Duration("duration", 0, "stop after this long; 0 plays until the scene exits")
	openAt := fs.Duration("open-at", 3*time.Second, "open the door after this long")
	rate := fs.Int("rate", soundscape.DefaultSampleRate, "output sample rate in Hz")
	level := fs.String("log-level", "info", "debug, info, warn, error or none")
	if err := parse(fs, args); err != nil {
		return err
	}

	logger := log.New(stderr, log.LevelFromString(*level))
	eng := soundscape.New(soundscape.WithSampleRate(*rate), soundscape.WithLogger(logger))
	seq := intro.New(eng, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := seq.ToggleMute(); err != nil {
		return err
	}

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}
	door := time.After(*openAt)

wait:
	for {
		select {
		case <-door:
			if err := seq.OpenDoor(); err != nil {
				logger.Errorf("open door: %v", err)
			}
		case <-seq.Exited():
			break wait
		case <-deadline:
			break wait
		case <-ctx.Done():
			logger.Infof("interrupted")
			break wait
		}
	}

	ambient, tone := seq.Handles()
	seq.Close()

	timeout := time.After(releaseWait)
	for _, h := range []*soundscape.SoundHandle{ambient, tone} {
		select {
		case <-h.Done():
		case <-timeout:
			logger.Warnf("%s still fading at exit", h)
		}
	}
	return nil
}

func cmdRender(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("render", stderr)
	out := fs.String("o", "", "output file (.wav or .aiff)")
	openAt := fs.Duration("open-at", time.Second, "open the door at this point of the render")
	duration := fs.Duration("duration", 0, "render length; 0 renders until every sound has faded")
	rate := fs.Int("rate", soundscape.DefaultSampleRate, "sample rate in Hz")
	seed := fs.Uint64("seed", 1, "noise and detune seed; 0 picks one at random")
	level := fs.String("log-level", "warn", "debug, info, warn, error or none")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return fmt.Errorf("%w: -o is required", errUsage)
	}
	write, err := formats.WriterFor(formats.FromPath(*out))
	if err != nil {
		return err
	}

	length := *duration
	if length <= 0 {
		length = *openAt + intro.ExitDelay + releaseWait
	}

	logger := log.New(stderr, log.LevelFromString(*level))
	eng := soundscape.New(
		soundscape.WithSampleRate(*rate),
		soundscape.WithSeed(*seed),
		soundscape.WithLogger(logger),
		soundscape.WithOpener(soundscape.Offline(nil)),
	)
	seq := intro.New(eng, logger)
	defer seq.Close()

	if _, err := seq.ToggleMute(); err != nil {
		return err
	}

	var pcm []int16
	if head := min(*openAt, length); head > 0 {
		pcm, err = soundscape.RenderMono16(eng.Source(), head.Seconds(), *rate, 0)
		if err != nil {
			return err
		}
	}
	if *openAt < length {
		if err := seq.OpenDoor(); err != nil {
			return err
		}
	}
	if rest := length.Seconds() - float64(len(pcm))/float64(*rate); rest > 0 {
		tail, err := soundscape.RenderMono16(eng.Source(), rest, *rate, 0)
		if err != nil {
			return err
		}
		pcm = append(pcm, tail...)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := write(f, *rate, pcm); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s: %d samples, %.2fs at %d Hz\n",
		*out, len(pcm), float64(len(pcm))/float64(*rate), *rate)
	return nil
}
