// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Take bounds src to at most frames frames. It turns an endless generator,
// such as a synth context, into a stream that ends with io.EOF.
func Take(src Source, frames int) Source {
	return &taken{src: src, remaining: max(frames, 0)}
}

type taken struct {
	src       Source
	remaining int
}

func (t *taken) SampleRate() int { return t.src.SampleRate() }
func (t *taken) Channels() int   { return t.src.Channels() }
func (t *taken) BufSize() int    { return t.src.BufSize() }

func (t *taken) Close() error {
	if err := t.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (t *taken) ReadSamples(dst []float32) (int, error) {
	channels := t.src.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if t.remaining == 0 {
		return 0, io.EOF
	}

	if limit := t.remaining * channels; len(dst) > limit {
		dst = dst[:limit]
	}

	n, err := t.src.ReadSamples(dst)
	t.remaining -= n / channels
	if t.remaining <= 0 {
		t.remaining = 0
		if err == nil {
			err = io.EOF
		}
	}
	return n, err
}
