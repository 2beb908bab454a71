// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundscape/utils"
)

// maxEmptyFrameReads bounds how often a source may answer a one-frame read
// with nothing before the resampler treats it as finished.
const maxEmptyFrameReads = 16

// Resampler streams src at a different sample rate using Catmull-Rom
// interpolation over a sliding four-frame window. The channel count is kept.
// When downsampling a one-pole low-pass smooths the input first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// win[1] and win[2] bracket the current output position; win[0] and
	// win[3] are the outer spline points.
	win   [4][]float32
	valid [4]bool
	frac  float64

	primed bool
	srcEOF bool

	smooth   bool
	lpAlpha  float32
	lpState  []float32
	lpPrimed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		smooth:   step > 1,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces interleaved output at the destination rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y1, y2 := r.win[1][c], r.win[2][c]
			y0, y3 := y1, y2
			if r.valid[0] {
				y0 = r.win[0][c]
			}
			if r.valid[3] {
				y3 = r.win[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}

// prime loads the first three source frames into win[1..3].
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.win) && !r.srcEOF; i++ {
		ok, err := r.readFrame(r.win[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
		if !ok {
			break
		}
	}

	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]
	r.valid[3] = false

	if !r.srcEOF {
		ok, err := r.readFrame(r.win[3])
		if err != nil {
			return err
		}
		r.valid[3] = ok
	}

	if !r.valid[2] {
		return io.EOF
	}
	return nil
}

// readFrame reads exactly one frame into dst. It reports false once the
// source is exhausted; io.EOF is absorbed into r.srcEOF.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for range maxEmptyFrameReads {
		n, err := r.src.ReadSamples(dst)
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == r.channels {
			r.lowpass(dst)
			return true, nil
		}
		if r.srcEOF {
			return false, nil
		}
	}

	r.srcEOF = true
	return false, nil
}

func (r *Resampler) lowpass(frame []float32) {
	if !r.smooth {
		return
	}
	if !r.lpPrimed {
		copy(r.lpState, frame)
		r.lpPrimed = true
		return
	}
	for c := range frame {
		frame[c] = r.lpAlpha*frame[c] + (1-r.lpAlpha)*r.lpState[c]
		r.lpState[c] = frame[c]
	}
}
