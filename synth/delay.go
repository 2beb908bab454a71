// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/soundscape/utils"
)

// Delay outputs its input DelayTime seconds later. It never pulls its inputs
// while producing output, so it may sit inside a feedback loop; the shortest
// delay is one frame.
type Delay struct {
	node

	DelayTime *Param

	line     []float64
	writePos int
}

// NewDelay returns a delay able to hold maxSeconds of signal.
func NewDelay(ctx *Context, maxSeconds float64) *Delay {
	size := int(math.Ceil(ctx.secondsToFrames(maxSeconds))) + 4
	d := &Delay{
		DelayTime: newParam(ctx, 0),
		line:      make([]float64, size),
	}
	d.init(ctx, d)

	ctx.mu.Lock()
	ctx.addDelay(d)
	ctx.mu.Unlock()
	return d
}

// MaxDelay returns the longest delay in seconds.
func (d *Delay) MaxDelay() float64 {
	return float64(len(d.line)-4) / float64(d.ctx.sampleRate)
}

// Disconnect also detaches the delay from the render loop, so its inputs are
// no longer consumed.
func (d *Delay) Disconnect() {
	d.ctx.mu.Lock()
	defer d.ctx.mu.Unlock()
	d.disconnect()
	d.ctx.removeDelay(d)
}

func (d *Delay) read(back int) float64 {
	size := len(d.line)
	return d.line[((d.writePos-back)%size+size)%size]
}

func (d *Delay) process(t float64) float64 {
	frames := d.ctx.secondsToFrames(d.DelayTime.at(t))
	frames = math.Max(1, math.Min(frames, float64(len(d.line)-3)))

	p := int(frames)
	x := frames - float64(p)

	y0 := d.read(max(p-1, 1))
	y1 := d.read(p)
	y2 := d.read(p + 1)
	y3 := d.read(p + 2)
	return utils.CubicInterpolate(y0, y1, y2, y3, x)
}

// commit writes the current frame's input once the whole graph has rendered.
func (d *Delay) commit(t float64) {
	d.line[d.writePos] = d.sumInputs(t)
	d.writePos++
	if d.writePos == len(d.line) {
		d.writePos = 0
	}
}
