// SPDX-License-Identifier: EPL-2.0

package synth

// Gain scales the sum of its inputs by Gain.
type Gain struct {
	node

	Gain *Param
}

// NewGain returns a unity gain node.
func NewGain(ctx *Context) *Gain {
	g := &Gain{Gain: newParam(ctx, 1)}
	g.init(ctx, g)
	return g
}

func (g *Gain) process(t float64) float64 {
	in := g.sumInputs(t)
	return in * g.Gain.at(t)
}
