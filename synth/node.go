// SPDX-License-Identifier: EPL-2.0

package synth

import "slices"

// Node is a vertex of the synthesis graph. Its output is mono.
type Node interface {
	// Connect feeds this node's output into dst. Multiple inputs are summed.
	Connect(dst Node)
	// ConnectParam adds this node's output to p's automated value.
	ConnectParam(p *Param)
	// Disconnect removes every outgoing connection.
	Disconnect()

	base() *node
	process(t float64) float64
}

// node holds the connection lists and the per-frame memo shared by all nodes.
type node struct {
	ctx  *Context
	self Node

	inputs []Node
	dests  []Node
	params []*Param

	frame int64
	value float64
}

func (n *node) init(ctx *Context, self Node) {
	n.ctx = ctx
	n.self = self
	n.frame = -1
}

func (n *node) base() *node { return n }

// Context returns the owning context.
func (n *node) Context() *Context { return n.ctx }

func (n *node) Connect(dst Node) {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	db := dst.base()
	db.inputs = append(db.inputs, n.self)
	n.dests = append(n.dests, dst)
}

func (n *node) ConnectParam(p *Param) {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	p.mods = append(p.mods, n.self)
	n.params = append(n.params, p)
}

func (n *node) Disconnect() {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()
	n.disconnect()
}

func (n *node) disconnect() {
	isSelf := func(x Node) bool { return x == n.self }
	for _, d := range n.dests {
		db := d.base()
		db.inputs = slices.DeleteFunc(db.inputs, isSelf)
	}
	for _, p := range n.params {
		p.mods = slices.DeleteFunc(p.mods, isSelf)
	}
	n.dests = nil
	n.params = nil
}

// sumInputs pulls and adds every input for the current frame.
func (n *node) sumInputs(t float64) float64 {
	var sum float64
	for _, in := range n.inputs {
		sum += n.ctx.pull(in, t)
	}
	return sum
}

// destination sums everything connected to the context output.
type destination struct {
	node
}

func (d *destination) process(t float64) float64 {
	return d.sumInputs(t)
}
