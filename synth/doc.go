// SPDX-License-Identifier: EPL-2.0

// Package synth is a small real-time synthesis graph in the style of the Web
// Audio API.
//
// A Context owns the audio clock and renders a mono stream one render quantum
// (128 frames) at a time. Nodes are wired with Connect, generators are started
// and stopped at clock times, and every Param carries an automation timeline
// that is evaluated per sample.
//
// # Graph
//
//	ctx := synth.NewContext(44100)
//	osc := synth.NewOscillator(ctx, synth.Sine)
//	amp := synth.NewGain(ctx)
//	osc.Connect(amp)
//	amp.Connect(ctx.Destination())
//
//	now := ctx.Now()
//	amp.Gain.SetValueAtTime(0, now)
//	amp.Gain.LinearRampToValueAtTime(0.2, now+1)
//	osc.Start(now)
//
// Nodes connected to a Param add their output to its automated value, which
// is how low-frequency oscillators modulate gains.
//
// # Clock and scheduling
//
// Time advances only while the context is rendered, either by an output
// device or by reading it offline through the audio.Source interface. At and
// Every schedule callbacks on that clock; they run after the quantum that
// crosses their due time and may freely touch the graph.
//
// # Feedback
//
// A Delay reads its line without pulling its inputs, so cycles through a
// Delay are allowed. Any other cycle renders as silence on the edge that
// closes it.
package synth
