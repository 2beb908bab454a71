// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the synthesis
// engine, the exporters and the probe tool.
//
// # Source Interface
//
// Everything that produces sound implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. A finished stream
// reports io.EOF; a live generator such as synth.Context never does, so
// wrap it with Take before draining it.
//
// # Pipelines
//
//	bounded := audio.Take(ctx, 10*ctx.SampleRate())
//	resampled := audio.NewResampler(bounded, 22050)
//	mono := audio.NewMonoMixer(resampled)
//	samples, err := audio.ReadAll(mono, 4096)
//
// The Resampler uses Catmull-Rom interpolation over a sliding window and a
// one-pole smoother when downsampling. MonoMixer averages channels.
//
// # Format Registry
//
// Decoders register under a short key so tools can dispatch on a file
// extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	src, err := reg.Decode("wav", file)
//
// Unknown keys fail with ErrUnknownFormat.
package audio
