// SPDX-License-Identifier: EPL-2.0

// Package soundscape synthesizes three procedural soundscapes at runtime: a
// looping wind bed, a one-shot door-open effect and a sustained spiritual
// drone. No samples or media files are involved; everything is built from
// noise buffers, oscillators, filters, gains and a feedback delay on the
// synth graph.
//
// # Quick Start
//
//	eng := soundscape.New()
//
//	ambient, err := eng.PlayAmbient(soundscape.DefaultAmbientVolume)
//	if err != nil {
//	    // sound is optional; carry on without it
//	}
//	defer ambient.Stop()
//
//	_ = eng.PlayDoorOpen(soundscape.DefaultDoorVolume)
//
// The first play call creates the synthesis context and opens the system
// audio device. Every later call resumes the device if it was suspended.
// Failures wrap ErrDeviceUnavailable and leave the engine ready to retry.
//
// # Handles
//
// PlayAmbient and PlaySpiritualTone return a SoundHandle. Stop never cuts a
// sound off: it ramps the output gain to zero and only releases the
// generators once the ramp has finished. Calling Stop again does nothing, and
// a nil handle is safe to stop.
//
// # Offline Rendering
//
// With WithOpener(Offline(nil)) nothing is played. The caller advances the
// audio clock by reading Engine.Source, for example through RenderMono16:
//
//	eng := soundscape.New(soundscape.WithOpener(soundscape.Offline(nil)))
//	_ = eng.PlayDoorOpen(0.5)
//	pcm, _ := soundscape.RenderMono16(eng.Source(), 4, 16000, 4096)
//
// The formats/wav and formats/aiff packages write the result to disk.
//
// # Subpackages
//
//   - synth: the node graph, audio clock and scheduler
//   - audio: the Source streaming contract, resampling and mixing
//   - device: oto based output
//   - intro: sequencing of the sounds against a door-opening animation
//   - analysis: level and spectrum measurements
//   - formats: WAV, AIFF, MP3 and Ogg Vorbis codecs
package soundscape
