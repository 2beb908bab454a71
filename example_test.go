// SPDX-License-Identifier: EPL-2.0

package soundscape_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/formats/wav"
)

// Example_offlineRender plays the door and exports the first second as a WAV
// file without touching the audio device.
func Example_offlineRender() {
	eng := soundscape.New(
		soundscape.WithSampleRate(8000),
		soundscape.WithSeed(7),
		soundscape.WithOpener(soundscape.Offline(nil)),
	)
	if err := eng.PlayDoorOpen(0.5); err != nil {
		fmt.Println(err)
		return
	}

	pcm, err := soundscape.RenderMono16(eng.Source(), 1, 8000, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	path := filepath.Join(os.TempDir(), "soundscape-door.wav")
	defer os.Remove(path)
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	if err := wav.Write16(f, 8000, pcm); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("wrote %d samples, clock at %.1fs\n", len(pcm), eng.Now())
	// Output: wrote 8000 samples, clock at 1.0s
}

// Example_stopFade shows that Stop fades the ambient bed before releasing it.
func Example_stopFade() {
	eng := soundscape.New(
		soundscape.WithSampleRate(8000),
		soundscape.WithOpener(soundscape.Offline(nil)),
	)
	h, err := eng.PlayAmbient(0.12)
	if err != nil {
		fmt.Println(err)
		return
	}

	h.Stop()
	_, _ = soundscape.RenderMono16(eng.Source(), 1, 0, 0)

	select {
	case <-h.Done():
		fmt.Println(h, "released")
	default:
		fmt.Println(h, "still playing")
	}
	// Output: ambient released
}
