// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/soundscape/formats/internal/pcm"
)

// Write16 writes mono 16-bit PCM samples as a complete WAV file.
func Write16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := wav.NewEncoder(ws, sampleRate, 16, 1, pcmFormat)
	if err := enc.Write(pcm.Mono16(sampleRate, samples)); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
