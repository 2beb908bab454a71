// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundscape/utils"
)

const maxEmptyReads = 64

// ReadAll drains src with reads of bufferSize samples and returns everything
// it produced. The source must end with io.EOF.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	bufferSize -= bufferSize % src.Channels()
	if bufferSize <= 0 {
		bufferSize = src.Channels()
	}

	var out []float32
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if n == 0 && err == nil {
			empty++
			if empty > maxEmptyReads {
				return out, ErrStalledSource
			}
			continue
		}
		empty = 0

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}

// ToPCM16 converts normalized samples to clamped 16-bit PCM.
func ToPCM16(samples []float32) []int16 {
	pcm := make([]int16, len(samples))
	for i, x := range samples {
		pcm[i] = utils.Float32ToInt16(x)
	}
	return pcm
}
