// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/soundscape/internal/audiotest"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	in := []float32{0, 1, -1, 0.25}
	p := make([]byte, len(in)*4)
	encode(p, in)

	for i, want := range in {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		if got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	r := &reader{src: audiotest.NewConstantSource(8000, 1, 10, 0.5)}

	p := make([]byte, 6*4+3)
	n, err := r.Read(p)
	if n != 24 || err != nil {
		t.Fatalf("Read() = (%d, %v), want (24, nil)", n, err)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(p[20:])); got != 0.5 {
		t.Errorf("last sample = %v, want 0.5", got)
	}

	n, err = r.Read(p)
	if n != 16 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end = (%d, %v), want (16, EOF)", n, err)
	}
}

func TestReader_ShortBuffer(t *testing.T) {
	t.Parallel()

	r := &reader{src: audiotest.NewConstantSource(8000, 1, 10, 0.5)}
	if n, err := r.Read(make([]byte, 3)); n != 0 || err != nil {
		t.Errorf("Read(3 bytes) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestOpen_RejectsStereo(t *testing.T) {
	t.Parallel()

	if _, err := Open(audiotest.NewSilentSource(8000, 2, 10)); !errors.Is(err, ErrChannels) {
		t.Errorf("Open(stereo) error = %v, want ErrChannels", err)
	}
}
