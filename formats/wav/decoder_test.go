// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/soundscape/audio"
)

func writeTemp(t *testing.T, sampleRate int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "render.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Write16(f, sampleRate, samples); err != nil {
		t.Fatalf("Write16() error = %v", err)
	}
	return path
}

func TestWrite16_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 32767, -32768, 42}
	path := writeTemp(t, 22050, want)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 1 {
		t.Errorf("decoded %d Hz x%d, want 22050 Hz mono", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if g := float32(want[i]) / 32768; got[i] != g {
			t.Errorf("sample %d = %v, want %v", i, got[i], g)
		}
	}
}

func TestWrite16_Empty(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, 8000, nil)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() < 44 {
		t.Errorf("file size = %d, want at least a full header", info.Size())
	}
}

// nonSeeker hides the Seek method of the underlying reader.
type nonSeeker struct{ io.Reader }

func TestDecoder_BuffersNonSeekableInput(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(writeTemp(t, 8000, []int16{5, 6, 7}))
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(nonSeeker{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadAll(src, 16)
	if err != nil || len(got) != 3 {
		t.Errorf("ReadAll() = %d samples, %v; want 3", len(got), err)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"text", []byte("This is not WAV data at all, not even close."), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"riff without wave", append([]byte("RIFF\x24\x00\x00\x00AVI "), make([]byte, 32)...), ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_Rejects8Bit(t *testing.T) {
	t.Parallel()

	// 8-bit mono PCM, two samples.
	var b bytes.Buffer
	b.WriteString("RIFF")
	b.Write([]byte{38, 0, 0, 0})
	b.WriteString("WAVEfmt ")
	b.Write([]byte{16, 0, 0, 0, 1, 0, 1, 0, 0x40, 0x1f, 0, 0, 0x40, 0x1f, 0, 0, 1, 0, 8, 0})
	b.WriteString("data")
	b.Write([]byte{2, 0, 0, 0, 0x80, 0x90})

	if _, err := (Decoder{}).Decode(bytes.NewReader(b.Bytes())); !errors.Is(err, ErrOnlyPCM16bitSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCM16bitSupported", err)
	}
}

func ExampleWrite16() {
	path := filepath.Join(os.TempDir(), "soundscape-example.wav")
	defer os.Remove(path)

	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	if err := Write16(f, 8000, []int16{0, 16384, -16384}); err != nil {
		panic(err)
	}
	f.Close()

	f, _ = os.Open(path)
	defer f.Close()
	src, err := Decoder{}.Decode(f)
	if err != nil {
		panic(err)
	}
	samples, _ := audio.ReadAll(src, 16)
	fmt.Println(src.SampleRate(), samples)
	// Output: 8000 [0 0.5 -0.5]
}
