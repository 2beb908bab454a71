// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Source is a pull-based stream of interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns the
	// number of float32 values written (not frames). A finished stream returns
	// io.EOF, possibly together with a final partial read.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size, in samples, the source works best with.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps a format key ("wav", "mp3", "ogg") to its Decoder.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode looks up format and decodes rd with it.
func (r *Registry) Decode(format string, rd io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	src, err := d.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return src, nil
}
