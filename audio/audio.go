// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ik5/audgraph/pcm"
)

// Info describes an audio track.
type Info struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// SampleType is the storage format of each channel sample.
	SampleType pcm.SampleType
	// NumSamples is the track length in sample frames (one sample per channel).
	NumSamples int64
}

// HasAudio reports whether the track carries any samples.
func (i Info) HasAudio() bool {
	return i.SampleRate > 0 && i.Channels > 0 && i.NumSamples > 0
}

// BytesPerChannelSample is the size of a single channel sample.
func (i Info) BytesPerChannelSample() int {
	return i.SampleType.BytesPerSample()
}

// BytesPerAudioSample is the size of one interleaved sample frame.
func (i Info) BytesPerAudioSample() int {
	return i.SampleType.BytesPerSample() * i.Channels
}

// Duration of the track.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.NumSamples * int64(time.Second) / int64(i.SampleRate))
}

// Source provides random access to interleaved PCM audio.
type Source interface {
	AudioInfo() Info
	// GetAudio fills buf with count sample frames starting at sample frame
	// start. Frames outside the track are filled with silence, so start may
	// be negative. buf must hold count*BytesPerAudioSample() bytes.
	GetAudio(buf []byte, start, count int64) error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Register adds d under format. Keys are case-insensitive and may carry a
// leading dot, so a file extension can be passed directly.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[formatKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[formatKey(format)]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
