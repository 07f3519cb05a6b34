// SPDX-License-Identifier: EPL-2.0

package audgraph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/clip"
	"github.com/ik5/audgraph/formats/aiff"
	"github.com/ik5/audgraph/formats/mp3"
	"github.com/ik5/audgraph/formats/vorbis"
	"github.com/ik5/audgraph/formats/wav"
	"github.com/ik5/audgraph/graph"
	"github.com/ik5/audgraph/pcm"
	"github.com/ik5/audgraph/video"
)

var ErrUnknownExtension = errors.New("no decoder registered for extension")

// NewRegistry returns a registry holding every decoder under formats/,
// keyed by the file extensions they usually carry.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// DecodeFile decodes path with the decoder reg holds for its extension.
// A nil reg uses NewRegistry.
func DecodeFile(reg *audio.Registry, path string) (audio.Source, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return src, nil
}

// Overlay dubs a onto v and returns a clip drawing a's waveform over every
// frame of v.
func Overlay(v video.Clip, a audio.Source, cfg graph.Config, opts ...graph.Option) (*graph.Graph, error) {
	return graph.New(clip.New(v, a), cfg, opts...)
}

// EncodeWAV writes src to w as a WAV file of sample type t, converting
// samples on the fly when src is stored differently.
func EncodeWAV(w io.WriteSeeker, src audio.Source, t pcm.SampleType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %v", pcm.ErrUnsupportedSampleType, t)
	}

	return wav.Encode(w, audio.Convert(src, t, t))
}
