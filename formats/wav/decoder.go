// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// WAVE format codes.
const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xfffe
)

// pcmReader is the part of wav.Decoder used once the header is parsed, so
// tests can substitute it.
type pcmReader interface {
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

// Decoder reads a whole WAV stream into an in-memory audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	b, err := decode(dec, int(dec.BitDepth), int(dec.WavAudioFormat))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func decode(dec pcmReader, bitDepth, format int) (*audio.Buffer, error) {
	t, err := sampleType(bitDepth, format)
	if err != nil {
		return nil, err
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	b, err := audio.FromIntBuffer(ib, t)
	if err != nil {
		return nil, fmt.Errorf("building wav buffer: %w", err)
	}
	return b, nil
}

func sampleType(bitDepth, format int) (pcm.SampleType, error) {
	switch format {
	case formatPCM, formatExtensible:
		t, err := pcm.SampleTypeFromBits(bitDepth, false)
		if err != nil {
			return 0, fmt.Errorf("wav pcm: %w", err)
		}
		return t, nil
	case formatFloat:
		t, err := pcm.SampleTypeFromBits(bitDepth, true)
		if err != nil {
			return 0, fmt.Errorf("wav float: %w", err)
		}
		return t, nil
	default:
		return 0, fmt.Errorf("%w: format code %#x", ErrUnsupportedWavLayout, format)
	}
}
