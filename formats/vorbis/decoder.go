// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// readFrames is the number of sample frames requested per Read.
const readFrames = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder decodes a whole Ogg Vorbis stream into an in-memory audio.Buffer
// of 32-bit float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	b, err := decode(dec)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func decode(dec oggReader) (*audio.Buffer, error) {
	ch := dec.Channels()
	if ch <= 0 {
		return nil, ErrNoChannels
	}

	// Read returns interleaved values, always a multiple of Channels()
	buf := make([]float32, readFrames*ch)
	var samples []float32

	for {
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading vorbis packets: %w", err)
		}
		if n == 0 {
			break
		}
	}

	n := len(samples) - len(samples)%ch
	data := make([]byte, n*pcm.SampleFloat.BytesPerSample())
	pcm.FromFloat(data, samples, pcm.SampleFloat, n)

	b, err := audio.NewBuffer(dec.SampleRate(), ch, pcm.SampleFloat, data)
	if err != nil {
		return nil, fmt.Errorf("building vorbis buffer: %w", err)
	}
	return b, nil
}
