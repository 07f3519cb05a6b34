// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// readChunk is the number of samples requested per PCMBuffer call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads a whole AIFF stream into an in-memory audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	b, err := decode(dec, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func decode(dec aiffReader, bitDepth int) (*audio.Buffer, error) {
	// 8-bit AIFF is signed, unlike the unsigned 8-bit this module uses
	if bitDepth == 8 {
		return nil, fmt.Errorf("%w: 8-bit AIFF", pcm.ErrUnsupportedBitDepth)
	}
	t, err := pcm.SampleTypeFromBits(bitDepth, false)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	ib := &goaudio.IntBuffer{Data: make([]int, readChunk), Format: format}
	var samples []int

	for {
		n, err := dec.PCMBuffer(ib)
		samples = append(samples, ib.Data[:n]...)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
		if n < len(ib.Data) {
			break
		}
	}

	b, err := audio.FromIntBuffer(&goaudio.IntBuffer{Data: samples, Format: format}, t)
	if err != nil {
		return nil, fmt.Errorf("building aiff buffer: %w", err)
	}
	return b, nil
}
