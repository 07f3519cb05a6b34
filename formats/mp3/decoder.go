// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels   = 2
	blockAlign = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder decodes a whole MP3 stream into an in-memory audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	b, err := decode(dec)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func decode(dec mp3Reader) (*audio.Buffer, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 frames: %w", err)
	}

	// a truncated last frame can leave half a sample frame behind
	data = data[:len(data)-len(data)%blockAlign]

	b, err := audio.NewBuffer(dec.SampleRate(), channels, pcm.SampleInt16, data)
	if err != nil {
		return nil, fmt.Errorf("building mp3 buffer: %w", err)
	}
	return b, nil
}
