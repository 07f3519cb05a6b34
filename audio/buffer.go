// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audgraph/pcm"
)

// Buffer is an in-memory Source holding a whole decoded track.
type Buffer struct {
	info Info
	data []byte
}

// NewBuffer wraps interleaved PCM data of type t. data is used in place and
// must not be modified afterwards.
func NewBuffer(sampleRate, channels int, t pcm.SampleType, data []byte) (*Buffer, error) {
	if sampleRate <= 0 || channels <= 0 || !t.Valid() {
		return nil, fmt.Errorf("%w: rate=%d channels=%d type=%v", ErrInvalidLayout, sampleRate, channels, t)
	}

	blockAlign := channels * t.BytesPerSample()
	if len(data)%blockAlign != 0 {
		return nil, ErrPartialSampleFrame
	}

	return &Buffer{
		info: Info{
			SampleRate: sampleRate,
			Channels:   channels,
			SampleType: t,
			NumSamples: int64(len(data) / blockAlign),
		},
		data: data,
	}, nil
}

func (b *Buffer) AudioInfo() Info { return b.info }

// Bytes returns the underlying PCM data.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) GetAudio(buf []byte, start, count int64) error {
	if count < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidRange, count)
	}

	blockAlign := int64(b.info.BytesPerAudioSample())
	need := count * blockAlign
	if int64(len(buf)) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), need)
	}
	out := buf[:need]

	// overlap of [start, start+count) with [0, NumSamples)
	from := max(start, 0)
	to := min(start+count, b.info.NumSamples)
	if from >= to {
		pcm.Fill(out, b.info.SampleType)
		return nil
	}

	lead := (from - start) * blockAlign
	n := int64(copy(out[lead:], b.data[from*blockAlign:to*blockAlign]))

	pcm.Fill(out[:lead], b.info.SampleType)
	pcm.Fill(out[lead+n:], b.info.SampleType)

	return nil
}
