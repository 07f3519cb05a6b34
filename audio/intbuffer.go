// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audgraph/pcm"
)

// FromIntBuffer packs go-audio integer samples into a Buffer of type t.
//
// Values are read the way the WAV container stores them: unsigned for
// 8-bit, signed for 16, 24 and 32-bit, and raw IEEE 754 bits for float.
// A trailing partial sample frame is dropped.
func FromIntBuffer(ib *goaudio.IntBuffer, t pcm.SampleType) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidLayout)
	}

	channels := ib.Format.NumChannels
	n := len(ib.Data) - len(ib.Data)%max(channels, 1)

	data := make([]byte, n*t.BytesPerSample())
	packInts(data, ib.Data[:n], t)

	return NewBuffer(ib.Format.SampleRate, channels, t, data)
}

// ReadIntBuffer reads all of src into a go-audio IntBuffer, using the same
// value conventions as FromIntBuffer.
func ReadIntBuffer(src Source) (*goaudio.IntBuffer, error) {
	info := src.AudioInfo()
	if !info.SampleType.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, info.SampleType)
	}

	raw := make([]byte, info.NumSamples*int64(info.BytesPerAudioSample()))
	if err := src.GetAudio(raw, 0, info.NumSamples); err != nil {
		return nil, fmt.Errorf("reading %d samples: %w", info.NumSamples, err)
	}

	data := make([]int, int(info.NumSamples)*info.Channels)
	unpackInts(data, raw, info.SampleType)

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: info.Channels,
			SampleRate:  info.SampleRate,
		},
		Data:           data,
		SourceBitDepth: info.SampleType.BytesPerSample() * 8,
	}, nil
}

func packInts(dst []byte, src []int, t pcm.SampleType) {
	switch t {
	case pcm.SampleInt8:
		for i, v := range src {
			dst[i] = byte(v)
		}
	case pcm.SampleInt16:
		for i, v := range src {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(int16(v)))
		}
	case pcm.SampleInt24:
		for i, v := range src {
			dst[3*i] = byte(v)
			dst[3*i+1] = byte(v >> 8)
			dst[3*i+2] = byte(v >> 16)
		}
	case pcm.SampleInt32, pcm.SampleFloat:
		for i, v := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(int32(v)))
		}
	}
}

func unpackInts(dst []int, src []byte, t pcm.SampleType) {
	switch t {
	case pcm.SampleInt8:
		for i := range dst {
			dst[i] = int(src[i])
		}
	case pcm.SampleInt16:
		for i := range dst {
			dst[i] = int(int16(binary.LittleEndian.Uint16(src[2*i:])))
		}
	case pcm.SampleInt24:
		for i := range dst {
			b := src[3*i:]
			dst[i] = int(int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8)
		}
	case pcm.SampleInt32, pcm.SampleFloat:
		for i := range dst {
			dst[i] = int(int32(binary.LittleEndian.Uint32(src[4*i:])))
		}
	}
}
