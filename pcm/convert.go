// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audgraph/utils"
)

const (
	scale8  = float32(1.0 / 128)
	scale16 = float32(1.0 / 32768)
	scale32 = float32(1.0 / 2147483648.0)
)

// ToFloat decodes count samples of type t from src into dst.
// src must hold count*t.BytesPerSample() bytes and dst at least count values.
// An unknown type fills dst[:count] with zeros.
func ToFloat(dst []float32, src []byte, t SampleType, count int) {
	dst = dst[:count]

	switch t {
	case SampleInt8:
		for i := range dst {
			dst[i] = float32(int(src[i])-128) * scale8
		}
	case SampleInt16:
		for i := range dst {
			dst[i] = float32(int16(binary.LittleEndian.Uint16(src[2*i:]))) * scale16
		}
	case SampleInt24:
		for i := range dst {
			b := src[3*i : 3*i+3]
			v := int32(uint32(b[0])<<8 | uint32(b[1])<<16 | uint32(b[2])<<24)
			dst[i] = float32(v) * scale32
		}
	case SampleInt32:
		for i := range dst {
			dst[i] = float32(int32(binary.LittleEndian.Uint32(src[4*i:]))) * scale32
		}
	case SampleFloat:
		for i := range dst {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
		}
	default:
		clear(dst)
	}
}

// FromFloat encodes count samples from src into dst as type t. Scaled values
// that are not whole numbers get 0.5 added and are truncated toward zero;
// the result is saturated to the range of t.
// An unknown type fills dst with zeros.
func FromFloat(dst []byte, src []float32, t SampleType, count int) {
	src = src[:count]

	switch t {
	case SampleInt8:
		for i, x := range src {
			dst[i] = byte(utils.SaturateInt8(x*128.0) + 128)
		}
	case SampleInt16:
		for i, x := range src {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(utils.SaturateInt16(x*32768.0)))
		}
	case SampleInt24:
		for i, x := range src {
			v := utils.SaturateInt24(x * float32(1<<23))
			dst[3*i] = byte(v)
			dst[3*i+1] = byte(v >> 8)
			dst[3*i+2] = byte(v >> 16)
		}
	case SampleInt32:
		for i, x := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(utils.SaturateInt32(x*2147483648.0)))
		}
	case SampleFloat:
		for i, x := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(x))
		}
	default:
		clear(dst)
	}
}

// Int24ToInt16 converts count packed 24-bit samples to 16-bit by keeping the
// two high bytes.
func Int24ToInt16(dst, src []byte, count int) {
	for i := range count {
		dst[2*i] = src[3*i+1]
		dst[2*i+1] = src[3*i+2]
	}
}

// Int8ToInt16 converts count unsigned 8-bit samples to 16-bit.
//
// The unbiased value becomes the high byte and the original byte is
// replicated into the low byte, so 255 reaches 0x7fff and 0 stays -32768.
// 128 is the one exception: it maps to exactly 0.
func Int8ToInt16(dst, src []byte, count int) {
	for i := range count {
		s := int(src[i])
		v := 0
		if s != 128 {
			v = (s-128)<<8 | s
		}
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(int16(v)))
	}
}

// Int16ToInt8 converts count 16-bit samples to unsigned 8-bit by keeping the
// high byte and adding the 128 bias.
func Int16ToInt8(dst, src []byte, count int) {
	for i := range count {
		s := int16(binary.LittleEndian.Uint16(src[2*i:]))
		dst[i] = byte((s >> 8) + 128)
	}
}

// Converter transcodes interleaved audio from one sample type to another.
type Converter struct {
	src      SampleType
	dst      SampleType
	channels int

	// grow-only, owned exclusively by this converter
	scratch []byte
	floats  []float32
}

// NewConverter returns a Converter for channels-wide frames of type src
// converted to type dst.
func NewConverter(src, dst SampleType, channels int) *Converter {
	return &Converter{
		src:      src,
		dst:      dst,
		channels: max(channels, 1),
	}
}

// Source is the sample type Convert reads.
func (c *Converter) Source() SampleType { return c.src }

// Dest is the sample type Convert writes.
func (c *Converter) Dest() SampleType { return c.dst }

// Channels is the number of interleaved samples per frame, at least 1.
func (c *Converter) Channels() int { return c.channels }

// Scratch returns a buffer sized for count frames of source audio. The
// buffer is reused by later calls; it only grows when count exceeds every
// previous request.
func (c *Converter) Scratch(count int) []byte {
	n := count * c.channels * c.src.BytesPerSample()
	if cap(c.scratch) < n {
		c.scratch = make([]byte, n)
	}
	return c.scratch[:n]
}

// Convert converts count frames from src (source type) into dst
// (destination type). dst must hold count*channels destination samples.
func (c *Converter) Convert(dst, src []byte, count int) {
	n := count * c.channels

	switch {
	case c.src == c.dst && c.src.Valid():
		copy(dst, src[:n*c.src.BytesPerSample()])
		return
	case c.src == SampleInt24 && c.dst == SampleInt16:
		Int24ToInt16(dst, src, n)
		return
	case c.src == SampleInt8 && c.dst == SampleInt16:
		Int8ToInt16(dst, src, n)
		return
	case c.src == SampleInt16 && c.dst == SampleInt8:
		Int16ToInt8(dst, src, n)
		return
	}

	if cap(c.floats) < n {
		c.floats = make([]float32, n)
	}
	floats := c.floats[:n]

	ToFloat(floats, src, c.src, n)
	FromFloat(dst, floats, c.dst, n)
}
