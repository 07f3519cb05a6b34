// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"strings"
)

// SampleType identifies the storage format of a single channel sample.
// Values are bit flags so a set of acceptable types can be expressed as a mask.
type SampleType int

const (
	SampleInt8 SampleType = 1 << iota
	SampleInt16
	SampleInt24
	SampleInt32
	SampleFloat
)

// BytesPerSample returns the storage size of one channel sample, or 0 for an
// unknown type.
func (t SampleType) BytesPerSample() int {
	switch t {
	case SampleInt8:
		return 1
	case SampleInt16:
		return 2
	case SampleInt24:
		return 3
	case SampleInt32, SampleFloat:
		return 4
	default:
		return 0
	}
}

// Valid reports whether t is exactly one known sample type.
func (t SampleType) Valid() bool {
	return t.BytesPerSample() != 0
}

// In reports whether t is one of the types set in mask.
func (t SampleType) In(mask SampleType) bool {
	return t.Valid() && t&mask != 0
}

// Silence returns the byte value that encodes silence when repeated across
// a buffer of this type.
func (t SampleType) Silence() byte {
	if t == SampleInt8 {
		return 0x80
	}
	return 0
}

func (t SampleType) String() string {
	switch t {
	case SampleInt8:
		return "int8"
	case SampleInt16:
		return "int16"
	case SampleInt24:
		return "int24"
	case SampleInt32:
		return "int32"
	case SampleFloat:
		return "float"
	default:
		return fmt.Sprintf("SampleType(%d)", int(t))
	}
}

// ParseSampleType accepts the names returned by String, in any case.
func ParseSampleType(s string) (SampleType, error) {
	for _, t := range []SampleType{SampleInt8, SampleInt16, SampleInt24, SampleInt32, SampleFloat} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedSampleType, s)
}

// SampleTypeFromBits maps a bit depth to an integer sample type. float
// selects SampleFloat for 32-bit input.
func SampleTypeFromBits(bits int, float bool) (SampleType, error) {
	if float {
		if bits == 32 {
			return SampleFloat, nil
		}
		return 0, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bits)
	}

	switch bits {
	case 8:
		return SampleInt8, nil
	case 16:
		return SampleInt16, nil
	case 24:
		return SampleInt24, nil
	case 32:
		return SampleInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bits)
	}
}

// Fill sets every byte of buf to the silence value of t.
func Fill(buf []byte, t SampleType) {
	v := t.Silence()
	for i := range buf {
		buf[i] = v
	}
}
