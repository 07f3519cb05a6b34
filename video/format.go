// SPDX-License-Identifier: EPL-2.0

package video

import (
	"fmt"
	"strings"
)

type PixelFormat int

const (
	PixelFormatUnknown PixelFormat = iota
	RGB24
	RGB32
	YUY2
	YV12
)

// BytesPerPixel of the packed layout. For YV12 it is the luma plane only.
func (p PixelFormat) BytesPerPixel() int {
	switch p {
	case RGB24:
		return 3
	case RGB32:
		return 4
	case YUY2:
		return 2
	case YV12:
		return 1
	default:
		return 0
	}
}

func (p PixelFormat) IsRGB() bool { return p == RGB24 || p == RGB32 }

// Packed reports whether frames in this layout can be allocated.
func (p PixelFormat) Packed() bool { return p == RGB24 || p == RGB32 || p == YUY2 }

func (p PixelFormat) String() string {
	switch p {
	case RGB24:
		return "RGB24"
	case RGB32:
		return "RGB32"
	case YUY2:
		return "YUY2"
	case YV12:
		return "YV12"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(p))
	}
}

// ParsePixelFormat accepts the names returned by String, in any case.
func ParsePixelFormat(s string) (PixelFormat, error) {
	for _, p := range []PixelFormat{RGB24, RGB32, YUY2, YV12} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return PixelFormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Info describes a video clip.
type Info struct {
	Width          int
	Height         int
	PixelFormat    PixelFormat
	FPSNumerator   int
	FPSDenominator int
	NumFrames      int
}

// RowSize is the number of meaningful bytes in one row.
func (i Info) RowSize() int { return i.Width * i.PixelFormat.BytesPerPixel() }

// FrameRate in frames per second.
func (i Info) FrameRate() float64 {
	if i.FPSDenominator == 0 {
		return 0
	}
	return float64(i.FPSNumerator) / float64(i.FPSDenominator)
}

// Clip produces video frames by number.
type Clip interface {
	VideoInfo() Info
	GetFrame(n int) (*Frame, error)
}
