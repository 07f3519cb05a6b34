// SPDX-License-Identifier: EPL-2.0

package video

import (
	"fmt"
	"image"
	"image/color"
)

// FrameAlign is the row alignment in bytes.
const FrameAlign = 16

// Frame is one uncompressed video frame.
type Frame struct {
	Width  int
	Height int
	Format PixelFormat
	// Pitch is the distance in bytes between the starts of two rows.
	Pitch int
	Data  []byte
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int, format PixelFormat) (*Frame, error) {
	if !format.Packed() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if width <= 0 || height <= 0 || (format == YUY2 && width%2 != 0) {
		return nil, fmt.Errorf("%w: %dx%d %v", ErrInvalidDimensions, width, height, format)
	}

	rowSize := width * format.BytesPerPixel()
	pitch := (rowSize + FrameAlign - 1) &^ (FrameAlign - 1)

	return &Frame{
		Width:  width,
		Height: height,
		Format: format,
		Pitch:  pitch,
		Data:   make([]byte, pitch*height),
	}, nil
}

// RowSize is the number of meaningful bytes in one row.
func (f *Frame) RowSize() int { return f.Width * f.Format.BytesPerPixel() }

// Row returns the pixels of row y in memory order.
func (f *Frame) Row(y int) []byte {
	off := y * f.Pitch
	return f.Data[off : off+f.RowSize()]
}

// CopyFrom copies the pixels of src row by row. Padding bytes are left alone.
func (f *Frame) CopyFrom(src *Frame) error {
	if src.Width != f.Width || src.Height != f.Height || src.Format != f.Format {
		return fmt.Errorf("%w: %dx%d %v into %dx%d %v", ErrFrameMismatch,
			src.Width, src.Height, src.Format, f.Width, f.Height, f.Format)
	}

	for y := range f.Height {
		copy(f.Row(y), src.Row(y))
	}

	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Data = make([]byte, len(f.Data))
	copy(c.Data, f.Data)
	return &c
}

// Fill paints the whole frame with a 0xRRGGBB colour.
func (f *Frame) Fill(c uint32) {
	r, g, b := RGB(c)
	yy, u, v := YUV(c)

	for y := range f.Height {
		row := f.Row(y)
		switch f.Format {
		case RGB24:
			for x := 0; x < len(row); x += 3 {
				row[x], row[x+1], row[x+2] = b, g, r
			}
		case RGB32:
			for x := 0; x < len(row); x += 4 {
				row[x], row[x+1], row[x+2], row[x+3] = b, g, r, 0
			}
		case YUY2:
			for x := 0; x < len(row); x += 4 {
				row[x], row[x+1], row[x+2], row[x+3] = yy, u, yy, v
			}
		}
	}
}

// Image converts the frame to a top-down RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))

	for y := range f.Height {
		row := f.Row(y)
		dy := y
		if f.Format.IsRGB() {
			dy = f.Height - 1 - y
		}

		switch f.Format {
		case RGB24, RGB32:
			bpp := f.Format.BytesPerPixel()
			for x := range f.Width {
				p := row[x*bpp:]
				img.SetRGBA(x, dy, color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xff})
			}
		case YUY2:
			for x := range f.Width {
				pair := row[(x>>1)*4:]
				r, g, b := color.YCbCrToRGB(pair[(x&1)*2], pair[1], pair[3])
				img.SetRGBA(x, dy, color.RGBA{R: r, G: g, B: b, A: 0xff})
			}
		}
	}

	return img
}
