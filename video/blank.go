// SPDX-License-Identifier: EPL-2.0

package video

import "fmt"

// BlankClip is a clip whose frames are all a single colour.
type BlankClip struct {
	info  Info
	frame *Frame
}

// NewBlankClip creates a clip of info.NumFrames frames filled with c
// (0xRRGGBB).
func NewBlankClip(info Info, c uint32) (*BlankClip, error) {
	if info.FPSNumerator <= 0 || info.FPSDenominator <= 0 || info.NumFrames < 0 {
		return nil, fmt.Errorf("%w: fps %d/%d, %d frames", ErrInvalidDimensions,
			info.FPSNumerator, info.FPSDenominator, info.NumFrames)
	}

	frame, err := NewFrame(info.Width, info.Height, info.PixelFormat)
	if err != nil {
		return nil, err
	}
	frame.Fill(c)

	return &BlankClip{info: info, frame: frame}, nil
}

func (c *BlankClip) VideoInfo() Info { return c.info }

// GetFrame returns the shared blank frame for any n. Callers must not
// modify it.
func (c *BlankClip) GetFrame(n int) (*Frame, error) {
	return c.frame, nil
}
