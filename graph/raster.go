// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/audgraph/pcm"
	"github.com/ik5/audgraph/utils"
)

// AudioFrame is the waveform of one video frame's audio: one row coordinate
// per pixel column, with height/2 as the zero line.
type AudioFrame []uint16

// Rasterizer turns one frame of raw 8-bit or 16-bit audio into an
// AudioFrame.
type Rasterizer struct {
	ranges     SampleRangeTable
	logMono    int
	height     int
	sampleType pcm.SampleType
	window     int
}

// NewRasterizer builds a rasterizer that averages 2^logMono channel samples
// per column. For stereo audio logMono already includes the extra factor of
// two, so both channels of each sample frame fall into the same average.
func NewRasterizer(ranges SampleRangeTable, logMono, height int, t pcm.SampleType) (*Rasterizer, error) {
	if t != pcm.SampleInt8 && t != pcm.SampleInt16 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSampleType, t)
	}

	return &Rasterizer{
		ranges:     ranges,
		logMono:    logMono,
		height:     height,
		sampleType: t,
		window:     (1 << logMono) * t.BytesPerSample(),
	}, nil
}

// Pixels is the width of the audioframes this rasterizer fills.
func (r *Rasterizer) Pixels() int { return len(r.ranges) }

// Height of the video frame the coordinates are computed for.
func (r *Rasterizer) Height() int { return r.height }

// Validate checks every averaging window against a raw buffer of bufLen bytes.
func (r *Rasterizer) Validate(bufLen int) error {
	for x, off := range r.ranges {
		if off < 0 || off+r.window > bufLen {
			return &BoundsError{Column: x, Offset: off, End: off + r.window, Len: bufLen}
		}
	}
	return nil
}

// Fill rasterizes raw into dst using vertical amplification scale.
//
// Each column's window sum is divided by a right shift, which truncates
// toward negative infinity, and then scaled to the frame height with
// truncating integer division. Both are part of the expected output.
func (r *Rasterizer) Fill(dst AudioFrame, raw []byte, scale int) error {
	if len(dst) < len(r.ranges) {
		return &BoundsError{Column: len(dst), Offset: 0, End: len(r.ranges), Len: len(dst)}
	}

	h2 := r.height >> 1

	for x, off := range r.ranges {
		end := off + r.window
		if off < 0 || end > len(raw) {
			return &BoundsError{Column: x, Offset: off, End: end, Len: len(raw)}
		}

		sum := 0
		var y int

		switch r.sampleType {
		case pcm.SampleInt8:
			for _, s := range raw[off:end] {
				sum += int(s) - 128
			}
			y = (sum >> r.logMono) * r.height / 256
		default:
			for i := off; i < end; i += 2 {
				sum += int(int16(binary.LittleEndian.Uint16(raw[i:])))
			}
			y = (sum >> r.logMono) * r.height / 65536
		}

		y = utils.Clamp(y*scale, -h2, h2)
		dst[x] = uint16(h2 + y)
	}

	return nil
}
