// SPDX-License-Identifier: EPL-2.0

package graph

// SampleRangeTable holds, for each pixel column of an audioframe, the byte
// offset into one frame's raw audio at which the column's averaging window
// starts. Offsets are non-decreasing; the first is 0 and the last is the
// start of the final full window.
type SampleRangeTable []int

// NewSampleRangeTable spreads pixels windows of 2^logSamplesPerPixel sample
// frames evenly over samplesPerFrame sample frames. Neighbouring windows may
// overlap, since the window size is rounded up to a power of two.
func NewSampleRangeTable(samplesPerFrame, pixels, logSamplesPerPixel, blockAlign int) (SampleRangeTable, error) {
	if pixels < 2 {
		return nil, ErrFrameTooNarrow
	}

	startOfLast := samplesPerFrame - 1<<logSamplesPerPixel
	if startOfLast < 0 {
		return nil, &BoundsError{
			Column: pixels - 1,
			Offset: startOfLast * blockAlign,
			End:    samplesPerFrame * blockAlign,
			Len:    samplesPerFrame * blockAlign,
		}
	}

	t := make(SampleRangeTable, pixels)
	for x := 1; x < pixels; x++ {
		t[x] = (x * startOfLast / (pixels - 1)) * blockAlign
	}

	return t, nil
}

// logSamplesPerPixel returns the smallest l with 2^l >= samplesPerFrame/pixels.
func logSamplesPerPixel(samplesPerFrame, pixels int) int {
	l := 0
	for 1<<l < samplesPerFrame/pixels {
		l++
	}
	return l
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
