// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration wraps every error returned by New.
	ErrConfiguration = errors.New("audio graph configuration error")

	ErrNegativeWindow         = errors.New("negative frames either side not allowed")
	ErrNoAudio                = errors.New("clip has no audio")
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")
	ErrUnsupportedChannels    = errors.New("only mono or stereo audio can be graphed")
	ErrUnsupportedSampleType  = errors.New("only 8-bit or 16-bit audio can be rasterized")
	ErrFrameTooNarrow         = errors.New("frame too narrow for an audioframe")
	ErrNoSamplesPerFrame      = errors.New("less than one audio sample per video frame")
	ErrInvalidCacheSize       = errors.New("number of audioframe buffers must be a power of two")
)

func configError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfiguration, err, fmt.Sprintf(format, args...))
}

// BoundsError reports an averaging window that falls outside the raw audio
// buffer. The sample range table is validated when a graph is built, so
// seeing one while rendering means that validation was bypassed.
type BoundsError struct {
	Column int
	Offset int
	End    int
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("audioframe column %d reads bytes [%d, %d) of a %d-byte audio buffer",
		e.Column, e.Offset, e.End, e.Len)
}
