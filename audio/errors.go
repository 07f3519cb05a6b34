// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrBufferTooSmall     = errors.New("buffer too small for requested samples")
	ErrInvalidRange       = errors.New("invalid sample range")
	ErrInvalidLayout      = errors.New("invalid audio layout")
	ErrPartialSampleFrame = errors.New("data is not a whole number of sample frames")
)
