// SPDX-License-Identifier: EPL-2.0

package video

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	ErrInvalidDimensions = errors.New("invalid frame dimensions")
	ErrFrameMismatch     = errors.New("frames differ in size or format")
)
