// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrUnsupportedBitDepth   = errors.New("unsupported bit depth")
	ErrUnsupportedSampleType = errors.New("unsupported sample type")
)
