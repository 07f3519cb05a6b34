// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no readable RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a compressed or unknown format code.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
