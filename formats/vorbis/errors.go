// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the stream has no Ogg Vorbis headers.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrNoChannels indicates a header that declares zero channels.
	ErrNoChannels = errors.New("vorbis stream has no channels")
)
