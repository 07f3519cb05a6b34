// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16-bit, 24-bit and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// 8-bit AIFF stores signed samples and is rejected with
// pcm.ErrUnsupportedBitDepth.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// The whole file is decoded up front into an audio.Buffer holding
// little-endian samples at the file's own bit depth. Big-endian storage
// is handled by go-audio.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input has no valid FORM/AIFF header
//   - ErrUnsupportedAiffLayout: the decoder could not report a format
//   - pcm.ErrUnsupportedBitDepth: bit depth other than 16, 24 or 32
package aiff
