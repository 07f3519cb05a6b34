// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Supported Formats
//
//   - MPEG-1 and MPEG-2 Audio Layer 3
//   - Constant and variable bitrates
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// The whole stream is decoded up front into an audio.Buffer.
//
// # Output Format
//
//   - Sample format: 16-bit signed little-endian
//   - Channels: 2 (go-mp3 duplicates mono streams)
//   - Sample rate: that of the MP3 stream
//
// The graph renderer consumes 16-bit stereo directly, so MP3 audio needs
// no conversion.
package mp3
