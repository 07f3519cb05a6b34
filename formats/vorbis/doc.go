// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Any channel count
//   - Various sample rates
//
// # Decoding Vorbis Files
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
// Vorbis decodes to floating point, so the returned audio.Buffer holds
// pcm.SampleFloat samples in [-1.0, 1.0]. Wrap it with audio.Convert to get
// integer samples; the graph package does this on its own.
//
// Streams with more than two channels decode fine but are rejected by the
// graph renderer.
package vorbis
