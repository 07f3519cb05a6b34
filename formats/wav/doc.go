// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoding and encoding both go through github.com/go-audio/wav. Decoded
// audio is held in memory as an audio.Buffer, which gives the random access
// the graph needs.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit
//   - WAVE_FORMAT_EXTENSIBLE carrying integer PCM
//   - Any channel count and sample rate
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	info := src.AudioInfo()
//
// Inputs that are not an io.ReadSeeker are read into memory first.
//
// # Encoding
//
// Encode writes any audio.Source back out, keeping its sample type:
//
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//	err := wav.Encode(out, src)
//
// # Error Handling
//
//   - ErrNotWavFile: no RIFF/WAVE header, or no audio in it
//   - ErrUnsupportedWavLayout: compressed or unknown format code
//   - pcm.ErrUnsupportedBitDepth: bit depth other than 8, 16, 24 or 32
package wav
