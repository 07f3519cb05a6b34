// SPDX-License-Identifier: EPL-2.0

// Package audio provides random-access PCM audio sources.
//
// This package contains the audio building blocks used by the graph
// renderer:
//   - Source interface for sample-accurate audio access
//   - Buffer, an in-memory Source for decoded tracks
//   - Convert, which adapts a Source to a restricted set of sample types
//   - Format registry for decoder registration
//
// # Source Interface
//
// A Source is read by position rather than as a stream, since a video
// filter asks for the audio of arbitrary frames while seeking:
//
//	type Source interface {
//	    AudioInfo() Info
//	    GetAudio(buf []byte, start, count int64) error
//	}
//
// Samples are interleaved and stored in the type named by Info.SampleType.
// Reads before the first or after the last sample are padded with silence
// (128 for 8-bit audio, 0 otherwise).
//
// # Buffers
//
// Decoders in the formats subpackages return a *Buffer:
//
//	buf, err := audio.NewBuffer(44100, 2, pcm.SampleInt16, data)
//	raw := make([]byte, 1024*buf.AudioInfo().BytesPerAudioSample())
//	err = buf.GetAudio(raw, 0, 1024)
//
// # Sample Type Conversion
//
// Convert leaves a Source alone when its sample type is acceptable and
// otherwise converts on the fly:
//
//	// accept 8-bit or 16-bit audio, convert anything else to 16-bit
//	src = audio.Convert(src, pcm.SampleInt8|pcm.SampleInt16, pcm.SampleInt16)
//
// # Decoder Registry
//
// The Registry maps format keys to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// Keys are case-insensitive and a leading dot is ignored.
package audio
