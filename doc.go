// SPDX-License-Identifier: EPL-2.0

// Package audgraph draws a scrolling audio waveform over video frames and
// converts PCM audio between sample formats.
//
// The heavy lifting lives in the subpackages:
//   - pcm converts between 8, 16, 24 and 32-bit integer and float samples
//   - audio defines Source, in-memory buffers and on-the-fly conversion
//   - video defines frames, pixel layouts and a blank clip generator
//   - clip pairs a video clip with an audio track
//   - graph rasterizes audio into per-frame columns and draws them
//   - formats/wav, formats/aiff, formats/mp3 and formats/vorbis decode files
//
// This package ties them together for the common cases.
//
// # Quick Start
//
// Decode an audio file, dub it onto a video clip and render a frame:
//
//	src, err := audgraph.DecodeFile(nil, "speech.wav")
//	if err != nil {
//	    return err
//	}
//
//	v, _ := video.NewBlankClip(video.Info{
//	    Width: 640, Height: 480, PixelFormat: video.RGB32,
//	    FPSNumerator: 25, FPSDenominator: 1, NumFrames: 250,
//	}, 0)
//
//	g, err := audgraph.Overlay(v, src, graph.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	frame, err := g.GetFrame(100)
//
// The rendered frame shows audioframes 95 to 105, one per slice of the frame
// width. Frame 100 is drawn in the middle colour and the rest in the side
// colour, with a separator line at the start of every audioframe.
//
// # Waveform Scale
//
// Config.GraphScale multiplies every sample before it is clamped to the frame
// height. Zero asks graph.New to scan the whole clip first and pick the
// largest scale that keeps the loudest audioframe inside the frame.
//
// # Sample Formats
//
// The waveform is computed from 8 or 16-bit samples. Any other track is
// converted to 16-bit while it is read. EncodeWAV uses the same conversion
// to rewrite a track at another sample type:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := audgraph.EncodeWAV(f, src, pcm.SampleInt16)
//
// # Decoders
//
// NewRegistry maps file extensions to decoders:
//   - wav, wave: PCM 8/16/24/32-bit and 32-bit float
//   - aif, aiff: PCM 16/24/32-bit
//   - mp3: decoded to 16-bit stereo
//   - ogg, oga: Vorbis, decoded to 32-bit float
//
// Every decoder reads the whole file into memory, so Sources can serve any
// sample range in any order.
package audgraph
