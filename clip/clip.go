// SPDX-License-Identifier: EPL-2.0

// Package clip pairs a video clip with an audio track, the way a host video
// pipeline presents a source with both streams.
package clip

import (
	"errors"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/video"
)

var ErrNoAudio = errors.New("clip has no audio")

// Clip is a video clip with an optional audio track.
type Clip struct {
	video video.Clip
	audio audio.Source
}

// New dubs a onto v. a may be nil for a silent clip.
func New(v video.Clip, a audio.Source) *Clip {
	return &Clip{video: v, audio: a}
}

func (c *Clip) VideoInfo() video.Info { return c.video.VideoInfo() }

func (c *Clip) GetFrame(n int) (*video.Frame, error) { return c.video.GetFrame(n) }

// AudioInfo returns the zero Info for a silent clip.
func (c *Clip) AudioInfo() audio.Info {
	if c.audio == nil {
		return audio.Info{}
	}
	return c.audio.AudioInfo()
}

func (c *Clip) GetAudio(buf []byte, start, count int64) error {
	if c.audio == nil {
		return ErrNoAudio
	}
	return c.audio.GetAudio(buf, start, count)
}

// Audio returns the audio track, or nil.
func (c *Clip) Audio() audio.Source { return c.audio }

// WithAudio returns a copy of c with its audio track replaced.
func (c *Clip) WithAudio(a audio.Source) *Clip {
	return &Clip{video: c.video, audio: a}
}

// AudioSamplesFromFrames maps a video frame number to the first audio
// sample frame it covers. The result is exact integer arithmetic on the
// frame rate and sample rate, truncated toward zero.
func (c *Clip) AudioSamplesFromFrames(frames int64) int64 {
	vi := c.VideoInfo()
	if vi.FPSNumerator == 0 {
		return 0
	}
	return frames * int64(c.AudioInfo().SampleRate) * int64(vi.FPSDenominator) / int64(vi.FPSNumerator)
}

// FramesFromAudioSamples is the inverse of AudioSamplesFromFrames.
func (c *Clip) FramesFromAudioSamples(samples int64) int64 {
	vi := c.VideoInfo()
	rate := int64(c.AudioInfo().SampleRate)
	if rate == 0 || vi.FPSDenominator == 0 {
		return 0
	}
	return samples * int64(vi.FPSNumerator) / (rate * int64(vi.FPSDenominator))
}
