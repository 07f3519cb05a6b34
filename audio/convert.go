// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audgraph/pcm"
)

// Convert adapts src to a restricted set of sample types.
//
// If the sample type of src is already in accepted, src is returned as is.
// Otherwise the returned Source delivers samples of type preferred, produced
// by a pcm.Converter. The converter owns its scratch buffers, so the
// returned Source must not be used from several goroutines at once.
func Convert(src Source, accepted, preferred pcm.SampleType) Source {
	info := src.AudioInfo()
	if !info.HasAudio() || info.SampleType.In(accepted|preferred) {
		return src
	}

	out := info
	out.SampleType = preferred

	return &converted{
		src:  src,
		info: out,
		conv: pcm.NewConverter(info.SampleType, preferred, info.Channels),
	}
}

type converted struct {
	src  Source
	info Info
	conv *pcm.Converter
}

func (c *converted) AudioInfo() Info { return c.info }

func (c *converted) GetAudio(buf []byte, start, count int64) error {
	if count < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidRange, count)
	}

	need := count * int64(c.info.BytesPerAudioSample())
	if int64(len(buf)) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), need)
	}

	tmp := c.conv.Scratch(int(count))
	if err := c.src.GetAudio(tmp, start, count); err != nil {
		return fmt.Errorf("reading %v samples for conversion: %w", c.conv.Source(), err)
	}

	c.conv.Convert(buf, tmp, int(count))

	return nil
}
