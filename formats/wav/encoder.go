// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// Encode writes all of src to w as a WAV file. Integer sample types keep
// their bit depth; float samples are written as 32-bit IEEE float.
// w is seeked back to patch the header sizes but is not closed.
func Encode(w io.WriteSeeker, src audio.Source) error {
	info := src.AudioInfo()

	format := formatPCM
	if info.SampleType == pcm.SampleFloat {
		format = formatFloat
	}

	ib, err := audio.ReadIntBuffer(src)
	if err != nil {
		return fmt.Errorf("reading samples: %w", err)
	}

	enc := wav.NewEncoder(w, info.SampleRate, info.SampleType.BytesPerSample()*8, info.Channels, format)
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
