// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/formats/vorbis"
	"github.com/ik5/audgraph/pcm"
)

// ExampleDecoder_Decode decodes an Ogg Vorbis file and converts it to
// 16-bit integer samples.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	pcm16 := audio.Convert(src, pcm.SampleInt16, pcm.SampleInt16)

	info := pcm16.AudioInfo()
	buf := make([]byte, 1024*info.BytesPerAudioSample())
	if err := pcm16.GetAudio(buf, 0, 1024); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d Hz, %d channels, %v\n", info.SampleRate, info.Channels, info.SampleType)
}
