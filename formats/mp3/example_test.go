// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audgraph/formats/mp3"
)

// ExampleDecoder_Decode prints the layout of a decoded MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	info := src.AudioInfo()
	fmt.Printf("%d Hz, %d channels, %v, %v\n",
		info.SampleRate, info.Channels, info.SampleType, info.Duration())
}
