// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audgraph/pcm"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing. Like the
// real reader it returns a whole number of sample frames per call.
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	maxFrames    int
	returnErrors bool
	cleanEOF     bool
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		if m.cleanEOF {
			return 0, nil
		}
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	if m.maxFrames > 0 {
		frames = min(frames, m.maxFrames)
	}

	n := copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += n

	return n, nil
}

func floatAt(data []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if !errors.Is(err, ErrNotVorbisFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotVorbisFile)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if !errors.Is(err, ErrNotVorbisFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotVorbisFile)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		channels  int
		samples   []float32
		maxFrames int
		cleanEOF  bool
	}{
		{"mono", 1, []float32{0, 0.5, -0.5, 1, -1}, 0, false},
		{"stereo", 2, []float32{0.1, -0.1, 0.2, -0.2}, 0, false},
		{"six channels", 6, make([]float32, 6*3), 0, false},
		{"small reads", 2, []float32{1, 2, 3, 4, 5, 6, 7, 8}, 1, false},
		{"short read at end", 1, []float32{0.25, 0.75}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockOggVorbisReader{
				sampleRate: 48000, channels: tt.channels, samples: tt.samples,
				maxFrames: tt.maxFrames, cleanEOF: tt.cleanEOF,
			}
			b, err := decode(dec)
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}

			info := b.AudioInfo()
			if info.SampleType != pcm.SampleFloat || info.Channels != tt.channels || info.SampleRate != 48000 {
				t.Errorf("AudioInfo() = %+v", info)
			}
			if info.NumSamples != int64(len(tt.samples)/tt.channels) {
				t.Errorf("NumSamples = %d, want %d", info.NumSamples, len(tt.samples)/tt.channels)
			}
			for i, want := range tt.samples {
				if got := floatAt(b.Bytes(), i); got != want {
					t.Errorf("sample %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2, returnErrors: true})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decode() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}

	_, err = decode(&mockOggVorbisReader{sampleRate: 44100, channels: 0})
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("decode() error = %v, want %v", err, ErrNoChannels)
	}
}

func BenchmarkDecode(b *testing.B) {
	samples := make([]float32, 44100*2)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples}); err != nil {
			b.Fatal(err)
		}
	}
}
