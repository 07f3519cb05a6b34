// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// MockSource is a test helper that generates PCM audio on demand.
// It implements audio.Source and records every read so tests can count
// cache misses.
type MockSource struct {
	info     audio.Info
	waveform func(sample int64, channel int) float32
	err      error

	// Starts holds the start sample of every GetAudio call, in order.
	Starts []int64

	floats []float32
}

// NewMockSource creates a new mock audio source.
// numSamples is the track length in sample frames.
// waveform returns a value in [-1, 1] for a given sample index and channel;
// it is encoded to t with pcm.FromFloat.
func NewMockSource(sampleRate, channels int, t pcm.SampleType, numSamples int64, waveform func(sample int64, channel int) float32) *MockSource {
	return &MockSource{
		info: audio.Info{
			SampleRate: sampleRate,
			Channels:   channels,
			SampleType: t,
			NumSamples: numSamples,
		},
		waveform: waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels int, t pcm.SampleType, numSamples int64) *MockSource {
	return NewMockSource(sampleRate, channels, t, numSamples, func(sample int64, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels int, t pcm.SampleType, numSamples int64, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, t, numSamples, func(sample int64, channel int) float32 {
		x := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * x))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels int, t pcm.SampleType, numSamples int64, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, t, numSamples, func(sample int64, channel int) float32 {
		return value
	})
}

// FailWith makes every later GetAudio call return err. A nil err restores
// normal reads.
func (m *MockSource) FailWith(err error) {
	m.err = err
}

// Calls returns the number of GetAudio calls seen so far.
func (m *MockSource) Calls() int { return len(m.Starts) }

// Reset forgets recorded calls.
func (m *MockSource) Reset() {
	m.Starts = m.Starts[:0]
}

func (m *MockSource) AudioInfo() audio.Info { return m.info }

func (m *MockSource) GetAudio(buf []byte, start, count int64) error {
	m.Starts = append(m.Starts, start)
	if m.err != nil {
		return m.err
	}

	channels := m.info.Channels
	n := int(count) * channels
	if cap(m.floats) < n {
		m.floats = make([]float32, n)
	}
	floats := m.floats[:n]

	for f := range count {
		sample := start + f
		for ch := range channels {
			v := float32(0)
			if sample >= 0 && sample < m.info.NumSamples {
				v = m.waveform(sample, ch)
			}
			floats[int(f)*channels+ch] = v
		}
	}

	pcm.FromFloat(buf, floats, m.info.SampleType, n)

	return nil
}
