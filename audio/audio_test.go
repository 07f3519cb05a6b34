// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/ik5/audgraph/pcm"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return NewBuffer(44100, 2, pcm.SampleInt16, make([]byte, 400))
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_KeysFromExtensions(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}

	registry.Register("wav", wavDecoder)
	registry.Register(".MP3", mp3Decoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{".wav", wavDecoder, true},
		{"WAV", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{".mp3", mp3Decoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%q) returned the wrong decoder", tt.format)
			}
		})
	}

	if got := registry.Formats(); !slices.Equal(got, []string{"mp3", "wav"}) {
		t.Errorf("Formats() = %v, want [mp3 wav]", got)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &failingDecoder{})
	registry.Register("wav", &mockDecoder{})

	d, _ := registry.Get("wav")
	if _, err := d.Decode(nil); err != nil {
		t.Errorf("Decode() error = %v, want the replacement decoder", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	for i := range 10 {
		go func() {
			registry.Register(string(rune('a'+i)), &mockDecoder{})
			registry.Get("a")
			done <- struct{}{}
		}()
	}

	for range 10 {
		<-done
	}

	if got := len(registry.Formats()); got != 10 {
		t.Errorf("Formats() has %d entries, want 10", got)
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	info := Info{SampleRate: 48000, Channels: 2, SampleType: pcm.SampleInt24, NumSamples: 96000}

	if !info.HasAudio() {
		t.Error("HasAudio() = false, want true")
	}
	if got := info.BytesPerChannelSample(); got != 3 {
		t.Errorf("BytesPerChannelSample() = %d, want 3", got)
	}
	if got := info.BytesPerAudioSample(); got != 6 {
		t.Errorf("BytesPerAudioSample() = %d, want 6", got)
	}
	if got := info.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}

	if (Info{}).HasAudio() {
		t.Error("zero Info HasAudio() = true, want false")
	}
}
