// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audgraph/pcm"
)

func TestNewSampleRangeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		samplesPerFrame int
		pixels          int
		log             int
		blockAlign      int
		want            SampleRangeTable
	}{
		{"one sample per column", 5, 5, 0, 1, SampleRangeTable{0, 1, 2, 3, 4}},
		{"stereo 16-bit", 5, 5, 0, 4, SampleRangeTable{0, 4, 8, 12, 16}},
		{"spread windows", 40, 5, 3, 2, SampleRangeTable{0, 16, 32, 48, 64}},
		{"overlapping windows", 10, 4, 2, 1, SampleRangeTable{0, 2, 4, 6}},
		{"more columns than samples", 3, 6, 0, 1, SampleRangeTable{0, 0, 0, 1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewSampleRangeTable(tt.samplesPerFrame, tt.pixels, tt.log, tt.blockAlign)
			if err != nil {
				t.Fatalf("NewSampleRangeTable() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("NewSampleRangeTable() = %v, want %v", got, tt.want)
			}
			if !slices.IsSorted(got) {
				t.Errorf("offsets not non-decreasing: %v", got)
			}
		})
	}
}

func TestNewSampleRangeTable_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewSampleRangeTable(40, 1, 0, 2); !errors.Is(err, ErrFrameTooNarrow) {
		t.Errorf("one pixel: error = %v, want %v", err, ErrFrameTooNarrow)
	}

	_, err := NewSampleRangeTable(4, 2, 3, 2)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("window larger than frame: error = %v, want *BoundsError", err)
	}
	if be.Column != 1 {
		t.Errorf("BoundsError.Column = %d, want 1", be.Column)
	}
}

func TestLogSamplesPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spf, pixels, want int
	}{
		{40, 65, 0},
		{40, 40, 0},
		{40, 20, 1},
		{40, 13, 2}, // 40/13 = 3
		{1920, 65, 5},
		{1920, 11, 8}, // 1920/11 = 174
	}

	for _, tt := range tests {
		if got := logSamplesPerPixel(tt.spf, tt.pixels); got != tt.want {
			t.Errorf("logSamplesPerPixel(%d, %d) = %d, want %d", tt.spf, tt.pixels, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 11: 16, 16: 16, 17: 32} {
		if got := nextPowerOfTwo(n); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRasterizer_FillInt8(t *testing.T) {
	t.Parallel()

	r, err := NewRasterizer(SampleRangeTable{0, 2}, 1, 256, pcm.SampleInt8)
	if err != nil {
		t.Fatalf("NewRasterizer() error = %v", err)
	}
	raw := []byte{127, 128, 255, 255}

	tests := []struct {
		scale int
		want  AudioFrame
	}{
		// (-1 + 0) >> 1 floors to -1
		{1, AudioFrame{127, 255}},
		{2, AudioFrame{126, 256}},
		{-1, AudioFrame{129, 1}},
	}

	for _, tt := range tests {
		got := make(AudioFrame, 2)
		if err := r.Fill(got, raw, tt.scale); err != nil {
			t.Fatalf("Fill(scale=%d) error = %v", tt.scale, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Fill(scale=%d) = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestRasterizer_FillInt16(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 8)
	for i, s := range []int16{16384, 16384, -32768, -1} {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}

	r, err := NewRasterizer(SampleRangeTable{0, 4}, 1, 100, pcm.SampleInt16)
	if err != nil {
		t.Fatalf("NewRasterizer() error = %v", err)
	}

	got := make(AudioFrame, 2)
	if err := r.Fill(got, raw, 1); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	// 16384*100/65536 = 25; (-32769>>1)*100/65536 truncates to -25
	want := AudioFrame{75, 25}
	if !slices.Equal(got, want) {
		t.Errorf("Fill() = %v, want %v", got, want)
	}
}

func TestRasterizer_Bounds(t *testing.T) {
	t.Parallel()

	r, err := NewRasterizer(SampleRangeTable{0, 6}, 1, 100, pcm.SampleInt16)
	if err != nil {
		t.Fatalf("NewRasterizer() error = %v", err)
	}

	if err := r.Validate(10); err != nil {
		t.Errorf("Validate(10) error = %v", err)
	}

	var be *BoundsError
	if err := r.Validate(8); !errors.As(err, &be) {
		t.Fatalf("Validate(8) error = %v, want *BoundsError", err)
	}
	if be.Column != 1 || be.Offset != 6 || be.End != 10 || be.Len != 8 {
		t.Errorf("BoundsError = %+v", be)
	}

	if err := r.Fill(make(AudioFrame, 2), make([]byte, 8), 1); !errors.As(err, &be) {
		t.Errorf("Fill() on short buffer error = %v, want *BoundsError", err)
	}
	if err := r.Fill(make(AudioFrame, 1), make([]byte, 10), 1); !errors.As(err, &be) {
		t.Errorf("Fill() into short AudioFrame error = %v, want *BoundsError", err)
	}
}

func TestNewRasterizer_SampleType(t *testing.T) {
	t.Parallel()

	for _, st := range []pcm.SampleType{pcm.SampleInt24, pcm.SampleInt32, pcm.SampleFloat} {
		if _, err := NewRasterizer(SampleRangeTable{0, 1}, 0, 10, st); !errors.Is(err, ErrUnsupportedSampleType) {
			t.Errorf("NewRasterizer(%v) error = %v, want %v", st, err, ErrUnsupportedSampleType)
		}
	}
}

func BenchmarkRasterizer_Fill(b *testing.B) {
	// 1920 stereo samples per frame over 65 columns
	ranges, err := NewSampleRangeTable(1920, 65, 5, 4)
	if err != nil {
		b.Fatal(err)
	}
	r, err := NewRasterizer(ranges, 6, 480, pcm.SampleInt16)
	if err != nil {
		b.Fatal(err)
	}

	raw := make([]byte, 1920*4)
	dst := make(AudioFrame, 65)

	b.ReportAllocs()
	for b.Loop() {
		if err := r.Fill(dst, raw, 1); err != nil {
			b.Fatal(err)
		}
	}
}
