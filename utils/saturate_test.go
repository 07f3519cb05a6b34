// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestSaturateInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "positive full scale", input: 32768, want: math.MaxInt16},
		{name: "negative full scale", input: -32768, want: math.MinInt16},
		{name: "clamp over max", input: 1e6, want: math.MaxInt16},
		{name: "clamp under min", input: -1e6, want: math.MinInt16},
		{name: "exact positive", input: 1234, want: 1234},
		{name: "exact negative", input: -1234, want: -1234},
		{name: "half rounds up", input: 10.5, want: 11},
		{name: "negative half rounds toward zero", input: -10.5, want: -10},
		{name: "below half truncates", input: 10.4, want: 10},
		{name: "negative small fraction", input: -10.4, want: -9},
		{name: "negative large fraction", input: -10.6, want: -10},
		{name: "negative whole number kept", input: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SaturateInt16(tt.input); got != tt.want {
				t.Errorf("SaturateInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSaturateInt8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float32
		want  int32
	}{
		{input: 0, want: 0},
		{input: 128, want: 127},
		{input: 127, want: 127},
		{input: -128, want: -128},
		{input: -500, want: -128},
		{input: 63.5, want: 64},
		{input: -63.5, want: -63},
	}

	for _, tt := range tests {
		if got := SaturateInt8(tt.input); got != tt.want {
			t.Errorf("SaturateInt8(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSaturateInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float32
		want  int32
	}{
		{input: 0, want: 0},
		{input: 1 << 23, want: MaxInt24},
		{input: -(1 << 23), want: MinInt24},
		{input: 1 << 30, want: MaxInt24},
		{input: 1000.5, want: 1001},
		{input: -1000.5, want: -1000},
	}

	for _, tt := range tests {
		if got := SaturateInt24(tt.input); got != tt.want {
			t.Errorf("SaturateInt24(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSaturateInt32Boundaries(t *testing.T) {
	t.Parallel()

	if got := SaturateInt32(2147483648.0); got != math.MaxInt32 {
		t.Errorf("SaturateInt32(2^31) = %#x, want 0x7fffffff", got)
	}
	if got := SaturateInt32(1e12); got != math.MaxInt32 {
		t.Errorf("SaturateInt32(1e12) = %#x, want 0x7fffffff", got)
	}
	if got := SaturateInt32(-2147483648.0); got != math.MinInt32 {
		t.Errorf("SaturateInt32(-2^31) = %v, want %v", got, int32(math.MinInt32))
	}
	if got := SaturateInt32(-1e12); got != math.MinInt32 {
		t.Errorf("SaturateInt32(-1e12) = %v, want %v", got, int32(math.MinInt32))
	}
	if got := SaturateInt32(65536); got != 65536 {
		t.Errorf("SaturateInt32(65536) = %v, want 65536", got)
	}
}

// TestSaturateInt16Monotonic tests that saturation never reverses ordering
func TestSaturateInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := SaturateInt16(-40000)
	for f := float32(-40000); f <= 40000; f += 7.25 {
		curr := SaturateInt16(f)
		if curr < prev {
			t.Errorf("SaturateInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(5, -2, 2); got != 2 {
		t.Errorf("Clamp(5, -2, 2) = %d, want 2", got)
	}
	if got := Clamp(-5, -2, 2); got != -2 {
		t.Errorf("Clamp(-5, -2, 2) = %d, want -2", got)
	}
	if got := Clamp(1, -2, 2); got != 1 {
		t.Errorf("Clamp(1, -2, 2) = %d, want 1", got)
	}
	if got := Clamp(0.5, 0.0, 0.25); got != 0.25 {
		t.Errorf("Clamp(0.5, 0, 0.25) = %v, want 0.25", got)
	}
}

// BenchmarkSaturateInt16 tests performance and allocations
func BenchmarkSaturateInt16(b *testing.B) {
	var result int16
	inputs := []float32{-40000, -32768, 0, 16384.5, 40000}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		result = SaturateInt16(inputs[i%len(inputs)])
	}

	_ = result
}

// TestSaturateInt16_ZeroAllocs verifies no heap allocations
func TestSaturateInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = SaturateInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("SaturateInt16 allocated %v times, want 0", allocs)
	}
}
