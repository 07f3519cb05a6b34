// SPDX-License-Identifier: EPL-2.0

package utils

import "cmp"

const (
	// MaxInt24 is the largest value a packed 24-bit sample can hold (2^23 - 1).
	MaxInt24 = 1<<23 - 1
	// MinInt24 is the smallest value a packed 24-bit sample can hold (-2^23).
	MinInt24 = -1 << 23

	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1
)

// Clamp limits x to the closed range [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// round adds 0.5 and truncates toward zero, so -1.5 becomes -1 and -0.7
// becomes 0. Whole numbers are returned unchanged.
func round(n float32) int32 {
	i := int32(n)
	if float32(i) == n {
		return i
	}
	return int32(n + 0.5)
}

// SaturateInt8 rounds an already scaled sample and saturates it to [-128, 127].
func SaturateInt8(n float32) int32 {
	if n <= -128.0 {
		return -128
	}
	if n >= 127.0 {
		return 127
	}
	return round(n)
}

// SaturateInt16 rounds an already scaled sample and saturates it to the int16 range.
func SaturateInt16(n float32) int16 {
	if n <= -32768.0 {
		return -32768
	}
	if n >= 32767.0 {
		return 32767
	}
	return int16(round(n))
}

// SaturateInt24 rounds an already scaled sample and saturates it to [-2^23, 2^23-1].
func SaturateInt24(n float32) int32 {
	if n <= float32(MinInt24) {
		return MinInt24
	}
	if n >= float32(MaxInt24) {
		return MaxInt24
	}
	return round(n)
}

// SaturateInt32 rounds an already scaled sample and saturates it to the int32 range.
//
// float32 cannot represent 2^31-1, so every input at or above 2^31 maps to
// 0x7fffffff and every input at or below -2^31 maps to 0x80000000.
func SaturateInt32(n float32) int32 {
	if n <= -2147483648.0 {
		return minInt32
	}
	if n >= 2147483647.0 {
		return maxInt32
	}
	return round(n)
}
