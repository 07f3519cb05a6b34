// SPDX-License-Identifier: EPL-2.0

// Package pcm converts interleaved PCM audio between sample formats.
//
// Five sample types are supported:
//   - SampleInt8: unsigned 8-bit, silence at 128
//   - SampleInt16: signed 16-bit little-endian
//   - SampleInt24: signed 24-bit packed into 3 little-endian bytes
//   - SampleInt32: signed 32-bit little-endian
//   - SampleFloat: IEEE 754 float32 little-endian, nominal range [-1, 1]
//
// # Float Conversion
//
// ToFloat and FromFloat move samples to and from float32. Integer output is
// rounded by adding 0.5 and truncating toward zero (whole numbers pass
// unchanged), then saturated to the range of the destination type, so out-of-range float input clips instead
// of wrapping:
//
//	floats := make([]float32, n)
//	pcm.ToFloat(floats, raw16, pcm.SampleInt16, n)
//	pcm.FromFloat(raw8, floats, pcm.SampleInt8, n)
//
// # Converter
//
// A Converter transcodes between a fixed pair of types. A few pairs have
// direct integer paths that skip the float intermediate:
//   - 24-bit to 16-bit drops the low byte
//   - 8-bit to 16-bit replicates bits so that 0, 128 and 255 map to
//     -32768, 0 and 32767
//   - 16-bit to 8-bit keeps the high byte and re-biases it
//
// All other pairs go through float32. The Converter keeps grow-only scratch
// buffers for the source bytes and the float intermediate, so steady-state
// conversion does not allocate. A Converter must not be shared between
// goroutines.
//
// # Unknown Types
//
// An unrecognised sample type never fails: the affected output is filled
// with zeros.
package pcm
