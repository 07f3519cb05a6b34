// SPDX-License-Identifier: EPL-2.0

// Package video describes uncompressed video frames and the clips that
// produce them.
//
// Frames use packed pixel layouts: RGB24 and RGB32 (blue, green, red byte
// order, stored bottom-up like DIBs) and YUY2 (4:2:2, Y0 U Y1 V, top-down).
// Every row starts on a 16-byte boundary, so Pitch can exceed the row size.
// YV12 is recognised so that callers can reject it with a clear error, but
// frames cannot be allocated in that layout.
//
// Colours are passed around as 0xRRGGBB values and converted to the frame
// layout when written.
package video
