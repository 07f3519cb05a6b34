// SPDX-License-Identifier: EPL-2.0

package video

// RGB splits a 0xRRGGBB colour.
func RGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// YUV converts a 0xRRGGBB colour to BT.601 studio-range Y, U and V.
func YUV(c uint32) (y, u, v uint8) {
	r8, g8, b8 := RGB(c)
	r, g, b := int(r8), int(g8), int(b8)

	y = uint8(((66*r + 129*g + 25*b + 128) >> 8) + 16)
	u = uint8(((-38*r - 74*g + 112*b + 128) >> 8) + 128)
	v = uint8(((112*r - 94*g - 18*b + 128) >> 8) + 128)

	return y, u, v
}
