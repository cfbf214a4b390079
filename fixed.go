// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// q2_30Shift is the fractional-bit width of the 2.30 fixed-point encoding
// [MS-WMF] embeds in LogColorSpace CIEXYZ fields.
const q2_30Shift = 30

// DecodeQ2_30 converts a signed 2.30 fixed-point integer to a float64.
// 0x40000000 decodes to 1.0, 0xC0000000 (-0x40000000) decodes to -1.0.
func DecodeQ2_30(raw int32) float64 {
	return float64(raw) / float64(int64(1)<<q2_30Shift)
}

// q8_8Shift is the fractional-bit width of the Q8.8 fixed-point encoding.
const q8_8Shift = 8

// DecodeQ8_8 converts the middle two bytes of a 4-byte field, taken as a
// little-endian signed 16-bit integer, to a float64.
func DecodeQ8_8(field [4]byte) float64 {
	v := int16(uint16(field[1]) | uint16(field[2])<<8)
	return float64(v) / float64(int64(1)<<q8_8Shift)
}
