// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixedpoint

// MulMixed multiplies a coordinate by a matrix coefficient and returns the
// result in coordinate precision.
//
// The raw product of a 16-bit and a 32-bit value needs up to 47 bits, so it
// is formed in 64 bits before shifting out the 16 coefficient fraction bits.
// The result is narrowed to 16 bits without saturation.
func MulMixed(a Int13_3, b Int16_16) Int13_3 {
	//nolint:gosec // Intentional wrap
	return Int13_3(int16((int64(a) * int64(b)) >> Int16_16Shift))
}

// MulInt16_16 is the method form of [MulMixed].
func (x Int13_3) MulInt16_16(y Int16_16) Int13_3 {
	return MulMixed(x, y)
}
