// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fixedpoint implements the two fixed-point scalar formats used by
// fxform, plus the mixed-width multiplication that applies a matrix
// coefficient to a coordinate.
//
// # Type Reference
//
//   - [Int13_3]: 16-bit value, 1 sign bit, 12 integer bits, 3 fractional
//     bits. Used for point and vector coordinates. Range -4096.000 to
//     +4095.875 with 1/8 resolution.
//   - [Int16_16]: 32-bit value, 1 sign bit, 15 integer bits, 16 fractional
//     bits. Used for matrix coefficients. Range -32768 to +32768 with
//     1/65536 resolution.
//
// # Representation
//
// Both types store only the raw two's complement integer. The integer part
// is an arithmetic right shift of the raw value, and the fraction is the
// low bits, always a non-negative addition to the integer part:
//
//	-1.125 = -2 + 7/8   (Integer() == -2, Fraction() == 7)
//	 1.125 =  1 + 1/8   (Integer() ==  1, Fraction() == 1)
//
// This makes addition and subtraction plain integer operations on the raw
// values. Overflow is never detected; results wrap with Go's integer
// semantics.
package fixedpoint
