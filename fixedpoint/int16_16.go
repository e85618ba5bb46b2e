// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Int16_16 is a signed 16.16 fixed-point number stored in 32 bits.
//
// The conversion Int16_16(raw) is the canonical constructor: the argument is
// the raw value (integer << 16) | fraction.
type Int16_16 int32

// Int16_16 constants.
const (
	// Int16_16Shift is the number of fractional bits.
	Int16_16Shift = 16

	// Int16_16Zero is 0.0.
	Int16_16Zero Int16_16 = 0

	// Int16_16One is 1.0 (2^16 = 65536).
	Int16_16One Int16_16 = 1 << Int16_16Shift

	// Int16_16FractionMask selects the fractional bits of the raw value.
	Int16_16FractionMask = 1<<Int16_16Shift - 1

	// Int16_16IntegerRange is the magnitude bound of the integer part.
	Int16_16IntegerRange = 32768

	// Int16_16Resolution is the denominator of the smallest step (1/65536).
	Int16_16Resolution = 1 << Int16_16Shift
)

// Int16_16FromParts builds a value from an integer part and a non-negative
// fraction in units of 1/65536.
func Int16_16FromParts(integer int16, fraction uint16) Int16_16 {
	return Int16_16(int32(integer)<<Int16_16Shift | int32(fraction))
}

// Int16_16FromInt converts an integer to Int16_16, wrapping outside the
// representable range.
func Int16_16FromInt(n int) Int16_16 {
	//nolint:gosec // Intentional wrap
	return Int16_16(int32(n << Int16_16Shift))
}

// Int16_16Of converts any native number to Int16_16 by multiplying it by
// [Int16_16One]. Fractional inputs are truncated toward zero, so 1.5 is
// exact but 0.1 loses its low bits.
func Int16_16Of[N Number](v N) Int16_16 {
	if isFloat[N]() {
		//nolint:gosec // Intentional wrap
		return Int16_16(int32(int64(float64(v) * float64(Int16_16One))))
	}
	//nolint:gosec // Intentional wrap
	return Int16_16(int32(int64(v) * int64(Int16_16One)))
}

// Integer returns the signed integer part.
func (x Int16_16) Integer() int16 {
	//nolint:gosec // 32-16 bits always fit
	return int16(int32(x) >> Int16_16Shift)
}

// Fraction returns the fractional part in units of 1/65536.
func (x Int16_16) Fraction() uint16 {
	//nolint:gosec // Masked to 16 bits
	return uint16(uint32(x) & Int16_16FractionMask)
}

// Add returns x + y.
func (x Int16_16) Add(y Int16_16) Int16_16 { return x + y }

// Sub returns x - y.
func (x Int16_16) Sub(y Int16_16) Int16_16 { return x - y }

// Add3 returns x + y + z.
func (x Int16_16) Add3(y, z Int16_16) Int16_16 { return x + y + z }

// Neg returns -x.
func (x Int16_16) Neg() Int16_16 { return -x }

// Equal reports whether x and y have the same raw value.
func (x Int16_16) Equal(y Int16_16) bool { return x == y }

// Mul returns x * y.
// The product is formed in 64 bits and shifted back, since two values near
// the top of the range overflow 32 bits before rescaling.
func (x Int16_16) Mul(y Int16_16) Int16_16 {
	//nolint:gosec // Intentional wrap
	return Int16_16(int32((int64(x) * int64(y)) >> Int16_16Shift))
}

// Int52_12 converts x to the 52.12 format of golang.org/x/image/math/fixed,
// dropping the four lowest fractional bits.
func (x Int16_16) Int52_12() fixed.Int52_12 {
	return fixed.Int52_12(int64(x) >> (Int16_16Shift - 12))
}

// String returns a human-readable representation of x, such as "1:32768"
// for 1.5. The number after the colon is the fraction in 1/65536 units.
func (x Int16_16) String() string {
	return fmt.Sprintf("%d:%05d", x.Integer(), x.Fraction())
}
