// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Int13_3 is a signed 13.3 fixed-point number stored in 16 bits.
//
// The conversion Int13_3(raw) is the canonical constructor: the argument is
// the raw value (integer << 3) | fraction.
type Int13_3 int16

// Int13_3 constants.
const (
	// Int13_3Shift is the number of fractional bits.
	Int13_3Shift = 3

	// Int13_3Zero is 0.0.
	Int13_3Zero Int13_3 = 0

	// Int13_3One is 1.0 (2^3 = 8).
	Int13_3One Int13_3 = 1 << Int13_3Shift

	// Int13_3FractionMask selects the fractional bits of the raw value.
	Int13_3FractionMask = 1<<Int13_3Shift - 1

	// Int13_3IntegerRange is the magnitude bound of the integer part.
	// Representable values lie in [-Int13_3IntegerRange, Int13_3IntegerRange).
	Int13_3IntegerRange = 4096

	// Int13_3Resolution is the denominator of the smallest step (1/8).
	Int13_3Resolution = 1 << Int13_3Shift
)

// Int13_3FromParts builds a value from an integer part and a non-negative
// fraction in eighths. Only the low 3 bits of fraction are used.
func Int13_3FromParts(integer int16, fraction uint16) Int13_3 {
	//nolint:gosec // Intentional wrap: integer part is 13 bits
	return Int13_3(integer<<Int13_3Shift | int16(fraction&Int13_3FractionMask))
}

// Int13_3FromInt converts an integer to Int13_3. The value wraps when it is
// outside the representable range.
func Int13_3FromInt(n int) Int13_3 {
	//nolint:gosec // Intentional wrap
	return Int13_3(int16(n << Int13_3Shift))
}

// Int13_3Of converts any native number to Int13_3 by multiplying it by
// [Int13_3One]. Fractional inputs are truncated toward zero.
func Int13_3Of[N Number](v N) Int13_3 {
	if isFloat[N]() {
		//nolint:gosec // Intentional wrap
		return Int13_3(int16(int64(float64(v) * float64(Int13_3One))))
	}
	//nolint:gosec // Intentional wrap
	return Int13_3(int16(int64(v) * int64(Int13_3One)))
}

// Int13_3From26_6 converts a 26.6 value from golang.org/x/image/math/fixed,
// discarding the three lowest fractional bits (rounding toward negative
// infinity).
func Int13_3From26_6(v fixed.Int26_6) Int13_3 {
	//nolint:gosec // Intentional wrap
	return Int13_3(int16(v >> (6 - Int13_3Shift)))
}

// Integer returns the signed integer part.
func (x Int13_3) Integer() int16 {
	return int16(x) >> Int13_3Shift
}

// Fraction returns the fractional part in eighths, always in [0, 7].
func (x Int13_3) Fraction() uint16 {
	//nolint:gosec // Masked to 3 bits
	return uint16(x) & Int13_3FractionMask
}

// Add returns x + y.
func (x Int13_3) Add(y Int13_3) Int13_3 { return x + y }

// Sub returns x - y.
func (x Int13_3) Sub(y Int13_3) Int13_3 { return x - y }

// Add3 returns x + y + z.
func (x Int13_3) Add3(y, z Int13_3) Int13_3 { return x + y + z }

// Neg returns -x.
func (x Int13_3) Neg() Int13_3 { return -x }

// Equal reports whether x and y have the same raw value.
func (x Int13_3) Equal(y Int13_3) bool { return x == y }

// Int26_6 converts x to the 26.6 format of golang.org/x/image/math/fixed.
// The conversion is exact.
func (x Int13_3) Int26_6() fixed.Int26_6 {
	return fixed.Int26_6(int32(x) << (6 - Int13_3Shift))
}

// String returns a human-readable representation of x, such as "-2:7" for
// -1.125. The number after the colon is the fraction in eighths.
func (x Int13_3) String() string {
	return fmt.Sprintf("%d:%d", x.Integer(), x.Fraction())
}
