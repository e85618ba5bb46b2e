// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"math"

	"github.com/gogpu/fxform/fixedpoint"
)

// Invert stores the inverse of t in out and reports whether it exists.
//
// The linear part is inverted through its determinant ad - bc, evaluated
// exactly in 64 bits. Inversion fails when the determinant is zero or so
// small that an inverse coefficient does not fit 16.16; on failure out
// receives a copy of t. The inverse translation is -[tx ty] · A⁻¹.
//
// out may be the same pointer as t. If either is nil, Invert returns false
// and does nothing.
func Invert(out, t *Transform) bool {
	if out == nil || t == nil {
		logSkipped("Invert")
		return false
	}

	inv, ok := invert(*t)
	if !ok {
		Logger().Debug("fxform: singular transform",
			"a", t.A, "b", t.B, "c", t.C, "d", t.D)
		*out = *t
		return false
	}
	*out = inv
	return true
}

// Inverse returns the inverse of t, or [ErrSingular].
func (t Transform) Inverse() (Transform, error) {
	inv, ok := invert(t)
	if !ok {
		return t, ErrSingular
	}
	return inv, nil
}

func invert(t Transform) (Transform, bool) {
	// Products of two 16.16 values carry 32 fractional bits.
	ad := int64(t.A) * int64(t.D)
	bc := int64(t.B) * int64(t.C)
	det := ad - bc
	if det == 0 {
		return Transform{}, false
	}
	if (ad >= 0) != (bc >= 0) && (det >= 0) != (ad >= 0) {
		// The determinant overflowed; the inverse would underflow to zero.
		return Transform{}, false
	}

	a, ok1 := invCoeff(t.D, det, false)
	b, ok2 := invCoeff(t.B, det, true)
	c, ok3 := invCoeff(t.C, det, true)
	d, ok4 := invCoeff(t.A, det, false)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Transform{}, false
	}

	inv := Transform{A: a, B: b, C: c, D: d}
	inv.TX = t.TX.Mul(a).Add(t.TY.Mul(c)).Neg()
	inv.TY = t.TX.Mul(b).Add(t.TY.Mul(d)).Neg()
	return inv, true
}

// invCoeff returns ±num/det in 16.16, where det carries 32 fractional
// bits. It reports false when the quotient is outside the int32 range.
func invCoeff(num fixedpoint.Int16_16, det int64, negate bool) (fixedpoint.Int16_16, bool) {
	q := (int64(num) << 32) / det
	if negate {
		q = -q
	}
	if q < math.MinInt32 || q > math.MaxInt32 {
		return 0, false
	}
	return fixedpoint.Int16_16(q), true
}
