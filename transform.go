// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"github.com/gogpu/fxform/fixedpoint"
	"github.com/gogpu/fxform/trig"
)

// Transform represents a 2D affine transformation matrix with 16.16
// fixed-point coefficients.
//
// The coefficients form the 3x3 matrix
//
//	| a   b   0 |
//	| c   d   0 |
//	| tx  ty  1 |
//
// and a point is transformed as a row vector, [x y 1] · M:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// The last column is implicit, so only affine transforms are representable.
// The zero value is not the identity; use [Identity].
type Transform struct {
	A, B, C, D, TX, TY fixedpoint.Int16_16
}

// New returns the transform with the given coefficients.
func New(a, b, c, d, tx, ty fixedpoint.Int16_16) Transform {
	return Transform{A: a, B: b, C: c, D: d, TX: tx, TY: ty}
}

// NewOf is like [New] but takes native numbers, converted with
// [fixedpoint.Int16_16Of].
func NewOf[N fixedpoint.Number](a, b, c, d, tx, ty N) Transform {
	return New(
		fixedpoint.Int16_16Of(a), fixedpoint.Int16_16Of(b),
		fixedpoint.Int16_16Of(c), fixedpoint.Int16_16Of(d),
		fixedpoint.Int16_16Of(tx), fixedpoint.Int16_16Of(ty),
	)
}

// Identity returns the identity transformation matrix.
func Identity() Transform {
	return Transform{
		A: fixedpoint.Int16_16One, B: fixedpoint.Int16_16Zero,
		C: fixedpoint.Int16_16Zero, D: fixedpoint.Int16_16One,
		TX: fixedpoint.Int16_16Zero, TY: fixedpoint.Int16_16Zero,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy fixedpoint.Int16_16) Transform {
	return Transform{A: sx, D: sy}
}

// ScaleOf creates a scaling matrix from native numbers.
//
// Example:
//
//	t := fxform.ScaleOf(1.5, 1.5)
func ScaleOf[N fixedpoint.Number](sx, sy N) Transform {
	return Scale(fixedpoint.Int16_16Of(sx), fixedpoint.Int16_16Of(sy))
}

// Translation creates a translation matrix.
func Translation(tx, ty fixedpoint.Int16_16) Transform {
	t := Identity()
	t.TX, t.TY = tx, ty
	return t
}

// TranslationOf creates a translation matrix from native numbers.
func TranslationOf[N fixedpoint.Number](tx, ty N) Transform {
	return Translation(fixedpoint.Int16_16Of(tx), fixedpoint.Int16_16Of(ty))
}

// Rotation creates a rotation matrix for angle, in the unit of package trig
// (a full turn is trig.AngleFullTurn):
//
//	| cos  -sin  0 |
//	| sin   cos  0 |
//	| 0     0    1 |
//
// An angle of exactly zero returns [Identity] without consulting the lookup
// table, so Rotation(0) is bit-identical to the identity.
func Rotation(angle int32, opts ...Option) Transform {
	if angle == 0 {
		return Identity()
	}

	o := applyOptions(opts)
	cos := fromTrigRatio(o.lookup.Cos(angle))
	sin := fromTrigRatio(o.lookup.Sin(angle))
	return Transform{A: cos, B: -sin, C: sin, D: cos}
}

// fromTrigRatio rescales a lookup value from the trig.MaxRatio scale to
// 16.16. The product needs more than 32 bits.
func fromTrigRatio(v int32) fixedpoint.Int16_16 {
	//nolint:gosec // |v| <= MaxRatio, so the quotient fits
	return fixedpoint.Int16_16(int64(v) * int64(fixedpoint.Int16_16One) / trig.MaxRatio)
}
