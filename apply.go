// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"image"

	"github.com/gogpu/fxform/fixedpoint"
)

// TransformPoint applies t to an integer point and returns the result in
// precise coordinates. The point is first converted with
// [PrecisePointFromPoint]; a nil t is treated as the identity.
func TransformPoint(p image.Point, t *Transform) PrecisePoint {
	pp := PrecisePointFromPoint(p)
	if t == nil {
		return pp
	}
	return PrecisePoint{
		X: applyRow(pp.X, pp.Y, t.A, t.C, t.TX),
		Y: applyRow(pp.X, pp.Y, t.B, t.D, t.TY),
	}
}

// TransformVector applies t to an integer vector. A nil t is treated as the
// identity.
//
// The translation of t is added just as for a point: vectors are not
// translation-invariant here. Callers transforming pure directions should
// pass a transform without translation.
func TransformVector(v Vector, t *Transform) PreciseVector {
	pv := PreciseVectorFromVector(v)
	if t == nil {
		return pv
	}
	return PreciseVector{
		DX: applyRow(pv.DX, pv.DY, t.A, t.C, t.TX),
		DY: applyRow(pv.DX, pv.DY, t.B, t.D, t.TY),
	}
}

// applyRow returns x*m0 + y*m1 + 1*m2 in 13.3.
func applyRow(x, y fixedpoint.Int13_3, m0, m1, m2 fixedpoint.Int16_16) fixedpoint.Int13_3 {
	return fixedpoint.MulMixed(x, m0).Add3(
		fixedpoint.MulMixed(y, m1),
		fixedpoint.MulMixed(fixedpoint.Int13_3One, m2),
	)
}
