// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import "github.com/gogpu/fxform/fixedpoint"

// Concat stores t1 · t2 in out: the result applies t1 first, then t2.
// Concatenation is not commutative.
//
// out may be the same pointer as t1 or t2. If any argument is nil, Concat
// does nothing.
func Concat(out, t1, t2 *Transform) {
	if out == nil || t1 == nil || t2 == nil {
		logSkipped("Concat")
		return
	}

	// Every product is read from the inputs before out is written.
	r := Transform{
		A:  t1.A.Mul(t2.A).Add(t1.B.Mul(t2.C)),
		B:  t1.A.Mul(t2.B).Add(t1.B.Mul(t2.D)),
		C:  t1.C.Mul(t2.A).Add(t1.D.Mul(t2.C)),
		D:  t1.C.Mul(t2.B).Add(t1.D.Mul(t2.D)),
		TX: t1.TX.Mul(t2.A).Add3(t1.TY.Mul(t2.C), t2.TX),
		TY: t1.TX.Mul(t2.B).Add3(t1.TY.Mul(t2.D), t2.TY),
	}
	*out = r
}

// Mul returns t · u, the transform that applies t first, then u.
func (t Transform) Mul(u Transform) Transform {
	Concat(&t, &t, &u)
	return t
}

// PreScale stores Scale(sx, sy) · t in out, scaling the row vectors of t.
// The translation of t is unchanged.
//
// out may be the same pointer as t. If either is nil, PreScale does nothing.
func PreScale(out, t *Transform, sx, sy fixedpoint.Int16_16) {
	if out == nil || t == nil {
		logSkipped("PreScale")
		return
	}

	r := *t
	r.A = sx.Mul(t.A)
	r.B = sx.Mul(t.B)
	r.C = sy.Mul(t.C)
	r.D = sy.Mul(t.D)
	*out = r
}

// PreScaleOf is like [PreScale] but takes native numbers.
func PreScaleOf[N fixedpoint.Number](out, t *Transform, sx, sy N) {
	PreScale(out, t, fixedpoint.Int16_16Of(sx), fixedpoint.Int16_16Of(sy))
}

// PreTranslate stores Translation(tx, ty) · t in out. The linear part of t
// is unchanged; the offset (tx, ty) is mapped through it and added to the
// translation of t.
//
// out may be the same pointer as t. If either is nil, PreTranslate does
// nothing.
func PreTranslate(out, t *Transform, tx, ty fixedpoint.Int16_16) {
	if out == nil || t == nil {
		logSkipped("PreTranslate")
		return
	}

	r := *t
	r.TX = tx.Mul(t.A).Add3(ty.Mul(t.C), t.TX)
	r.TY = tx.Mul(t.B).Add3(ty.Mul(t.D), t.TY)
	*out = r
}

// PreTranslateOf is like [PreTranslate] but takes native numbers.
func PreTranslateOf[N fixedpoint.Number](out, t *Transform, tx, ty N) {
	PreTranslate(out, t, fixedpoint.Int16_16Of(tx), fixedpoint.Int16_16Of(ty))
}

// PreRotate stores Rotation(angle) · t in out.
//
// out may be the same pointer as t. If either is nil, PreRotate does
// nothing.
func PreRotate(out, t *Transform, angle int32, opts ...Option) {
	if out == nil || t == nil {
		logSkipped("PreRotate")
		return
	}

	r := Rotation(angle, opts...)
	Concat(out, &r, t)
}
