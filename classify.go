// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import "github.com/gogpu/fxform/fixedpoint"

// Classification lets a renderer pick an axis-aligned fast path. A miss only
// costs performance. Every predicate returns false for a nil transform.

// IsIdentity reports whether t is exactly the identity matrix.
func IsIdentity(t *Transform) bool {
	return t != nil && *t == Identity()
}

// IsOnlyScale reports whether t has no shear, rotation or translation.
// The scale factors a and d may take any value.
func IsOnlyScale(t *Transform) bool {
	if t == nil {
		return false
	}
	return t.B == fixedpoint.Int16_16Zero && t.C == fixedpoint.Int16_16Zero &&
		t.TX == fixedpoint.Int16_16Zero && t.TY == fixedpoint.Int16_16Zero
}

// IsOnlyTranslation reports whether the linear part of t is the identity.
// The translation may take any value.
func IsOnlyTranslation(t *Transform) bool {
	if t == nil {
		return false
	}
	return t.A == fixedpoint.Int16_16One && t.B == fixedpoint.Int16_16Zero &&
		t.C == fixedpoint.Int16_16Zero && t.D == fixedpoint.Int16_16One
}

// IsOnlyScaleOrTranslation reports whether b or c is non-zero.
//
// Despite its name, it returns true when t DOES contain shear or rotation,
// and false for pure scale/translation. Existing callers depend on this
// behavior; use !IsOnlyScaleOrTranslation(t) to test for an axis-aligned
// transform.
func IsOnlyScaleOrTranslation(t *Transform) bool {
	if t == nil {
		return false
	}
	return t.B != fixedpoint.Int16_16Zero || t.C != fixedpoint.Int16_16Zero
}

// Equal reports whether t1 and t2 have identical coefficients.
// It returns false if either is nil.
func Equal(t1, t2 *Transform) bool {
	if t1 == nil || t2 == nil {
		return false
	}
	return *t1 == *t2
}
