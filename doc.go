// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fxform provides 2D affine transforms in fixed-point arithmetic.
//
// # Overview
//
// fxform targets environments without a floating-point unit, or where
// transform math must be bit-for-bit reproducible. Matrix coefficients are
// 16.16 fixed-point ([fixedpoint.Int16_16]) and transformed coordinates are
// 13.3 fixed-point ([fixedpoint.Int13_3]).
//
// # Quick Start
//
//	import (
//	    "image"
//
//	    "github.com/gogpu/fxform"
//	    "github.com/gogpu/fxform/trig"
//	)
//
//	// Rotate by 90 degrees, then move to (100, 100)
//	r := fxform.Rotation(trig.DegreesToAngle(90))
//	tt := fxform.TranslationOf(100, 100)
//	var t fxform.Transform
//	fxform.Concat(&t, &r, &tt)
//
//	p := fxform.TransformPoint(image.Pt(0, 0), &t).Point() // (100, 100)
//
// # Conventions
//
// Points are row vectors, so [x y 1] · M, and Concat(out, t1, t2) yields a
// transform that applies t1 first and t2 second. The Pre* mutators multiply
// on the left: PreScale(out, t, sx, sy) is Scale(sx, sy) · t.
//
// Mutators write through an output pointer which may alias any input. A nil
// pointer is never fatal: predicates return false, mutators do nothing, and
// application functions treat a nil transform as the identity.
//
// Arithmetic overflow is not detected; values wrap with Go's integer
// semantics. Keep coordinates within ±4096 and coefficients within ±32768.
//
// # Concurrency
//
// Transforms and points are plain values with no shared state. Concurrent
// reads are safe; a transform mutated from several goroutines needs
// caller-side synchronization.
package fxform
