// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fxform/fixedpoint"
)

const (
	// PreciseModulus is the wrap window for integer coordinates converted to
	// precise form: the 13-bit integer part of [fixedpoint.Int13_3].
	PreciseModulus = 0x2000

	// PrecisePrecision is the number of fractional bits of a precise
	// coordinate.
	PrecisePrecision = fixedpoint.Int13_3Shift
)

// Vector is an integer 2D vector, as exchanged with the rendering pipeline.
type Vector struct {
	DX, DY int16
}

// Vec is a convenience function to create a Vector.
func Vec(dx, dy int16) Vector {
	return Vector{DX: dx, DY: dy}
}

// PrecisePoint is a point with 13.3 fixed-point coordinates, covering
// -4096.000 to +4095.875 pixels.
type PrecisePoint struct {
	X, Y fixedpoint.Int13_3
}

// PreciseVector is a vector with 13.3 fixed-point components.
type PreciseVector struct {
	DX, DY fixedpoint.Int13_3
}

// preciseCoord reduces c modulo PreciseModulus and shifts it into 13.3
// form. Values outside the window wrap instead of saturating.
func preciseCoord(c int) fixedpoint.Int13_3 {
	//nolint:gosec // Intentional wrap into 16 bits
	return fixedpoint.Int13_3(int16((c % PreciseModulus) << PrecisePrecision))
}

// PrecisePointFromPoint converts an integer point to precise form.
func PrecisePointFromPoint(p image.Point) PrecisePoint {
	return PrecisePoint{X: preciseCoord(p.X), Y: preciseCoord(p.Y)}
}

// Point converts p back to integer coordinates, discarding the fraction.
func (p PrecisePoint) Point() image.Point {
	return image.Point{X: int(p.X.Integer()), Y: int(p.Y.Integer())}
}

// Equal reports whether p and q have identical raw coordinates.
func (p PrecisePoint) Equal(q PrecisePoint) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Fixed converts p to a golang.org/x/image/math/fixed point, for
// rasterizers working in 26.6. The conversion is exact.
func (p PrecisePoint) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: p.X.Int26_6(), Y: p.Y.Int26_6()}
}

// PrecisePointFromFixed converts a 26.6 point, dropping the sub-eighth bits.
func PrecisePointFromFixed(p fixed.Point26_6) PrecisePoint {
	return PrecisePoint{X: fixedpoint.Int13_3From26_6(p.X), Y: fixedpoint.Int13_3From26_6(p.Y)}
}

// PreciseVectorFromVector converts an integer vector to precise form.
func PreciseVectorFromVector(v Vector) PreciseVector {
	return PreciseVector{DX: preciseCoord(int(v.DX)), DY: preciseCoord(int(v.DY))}
}

// Vector converts v back to integer components, discarding the fraction.
func (v PreciseVector) Vector() Vector {
	return Vector{DX: v.DX.Integer(), DY: v.DY.Integer()}
}

// Equal reports whether v and w have identical raw components.
func (v PreciseVector) Equal(w PreciseVector) bool {
	return v.DX.Equal(w.DX) && v.DY.Equal(w.DY)
}

// Fixed converts v to a golang.org/x/image/math/fixed point.
func (v PreciseVector) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: v.DX.Int26_6(), Y: v.DY.Int26_6()}
}

// PreciseVectorFromFixed converts a 26.6 vector, dropping the sub-eighth
// bits.
func PreciseVectorFromFixed(p fixed.Point26_6) PreciseVector {
	return PreciseVector{DX: fixedpoint.Int13_3From26_6(p.X), DY: fixedpoint.Int13_3From26_6(p.Y)}
}
