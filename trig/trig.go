// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package trig provides integer sine and cosine lookups over a fixed
// angular unit.
//
// A full turn is [AngleFullTurn] units and results are scaled by
// [MaxRatio], so Sin(AngleFullTurn/4) == MaxRatio. The values come from a
// generated quarter-wave table with linear interpolation between entries;
// no floating point is used at run time and results are identical on every
// platform.
package trig

//go:generate go run ./internal/gentable -o table.go

const (
	// AngleFullTurn is the number of angle units in a full turn.
	AngleFullTurn = 0x10000

	// AngleQuarterTurn is a quarter turn (90 degrees).
	AngleQuarterTurn = AngleFullTurn / 4

	// MaxRatio is the lookup value of sin(90°) and cos(0°).
	MaxRatio = 0xffff

	// quarterSteps is the number of table segments per quarter turn.
	quarterSteps = 1024

	// stepShift converts a quarter-turn offset into a table index.
	stepShift = 4
)

// Sin returns the sine of angle scaled by MaxRatio.
// Angles outside [0, AngleFullTurn) wrap, so negative angles are valid.
func Sin(angle int32) int32 {
	a := angle & (AngleFullTurn - 1)
	off := a & (AngleQuarterTurn - 1)
	switch a / AngleQuarterTurn {
	case 0:
		return quarterSin(off)
	case 1:
		return quarterSin(AngleQuarterTurn - off)
	case 2:
		return -quarterSin(off)
	default:
		return -quarterSin(AngleQuarterTurn - off)
	}
}

// Cos returns the cosine of angle scaled by MaxRatio.
func Cos(angle int32) int32 {
	return Sin(angle + AngleQuarterTurn)
}

// quarterSin interpolates the table for a in [0, AngleQuarterTurn].
func quarterSin(a int32) int32 {
	i := a >> stepShift
	f := a & (1<<stepShift - 1)
	if f == 0 {
		return sineTable[i]
	}
	lo, hi := sineTable[i], sineTable[i+1]
	return lo + ((hi-lo)*f)>>stepShift
}

// DegreesToAngle converts whole degrees to angle units. Degrees are reduced
// modulo 360 first, keeping their sign.
func DegreesToAngle(degrees int32) int32 {
	return (degrees % 360) * AngleFullTurn / 360
}

// Table is the lookup table as a value, for callers that inject the
// trigonometric source as an interface.
type Table struct{}

// Sin returns [Sin](angle).
func (Table) Sin(angle int32) int32 { return Sin(angle) }

// Cos returns [Cos](angle).
func (Table) Cos(angle int32) int32 { return Cos(angle) }
