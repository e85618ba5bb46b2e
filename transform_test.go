// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"testing"

	"github.com/gogpu/fxform/fixedpoint"
	"github.com/gogpu/fxform/trig"
)

const one = fixedpoint.Int16_16One

func TestIdentity(t *testing.T) {
	id := Identity()
	want := Transform{A: one, D: one}
	if id != want {
		t.Errorf("Identity() = %+v, want %+v", id, want)
	}
	if id == (Transform{}) {
		t.Error("Identity() must differ from the zero Transform")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Transform
		want Transform
	}{
		{"Scale", Scale(2*one, 3*one), Transform{A: 2 * one, D: 3 * one}},
		{"ScaleOf float", ScaleOf(0.5, 1.5), Transform{A: one / 2, D: one + one/2}},
		{"ScaleOf int", ScaleOf(2, -1), Transform{A: 2 * one, D: -one}},
		{"Translation", Translation(5*one, -7*one), Transform{A: one, D: one, TX: 5 * one, TY: -7 * one}},
		{"TranslationOf", TranslationOf(100, 100), Transform{A: one, D: one, TX: 100 * one, TY: 100 * one}},
		{"New", New(1, 2, 3, 4, 5, 6), Transform{A: 1, B: 2, C: 3, D: 4, TX: 5, TY: 6}},
		{"NewOf", NewOf(1.0, 0.25, -0.25, 1.0, 10.5, 0), Transform{
			A: one, B: one / 4, C: -one / 4, D: one, TX: 10*one + one/2,
		}},
		// Truncation toward zero for inexact literals.
		{"NewOf truncates", NewOf(0.1, -0.1, 0, 0, 0, 0), Transform{A: 6553, B: -6553}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		name    string
		degrees int32
		want    Transform
	}{
		{"0", 0, Identity()},
		{"90", 90, Transform{A: 0, B: -one, C: one, D: 0}},
		{"180", 180, Transform{A: -one, B: 0, C: 0, D: -one}},
		{"270", 270, Transform{A: 0, B: one, C: -one, D: 0}},
		// cos(45°) = 46340/65535 in the lookup scale, rescaled by truncation.
		{"45", 45, Transform{A: 46340, B: -46340, C: 46340, D: 46340}},
		{"30", 30, Transform{A: 56756, B: -32765, C: 32765, D: 56756}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotation(trig.DegreesToAngle(tt.degrees))
			if got != tt.want {
				t.Errorf("Rotation(%d°) = %+v, want %+v", tt.degrees, got, tt.want)
			}
		})
	}
}

// fakeTrig returns values that expose the rescale and sign placement.
type fakeTrig struct {
	calls int
}

func (f *fakeTrig) Sin(int32) int32 { f.calls++; return trig.MaxRatio / 2 }
func (f *fakeTrig) Cos(int32) int32 { f.calls++; return -trig.MaxRatio }

func TestRotationWithTrig(t *testing.T) {
	ft := &fakeTrig{}
	got := Rotation(1234, WithTrig(ft))

	// 32767 * 65536 / 65535 = 32767.5, truncated.
	want := Transform{A: -one, B: -32767, C: 32767, D: -one}
	if got != want {
		t.Errorf("Rotation with fake trig = %+v, want %+v", got, want)
	}
	if ft.calls != 2 {
		t.Errorf("lookup calls = %d, want 2", ft.calls)
	}
}

func TestRotationZeroSkipsLookup(t *testing.T) {
	ft := &fakeTrig{}
	got := Rotation(0, WithTrig(ft))
	if got != Identity() {
		t.Errorf("Rotation(0) = %+v, want identity", got)
	}
	if ft.calls != 0 {
		t.Errorf("Rotation(0) consulted the lookup %d times", ft.calls)
	}
}

func TestRotationFullTurn(t *testing.T) {
	// Not short-circuited, but the table is exact at cardinal angles.
	if got := Rotation(trig.AngleFullTurn); got != Identity() {
		t.Errorf("Rotation(full turn) = %+v, want identity", got)
	}
}
