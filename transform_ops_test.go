// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import (
	"testing"

	"github.com/gogpu/fxform/trig"
)

// sampleTransforms covers rotation, shear, scale and translation.
func sampleTransforms() map[string]Transform {
	return map[string]Transform{
		"identity":    Identity(),
		"scale":       ScaleOf(2, 3),
		"translation": TranslationOf(10.5, -20),
		"rotation 30": Rotation(trig.DegreesToAngle(30)),
		"rotation 90": Rotation(trig.DegreesToAngle(90)),
		"shear":       NewOf(1, 0.5, 0.25, 1, 0, 0),
		"general":     NewOf(1.5, -0.75, 0.125, 2, 33, -7.25),
	}
}

func TestConcatIdentityLaws(t *testing.T) {
	id := Identity()
	for name, tr := range sampleTransforms() {
		t.Run(name, func(t *testing.T) {
			var left, right Transform
			Concat(&left, &id, &tr)
			Concat(&right, &tr, &id)
			if left != tr {
				t.Errorf("Identity·T = %+v, want %+v", left, tr)
			}
			if right != tr {
				t.Errorf("T·Identity = %+v, want %+v", right, tr)
			}
		})
	}
}

func TestConcatNotCommutative(t *testing.T) {
	tt := TranslationOf(10, 0)
	r := Rotation(trig.DegreesToAngle(90))

	var tr, rt Transform
	Concat(&tr, &tt, &r)
	Concat(&rt, &r, &tt)

	// Translate first, then rotate: the offset is rotated as well.
	wantTR := Transform{A: 0, B: -one, C: one, D: 0, TX: 0, TY: -10 * one}
	// Rotate first, then translate.
	wantRT := Transform{A: 0, B: -one, C: one, D: 0, TX: 10 * one, TY: 0}

	if tr != wantTR {
		t.Errorf("Translation·Rotation = %+v, want %+v", tr, wantTR)
	}
	if rt != wantRT {
		t.Errorf("Rotation·Translation = %+v, want %+v", rt, wantRT)
	}
	if Equal(&tr, &rt) {
		t.Error("concatenation must not commute")
	}
}

func TestConcatFormula(t *testing.T) {
	t1 := NewOf(1, 2, 3, 4, 5, 6)
	t2 := NewOf(0.5, 1, -1, 2, 10, 20)

	var got Transform
	Concat(&got, &t1, &t2)

	// a = 1*0.5 + 2*-1 = -1.5        b = 1*1 + 2*2 = 5
	// c = 3*0.5 + 4*-1 = -2.5        d = 3*1 + 4*2 = 11
	// tx = 5*0.5 + 6*-1 + 10 = 6.5   ty = 5*1 + 6*2 + 20 = 37
	want := NewOf(-1.5, 5, -2.5, 11, 6.5, 37)
	if got != want {
		t.Errorf("Concat = %+v, want %+v", got, want)
	}
	if m := t1.Mul(t2); m != want {
		t.Errorf("Mul = %+v, want %+v", m, want)
	}
}

func TestConcatAliasing(t *testing.T) {
	t1 := NewOf(1.5, -0.75, 0.125, 2, 33, -7.25)
	t2 := Rotation(trig.DegreesToAngle(30))

	var want Transform
	Concat(&want, &t1, &t2)

	tests := []struct {
		name string
		run  func() Transform
	}{
		{"out aliases t1", func() Transform {
			a, b := t1, t2
			Concat(&a, &a, &b)
			return a
		}},
		{"out aliases t2", func() Transform {
			a, b := t1, t2
			Concat(&b, &a, &b)
			return b
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}

	// Squaring in place: all three pointers alias.
	sq := t1
	var wantSq Transform
	Concat(&wantSq, &t1, &t1)
	Concat(&sq, &sq, &sq)
	if sq != wantSq {
		t.Errorf("in-place square = %+v, want %+v", sq, wantSq)
	}
}

func TestPreScale(t *testing.T) {
	base := NewOf(1, 2, 3, 4, 5, 6)

	var got Transform
	PreScale(&got, &base, 2*one, one/2)
	want := NewOf(2, 4, 1.5, 2, 5, 6)
	if got != want {
		t.Errorf("PreScale = %+v, want %+v", got, want)
	}

	// Same as Scale(sx, sy) · t.
	s := ScaleOf(2, 0.5)
	var viaConcat Transform
	Concat(&viaConcat, &s, &base)
	if got != viaConcat {
		t.Errorf("PreScale = %+v, Scale·t = %+v", got, viaConcat)
	}

	var gotOf Transform
	PreScaleOf(&gotOf, &base, 2, 0.5)
	if gotOf != want {
		t.Errorf("PreScaleOf = %+v, want %+v", gotOf, want)
	}
}

func TestPreTranslate(t *testing.T) {
	base := NewOf(1, 2, 3, 4, 5, 6)

	var got Transform
	PreTranslate(&got, &base, 10*one, -one)
	// tx = 10*1 + -1*3 + 5 = 12, ty = 10*2 + -1*4 + 6 = 22
	want := NewOf(1, 2, 3, 4, 12, 22)
	if got != want {
		t.Errorf("PreTranslate = %+v, want %+v", got, want)
	}

	tt := TranslationOf(10, -1)
	var viaConcat Transform
	Concat(&viaConcat, &tt, &base)
	if got != viaConcat {
		t.Errorf("PreTranslate = %+v, Translation·t = %+v", got, viaConcat)
	}

	var gotOf Transform
	PreTranslateOf(&gotOf, &base, 10, -1)
	if gotOf != want {
		t.Errorf("PreTranslateOf = %+v, want %+v", gotOf, want)
	}
}

func TestPreRotate(t *testing.T) {
	base := TranslationOf(100, 100)
	angle := trig.DegreesToAngle(90)

	var got Transform
	PreRotate(&got, &base, angle)

	r := Rotation(angle)
	var want Transform
	Concat(&want, &r, &base)
	if got != want {
		t.Errorf("PreRotate = %+v, want %+v", got, want)
	}
}

func TestMutatorAliasing(t *testing.T) {
	tests := []struct {
		name string
		op   func(out, in *Transform)
	}{
		{"PreScale", func(out, in *Transform) { PreScaleOf(out, in, 1.5, -2) }},
		{"PreTranslate", func(out, in *Transform) { PreTranslateOf(out, in, 12.25, -7) }},
		{"PreRotate", func(out, in *Transform) { PreRotate(out, in, trig.DegreesToAngle(30)) }},
	}

	for name, base := range sampleTransforms() {
		for _, tt := range tests {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				var tmp Transform
				in := base
				tt.op(&tmp, &in)

				inPlace := base
				tt.op(&inPlace, &inPlace)
				if inPlace != tmp {
					t.Errorf("in place = %+v, via temporary = %+v", inPlace, tmp)
				}
				if in != base {
					t.Errorf("input modified: %+v", in)
				}
			})
		}
	}
}

func TestMutatorsNilNoop(t *testing.T) {
	sentinel := NewOf(9, 8, 7, 6, 5, 4)
	in := Identity()

	out := sentinel
	Concat(&out, nil, &in)
	Concat(&out, &in, nil)
	Concat(nil, &in, &in)
	PreScale(&out, nil, one, one)
	PreScale(nil, &in, one, one)
	PreTranslate(&out, nil, one, one)
	PreTranslate(nil, &in, one, one)
	PreRotate(&out, nil, 100)
	PreRotate(nil, &in, 100)

	if out != sentinel {
		t.Errorf("nil argument modified output: %+v", out)
	}
}
