// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import "github.com/gogpu/fxform/trig"

// Trig is the trigonometric source used to build rotation matrices.
//
// Angles use the unit of package trig (a full turn is trig.AngleFullTurn)
// and results must be scaled so that Sin of a quarter turn equals
// trig.MaxRatio.
type Trig interface {
	Sin(angle int32) int32
	Cos(angle int32) int32
}

// Option configures rotation construction.
//
// Example:
//
//	// Default lookup table
//	r := fxform.Rotation(trig.DegreesToAngle(30))
//
//	// Host-provided lookup (dependency injection)
//	r := fxform.Rotation(angle, fxform.WithTrig(hostTrig))
type Option func(*options)

// options holds optional configuration for rotation construction.
type options struct {
	lookup Trig
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		lookup: trig.Table{},
	}
}

// applyOptions folds opts over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTrig sets the sine/cosine source. A nil Trig keeps the default
// table from package trig.
func WithTrig(t Trig) Option {
	return func(o *options) {
		if t != nil {
			o.lookup = t
		}
	}
}
