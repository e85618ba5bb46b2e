// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fxform

import "errors"

// ErrSingular is returned by [Transform.Inverse] when the linear part of the
// transform has a zero determinant, or when the inverse coefficients do not
// fit the 16.16 range.
var ErrSingular = errors.New("fxform: transform is not invertible")
