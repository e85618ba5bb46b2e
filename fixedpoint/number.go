// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixedpoint

import "golang.org/x/exp/constraints"

// Number is any native numeric type accepted by the literal constructors
// [Int13_3Of] and [Int16_16Of].
type Number interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether N is a floating-point type.
// Integer division truncates 1/2 to zero, float division does not.
func isFloat[N Number]() bool {
	var one N = 1
	return one/2 != 0
}
