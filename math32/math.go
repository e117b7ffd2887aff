// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 scalar and 2D geometry types used
// throughout the text layout engine. The scalar functions are thin wrappers
// around chewxy/math32, which has optimized implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether x is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// CeilToGrid returns x rounded up to the device pixel grid for the
// given scale factor (device pixels per layout unit).
func CeilToGrid(x, scale float32) float32 {
	if scale <= 0 {
		scale = 1
	}
	return math32.Ceil(x*scale) / scale
}

// RoundToGrid returns x rounded to the nearest device pixel for the
// given scale factor (device pixels per layout unit).
func RoundToGrid(x, scale float32) float32 {
	if scale <= 0 {
		scale = 1
	}
	return math32.Round(x*scale) / scale
}
