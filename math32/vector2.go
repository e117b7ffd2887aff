// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "golang.org/x/image/math/fixed"

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(u Vector2) Vector2 {
	return Vec2(v.X+u.X, v.Y+u.Y)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(u Vector2) Vector2 {
	return Vec2(v.X-u.X, v.Y-u.Y)
}

// MulScalar multiplies each component of this vector by the scalar s
// and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Min returns the component-wise minimum of this vector and the other.
func (v Vector2) Min(u Vector2) Vector2 {
	return Vec2(min(v.X, u.X), min(v.Y, u.Y))
}

// Max returns the component-wise maximum of this vector and the other.
func (v Vector2) Max(u Vector2) Vector2 {
	return Vec2(max(v.X, u.X), max(v.Y, u.Y))
}

// FromFixed returns the given [fixed.Int26_6] value as a float32.
func FromFixed(x fixed.Int26_6) float32 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float32(x>>shift) + float32(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float32(x>>shift) + float32(x&mask)/64)
	}
	return 0
}
