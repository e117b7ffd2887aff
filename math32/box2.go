// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values,
// ready to be expanded by points or boxes.
func B2Empty() Box2 {
	b := Box2{}
	b.SetEmpty()
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min = Vec2(Infinity, Infinity)
	b.Max = Vec2(-Infinity, -Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box as width and height,
// or zero if the box is empty.
func (b Box2) Size() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByBox expands this bounding box to include the other given box.
func (b *Box2) ExpandByBox(o Box2) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(off Vector2) Box2 {
	if b.IsEmpty() {
		return b
	}
	return Box2{b.Min.Add(off), b.Max.Add(off)}
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// IntersectsBox returns whether this box intersects the other given box.
func (b Box2) IntersectsBox(o Box2) bool {
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X || o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y)
}
