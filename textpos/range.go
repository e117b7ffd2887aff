// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides rune-index positions and ranges within text.
package textpos

// Range is a contiguous range of rune indexes within some source text,
// with an inclusive Start and exclusive End, as in standard slice indexing.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsNil returns whether the range is empty, with End <= Start.
func (r Range) IsNil() bool {
	return r.End <= r.Start
}

// Contains returns whether the range contains the given rune index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Intersect returns the intersection of this range with the other given
// range, which is nil (empty) if they do not overlap.
func (r Range) Intersect(o Range) Range {
	return Range{max(r.Start, o.Start), min(r.End, o.End)}
}

// Shift returns the range translated by the given offset.
func (r Range) Shift(off int) Range {
	return Range{r.Start + off, r.End + off}
}
