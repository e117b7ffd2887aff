// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"github.com/inkwell-ui/inkwell/flex"
	"github.com/inkwell-ui/inkwell/math32"
)

// MeasureEpsilon is added to measured extents after pixel-grid ceil
// rounding, guarding against float round-trip precision loss in the
// flexbox consumer.
const MeasureEpsilon = 0.001

// Measure implements the flexbox measure callback for this node:
// unbounded or undefined constraints map to the [flex.MaxSize]
// sentinel, the text is laid out (shared lease) at the resulting
// bounding size, negative letter spacing is compensated in the width,
// and the result is clamped to the constraints, ceil-rounded to the
// pixel grid, and padded by [MeasureEpsilon].
func (nd *Node) Measure(width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
	w, h := width, height
	if widthMode == flex.Unbounded || math32.IsNaN(w) {
		w = flex.MaxSize
	}
	if heightMode == flex.Unbounded || math32.IsNaN(h) {
		h = flex.MaxSize
	}
	lns := nd.layoutFor(math32.Vec2(w, h), false)
	sz := lns.Bounds.Size()
	if ls := nd.minLetterSpacing(); ls < 0 {
		// negative tracking reduces the rightmost glyph's trailing advance
		sz.X -= ls
	}
	if widthMode == flex.Definite {
		sz.X = math32.Clamp(sz.X, 0, width)
	}
	if heightMode == flex.Definite {
		sz.Y = math32.Clamp(sz.Y, 0, height)
	}
	return flex.Size{
		Width:  math32.CeilToGrid(sz.X, nd.Scale) + MeasureEpsilon,
		Height: math32.CeilToGrid(sz.Y, nd.Scale) + MeasureEpsilon,
	}
}

// Baseline implements the flexbox baseline callback: the text is laid
// out (shared lease) at exactly the given size and the offset is the
// height plus the minimum (most negative) descender over all font runs.
func (nd *Node) Baseline(width, height float32) float32 {
	lns := nd.layoutFor(math32.Vec2(width, height), false)
	return height + lns.MinDescender()
}

// MeasureFunc adapts the node to the [flex.MeasureFunc] contract; the
// opaque node argument is ignored, as the closure carries the node.
func (nd *Node) MeasureFunc() flex.MeasureFunc {
	return func(_ any, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
		return nd.Measure(width, widthMode, height, heightMode)
	}
}

// BaselineFunc adapts the node to the [flex.BaselineFunc] contract.
func (nd *Node) BaselineFunc() flex.BaselineFunc {
	return func(_ any, width, height float32) float32 {
		return nd.Baseline(width, height)
	}
}

// minLetterSpacing returns the minimum letter spacing over the node's
// base style and fragment overrides.
func (nd *Node) minLetterSpacing() float32 {
	ls := nd.Style.LetterSpacing
	for i := range nd.frags {
		if st := nd.frags[i].style; st != nil && st.LetterSpacing < ls {
			ls = st.LetterSpacing
		}
	}
	return ls
}
