// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped implements the text layout engine: it turns attributed
// [rich.Text] into [Lines] of positioned runs bound to a fixed container
// size, with per-rune glyph geometry, line metrics, truncation ranges,
// and line-height normalization. A [Lines] value is the laid-out text
// artifact stored in the layout cache and consumed by the embedded-view
// layout pass and the host mount boundary.
package shaped

import (
	"github.com/inkwell-ui/inkwell/fonts"
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"github.com/inkwell-ui/inkwell/textpos"
)

// Run is a span of laid-out text sharing one style and font, with
// per-rune advances recorded for glyph geometry queries.
type Run struct {

	// SourceRange is the rune range in the original source covered
	// by this run.
	SourceRange textpos.Range

	// Style is a copy of the style governing this run.
	Style rich.Style

	// Font is the resolved font for this run.
	Font *fonts.Font

	// Offset is the x offset of the run start relative to the line origin.
	Offset float32

	// Advances are the per-rune x advances, indexed parallel to
	// SourceRange.
	Advances []float32

	// Advance is the total advance of the run.
	Advance float32

	// EmbedID is the embedded-view identifier for a placeholder run,
	// empty otherwise.
	EmbedID string

	// EmbedSize is the measured size of the embedded view for a
	// placeholder run.
	EmbedSize math32.Vector2
}

// IsEmbed returns whether this run is an embedded-view placeholder.
func (rn *Run) IsEmbed() bool {
	return rn.EmbedID != ""
}

// Line is one laid-out line of runs.
type Line struct {

	// SourceRange is the rune range of the original source on this line.
	SourceRange textpos.Range

	// Runs are the laid-out runs of the line, in order.
	Runs []Run

	// Offset is the baseline origin of the line: X is the line start,
	// Y is the baseline position from the top of the layout.
	Offset math32.Vector2

	// Width is the total advance width of the line.
	Width float32

	// Ascent is the maximum ascent over the line's fonts, positive.
	Ascent float32

	// Descent is the minimum (most negative) descender over the
	// line's fonts.
	Descent float32

	// CapHeight is the maximum cap height over the line's fonts.
	CapHeight float32

	// XHeight is the maximum x-height over the line's fonts.
	XHeight float32

	// Height is the line box height, including any declared line
	// height in excess of the natural height.
	Height float32

	// Truncated is the rune range on this line removed from display
	// by truncation, nil (empty) if none.
	Truncated textpos.Range

	// Ellipsis indicates the truncated tail is represented by an
	// ellipsis at the end of the visible runs.
	Ellipsis bool
}

// Bounds returns the line bounding box in layout coordinates
// (relative to the top left of the whole layout).
func (ln *Line) Bounds() math32.Box2 {
	top := ln.Offset.Y - ln.Ascent
	return math32.B2(ln.Offset.X, top, ln.Offset.X+ln.Width, top+ln.Height)
}

// Lines is attributed text laid out at a fixed container size: the
// renderable unit of text, with derived glyph geometry and font-level
// metrics. It is treated as opaque by callers beyond the line and glyph
// queries used by the embedded-view layout pass.
type Lines struct {

	// Source is the attributed text that generated this layout.
	Source rich.Text

	// Lines are the laid-out lines, including lines beyond the
	// visible limit, which carry full-range Truncated marks.
	Lines []Line

	// Size is the container size the layout was bound to.
	Size math32.Vector2

	// Bounds is the used bounding box of the visible text.
	Bounds math32.Box2

	// Truncated indicates whether any line was truncated.
	Truncated bool

	// BaselineShift is the uniform baseline offset applied by the
	// line-height normalizer, already included in line offsets.
	BaselineShift float32

	// FontScale is the shrink-to-fit font scale the layout was
	// produced at, 1 if no shrinking applied.
	FontScale float32
}

// NumVisibleLines returns the number of lines not fully truncated.
func (ls *Lines) NumVisibleLines() int {
	n := 0
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		if ln.Truncated.Len() >= ln.SourceRange.Len() && ln.SourceRange.Len() > 0 {
			continue
		}
		n++
	}
	return n
}

// LineAt returns the index of the line containing the given source rune
// index, or -1 if it is not on any line.
func (ls *Lines) LineAt(ri int) int {
	for li := range ls.Lines {
		if ls.Lines[li].SourceRange.Contains(ri) {
			return li
		}
	}
	return -1
}

// RuneBounds returns the line-level bounding box for the given source
// rune index: the rune's horizontal advance extent over the full
// vertical extent of its line box. Returns an empty box if the rune is
// not on any line.
func (ls *Lines) RuneBounds(ri int) math32.Box2 {
	li := ls.LineAt(ri)
	if li < 0 {
		return math32.B2Empty()
	}
	ln := &ls.Lines[li]
	for i := range ln.Runs {
		rn := &ln.Runs[i]
		if !rn.SourceRange.Contains(ri) {
			continue
		}
		x := ln.Offset.X + rn.Offset
		for j := rn.SourceRange.Start; j < ri; j++ {
			x += rn.Advances[j-rn.SourceRange.Start]
		}
		adv := rn.Advances[ri-rn.SourceRange.Start]
		top := ln.Offset.Y - ln.Ascent
		return math32.B2(x, top, x+adv, top+ln.Height)
	}
	return math32.B2Empty()
}

// RuneTruncated returns whether the given source rune index falls in a
// truncated (display-removed) range of its line.
func (ls *Lines) RuneTruncated(ri int) bool {
	for li := range ls.Lines {
		if ls.Lines[li].Truncated.Contains(ri) {
			return true
		}
	}
	return false
}

// MinDescender returns the minimum (most negative) descender over all
// font runs in the layout, or 0 if there are none.
func (ls *Lines) MinDescender() float32 {
	md := float32(0)
	first := true
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		for i := range ln.Runs {
			fn := ln.Runs[i].Font
			if fn == nil {
				continue
			}
			if first || fn.Metrics.Descent < md {
				md = fn.Metrics.Descent
				first = false
			}
		}
	}
	return md
}

// StripPlaceholders clears embedded-view metadata from the layout,
// so the handed-off artifact does not retain references to embedded
// children. Called before the host mount handoff.
func (ls *Lines) StripPlaceholders() {
	for si := range ls.Source {
		ls.Source[si].EmbedID = ""
		ls.Source[si].EmbedSize = math32.Vector2{}
	}
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		for i := range ln.Runs {
			ln.Runs[i].EmbedID = ""
			ln.Runs[i].EmbedSize = math32.Vector2{}
		}
	}
}
