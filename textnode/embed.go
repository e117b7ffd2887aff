// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/shaped"
)

// LineRecord is the per-line geometry and font-metric payload of the
// line-metrics event, in the node's content coordinates.
type LineRecord struct {
	Text      string
	X         float32
	Y         float32
	Width     float32
	Height    float32
	Descender float32
	CapHeight float32
	Ascender  float32
	XHeight   float32
}

// PerformMount runs the post-layout pass for a committed content frame:
// it takes the exclusive lease on the layout at the frame size, derives
// and applies a frame for every embedded view, fires the line-metrics
// event, strips placeholder metadata, and hands the layout to the host
// mount receiver via the one-shot scheduled work item. If the node was
// invalidated after the layout pass that produced the frame, the
// pending mount is skipped.
//
// absOffset is the absolute position of the content frame's origin,
// accumulated from the parent layout context.
func (nd *Node) PerformMount(frame math32.Box2, absOffset math32.Vector2) {
	if nd.cache.Dirty() {
		return
	}
	lns := nd.layoutFor(frame.Size(), true)
	descendants := nd.layoutEmbedded(lns, absOffset)
	if nd.OnTextLayout != nil {
		nd.OnTextLayout(lineRecords(lns))
	}
	lns.StripPlaceholders()
	nd.dispatchMount(lns, frame, descendants)
}

// layoutEmbedded walks the laid-out glyph geometry, derives a frame for
// each embedded view, detects truncation, and triggers each embedded
// child's own layout pass with fixed minimum = maximum = frame size.
// It returns the ordered identifiers of the descendants that resolve in
// the registry.
func (nd *Node) layoutEmbedded(lns *shaped.Lines, absOffset math32.Vector2) []string {
	var ids []string
	for li := range lns.Lines {
		ln := &lns.Lines[li]
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			if !rn.IsEmbed() {
				continue
			}
			idx := rn.SourceRange.Start
			child := nd.embedded(rn.EmbedID)
			if child == nil {
				continue
			}
			glyph := lns.RuneBounds(idx)
			if glyph.IsEmpty() {
				continue
			}
			descent := float32(0)
			if rn.Font != nil {
				descent = rn.Font.Metrics.Descent
			}
			gsz := glyph.Size()
			x := math32.RoundToGrid(glyph.Min.X, nd.Scale)
			y := math32.RoundToGrid(glyph.Min.Y+gsz.Y-rn.EmbedSize.Y+descent, nd.Scale)
			w := math32.RoundToGrid(rn.EmbedSize.X, nd.Scale)
			h := math32.RoundToGrid(rn.EmbedSize.Y, nd.Scale)

			display := DisplayFlow
			if ln.Truncated.Contains(idx) {
				display = DisplayNone
			}
			child.Layout(EmbedFrame{
				Rect:           math32.B2(x, y, x+w, y+h),
				Display:        display,
				Direction:      nd.Style.Direction,
				AbsoluteOffset: absOffset.Add(math32.Vec2(x, y)),
			})
			if display == DisplayFlow && (nd.Registry == nil || nd.Registry.Has(rn.EmbedID)) {
				ids = append(ids, rn.EmbedID)
			}
		}
	}
	return ids
}

// lineRecords builds the ordered line-metrics payload for the visible
// lines of the layout.
func lineRecords(lns *shaped.Lines) []LineRecord {
	src := lns.Source.Join()
	var recs []LineRecord
	for li := range lns.Lines {
		ln := &lns.Lines[li]
		if ln.Truncated.Len() >= ln.SourceRange.Len() && ln.SourceRange.Len() > 0 {
			continue
		}
		lr := ln.SourceRange
		text := ""
		if lr.Start >= 0 && lr.End <= len(src) && lr.Start <= lr.End {
			text = string(src[lr.Start:lr.End])
		}
		recs = append(recs, LineRecord{
			Text:      text,
			X:         ln.Offset.X,
			Y:         ln.Offset.Y - ln.Ascent,
			Width:     ln.Width,
			Height:    ln.Height,
			Descender: ln.Descent,
			CapHeight: ln.CapHeight,
			Ascender:  ln.Ascent,
			XHeight:   ln.XHeight,
		})
	}
	return recs
}
