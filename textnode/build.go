// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"github.com/inkwell-ui/inkwell/markup"
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"github.com/inkwell-ui/inkwell/shaped"
)

// buildText merges the node's fragments into one attributed text:
// text fragments become styled spans in order, and each embedded child
// is recursively measured against the maximum content size, producing a
// placeholder span of that measured size at the child's position.
// Output run boundaries exactly match input fragment boundaries and
// placeholder insertion never reorders runs.
func (nd *Node) buildText(maxSize math32.Vector2) rich.Text {
	tx := rich.Text{}
	for i := range nd.frags {
		fr := &nd.frags[i]
		if fr.embed != nil {
			sz := fr.embed.Measure(maxSize)
			tx.AddEmbed(&nd.Style, fr.embed.ID(), sz)
			continue
		}
		sty := &nd.Style
		if fr.style != nil {
			sty = fr.style
		}
		tx.AddSpan(sty, fr.runes)
	}
	if nd.Markup {
		markup.Annotate(&tx, &markup.Options{
			CodeForeground: nd.CodeForeground(),
			CodeBackground: nd.CodeBackground(),
		})
	}
	return tx
}

// layoutFor leases the layout for the given size from the cache,
// building attributed text and laying it out on a miss.
func (nd *Node) layoutFor(size math32.Vector2, exclusive bool) *shaped.Lines {
	return nd.cache.GetOrBuild(size, exclusive, func(sz math32.Vector2) *shaped.Lines {
		tx := nd.buildText(sz)
		return nd.shaper.WrapLines(tx, sz, nd.options())
	})
}
