// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"github.com/inkwell-ui/inkwell/fonts"
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"github.com/inkwell-ui/inkwell/textpos"
	"github.com/rivo/uniseg"
)

// Ellipsis is the truncation marker appended in [TruncateTail] mode.
const Ellipsis = '…'

// Shaper lays out attributed text into [Lines]. It owns a font library
// and is used by a single layout thread.
type Shaper struct {

	// Fonts is the font library used to resolve styles to faces.
	Fonts *fonts.Library
}

// NewShaper returns a new [Shaper] with its own font library.
func NewShaper() *Shaper {
	return &Shaper{Fonts: fonts.NewLibrary()}
}

// zeroWidth returns whether the rune occupies no horizontal space.
func zeroWidth(r rune) bool {
	switch r {
	case '\n', '\r', '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return false
}

// WrapLines lays out the given source at the given container size.
// When the options request shrink-to-fit and the initial layout
// truncates, the font scale is lowered in 5% steps bounded by the
// minimum shrink scale, keeping the first scale that fits.
func (sh *Shaper) WrapLines(tx rich.Text, size math32.Vector2, opts *Options) *Lines {
	if opts == nil {
		opts = NewOptions()
	}
	scale := float32(1)
	lns := sh.wrap(tx, size, opts, scale)
	if opts.ShrinkToFit && lns.Truncated && opts.MinShrinkScale > 0 && opts.MinShrinkScale < 1 {
		for scale > opts.MinShrinkScale {
			scale = max(scale-0.05, opts.MinShrinkScale)
			lns = sh.wrap(tx, size, opts, scale)
			if !lns.Truncated {
				break
			}
		}
	}
	return lns
}

// runeData is the per-rune layout input: advances and resolved fonts,
// at span granularity.
type runeData struct {
	src  []rune
	adv  []float32
	font []*fonts.Font
	span []int
}

func (sh *Shaper) runeData(tx rich.Text, scale float32) *runeData {
	n := tx.Len()
	rd := &runeData{
		src:  make([]rune, 0, n),
		adv:  make([]float32, 0, n),
		font: make([]*fonts.Font, 0, n),
		span: make([]int, 0, n),
	}
	for si := range tx {
		sp := &tx[si]
		fn := sh.Fonts.Font(&sp.Style, scale)
		for _, r := range sp.Runes {
			a := float32(0)
			switch {
			case sp.IsEmbed():
				a = sp.EmbedSize.X
			case zeroWidth(r):
				a = 0
			default:
				a = fn.Advance(r) + sp.Style.LetterSpacing*scale
			}
			rd.src = append(rd.src, r)
			rd.adv = append(rd.adv, a)
			rd.font = append(rd.font, fn)
			rd.span = append(rd.span, si)
		}
	}
	return rd
}

func (rd *runeData) width(r textpos.Range) float32 {
	w := float32(0)
	for i := r.Start; i < r.End; i++ {
		w += rd.adv[i]
	}
	return w
}

// fitWidth is the width of the range excluding trailing whitespace,
// which is allowed to hang past the wrap boundary.
func (rd *runeData) fitWidth(r textpos.Range) float32 {
	end := r.End
	for end > r.Start && unicode.IsSpace(rd.src[end-1]) {
		end--
	}
	return rd.width(textpos.Range{Start: r.Start, End: end})
}

// breakRanges splits the source into line ranges: hard breaks at
// newlines, soft wraps at UAX#14 line-break opportunities, and
// grapheme-cluster force-breaks for segments wider than the container.
func (rd *runeData) breakRanges(maxW float32) []textpos.Range {
	n := len(rd.src)
	if n == 0 {
		return []textpos.Range{{}}
	}
	bounded := maxW > 0 && !math32.IsInf(maxW, 1)
	var lines []textpos.Range
	cur := textpos.Range{}
	curW := float32(0)
	flush := func(end int) {
		cur.End = end
		lines = append(lines, cur)
		cur = textpos.Range{Start: end, End: end}
		curW = 0
	}
	rest := string(rd.src)
	state := -1
	pos := 0
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		sr := textpos.Range{Start: pos, End: pos + len([]rune(seg))}
		pos = sr.End
		segW := rd.width(sr)
		fitW := rd.fitWidth(sr)
		if bounded && cur.Len() > 0 && curW+fitW > maxW {
			flush(sr.Start)
		}
		if bounded && fitW > maxW && cur.Len() == 0 {
			// overlong segment: force-break at grapheme clusters
			gr := uniseg.NewGraphemes(seg)
			gi := sr.Start
			for gr.Next() {
				cl := textpos.Range{Start: gi, End: gi + len(gr.Runes())}
				gi = cl.End
				clW := rd.width(cl)
				if cur.Len() > 0 && curW+clW > maxW {
					flush(cl.Start)
				}
				curW += clW
				cur.End = cl.End
			}
		} else {
			curW += segW
			cur.End = sr.End
		}
		if mustBreak && len(rest) > 0 {
			flush(sr.End)
		}
	}
	if cur.End > cur.Start || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// wrap performs one full layout pass at the given font scale.
func (sh *Shaper) wrap(tx rich.Text, size math32.Vector2, opts *Options, scale float32) *Lines {
	rd := sh.runeData(tx, scale)
	declared, natural := lineHeights(tx, sh.Fonts, scale)
	shift := normalizeShift(declared, natural)
	boxH := natural
	if declared > 0 && declared >= natural {
		boxH = declared
	}

	maxW := size.X
	if maxW <= 0 {
		maxW = math32.Infinity
	}
	ranges := rd.breakRanges(maxW)

	limit := len(ranges)
	if opts.MaxLines > 0 && opts.MaxLines < limit {
		limit = opts.MaxLines
	}
	if size.Y > 0 && !math32.IsInf(size.Y, 1) && boxH > 0 {
		hl := int(math32.Floor(size.Y/boxH + 0.001))
		hl = max(hl, 1)
		if hl < limit {
			limit = hl
		}
	}

	lns := &Lines{Source: tx, Size: size, BaselineShift: shift, FontScale: scale}
	lns.Bounds.SetEmpty()
	curY := float32(0)
	for li, lr := range ranges {
		ln := sh.buildLine(tx, rd, lr, boxH)
		ln.Offset = math32.Vec2(0, curY+ln.Ascent+shift)
		curY += ln.Height
		if li >= limit {
			ln.Truncated = ln.SourceRange
			lns.Truncated = true
		}
		lns.Lines = append(lns.Lines, ln)
	}
	if lns.Truncated && limit >= 1 && opts.Truncation == TruncateTail {
		sh.truncateTail(lns, rd, limit, maxW, scale)
	}
	for li := 0; li < min(limit, len(lns.Lines)); li++ {
		lns.Bounds.ExpandByBox(lns.Lines[li].Bounds())
	}
	if lns.Bounds.IsEmpty() {
		lns.Bounds = math32.B2(0, 0, 0, curY)
	}
	return lns
}

// buildLine constructs one [Line] covering the given source range,
// splitting it into runs at span boundaries and computing line metrics.
func (sh *Shaper) buildLine(tx rich.Text, rd *runeData, lr textpos.Range, boxH float32) Line {
	ln := Line{SourceRange: lr}
	x := float32(0)
	i := lr.Start
	for i < lr.End {
		si := rd.span[i]
		sp := &tx[si]
		j := i + 1
		for j < lr.End && rd.span[j] == si {
			j++
		}
		rn := Run{
			SourceRange: textpos.Range{Start: i, End: j},
			Style:       sp.Style,
			Font:        rd.font[i],
			Offset:      x,
			Advances:    rd.adv[i:j:j],
			EmbedID:     sp.EmbedID,
			EmbedSize:   sp.EmbedSize,
		}
		rn.Advance = rd.width(rn.SourceRange)
		x += rn.Advance
		ln.Runs = append(ln.Runs, rn)
		i = j
	}
	ln.Width = x
	for ri := range ln.Runs {
		rn := &ln.Runs[ri]
		if rn.IsEmbed() {
			ln.Ascent = max(ln.Ascent, rn.EmbedSize.Y)
			continue
		}
		m := rn.Font.Metrics
		ln.Ascent = max(ln.Ascent, m.Ascent)
		ln.Descent = min(ln.Descent, m.Descent)
		ln.CapHeight = max(ln.CapHeight, m.CapHeight)
		ln.XHeight = max(ln.XHeight, m.XHeight)
	}
	if len(ln.Runs) == 0 {
		m := sh.Fonts.Font(nil, 1).Metrics
		ln.Ascent, ln.Descent = m.Ascent, m.Descent
		ln.CapHeight, ln.XHeight = m.CapHeight, m.XHeight
	}
	ln.Height = max(ln.Ascent-ln.Descent, boxH)
	return ln
}

// truncateTail drops trailing runes from the last visible line until an
// ellipsis fits within the container width, recording the dropped range
// as the line's truncated glyph range.
func (sh *Shaper) truncateTail(lns *Lines, rd *runeData, limit int, maxW, scale float32) {
	ln := &lns.Lines[limit-1]
	fn := sh.Fonts.Font(nil, scale)
	if len(ln.Runs) > 0 {
		last := &ln.Runs[len(ln.Runs)-1]
		if last.Font != nil {
			fn = last.Font
		}
	}
	ellAdv := fn.Advance(Ellipsis)
	dropStart := ln.SourceRange.End
	if !math32.IsInf(maxW, 1) {
		w := ln.Width
		for w+ellAdv > maxW && dropStart > ln.SourceRange.Start {
			dropStart--
			w -= rd.adv[dropStart]
		}
		ln.Width = w
	}
	if dropStart < ln.SourceRange.End {
		ln.Truncated = textpos.Range{Start: dropStart, End: ln.SourceRange.End}
	}
	ln.Ellipsis = true
	ln.Width += ellAdv
}
