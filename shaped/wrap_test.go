// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"testing"

	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"github.com/stretchr/testify/assert"
)

func newText(src string) rich.Text {
	return rich.NewText(rich.NewStyle(), []rune(src))
}

// unbounded is the container used for intrinsic-width layouts.
var unbounded = math32.Vec2(math32.Infinity, math32.Infinity)

func TestWrapSingleLine(t *testing.T) {
	sh := NewShaper()
	lns := sh.WrapLines(newText("hello world"), unbounded, nil)
	assert.Equal(t, 1, len(lns.Lines))
	assert.False(t, lns.Truncated)
	ln := &lns.Lines[0]
	assert.Equal(t, 11, ln.SourceRange.Len())
	assert.Greater(t, ln.Width, float32(0))
	assert.Greater(t, ln.Ascent, float32(0))
	assert.Less(t, ln.Descent, float32(0))
	assert.GreaterOrEqual(t, ln.Height, ln.Ascent-ln.Descent)
	// baseline sits below the top by the ascent
	assert.Equal(t, ln.Ascent, ln.Offset.Y)
}

func TestWrapHardBreaks(t *testing.T) {
	sh := NewShaper()
	lns := sh.WrapLines(newText("a\nb\nc"), unbounded, nil)
	assert.Equal(t, 3, len(lns.Lines))
	// lines stack top to bottom and cover the full source contiguously
	prev := float32(0)
	pos := 0
	for li := range lns.Lines {
		ln := &lns.Lines[li]
		assert.Equal(t, pos, ln.SourceRange.Start)
		pos = ln.SourceRange.End
		assert.Greater(t, ln.Offset.Y, prev)
		prev = ln.Offset.Y
	}
	assert.Equal(t, 5, pos)
}

func TestWrapEmptyText(t *testing.T) {
	sh := NewShaper()
	lns := sh.WrapLines(newText(""), unbounded, nil)
	assert.Equal(t, 1, len(lns.Lines))
	ln := &lns.Lines[0]
	assert.Equal(t, float32(0), ln.Width)
	assert.Greater(t, ln.Height, float32(0), "empty text still has a line box")
}

func TestWrapWidth(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("aaa bbb ccc ddd"), unbounded, nil)
	w := one.Lines[0].Width

	lns := sh.WrapLines(newText("aaa bbb ccc ddd"), math32.Vec2(w/2, math32.Infinity), nil)
	assert.GreaterOrEqual(t, len(lns.Lines), 2)
	assert.False(t, lns.Truncated)
	pos := 0
	for li := range lns.Lines {
		ln := &lns.Lines[li]
		assert.Equal(t, pos, ln.SourceRange.Start, "wrapping loses no runes")
		pos = ln.SourceRange.End
	}
	assert.Equal(t, 15, pos)
	assert.Less(t, lns.Bounds.Size().X, w)
}

func TestWrapForceBreak(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("mmmmmmmm"), unbounded, nil)
	w := one.Lines[0].Width

	// a single unbreakable word wider than the container breaks at
	// grapheme clusters rather than overflowing
	lns := sh.WrapLines(newText("mmmmmmmm"), math32.Vec2(w/3, math32.Infinity), nil)
	assert.GreaterOrEqual(t, len(lns.Lines), 3)
	for li := range lns.Lines {
		assert.Greater(t, lns.Lines[li].SourceRange.Len(), 0)
	}
}

func TestTrailingWhitespaceHangs(t *testing.T) {
	sh := NewShaper()
	bare := sh.WrapLines(newText("word"), unbounded, nil)
	w := bare.Lines[0].Width

	lns := sh.WrapLines(newText("word "), math32.Vec2(w, math32.Infinity), nil)
	assert.Equal(t, 1, len(lns.Lines), "trailing space hangs past the wrap boundary")
}

func TestZeroWidthRunes(t *testing.T) {
	sh := NewShaper()
	plain := sh.WrapLines(newText("ab"), unbounded, nil)
	zw := sh.WrapLines(newText("a\u200bb"), unbounded, nil)
	assert.Equal(t, plain.Lines[0].Width, zw.Lines[0].Width)
}

func TestMaxLines(t *testing.T) {
	sh := NewShaper()
	opts := NewOptions().SetMaxLines(1)
	lns := sh.WrapLines(newText("a\nb\nc"), unbounded, opts)
	assert.True(t, lns.Truncated)
	assert.Equal(t, 3, len(lns.Lines), "truncated lines keep their geometry")
	assert.Equal(t, 1, lns.NumVisibleLines())

	// runes beyond the limit are marked truncated but remain queryable
	assert.True(t, lns.RuneTruncated(2))
	assert.True(t, lns.RuneTruncated(4))
	assert.False(t, lns.RuneTruncated(0))
	assert.False(t, lns.Lines[2].Bounds().IsEmpty())

	// the used bounds cover only the visible line
	assert.InDelta(t, lns.Lines[0].Height, lns.Bounds.Size().Y, 0.001)
}

func TestHeightLimit(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("a"), unbounded, nil)
	lh := one.Lines[0].Height

	lns := sh.WrapLines(newText("a\nb\nc\nd"), math32.Vec2(math32.Infinity, lh*2.5), nil)
	assert.True(t, lns.Truncated)
	assert.Equal(t, 2, lns.NumVisibleLines())
}

func TestTruncateTailEllipsis(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("aaa bbb ccc"), unbounded, nil)
	w := one.Lines[0].Width

	opts := NewOptions().SetMaxLines(1).SetTruncation(TruncateTail)
	lns := sh.WrapLines(newText("aaa bbb ccc"), math32.Vec2(w*0.6, math32.Infinity), opts)
	assert.True(t, lns.Truncated)
	ln := &lns.Lines[0]
	assert.True(t, ln.Ellipsis)
	// the wrapped first line already fits, so the ellipsis is appended
	// without dropping runes; the hidden lines carry the truncation
	assert.True(t, lns.RuneTruncated(9))
	assert.False(t, lns.RuneTruncated(0))
}

func TestTruncateTailDropsRunes(t *testing.T) {
	sh := NewShaper()
	four := sh.WrapLines(newText("mmmm"), unbounded, nil)
	w := four.Lines[0].Width

	// the visible line exactly fills the container, so runes must be
	// dropped to make room for the ellipsis
	opts := NewOptions().SetMaxLines(1).SetTruncation(TruncateTail)
	lns := sh.WrapLines(newText("mmmmmmmm"), math32.Vec2(w, math32.Infinity), opts)
	assert.True(t, lns.Truncated)
	ln := &lns.Lines[0]
	assert.True(t, ln.Ellipsis)
	assert.Greater(t, ln.Truncated.Len(), 0)
	assert.LessOrEqual(t, ln.Width, w)
	for ri := ln.Truncated.Start; ri < ln.Truncated.End; ri++ {
		assert.True(t, lns.RuneTruncated(ri))
	}
}

func TestShrinkToFit(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("mmmmmmmm"), unbounded, nil)
	w := one.Lines[0].Width

	opts := NewOptions().SetMaxLines(1).SetShrinkToFit(true, 0.5)
	lns := sh.WrapLines(newText("mmmmmmmm"), math32.Vec2(w*0.8, math32.Infinity), opts)
	assert.False(t, lns.Truncated)
	assert.Less(t, lns.FontScale, float32(1))
	assert.GreaterOrEqual(t, lns.FontScale, float32(0.5))
	assert.Equal(t, 1, len(lns.Lines))
}

func TestShrinkToFitFloor(t *testing.T) {
	sh := NewShaper()
	one := sh.WrapLines(newText("mmmmmmmm"), unbounded, nil)
	w := one.Lines[0].Width

	// even the minimum scale cannot fit, so truncation remains
	opts := NewOptions().SetMaxLines(1).SetShrinkToFit(true, 0.9)
	lns := sh.WrapLines(newText("mmmmmmmm"), math32.Vec2(w*0.2, math32.Infinity), opts)
	assert.True(t, lns.Truncated)
	assert.Equal(t, float32(0.9), lns.FontScale)
}

func TestNormalizeShift(t *testing.T) {
	assert.Equal(t, float32(0), normalizeShift(0, 20))
	assert.Equal(t, float32(0), normalizeShift(10, 20), "declared height cannot shrink text")
	assert.Equal(t, float32(5), normalizeShift(30, 20))
}

func TestDeclaredLineHeight(t *testing.T) {
	sh := NewShaper()
	sty := rich.NewStyle()
	natural := sh.Fonts.Font(sty, 1).Metrics.Height

	sty2 := rich.NewStyle().SetLineHeight(natural * 2)
	tx := rich.NewText(sty2, []rune("hi"))
	lns := sh.WrapLines(tx, unbounded, nil)
	ln := &lns.Lines[0]
	assert.InDelta(t, natural*2, ln.Height, 0.001)
	assert.InDelta(t, (natural*2-natural)/2, lns.BaselineShift, 0.001)
	// the shift is already folded into the baseline offset
	assert.InDelta(t, ln.Ascent+lns.BaselineShift, ln.Offset.Y, 0.001)
}

func TestDeclaredLineHeightSmaller(t *testing.T) {
	sh := NewShaper()
	sty := rich.NewStyle()
	natural := sh.Fonts.Font(sty, 1).Metrics.Height

	sty2 := rich.NewStyle().SetLineHeight(natural / 2)
	tx := rich.NewText(sty2, []rune("hi"))
	lns := sh.WrapLines(tx, unbounded, nil)
	assert.Equal(t, float32(0), lns.BaselineShift)
	assert.GreaterOrEqual(t, lns.Lines[0].Height, natural)
}

func TestRuneBounds(t *testing.T) {
	sh := NewShaper()
	lns := sh.WrapLines(newText("abc"), unbounded, nil)
	prev := float32(-1)
	for ri := 0; ri < 3; ri++ {
		b := lns.RuneBounds(ri)
		assert.False(t, b.IsEmpty(), "rune %d", ri)
		assert.Greater(t, b.Min.X, prev)
		prev = b.Min.X
		// vertical extent is the full line box
		assert.InDelta(t, lns.Lines[0].Height, b.Size().Y, 0.001)
	}
	assert.True(t, lns.RuneBounds(99).IsEmpty())
}

func TestEmbedRun(t *testing.T) {
	sh := NewShaper()
	sty := rich.NewStyle()
	tx := rich.NewText(sty, []rune("a"))
	tx.AddEmbed(sty, "img", math32.Vec2(40, 30))
	tx.AddSpan(sty, []rune("b"))

	lns := sh.WrapLines(tx, unbounded, nil)
	assert.Equal(t, 1, len(lns.Lines))
	ln := &lns.Lines[0]
	assert.Equal(t, 3, len(ln.Runs))
	em := &ln.Runs[1]
	assert.True(t, em.IsEmbed())
	assert.Equal(t, float32(40), em.Advance)
	assert.GreaterOrEqual(t, ln.Ascent, float32(30), "a tall embed raises the line")

	b := lns.RuneBounds(1)
	assert.InDelta(t, 40, b.Size().X, 0.001)
}

func TestStripPlaceholders(t *testing.T) {
	sh := NewShaper()
	sty := rich.NewStyle()
	tx := rich.NewText(sty, []rune("a"))
	tx.AddEmbed(sty, "img", math32.Vec2(40, 30))

	lns := sh.WrapLines(tx, unbounded, nil)
	lns.StripPlaceholders()
	for li := range lns.Lines {
		for i := range lns.Lines[li].Runs {
			assert.False(t, lns.Lines[li].Runs[i].IsEmbed())
		}
	}
	sps, _ := lns.Source.Embeds()
	assert.Empty(t, sps)
}

func TestMinDescender(t *testing.T) {
	sh := NewShaper()
	lns := sh.WrapLines(newText("hello"), unbounded, nil)
	assert.Less(t, lns.MinDescender(), float32(0))
	assert.Equal(t, lns.Lines[0].Descent, lns.MinDescender())
}

func TestMinDescenderMixedSizes(t *testing.T) {
	sh := NewShaper()
	tx := rich.NewText(rich.NewStyle(), []rune("ab"))
	tx.AddSpan(rich.NewStyle().SetSize(32), []rune("cd"))

	lns := sh.WrapLines(tx, unbounded, nil)
	big := sh.Fonts.Font(rich.NewStyle().SetSize(32), 1).Metrics.Descent
	small := sh.Fonts.Font(rich.NewStyle(), 1).Metrics.Descent
	assert.Less(t, big, small)
	assert.Equal(t, big, lns.MinDescender(), "the deepest descender wins")
}

func TestRunStyles(t *testing.T) {
	sh := NewShaper()
	tx := rich.NewText(rich.NewStyle(), []rune("ab"))
	tx.AddSpan(rich.NewStyle().SetWeight(rich.Bold), []rune("cd"))

	lns := sh.WrapLines(tx, unbounded, nil)
	ln := &lns.Lines[0]
	assert.Equal(t, 2, len(ln.Runs))
	assert.Equal(t, rich.Normal, ln.Runs[0].Style.Weight)
	assert.Equal(t, rich.Bold, ln.Runs[1].Style.Weight)
	assert.InDelta(t, ln.Runs[0].Advance, ln.Runs[1].Offset, 0.001)
	assert.InDelta(t, ln.Runs[0].Advance+ln.Runs[1].Advance, ln.Width, 0.001)
}
