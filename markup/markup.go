// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup implements the inline markup annotator: a tokenizer for
// four inline tokens (triple-backtick block code, backtick inline code,
// asterisk bold, underscore italic) that operates over the per-rune
// [rich.TraitZones] buffer and mutates the attributed text's font and
// color runs in place. Matched delimiters are replaced with zero-width
// spaces of equal length, preserving rune index alignment; unmatched
// delimiters are left as literal text.
package markup

import (
	"image/color"
	"unicode"

	"github.com/inkwell-ui/inkwell/fonts"
	"github.com/inkwell-ui/inkwell/rich"
)

// ZeroWidthSpace replaces matched delimiter runes, hiding the markup
// syntax while keeping rune indexes stable.
const ZeroWidthSpace = '\u200b'

// Options configures the annotator.
type Options struct {

	// CodeForeground is the foreground color applied to code spans,
	// or nil for none.
	CodeForeground color.Color

	// CodeBackground is the background color applied to code spans,
	// or nil for none.
	CodeBackground color.Color
}

// token is one recognized inline token. Tokens are scanned in order,
// longest match first.
type token struct {
	delim  []rune
	traits rich.Traits
	code   bool // apply the configured code colors on close
	block  bool // block code: spans survive newlines, close ignores the whitespace rule
}

var tokens = []token{
	{delim: []rune("```"), traits: rich.TraitMonospace, code: true, block: true},
	{delim: []rune("`"), traits: rich.TraitMonospace, code: true},
	{delim: []rune("*"), traits: rich.TraitBold},
	{delim: []rune("_"), traits: rich.TraitItalic},
}

// Annotate runs the annotator over the given attributed text, merging
// traits into a fresh [rich.TraitZones] buffer and mutating the text's
// style runs. It returns the trait buffer. Annotation must precede any
// other length-altering edits, since zone indexes are positional.
// Running Annotate on its own output is a no-op: replaced delimiters are
// no longer tokens.
func Annotate(tx *rich.Text, opts *Options) *rich.TraitZones {
	src := tx.Join()
	zones := rich.NewTraitZones(len(src))
	if opts == nil {
		opts = &Options{}
	}
	for _, t := range tokens {
		scan(tx, src, zones, t, opts)
	}
	return zones
}

func matchAt(src []rune, i int, delim []rune) bool {
	if i+len(delim) > len(src) {
		return false
	}
	for j, d := range delim {
		if src[i+j] != d {
			return false
		}
	}
	return true
}

// rejected reports whether a candidate match at i is excluded by an
// existing monospace zone. Monospace zones are exclusive; the block-code
// token alone may match at the outermost boundary of such a zone.
func rejected(zones *rich.TraitZones, i int, t token) bool {
	if !zones.At(i).HasFlag(rich.TraitMonospace) {
		return false
	}
	if t.block && (i == 0 || !zones.At(i-1).HasFlag(rich.TraitMonospace)) {
		return false
	}
	return true
}

// scan runs one token's left-to-right open/close state machine over the
// source runes.
func scan(tx *rich.Text, src []rune, zones *rich.TraitZones, t token, opts *Options) {
	n := len(src)
	k := len(t.delim)
	open := false
	start := 0
	for i := 0; i < n; {
		if !matchAt(src, i, t.delim) {
			if src[i] == '\n' && !t.block {
				open = false
			}
			i++
			continue
		}
		if rejected(zones, i, t) {
			i += k
			continue
		}
		spaceAfter := i+k >= n || unicode.IsSpace(src[i+k])
		if !open {
			boundaryBefore := i == 0 || unicode.IsSpace(src[i-1])
			if boundaryBefore && (t.block || !spaceAfter) {
				open = true
				start = i
			}
			i += k
			continue
		}
		if i-start >= 2 && (t.block || spaceAfter) {
			closeSpan(tx, src, zones, t, opts, start, i)
			open = false
		} else if !t.block && !spaceAfter {
			start = i // re-open here
		} else {
			open = false
		}
		i += k
	}
}

// closeSpan applies the token's traits and colors across the matched
// span and substitutes the delimiter runes at both boundaries with
// zero-width spaces of equal length.
func closeSpan(tx *rich.Text, src []rune, zones *rich.TraitZones, t token, opts *Options, start, end int) {
	k := len(t.delim)
	cs, ce := start+k, end
	zones.Apply(cs, ce, t.traits)
	for _, zr := range zones.Runs(cs, ce) {
		traits := zr.Traits
		tx.ApplyStyle(zr.Range.Start, zr.Range.End, func(s *rich.Style) {
			applyTraits(s, traits)
			if t.code {
				if opts.CodeForeground != nil {
					s.SetFillColor(opts.CodeForeground)
				}
				if opts.CodeBackground != nil {
					s.SetBackground(opts.CodeBackground)
				}
			}
		})
	}
	for j := start; j < start+k; j++ {
		tx.ReplaceRune(j, ZeroWidthSpace)
		src[j] = ZeroWidthSpace
	}
	for j := end; j < end+k; j++ {
		tx.ReplaceRune(j, ZeroWidthSpace)
		src[j] = ZeroWidthSpace
	}
}

// applyTraits maps a trait mask onto a style. Monospace substitutes the
// fixed-width family at the same point size; bold and italic set the
// weight and slant, preserving point size. A style with no usable size
// gets the default size.
func applyTraits(s *rich.Style, tr rich.Traits) {
	if s.Size <= 0 {
		s.Size = fonts.DefaultSize
	}
	if tr.HasFlag(rich.TraitMonospace) {
		s.Family = rich.Monospace
		return
	}
	if tr.HasFlag(rich.TraitBold) {
		s.Weight = rich.Bold
	}
	if tr.HasFlag(rich.TraitItalic) {
		s.Slant = rich.Italic
	}
}
