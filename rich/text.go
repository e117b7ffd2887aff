// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"slices"

	"github.com/inkwell-ui/inkwell/math32"
)

// ObjectRune is the rune used for placeholder spans standing in for
// embedded views, the unicode object replacement character.
const ObjectRune = '\ufffc'

// Span is one run of runes sharing a common [Style]. A placeholder span
// for an embedded view has a non-empty EmbedID, a measured EmbedSize,
// and exactly one [ObjectRune] rune; placeholder spans are never split.
type Span struct {

	// Runes is the span text content.
	Runes []rune

	// Style is the styling shared by all runes in the span.
	Style Style

	// EmbedID is the identifier of the embedded view this span stands
	// in for, empty for ordinary text spans.
	EmbedID string

	// EmbedSize is the measured size of the embedded view.
	EmbedSize math32.Vector2
}

// IsEmbed returns whether this span is an embedded-view placeholder.
func (sp *Span) IsEmbed() bool {
	return sp.EmbedID != ""
}

// Text is the attributed text representation: an ordered sequence of
// [Span] runs, insertion order significant. It is the input to the
// markup annotator and the layout engine.
type Text []Span

// NewText returns a new [Text] starting with the given style and runes,
// which can be empty.
func NewText(s *Style, r []rune) Text {
	tx := Text{}
	tx.AddSpan(s, r)
	return tx
}

// AddSpan adds a text span with the given style and runes.
func (tx *Text) AddSpan(s *Style, r []rune) *Text {
	*tx = append(*tx, Span{Runes: r, Style: *s})
	return tx
}

// AddEmbed adds a placeholder span for the embedded view with the given
// identifier and measured size, as a single [ObjectRune].
func (tx *Text) AddEmbed(s *Style, id string, size math32.Vector2) *Text {
	*tx = append(*tx, Span{Runes: []rune{ObjectRune}, Style: *s, EmbedID: id, EmbedSize: size})
	return tx
}

// Len returns the total number of runes in this text.
func (tx Text) Len() int {
	n := 0
	for i := range tx {
		n += len(tx[i].Runes)
	}
	return n
}

// Join returns a single rune slice with the contents of all spans.
func (tx Text) Join() []rune {
	rn := make([]rune, 0, tx.Len())
	for i := range tx {
		rn = append(rn, tx[i].Runes...)
	}
	return rn
}

// String returns the joined text content as a string.
func (tx Text) String() string {
	return string(tx.Join())
}

// Range returns the start, end rune range for the given span index.
func (tx Text) Range(span int) (start, end int) {
	ci := 0
	for si := range tx {
		n := len(tx[si].Runes)
		if si == span {
			return ci, ci + n
		}
		ci += n
	}
	return -1, -1
}

// Index returns the span index and rune offset within that span for the
// given logical rune index, or -1, -1 if the index is invalid.
func (tx Text) Index(li int) (span, off int) {
	ci := 0
	for si := range tx {
		n := len(tx[si].Runes)
		if li >= ci && li < ci+n {
			return si, li - ci
		}
		ci += n
	}
	return -1, -1
}

// At returns the rune at the given logical index, or 0 if invalid.
func (tx Text) At(li int) rune {
	si, off := tx.Index(li)
	if si < 0 {
		return 0
	}
	return tx[si].Runes[off]
}

// StyleAt returns the style governing the given logical rune index,
// or nil if the index is invalid.
func (tx Text) StyleAt(li int) *Style {
	si, _ := tx.Index(li)
	if si < 0 {
		return nil
	}
	return &tx[si].Style
}

// SpanAt returns the span containing the given logical rune index,
// or nil if the index is invalid.
func (tx Text) SpanAt(li int) *Span {
	si, _ := tx.Index(li)
	if si < 0 {
		return nil
	}
	return &tx[si]
}

// ReplaceRune replaces the rune at the given logical index with the
// given rune, preserving text length and span boundaries. Placeholder
// spans are left untouched.
func (tx Text) ReplaceRune(li int, r rune) {
	si, off := tx.Index(li)
	if si < 0 || tx[si].IsEmbed() {
		return
	}
	tx[si].Runes[off] = r
}

// SplitAt ensures a span boundary exists at the given logical rune
// index, splitting the containing span in two if needed. Placeholder
// spans are one rune wide and are never split.
func (tx *Text) SplitAt(li int) {
	if li <= 0 || li >= tx.Len() {
		return
	}
	si, off := tx.Index(li)
	if si < 0 || off == 0 {
		return
	}
	sp := (*tx)[si]
	head := Span{Runes: sp.Runes[:off], Style: sp.Style}
	tail := Span{Runes: sp.Runes[off:], Style: sp.Style}
	*tx = slices.Replace(*tx, si, si+1, head, tail)
}

// ApplyStyle applies the given function to the style of every span
// within the logical rune range [start, end), first splitting spans so
// that run boundaries exactly match the range. Placeholder spans within
// the range are skipped.
func (tx *Text) ApplyStyle(start, end int, fn func(s *Style)) {
	if start >= end {
		return
	}
	tx.SplitAt(start)
	tx.SplitAt(end)
	ci := 0
	for si := range *tx {
		sp := &(*tx)[si]
		n := len(sp.Runes)
		if ci >= end {
			break
		}
		if ci >= start && ci+n <= end && !sp.IsEmbed() {
			fn(&sp.Style)
		}
		ci += n
	}
}

// Clone returns a deep copy of the text, with copied rune slices.
func (tx Text) Clone() Text {
	nt := make(Text, len(tx))
	for i := range tx {
		nt[i] = tx[i]
		nt[i].Runes = slices.Clone(tx[i].Runes)
	}
	return nt
}

// Embeds returns the placeholder spans in order, along with the logical
// rune index of each.
func (tx Text) Embeds() ([]*Span, []int) {
	var sps []*Span
	var idxs []int
	ci := 0
	for si := range tx {
		if tx[si].IsEmbed() {
			sps = append(sps, &tx[si])
			idxs = append(idxs, ci)
		}
		ci += len(tx[si].Runes)
	}
	return sps, idxs
}
