// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides the attributed text model: styled spans of runes,
// placeholder spans standing in for embedded views, and the per-rune trait
// zone buffer used by the inline markup annotator.
package rich

import "image/color"

// Family specifies the font family category to use.
type Family int32

const (
	// SansSerif is the default sans-serif font family.
	SansSerif Family = iota

	// Serif is a serif font family.
	Serif

	// Monospace is a fixed-width font family, used for code.
	Monospace
)

// Weights specifies the font weight.
type Weights int32

const (
	// Normal is the regular font weight.
	Normal Weights = iota

	// Bold is the bold font weight.
	Bold
)

// Slants specifies the font slant.
type Slants int32

const (
	// SlantNormal is the upright font slant.
	SlantNormal Slants = iota

	// Italic is the italic font slant.
	Italic
)

// Directions specifies the default text layout direction.
type Directions int32

const (
	// LTR is left-to-right text layout.
	LTR Directions = iota

	// RTL is right-to-left text layout.
	RTL
)

// Decorations are bitflags recording which optional style attributes
// have been explicitly set on a [Style].
type Decorations int64

const (
	// FillColor indicates that the fill (foreground) color is set.
	FillColor Decorations = 1 << iota

	// Background indicates that the background color is set.
	Background

	// Opacity indicates that the opacity value is explicitly set.
	// It is cleared whenever node properties change, so the platform
	// default opacity takes over (see [Style.ResetOpacity]).
	Opacity
)

// HasFlag returns whether these decorations have the given flag set.
func (d Decorations) HasFlag(f Decorations) bool {
	return d&f != 0
}

// SetFlag sets or clears the given flags.
func (d *Decorations) SetFlag(on bool, f Decorations) {
	if on {
		*d |= f
	} else {
		*d &^= f
	}
}

// Style contains the text styling attributes for one span of rich text.
type Style struct {

	// Family is the font family category.
	Family Family

	// Size is the font size in layout units (points at scale 1).
	// Zero means unset; consumers fall back to a default size.
	Size float32

	// Weight is the font weight.
	Weight Weights

	// Slant is the font slant.
	Slant Slants

	// LetterSpacing is extra tracking added to every glyph advance.
	// Negative values tighten the text.
	LetterSpacing float32

	// LineHeight is the declared line height in layout units.
	// Zero means no declared line height (font-natural height applies).
	LineHeight float32

	// Direction is the text layout direction.
	Direction Directions

	// Decoration records which of the optional attributes below are set.
	Decoration Decorations

	// FillColor is the foreground (ink) color, valid only when the
	// [FillColor] decoration flag is set.
	FillColor color.Color

	// Background is the background color, valid only when the
	// [Background] decoration flag is set.
	Background color.Color

	// Opacity is the text opacity, valid only when the [Opacity]
	// decoration flag is set.
	Opacity float32
}

// NewStyle returns a new [Style] with default values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// Defaults sets default style values.
func (s *Style) Defaults() {
	*s = Style{}
	s.Size = 16
	s.Opacity = 1
}

// SetFamily sets the font family and returns the style for chaining.
func (s *Style) SetFamily(f Family) *Style {
	s.Family = f
	return s
}

// SetSize sets the font size and returns the style for chaining.
func (s *Style) SetSize(sz float32) *Style {
	s.Size = sz
	return s
}

// SetWeight sets the font weight and returns the style for chaining.
func (s *Style) SetWeight(w Weights) *Style {
	s.Weight = w
	return s
}

// SetSlant sets the font slant and returns the style for chaining.
func (s *Style) SetSlant(sl Slants) *Style {
	s.Slant = sl
	return s
}

// SetLetterSpacing sets the letter spacing and returns the style for chaining.
func (s *Style) SetLetterSpacing(ls float32) *Style {
	s.LetterSpacing = ls
	return s
}

// SetLineHeight sets the declared line height and returns the style for chaining.
func (s *Style) SetLineHeight(lh float32) *Style {
	s.LineHeight = lh
	return s
}

// SetFillColor sets the fill color and its decoration flag,
// returning the style for chaining.
func (s *Style) SetFillColor(c color.Color) *Style {
	s.FillColor = c
	s.Decoration.SetFlag(true, FillColor)
	return s
}

// SetBackground sets the background color and its decoration flag,
// returning the style for chaining.
func (s *Style) SetBackground(c color.Color) *Style {
	s.Background = c
	s.Decoration.SetFlag(true, Background)
	return s
}

// SetOpacity sets an explicit opacity and its decoration flag,
// returning the style for chaining.
func (s *Style) SetOpacity(op float32) *Style {
	s.Opacity = op
	s.Decoration.SetFlag(true, Opacity)
	return s
}

// ResetOpacity clears the explicit opacity so the platform default
// takes over. Called whenever node properties change.
func (s *Style) ResetOpacity() {
	s.Opacity = 1
	s.Decoration.SetFlag(false, Opacity)
}
