// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts resolves [rich.Style] font attributes to concrete font
// faces from the embedded Go font collection, and exposes the float32
// metrics and glyph advances the layout engine needs.
package fonts

import (
	"log/slog"

	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultSize is the font size used when a style carries no usable
// font size attribute.
const DefaultSize = 18

// Metrics are the font-level vertical metrics for a face, in float32
// layout units.
type Metrics struct {

	// Ascent is the distance from the baseline to the top of a line,
	// positive.
	Ascent float32

	// Descent is the distance the font extends below the baseline,
	// negative (a descender).
	Descent float32

	// Height is the font's natural line height (recommended distance
	// between baselines).
	Height float32

	// CapHeight is the height of an uppercase letter above the baseline.
	CapHeight float32

	// XHeight is the height of a lowercase x above the baseline.
	XHeight float32
}

// Font is a sized, resolved font face together with its metrics.
type Font struct {

	// Face is the underlying font face.
	Face font.Face

	// Size is the size this face was created at.
	Size float32

	// Metrics are the face-level vertical metrics.
	Metrics Metrics
}

// Advance returns the advance width of the given rune in this font,
// or an em/2 fallback if the font has no glyph for it.
func (fn *Font) Advance(r rune) float32 {
	if fn.Face == nil {
		return fn.Size / 2
	}
	adv, ok := fn.Face.GlyphAdvance(r)
	if !ok {
		return fn.Size / 2
	}
	return math32.FromFixed(adv)
}

type fontKey struct {
	family rich.Family
	weight rich.Weights
	slant  rich.Slants
}

type faceKey struct {
	fontKey
	size float32
}

// Library parses and caches font faces from the embedded Go font
// collection. It is owned by a single layout thread and requires no
// locking.
type Library struct {
	fonts map[fontKey]*sfnt.Font
	faces map[faceKey]*Font
}

// NewLibrary returns a new empty [Library]; fonts are parsed lazily.
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[fontKey]*sfnt.Font),
		faces: make(map[faceKey]*Font),
	}
}

// ttf returns the embedded font data for the given key. The serif
// family falls back to the sans data; the Go collection has no serif.
func ttf(k fontKey) []byte {
	mono := k.family == rich.Monospace
	bold := k.weight == rich.Bold
	ital := k.slant == rich.Italic
	switch {
	case mono && bold && ital:
		return gomonobolditalic.TTF
	case mono && bold:
		return gomonobold.TTF
	case mono && ital:
		return gomonoitalic.TTF
	case mono:
		return gomono.TTF
	case bold && ital:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case ital:
		return goitalic.TTF
	}
	return goregular.TTF
}

func (lb *Library) font(k fontKey) *sfnt.Font {
	if f, ok := lb.fonts[k]; ok {
		return f
	}
	f, err := opentype.Parse(ttf(k))
	if err != nil {
		slog.Error("fonts: parsing embedded font", "family", k.family, "err", err)
		if k != (fontKey{}) {
			f = lb.font(fontKey{})
		}
	}
	lb.fonts[k] = f
	return f
}

// Font resolves the given style to a sized [Font], falling back to
// [DefaultSize] when the style has no usable size. The scale factor
// multiplies the style size, for shrink-to-fit layout.
func (lb *Library) Font(sty *rich.Style, scale float32) *Font {
	sz := float32(DefaultSize)
	if sty != nil && sty.Size > 0 {
		sz = sty.Size
	}
	if scale > 0 {
		sz *= scale
	}
	k := fontKey{}
	if sty != nil {
		k = fontKey{family: sty.Family, weight: sty.Weight, slant: sty.Slant}
	}
	fk := faceKey{fontKey: k, size: sz}
	if fn, ok := lb.faces[fk]; ok {
		return fn
	}
	sf := lb.font(k)
	if sf == nil {
		return &Font{Size: sz}
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    float64(sz),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		slog.Error("fonts: creating face", "size", sz, "err", err)
		return &Font{Size: sz}
	}
	m := face.Metrics()
	fn := &Font{
		Face: face,
		Size: sz,
		Metrics: Metrics{
			Ascent:    math32.FromFixed(m.Ascent),
			Descent:   -math32.FromFixed(m.Descent),
			Height:    math32.FromFixed(m.Height),
			CapHeight: math32.FromFixed(m.CapHeight),
			XHeight:   math32.FromFixed(m.XHeight),
		},
	}
	lb.faces[fk] = fn
	return fn
}
