// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textnode implements the retained-mode text node: it owns the
// attributed text builder, the size-keyed layout cache, the measurement
// adapter consumed by the external flexbox engine, the embedded-view
// layout pass, the line-metrics reporter, and the host mount boundary.
package textnode

import (
	"image/color"
	"sync/atomic"

	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/rich"
	"github.com/inkwell-ui/inkwell/shaped"
)

// Displays specifies whether an embedded view participates in display.
type Displays int32

const (
	// DisplayFlow is the normal visible display type.
	DisplayFlow Displays = iota

	// DisplayNone suppresses the view's visibility; its frame origin
	// is still applied.
	DisplayNone
)

// EmbedFrame is the resolved layout handed to an embedded child: its
// frame within the parent's content (minimum = maximum = frame size),
// its display type, the inherited layout direction, and the absolute
// position offset accumulated from the parent context. It is valid
// only until the next layout pass.
type EmbedFrame struct {
	Rect           math32.Box2
	Display        Displays
	Direction      rich.Directions
	AbsoluteOffset math32.Vector2
}

// Embedded is an inline view embedded in the text flow: an image, a
// nested component, or any node with its own layout. The text node
// holds it by stable identifier, never by live pointer, so parent and
// child layout state cannot form ownership cycles.
type Embedded interface {

	// ID returns the stable identifier of the embedded view.
	ID() string

	// Measure measures the view against the given maximum content
	// size, returning the size its placeholder occupies in the text.
	Measure(max math32.Vector2) math32.Vector2

	// Layout gives the view its own layout pass at the resolved frame.
	Layout(f EmbedFrame)
}

// fragment is one ordered child of a text node: either a run of text
// with an optional style override, or an embedded view.
type fragment struct {
	runes []rune
	style *rich.Style
	embed Embedded
}

// colorBox wraps a color for atomic pointer storage.
type colorBox struct {
	c color.Color
}

// LineMetricsFunc receives the ordered per-line geometry records fired
// once per completed layout pass.
type LineMetricsFunc func(lines []LineRecord)

// Node is a retained-mode rich text node: it owns child text and
// embedded-view fragments, the base attribute set, layout
// configuration, and a size-keyed [LayoutCache]. All measurement and
// layout runs synchronously on the layout thread; only the markup code
// colors may be set from other goroutines.
type Node struct {
	id     string
	shaper *shaped.Shaper
	frags  []fragment
	cache  LayoutCache

	// Style is the base text attribute set for the node's fragments.
	Style rich.Style

	// MaxLines is the maximum visible line count, 0 = unbounded.
	MaxLines int

	// Truncation is the line-break truncation mode.
	Truncation shaped.Truncations

	// ShrinkToFit automatically shrinks the font to fit the container,
	// down to MinShrinkScale.
	ShrinkToFit bool

	// MinShrinkScale is the minimum font scale for ShrinkToFit.
	MinShrinkScale float32

	// Markup enables inline markup parsing.
	Markup bool

	// Scale is the device pixel scale used for grid rounding.
	Scale float32

	// Registry resolves descendant view identifiers at the mount
	// boundary; nil means all views resolve.
	Registry Registry

	// Receiver is the host mount receiver, nil to skip mounting.
	Receiver MountReceiver

	// Schedule posts the one-shot mount work item to the rendering
	// thread; nil runs it synchronously.
	Schedule Scheduler

	// OnTextLayout, if set, receives line metrics after each
	// completed layout pass.
	OnTextLayout LineMetricsFunc

	codeFG atomic.Pointer[colorBox]
	codeBG atomic.Pointer[colorBox]
}

// NewNode returns a new text node with the given stable identifier,
// sharing the given shaper.
func NewNode(id string, sh *shaped.Shaper) *Node {
	nd := &Node{id: id, shaper: sh, Scale: 1, MinShrinkScale: 1}
	nd.Style.Defaults()
	return nd
}

// ID returns the node's stable identifier.
func (nd *Node) ID() string {
	return nd.id
}

// Invalidate clears the layout cache and resets the explicit opacity
// attribute so the platform default takes over. Called on every
// attribute or child change.
func (nd *Node) Invalidate() {
	nd.Style.ResetOpacity()
	nd.cache.Invalidate()
}

// AddText appends a text fragment with an optional style override
// (nil inherits the node style).
func (nd *Node) AddText(text string, sty *rich.Style) *Node {
	nd.frags = append(nd.frags, fragment{runes: []rune(text), style: sty})
	nd.Invalidate()
	return nd
}

// AddEmbedded appends an embedded-view fragment.
func (nd *Node) AddEmbedded(e Embedded) *Node {
	nd.frags = append(nd.frags, fragment{embed: e})
	nd.Invalidate()
	return nd
}

// SetStyle sets the base style and invalidates the layout.
func (nd *Node) SetStyle(sty *rich.Style) *Node {
	nd.Style = *sty
	nd.Invalidate()
	return nd
}

// SetMaxLines sets the maximum visible line count and invalidates.
func (nd *Node) SetMaxLines(n int) *Node {
	nd.MaxLines = n
	nd.Invalidate()
	return nd
}

// SetTruncation sets the truncation mode and invalidates.
func (nd *Node) SetTruncation(tr shaped.Truncations) *Node {
	nd.Truncation = tr
	nd.Invalidate()
	return nd
}

// SetShrinkToFit sets the shrink-to-fit flag and minimum scale,
// and invalidates.
func (nd *Node) SetShrinkToFit(on bool, minScale float32) *Node {
	nd.ShrinkToFit = on
	nd.MinShrinkScale = minScale
	nd.Invalidate()
	return nd
}

// SetMarkup sets whether inline markup parsing is enabled,
// and invalidates.
func (nd *Node) SetMarkup(on bool) *Node {
	nd.Markup = on
	nd.Invalidate()
	return nd
}

// SetCodeColors sets the markup code foreground and background colors.
// The colors are stored atomically and may be set from any goroutine;
// the accompanying invalidation still happens on the caller's thread,
// so configuration beyond the colors themselves belongs on the layout
// thread.
func (nd *Node) SetCodeColors(fg, bg color.Color) *Node {
	nd.codeFG.Store(&colorBox{c: fg})
	nd.codeBG.Store(&colorBox{c: bg})
	nd.Invalidate()
	return nd
}

// CodeForeground returns the markup code foreground color, or nil.
func (nd *Node) CodeForeground() color.Color {
	if b := nd.codeFG.Load(); b != nil {
		return b.c
	}
	return nil
}

// CodeBackground returns the markup code background color, or nil.
func (nd *Node) CodeBackground() color.Color {
	if b := nd.codeBG.Load(); b != nil {
		return b.c
	}
	return nil
}

// Cache exposes the node's layout cache, mainly for tests and host
// integration.
func (nd *Node) Cache() *LayoutCache {
	return &nd.cache
}

// embedded returns the embedded child with the given identifier, or nil.
func (nd *Node) embedded(id string) Embedded {
	for i := range nd.frags {
		if e := nd.frags[i].embed; e != nil && e.ID() == id {
			return e
		}
	}
	return nil
}

// options returns the layout options reflecting the node configuration.
func (nd *Node) options() *shaped.Options {
	o := shaped.NewOptions()
	o.SetMaxLines(nd.MaxLines).
		SetTruncation(nd.Truncation).
		SetShrinkToFit(nd.ShrinkToFit, nd.MinShrinkScale).
		SetScale(nd.Scale)
	return o
}
