// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

// Truncations specifies how text exceeding the line limit is truncated.
type Truncations int32

const (
	// TruncateClip clips overflowing lines with no truncation marker.
	TruncateClip Truncations = iota

	// TruncateTail replaces the clipped tail of the last visible line
	// with an ellipsis.
	TruncateTail
)

// Options is the layout configuration for one [Shaper.WrapLines] call.
type Options struct {

	// MaxLines is the maximum number of visible lines, 0 = unbounded.
	MaxLines int

	// Truncation is the truncation mode for overflowing text.
	Truncation Truncations

	// ShrinkToFit scales the font down, in 5% steps bounded by
	// MinShrinkScale, until the text fits without truncation.
	ShrinkToFit bool

	// MinShrinkScale is the minimum font scale for ShrinkToFit,
	// in (0, 1].
	MinShrinkScale float32

	// Scale is the device pixel scale (device pixels per layout unit)
	// used for pixel-grid rounding, 0 = 1.
	Scale float32
}

// NewOptions returns a new [Options] with default values.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets default option values.
func (o *Options) Defaults() {
	*o = Options{MinShrinkScale: 1, Scale: 1}
}

// SetMaxLines sets the maximum line count and returns the options for chaining.
func (o *Options) SetMaxLines(n int) *Options {
	o.MaxLines = n
	return o
}

// SetTruncation sets the truncation mode and returns the options for chaining.
func (o *Options) SetTruncation(tr Truncations) *Options {
	o.Truncation = tr
	return o
}

// SetShrinkToFit sets the shrink-to-fit flag and minimum scale,
// returning the options for chaining.
func (o *Options) SetShrinkToFit(on bool, minScale float32) *Options {
	o.ShrinkToFit = on
	o.MinShrinkScale = minScale
	return o
}

// SetScale sets the device pixel scale and returns the options for chaining.
func (o *Options) SetScale(sc float32) *Options {
	o.Scale = sc
	return o
}
