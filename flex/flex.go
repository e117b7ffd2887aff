// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flex defines the narrow contract between the text layout
// engine and an external flexbox layout engine: measurement modes, the
// measure and baseline callback signatures, and the sentinel used for
// unbounded constraints. The flexbox engine itself is an external
// collaborator and is not implemented here.
package flex

import "math"

// MeasureMode specifies how a measurement constraint is interpreted.
type MeasureMode int32

const (
	// Definite means the constraint is an exact available extent.
	Definite MeasureMode = iota

	// Unbounded means the constraint is unlimited; the measured
	// content determines the extent.
	Unbounded
)

// Undefined is the value used for an absent constraint.
var Undefined = float32(math.NaN())

// MaxSize is the very large sentinel extent that unbounded constraints
// are mapped to before measurement.
const MaxSize float32 = 1e6

// Size is a measured width and height handed back across the flexbox
// boundary.
type Size struct {
	Width  float32
	Height float32
}

// MeasureFunc measures a node's content within the given constraints.
// The node reference is opaque to the flexbox engine.
type MeasureFunc func(node any, width float32, widthMode MeasureMode, height float32, heightMode MeasureMode) Size

// BaselineFunc returns the baseline offset from the top of a node laid
// out at the given size.
type BaselineFunc func(node any, width, height float32) float32
