// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"github.com/inkwell-ui/inkwell/fonts"
	"github.com/inkwell-ui/inkwell/rich"
)

// lineHeights scans the source for the maximum declared line height
// across paragraph-style runs and the maximum natural line height
// across font runs, both at the given font scale. Embedded-view
// placeholder spans carry no font and are skipped.
func lineHeights(tx rich.Text, lib *fonts.Library, scale float32) (declared, natural float32) {
	for si := range tx {
		sp := &tx[si]
		if sp.Style.LineHeight*scale > declared {
			declared = sp.Style.LineHeight * scale
		}
		if sp.IsEmbed() {
			continue
		}
		fn := lib.Font(&sp.Style, scale)
		if fn.Metrics.Height > natural {
			natural = fn.Metrics.Height
		}
	}
	if natural == 0 {
		natural = lib.Font(nil, scale).Metrics.Height
	}
	return declared, natural
}

// normalizeShift computes the uniform baseline shift that vertically
// centers mixed-size glyphs within a taller declared line box:
// (declaredMax - naturalMax) / 2. It is zero when no line height is
// declared, or when the declared maximum is smaller than the natural
// maximum, since a declared height cannot shrink text.
func normalizeShift(declared, natural float32) float32 {
	if declared == 0 {
		return 0
	}
	if declared < natural {
		return 0
	}
	return (declared - natural) / 2
}
