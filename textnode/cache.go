// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/shaped"
)

type cacheKey struct {
	w, h float32
}

// LayoutCache maps an exact measurement size to a previously built,
// fully laid-out [shaped.Lines]. Flexbox measurement runs many times
// per layout pass at multiple candidate sizes; shared leases let those
// queries reuse one layout, while the single exclusive lease of the
// final mounting pass transfers the large laid-out object instead of
// duplicating it. The cache is owned by one text node on one layout
// thread and needs no locking.
type LayoutCache struct {
	entries map[cacheKey]*shaped.Lines
	dirty   bool
}

// GetOrBuild returns the layout for the given size, building it with
// the given function on a miss. With exclusive true, a hit removes the
// entry, the caller becomes its sole owner, and a miss is not stored;
// with exclusive false the entry is retained for further reuse.
// Any lease clears the dirty flag: the layout is current again.
func (lc *LayoutCache) GetOrBuild(size math32.Vector2, exclusive bool, build func(size math32.Vector2) *shaped.Lines) *shaped.Lines {
	lc.dirty = false
	key := cacheKey{w: size.X, h: size.Y}
	if e, ok := lc.entries[key]; ok {
		if exclusive {
			delete(lc.entries, key)
		}
		return e
	}
	lns := build(size)
	if !exclusive {
		if lc.entries == nil {
			lc.entries = make(map[cacheKey]*shaped.Lines)
		}
		lc.entries[key] = lns
	}
	return lns
}

// Invalidate clears all entries and marks the cache dirty, so pending
// host-mount work is skipped until the next measurement request.
// Called whenever the node's attributes or children change.
func (lc *LayoutCache) Invalidate() {
	lc.entries = nil
	lc.dirty = true
}

// Dirty reports whether the cache was invalidated with no measurement
// since; a pending mount pass must be skipped while dirty.
func (lc *LayoutCache) Dirty() bool {
	return lc.dirty
}

// Len returns the number of cached entries.
func (lc *LayoutCache) Len() int {
	return len(lc.entries)
}
