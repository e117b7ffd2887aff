// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "github.com/inkwell-ui/inkwell/textpos"

// Traits are bitflags recording which inline style traits apply to a
// single rune of text.
type Traits int64

const (
	// TraitBold marks bold text.
	TraitBold Traits = 1 << iota

	// TraitItalic marks italic text.
	TraitItalic

	// TraitMonospace marks fixed-width (code) text. Monospace is
	// exclusive: once set on a rune it is never modified by later
	// trait applications.
	TraitMonospace
)

// HasFlag returns whether these traits have the given flag set.
func (tr Traits) HasFlag(f Traits) bool {
	return tr&f != 0
}

// TraitZones is a per-rune buffer of active [Traits] over a text.
// Indexes correspond 1:1 with runes at annotation time and become
// invalid once the text length changes, so annotation must precede any
// length-altering edits. The buffer is rebuilt for each annotation pass
// and never aliased across passes.
type TraitZones struct {
	zones []Traits
}

// NewTraitZones returns a new zero-initialized [TraitZones] buffer
// sized to the given text length.
func NewTraitZones(n int) *TraitZones {
	return &TraitZones{zones: make([]Traits, n)}
}

// Len returns the number of runes covered by the buffer.
func (tz *TraitZones) Len() int {
	return len(tz.zones)
}

// At returns the traits active at the given rune index,
// or 0 if the index is out of range.
func (tz *TraitZones) At(i int) Traits {
	if i < 0 || i >= len(tz.zones) {
		return 0
	}
	return tz.zones[i]
}

// Apply merges the given traits into every rune's zone across
// [start, end). Runes already marked [TraitMonospace] are kept
// unchanged: monospace is exclusive and wins.
func (tz *TraitZones) Apply(start, end int, tr Traits) {
	start = max(start, 0)
	end = min(end, len(tz.zones))
	for i := start; i < end; i++ {
		if tz.zones[i].HasFlag(TraitMonospace) {
			continue
		}
		tz.zones[i] |= tr
	}
}

// ZoneRun is a maximal contiguous range of runes sharing one trait mask.
type ZoneRun struct {
	Range  textpos.Range
	Traits Traits
}

// Runs returns the maximal equal-mask pieces covering [start, end),
// splitting at every point where the trait mask changes. This is the
// sub-piece decomposition used when applying traits to font runs.
func (tz *TraitZones) Runs(start, end int) []ZoneRun {
	start = max(start, 0)
	end = min(end, len(tz.zones))
	var runs []ZoneRun
	for i := start; i < end; {
		tr := tz.zones[i]
		j := i + 1
		for j < end && tz.zones[j] == tr {
			j++
		}
		runs = append(runs, ZoneRun{Range: textpos.Range{Start: i, End: j}, Traits: tr})
		i = j
	}
	return runs
}
