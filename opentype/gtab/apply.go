// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gtab

import "github.com/lite-xl/corelayer/glyph"

// MaxNestingDepth bounds how many levels of nested lookups (sequence and
// chained-sequence context rules invoking further lookups) the
// interpreter will follow. The reference implementation relies on well-
// formed fonts never nesting deeply enough to matter; this cap turns a
// pathological or malicious table into a no-op at depth rather than a
// stack overflow.
const MaxNestingDepth = 8

// applyState is the mutable state threaded through one lookup's
// subtable dispatch, and through any lookups it nests via sequence
// context rules.
type applyState struct {
	seq     *glyph.Sequence
	lookups []*LookupTable
	depth   int
}

// Apply runs the chain's lookups against seq in lookup-list order,
// mutating seq in place.
func (c *Chain) Apply(seq *glyph.Sequence) {
	state := &applyState{seq: seq, lookups: c.allLookups}
	for _, lt := range c.Lookups {
		applyLookup(state, lt)
	}
}

// applyLookup sweeps a single lookup's cursor across the whole sequence,
// left-to-right for every lookup type except lookup type 8 (Reverse
// Chaining Context Single Substitution), which sweeps right-to-left.
func applyLookup(state *applyState, lt *LookupTable) {
	if lt == nil || len(lt.Subtables) == 0 {
		return
	}
	if lt.RightToLeft {
		pos := state.seq.Len() - 1
		for pos >= 0 {
			next := applyLookupAt(state, lt, pos)
			pos = next - 1
		}
		return
	}
	pos := 0
	for pos < state.seq.Len() {
		next := applyLookupAt(state, lt, pos)
		pos = next + 1
	}
}

// applyLookupAt tries lt's subtables at pos in order and stops at the
// first one that matches, mirroring apply_Lookup_index.
func applyLookupAt(state *applyState, lt *LookupTable, pos int) int {
	for _, st := range lt.Subtables {
		if next, ok := st.Apply(state, pos); ok {
			return next
		}
	}
	return pos
}

// runNestedActions mirrors apply_sequence_rule: it copies the
// inputGlyphCount glyphs starting at pos into a scratch sequence, runs
// each nested lookup once at its rule-given sequence index within that
// scratch (not swept across positions), then splices the scratch back
// over the original window, growing or shrinking the outer sequence to
// match. It returns the new cursor position (the position the caller's
// own sweep step still applies on top of).
func runNestedActions(state *applyState, pos, inputGlyphCount int, actions []NestedAction) int {
	if state.depth >= MaxNestingDepth {
		return pos
	}
	scratch := glyph.NewFromIDs(state.seq.Glyphs()[pos : pos+inputGlyphCount])
	nested := &applyState{seq: scratch, lookups: state.lookups, depth: state.depth + 1}

	for _, a := range actions {
		if int(a.LookupListIndex) >= len(state.lookups) {
			continue
		}
		lt := state.lookups[a.LookupListIndex]
		if lt == nil {
			continue
		}
		idx := int(a.SequenceIndex)
		if idx >= scratch.Len() {
			continue
		}
		applyLookupAt(nested, lt, idx)
	}

	tail := state.seq.Glyphs()[pos+inputGlyphCount:]
	state.seq.OverwriteRange(pos+scratch.Len(), tail)
	state.seq.OverwriteRange(pos, scratch.Glyphs())
	if scratch.Len() < inputGlyphCount {
		state.seq.Shrink(inputGlyphCount - scratch.Len())
	}
	return pos + scratch.Len() - 1
}
