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

import (
	"github.com/lite-xl/corelayer/glyph"
	"github.com/lite-xl/corelayer/opentype/gtabparser"
)

// gsub8 is lookup type 8 (Reverse Chaining Context Single Substitution,
// format 1). Unlike every other lookup type, the engine sweeps this
// lookup's cursor right-to-left; see apply.go.
type gsub8 struct {
	coverage    gtabparser.Reader
	backtrack   []gtabparser.Reader // coverage tables, closest glyph first
	lookahead   []gtabparser.Reader
	substitutes []uint16 // indexed by coverage index
}

func readGsub8(r gtabparser.Reader) *gsub8 {
	if r.Len() < 4 {
		return nil
	}
	if format := r.Uint16(0); format != 1 {
		Warnf("gsub: unknown ReverseChainSingleSubst format %d", format)
		return nil
	}
	g := &gsub8{}
	coverageOffset := int(r.Uint16(2))
	g.coverage = r.Sub(coverageOffset)

	off := 4
	backtrackCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < backtrackCount; i++ {
		o := int(r.Uint16(off + i*2))
		g.backtrack = append(g.backtrack, r.Sub(o))
	}
	off += backtrackCount * 2

	lookaheadCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < lookaheadCount; i++ {
		o := int(r.Uint16(off + i*2))
		g.lookahead = append(g.lookahead, r.Sub(o))
	}
	off += lookaheadCount * 2

	glyphCount := int(r.Uint16(off))
	off += 2
	g.substitutes = r.Uint16Slice(off, glyphCount)
	return g
}

func (g *gsub8) Apply(state *applyState, pos int) (int, bool) {
	idx, ok := coverageIndex(g.coverage, state.seq.At(pos))
	if !ok || idx >= len(g.substitutes) {
		return 0, false
	}
	if pos+len(g.lookahead) >= state.seq.Len() {
		return 0, false
	}
	if len(g.backtrack) > pos {
		return 0, false
	}
	glyphs := state.seq.Glyphs()
	for i, cov := range g.backtrack {
		// backtrack[0] is the glyph immediately to the left.
		if !covers(cov, glyphs[pos-1-i]) {
			return 0, false
		}
	}
	for i, cov := range g.lookahead {
		if !covers(cov, glyphs[pos+1+i]) {
			return 0, false
		}
	}
	state.seq.OverwriteOne(pos, glyph.ID(g.substitutes[idx]))
	return pos, true
}
