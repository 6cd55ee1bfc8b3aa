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

// gsub2 is lookup type 2 (Multiple Substitution, format 1): replaces one
// covered glyph with a sequence of one or more substitute glyphs.
type gsub2 struct {
	coverage  gtabparser.Reader
	sequences []gtabparser.Reader // one SequenceTable per coverage index
}

func readGsub2(r gtabparser.Reader) *gsub2 {
	if r.Len() < 4 {
		return nil
	}
	if format := r.Uint16(0); format != 1 {
		Warnf("gsub: unknown MultipleSubst format %d", format)
		return nil
	}
	coverageOffset := int(r.Uint16(2))
	count := int(r.Uint16(4))
	g := &gsub2{coverage: r.Sub(coverageOffset)}
	for i := 0; i < count; i++ {
		off := int(r.Uint16(6 + i*2))
		g.sequences = append(g.sequences, r.Sub(off))
	}
	return g
}

func (g *gsub2) Apply(state *applyState, pos int) (int, bool) {
	idx, ok := coverageIndex(g.coverage, state.seq.At(pos))
	if !ok || idx >= len(g.sequences) {
		return 0, false
	}
	seqTable := g.sequences[idx]
	if seqTable.Len() < 2 {
		return 0, false
	}
	glyphCount := int(seqTable.Uint16(0))
	substitutes := seqTable.Uint16Slice(2, glyphCount)

	ids := make([]glyph.ID, glyphCount)
	for i, v := range substitutes {
		ids[i] = glyph.ID(v)
	}

	// The covered glyph at pos is a single glyph; make room for (or
	// collapse to) glyphCount glyphs by shifting the tail first, the
	// same tail-then-content order runNestedActions and gsub4 use.
	tail := state.seq.Glyphs()[pos+1:]
	state.seq.OverwriteRange(pos+glyphCount, tail)
	state.seq.OverwriteRange(pos, ids)
	if glyphCount < 1 {
		state.seq.Shrink(1 - glyphCount)
	}
	return pos + glyphCount - 1, true
}
