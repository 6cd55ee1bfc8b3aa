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

// gsub4 is lookup type 4 (Ligature Substitution, format 1): replaces a
// covered glyph plus a matching run of component glyphs with a single
// ligature glyph.
type gsub4 struct {
	coverage     gtabparser.Reader
	ligatureSets []gtabparser.Reader // one per coverage index
}

func readGsub4(r gtabparser.Reader) *gsub4 {
	if r.Len() < 4 {
		return nil
	}
	if format := r.Uint16(0); format != 1 {
		Warnf("gsub: unknown LigatureSubst format %d", format)
		return nil
	}
	coverageOffset := int(r.Uint16(2))
	count := int(r.Uint16(4))
	g := &gsub4{coverage: r.Sub(coverageOffset)}
	for i := 0; i < count; i++ {
		off := int(r.Uint16(6 + i*2))
		g.ligatureSets = append(g.ligatureSets, r.Sub(off))
	}
	return g
}

// findLigature mirrors find_Ligature: the first LigatureTable in the set
// whose component glyph list (the covered glyph itself is implicit and
// not repeated) matches the sequence starting at pos wins.
func findLigature(ligatureSet gtabparser.Reader, seq *glyph.Sequence, pos int) (glyphID glyph.ID, componentCount int, ok bool) {
	if ligatureSet.Len() < 2 {
		return 0, 0, false
	}
	count := int(ligatureSet.Uint16(0))
	glyphs := seq.Glyphs()
	for i := 0; i < count; i++ {
		off := int(ligatureSet.Uint16(2 + i*2))
		lig := ligatureSet.Sub(off)
		if lig.Len() < 4 {
			continue
		}
		ligGlyph := glyph.ID(lig.Uint16(0))
		compCount := int(lig.Uint16(2))
		if pos+compCount-1 > len(glyphs) {
			continue
		}
		matched := true
		for j := 0; j < compCount-1; j++ {
			want := glyph.ID(lig.Uint16(4 + j*2))
			if glyphs[pos+j] != want {
				matched = false
				break
			}
		}
		if matched {
			return ligGlyph, compCount, true
		}
	}
	return 0, 0, false
}

func (g *gsub4) Apply(state *applyState, pos int) (int, bool) {
	idx, ok := coverageIndex(g.coverage, state.seq.At(pos))
	if !ok || idx >= len(g.ligatureSets) {
		return 0, false
	}
	// The coverage glyph itself is component 0; matching starts one
	// position later.
	ligGlyph, compCount, ok := findLigature(g.ligatureSets[idx], state.seq, pos+1)
	if !ok {
		return 0, false
	}
	state.seq.OverwriteOne(pos, ligGlyph)
	tail := state.seq.Glyphs()[pos+compCount:]
	state.seq.OverwriteRange(pos+1, tail)
	state.seq.Shrink(compCount - 1)
	return pos, true
}
