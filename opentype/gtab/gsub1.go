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

// gsub1 is lookup type 1 (Single Substitution), formats 1 (a constant
// delta added to every covered glyph id) and 2 (an explicit substitute
// glyph per coverage index).
type gsub1 struct {
	format   uint16
	coverage gtabparser.Reader
	delta    int16    // format 1
	subst    []uint16 // format 2, indexed by coverage index
}

func readGsub1(r gtabparser.Reader) *gsub1 {
	if r.Len() < 4 {
		return nil
	}
	format := r.Uint16(0)
	coverageOffset := int(r.Uint16(2))
	g := &gsub1{format: format, coverage: r.Sub(coverageOffset)}
	switch format {
	case 1:
		g.delta = r.Int16(4)
	case 2:
		count := int(r.Uint16(4))
		g.subst = r.Uint16Slice(6, count)
	default:
		Warnf("gsub: unknown SingleSubst format %d", format)
		return nil
	}
	return g
}

func (g *gsub1) Apply(state *applyState, pos int) (int, bool) {
	gid := state.seq.At(pos)
	switch g.format {
	case 1:
		if !covers(g.coverage, gid) {
			return 0, false
		}
		state.seq.OverwriteOne(pos, glyph.ID(int32(gid)+int32(g.delta)))
		return pos, true

	case 2:
		idx, ok := coverageIndex(g.coverage, gid)
		if !ok || idx >= len(g.subst) {
			return 0, false
		}
		state.seq.OverwriteOne(pos, glyph.ID(g.subst[idx]))
		return pos, true

	default:
		return 0, false
	}
}
