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

// checkGlyphSequence mirrors check_with_Sequence: it compares n glyphs
// starting at pos, stepping by step (+1 forward for input/lookahead, -1
// backward for backtrack, which OpenType stores closest-glyph-first),
// against an explicit glyph-id list.
func checkGlyphSequence(seq *glyph.Sequence, pos int, want []uint16, step int) bool {
	for i, w := range want {
		if seq.At(pos+i*step) != glyph.ID(w) {
			return false
		}
	}
	return true
}

// checkCoverageSequence mirrors check_with_Coverage: each position must
// be covered by its corresponding CoverageTable.
func checkCoverageSequence(seq *glyph.Sequence, pos int, covs []gtabparser.Reader, step int) bool {
	for i, cov := range covs {
		if !covers(cov, seq.At(pos+i*step)) {
			return false
		}
	}
	return true
}

// checkClassSequence mirrors check_with_Class: each position's class
// (via classDef) must equal the corresponding entry of want.
func checkClassSequence(seq *glyph.Sequence, pos int, classDef gtabparser.Reader, want []uint16, step int) bool {
	for i, w := range want {
		if glyphClass(classDef, seq.At(pos+i*step)) != w {
			return false
		}
	}
	return true
}
