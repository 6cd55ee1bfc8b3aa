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

// coverageIndex mirrors find_in_coverage: it returns the coverage index
// of gid (its position for format-2 class/ligature-set lookups) and
// whether gid is covered at all.
func coverageIndex(cov gtabparser.Reader, gid glyph.ID) (int, bool) {
	if cov.Len() < 2 {
		return 0, false
	}
	format := cov.Uint16(0)
	switch format {
	case 1:
		count := int(cov.Uint16(2))
		glyphs := cov.Uint16Slice(4, count)
		for i, g := range glyphs {
			if glyph.ID(g) == gid {
				return i, true
			}
		}
		return 0, false

	case 2:
		count := int(cov.Uint16(2))
		lo, hi := 0, count-1
		for lo <= hi {
			mid := (lo + hi) / 2
			recOffset := 4 + mid*6
			start := glyph.ID(cov.Uint16(recOffset))
			end := glyph.ID(cov.Uint16(recOffset + 2))
			switch {
			case gid < start:
				hi = mid - 1
			case gid > end:
				lo = mid + 1
			default:
				startIndex := int(cov.Uint16(recOffset + 4))
				return startIndex + int(gid-start), true
			}
		}
		return 0, false

	default:
		return 0, false
	}
}

// covers reports whether gid is present in the coverage table, without
// needing its index.
func covers(cov gtabparser.Reader, gid glyph.ID) bool {
	_, ok := coverageIndex(cov, gid)
	return ok
}

// glyphClass mirrors find_in_class_array: ClassDef formats 1 (a
// contiguous run of per-glyph classes) and 2 (sorted class ranges,
// binary search). Glyphs outside any declared range belong to class 0.
func glyphClass(classDef gtabparser.Reader, gid glyph.ID) uint16 {
	if classDef.Len() < 2 {
		return 0
	}
	format := classDef.Uint16(0)
	switch format {
	case 1:
		startGlyph := glyph.ID(classDef.Uint16(2))
		count := int(classDef.Uint16(4))
		if gid < startGlyph || int(gid-startGlyph) >= count {
			return 0
		}
		return classDef.Uint16(6 + int(gid-startGlyph)*2)

	case 2:
		count := int(classDef.Uint16(2))
		lo, hi := 0, count-1
		for lo <= hi {
			mid := (lo + hi) / 2
			recOffset := 4 + mid*6
			start := glyph.ID(classDef.Uint16(recOffset))
			end := glyph.ID(classDef.Uint16(recOffset + 2))
			switch {
			case gid < start:
				hi = mid - 1
			case gid > end:
				lo = mid + 1
			default:
				return classDef.Uint16(recOffset + 4)
			}
		}
		return 0

	default:
		return 0
	}
}
