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
	"github.com/lite-xl/corelayer/opentype/gtabparser"
)

// NestedAction is one entry of a sequence-context rule's nested lookup
// list: "run lookup LookupListIndex against the glyph at sequence
// position SequenceIndex of the matched rule". Used by lookup types 5
// and 6.
type NestedAction struct {
	SequenceIndex   uint16
	LookupListIndex LookupIndex
}

// Subtable is a parsed GSUB lookup subtable of one specific format.
// Apply attempts to match state's sequence at pos; on success it mutates
// the sequence in place and returns the cursor position to resume
// scanning from (matching the reference interpreter's convention that a
// subtable advances *index itself for multi-glyph effects, and the
// sweep's own ++/-- step is applied by the caller on top of that). ok is
// false on no match, in which case next is meaningless.
type Subtable interface {
	Apply(state *applyState, pos int) (next int, ok bool)
}

// LookupTable is one entry of a GSUB LookupList: a lookup type together
// with its parsed subtables. The first subtable that matches at a given
// cursor position wins; subsequent subtables are not tried.
type LookupTable struct {
	Type        uint16
	Subtables   []Subtable
	RightToLeft bool // lookup type 8 (reverse chaining) sweeps backward
}

// readLookupList decodes every LookupTable referenced from a LookupList,
// in list order. Extension subtables (lookup type 7) are resolved
// transparently: the returned LookupTable.Type is the extension's real
// (indirect) type, never 7 itself.
func readLookupList(lookupList gtabparser.Reader) []*LookupTable {
	if lookupList.Len() < 2 {
		return nil
	}
	count := int(lookupList.Uint16(0))
	out := make([]*LookupTable, 0, count)
	for i := 0; i < count; i++ {
		off := int(lookupList.Uint16(2 + i*2))
		out = append(out, readLookupTable(lookupList.Sub(off)))
	}
	return out
}

func readLookupTable(r gtabparser.Reader) *LookupTable {
	if r.Len() < 6 {
		return &LookupTable{}
	}
	lookupType := r.Uint16(0)
	subTableCount := int(r.Uint16(4))

	lt := &LookupTable{
		Type: lookupType,
	}
	for i := 0; i < subTableCount; i++ {
		off := int(r.Uint16(6 + i*2))
		sub := r.Sub(off)
		st, realType := readSubtable(lookupType, sub)
		if st == nil {
			continue
		}
		lt.Type = realType
		lt.Subtables = append(lt.Subtables, st)
	}
	lt.RightToLeft = lt.Type == 8
	return lt
}

// readSubtable dispatches on lookup type, following extension (type 7)
// indirection to the real subtable and real type before dispatching
// again. Unrecognized or unsupported formats are skipped (a nil Subtable), and a
// caller-supplied diagnostic hook is expected to have already been
// warned by the specific gsubN reader.
func readSubtable(lookupType uint16, r gtabparser.Reader) (Subtable, uint16) {
	if lookupType == 7 {
		if r.Len() < 8 {
			return nil, lookupType
		}
		extensionLookupType := r.Uint16(2)
		extensionOffset := int(r.Uint32(4))
		return readSubtable(extensionLookupType, r.Sub(extensionOffset))
	}

	// Each readGsubN returns a concrete *gsubN pointer, which may be nil
	// on a malformed or unrecognized subtable. A nil *gsubN boxed
	// directly into the Subtable interface would not compare equal to a
	// nil Subtable (the classic typed-nil interface trap), so every case
	// here tests the concrete pointer before boxing it.
	switch lookupType {
	case 1:
		if st := readGsub1(r); st != nil {
			return st, lookupType
		}
	case 2:
		if st := readGsub2(r); st != nil {
			return st, lookupType
		}
	case 3:
		if st := readGsub3(r); st != nil {
			return st, lookupType
		}
	case 4:
		if st := readGsub4(r); st != nil {
			return st, lookupType
		}
	case 5:
		if st := readSeqContext(r); st != nil {
			return st, lookupType
		}
	case 6:
		if st := readChainContext(r); st != nil {
			return st, lookupType
		}
	case 8:
		if st := readGsub8(r); st != nil {
			return st, lookupType
		}
	default:
		Warnf("gsub: unsupported lookup type %d", lookupType)
	}
	return nil, lookupType
}
