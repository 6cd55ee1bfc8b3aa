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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lite-xl/corelayer/glyph"
)

// buildMultipleSubstLookup builds a type-2, format-1 LookupTable body: a
// single covered glyph whose SequenceTable lists the given substitute
// glyphs, in coverage-index order.
func buildMultipleSubstLookup(coveredGlyph uint16, substitutes []uint16) []byte {
	var sequence []byte
	sequence = u16(sequence, uint16(len(substitutes))) // glyphCount
	for _, s := range substitutes {
		sequence = u16(sequence, s)
	}

	var coverage []byte
	coverage = u16(coverage, 1)
	coverage = u16(coverage, 1)
	coverage = u16(coverage, coveredGlyph)

	var subtable []byte
	subtable = u16(subtable, 1) // substFormat
	subtable = u16(subtable, 8) // coverageOffset (2+2+2+2)
	subtable = u16(subtable, 1) // sequenceCount
	subtable = u16(subtable, uint16(8+len(coverage)))
	subtable = append(subtable, coverage...)
	subtable = append(subtable, sequence...)

	var lookup []byte
	lookup = u16(lookup, 2)
	lookup = u16(lookup, 0)
	lookup = u16(lookup, 1)
	lookup = u16(lookup, 8)
	lookup = append(lookup, subtable...)
	return lookup
}

func TestMultipleSubstitutionGrowsAndPreservesTail(t *testing.T) {
	data := buildGSUB(t, TagLatn, MakeTag("test"), buildMultipleSubstLookup(10, []uint16{20, 21, 22}))
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("test")})

	// Glyphs after the covered position (30, 31) must survive,
	// shifted right by glyphCount-1 to make room for the 3 substitutes
	// replacing the single covered glyph at index 1.
	seq := glyph.NewFromIDs([]glyph.ID{9, 10, 30, 31})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{9, 20, 21, 22, 30, 31}, seq.Glyphs()); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

// buildLigatureLookup builds a type-4, format-1 LookupTable body: a
// single covered glyph whose LigatureSet has one Ligature entry matching
// the given component tail (not including the covered glyph itself).
func buildLigatureLookup(coveredGlyph uint16, components []uint16, ligatureGlyph uint16) []byte {
	var ligature []byte
	ligature = u16(ligature, ligatureGlyph)
	ligature = u16(ligature, uint16(len(components)+1)) // componentCount, includes covered glyph
	for _, c := range components {
		ligature = u16(ligature, c)
	}

	var ligatureSet []byte
	ligatureSet = u16(ligatureSet, 1) // ligatureCount
	ligatureSet = u16(ligatureSet, 4) // ligatureOffset[0] (2+2)
	ligatureSet = append(ligatureSet, ligature...)

	var coverage []byte
	coverage = u16(coverage, 1)
	coverage = u16(coverage, 1)
	coverage = u16(coverage, coveredGlyph)

	var subtable []byte
	subtable = u16(subtable, 1) // substFormat
	subtable = u16(subtable, 8) // coverageOffset (2+2+2+2)
	subtable = u16(subtable, 1) // ligSetCount
	subtable = u16(subtable, uint16(8+len(coverage)))
	subtable = append(subtable, coverage...)
	subtable = append(subtable, ligatureSet...)

	var lookup []byte
	lookup = u16(lookup, 4)
	lookup = u16(lookup, 0)
	lookup = u16(lookup, 1)
	lookup = u16(lookup, 8)
	lookup = append(lookup, subtable...)
	return lookup
}

func TestLigatureSubstitution(t *testing.T) {
	data := buildGSUB(t, TagLatn, MakeTag("liga"), buildLigatureLookup(10, []uint16{11, 12}, 50))
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("liga")})

	seq := glyph.NewFromIDs([]glyph.ID{9, 10, 11, 12, 13})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{9, 50, 13}, seq.Glyphs()); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestLigatureSubstitutionNoMatch(t *testing.T) {
	data := buildGSUB(t, TagLatn, MakeTag("liga"), buildLigatureLookup(10, []uint16{11, 12}, 50))
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("liga")})

	seq := glyph.NewFromIDs([]glyph.ID{10, 11, 99})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{10, 11, 99}, seq.Glyphs()); d != "" {
		t.Errorf("sequence should be unchanged on mismatch (-want +got):\n%s", d)
	}
}

// buildChainFormat3Lookup builds a type-6, format-3 LookupTable body
// whose single input position must be covered by coverage, with no
// backtrack or lookahead, invoking a single nested lookup at sequence
// index 0.
func buildChainFormat3Lookup(coveredGlyph uint16, nestedLookupIndex uint16) []byte {
	var coverage []byte
	coverage = u16(coverage, 1)
	coverage = u16(coverage, 1)
	coverage = u16(coverage, coveredGlyph)

	var subtable []byte
	subtable = u16(subtable, 3)  // format
	subtable = u16(subtable, 0)  // backtrackGlyphCount
	subtable = u16(subtable, 1)  // inputGlyphCount
	subtable = u16(subtable, 16) // inputCoverageOffsets[0]: 8 header fields * 2 bytes
	subtable = u16(subtable, 0)  // lookaheadGlyphCount
	subtable = u16(subtable, 1)  // seqLookupCount
	subtable = u16(subtable, 0)  // sequenceIndex
	subtable = u16(subtable, nestedLookupIndex)
	subtable = append(subtable, coverage...)

	var lookup []byte
	lookup = u16(lookup, 6)
	lookup = u16(lookup, 0)
	lookup = u16(lookup, 1)
	lookup = u16(lookup, 8)
	lookup = append(lookup, subtable...)
	return lookup
}

func TestChainContextFormat3InvokesNestedLookup(t *testing.T) {
	// Two lookups: lookup 0 is the chain-context trigger, lookup 1 is a
	// plain single substitution (+5 delta) only reachable through the
	// nested action, never listed directly in any feature.
	chainLookup := buildChainFormat3Lookup(20, 1)
	nestedLookup := buildSingleSubstLookup(20, 5)

	// lookupOffset[0] and [1] are relative to LookupList start; the
	// header is lookupCount(2) + 2 offsets(2 each) = 6 bytes.
	var lookupList []byte
	lookupList = u16(lookupList, 2)
	off0 := 6
	off1 := off0 + len(chainLookup)
	lookupList = u16(lookupList, uint16(off0))
	lookupList = u16(lookupList, uint16(off1))
	lookupList = append(lookupList, chainLookup...)
	lookupList = append(lookupList, nestedLookup...)

	var scriptList []byte
	scriptList = u16(scriptList, 1)
	scriptTag := TagLatn
	scriptList = append(scriptList, scriptTag[:]...)
	scriptList = u16(scriptList, 8)
	scriptList = u16(scriptList, 4)
	scriptList = u16(scriptList, 0)
	scriptList = u16(scriptList, 0)
	scriptList = u16(scriptList, 0xFFFF)
	scriptList = u16(scriptList, 1)
	scriptList = u16(scriptList, 0)

	var featureList []byte
	featureList = u16(featureList, 1)
	featureTag := MakeTag("test")
	featureList = append(featureList, featureTag[:]...)
	featureList = u16(featureList, 8)
	featureList = u16(featureList, 0)
	featureList = u16(featureList, 1)
	featureList = u16(featureList, 0) // only lookup 0 is listed

	header := make([]byte, 10)
	u16hdr := func(off int, v uint16) {
		header[off], header[off+1] = byte(v>>8), byte(v)
	}
	u16hdr(0, 1)
	u16hdr(2, 0)
	scriptListOffset := 10
	featureListOffset := scriptListOffset + len(scriptList)
	lookupListOffset := featureListOffset + len(featureList)
	u16hdr(4, uint16(scriptListOffset))
	u16hdr(6, uint16(featureListOffset))
	u16hdr(8, uint16(lookupListOffset))

	data := append([]byte{}, header...)
	data = append(data, scriptList...)
	data = append(data, featureList...)
	data = append(data, lookupList...)

	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("test")})
	if len(chain.Lookups) != 1 {
		t.Fatalf("expected only the directly-listed lookup in the chain, got %d", len(chain.Lookups))
	}

	seq := glyph.NewFromIDs([]glyph.ID{20})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{25}, seq.Glyphs()); d != "" {
		t.Errorf("nested lookup should have fired via the chain-context action (-want +got):\n%s", d)
	}
}
