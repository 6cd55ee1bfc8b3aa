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
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lite-xl/corelayer/glyph"
)

// u16 appends a big-endian uint16.
func u16(buf []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, v)
}

// buildGSUB assembles a minimal, single-script/single-feature GSUB table
// with one lookup built from lookupBytes (the LookupTable's own body,
// starting at lookupType), wrapped under feature tag featureTag.
//
// Layout, in order: header, ScriptList (one script, default LangSys, no
// required feature), FeatureList (one feature naming lookup 0),
// LookupList (one lookup).
func buildGSUB(t *testing.T, scriptTag, featureTag Tag, lookupBytes []byte) []byte {
	t.Helper()

	// ScriptList
	var scriptList []byte
	scriptList = u16(scriptList, 1) // scriptCount
	scriptList = append(scriptList, scriptTag[:]...)
	scriptList = u16(scriptList, 8) // scriptTable offset (2+6)
	// ScriptTable
	scriptList = u16(scriptList, 4) // defaultLangSysOffset (relative to ScriptTable start)
	scriptList = u16(scriptList, 0) // langSysCount
	// LangSysTable (default)
	scriptList = u16(scriptList, 0)      // lookupOrder
	scriptList = u16(scriptList, 0xFFFF) // requiredFeatureIndex: none
	scriptList = u16(scriptList, 1)      // featureIndexCount
	scriptList = u16(scriptList, 0)      // featureIndex[0]

	// FeatureList
	var featureList []byte
	featureList = u16(featureList, 1) // featureCount
	featureList = append(featureList, featureTag[:]...)
	featureList = u16(featureList, 8) // featureTable offset (2+6)
	// FeatureTable
	featureList = u16(featureList, 0) // featureParamsOffset
	featureList = u16(featureList, 1) // lookupIndexCount
	featureList = u16(featureList, 0) // lookupListIndex[0]

	// LookupList
	var lookupList []byte
	lookupList = u16(lookupList, 1) // lookupCount
	lookupList = u16(lookupList, 4) // lookupTable offset (2+2)
	lookupList = append(lookupList, lookupBytes...)

	header := make([]byte, 10)
	binary.BigEndian.PutUint16(header[0:], 1) // majorVersion
	binary.BigEndian.PutUint16(header[2:], 0) // minorVersion
	scriptListOffset := 10
	featureListOffset := scriptListOffset + len(scriptList)
	lookupListOffset := featureListOffset + len(featureList)
	binary.BigEndian.PutUint16(header[4:], uint16(scriptListOffset))
	binary.BigEndian.PutUint16(header[6:], uint16(featureListOffset))
	binary.BigEndian.PutUint16(header[8:], uint16(lookupListOffset))

	out := append([]byte{}, header...)
	out = append(out, scriptList...)
	out = append(out, featureList...)
	out = append(out, lookupList...)
	return out
}

// buildSingleSubstLookup builds a type-1, format-1 (constant delta)
// LookupTable body covering a single glyph.
func buildSingleSubstLookup(coveredGlyph uint16, delta int16) []byte {
	var coverage []byte
	coverage = u16(coverage, 1) // format
	coverage = u16(coverage, 1) // glyphCount
	coverage = u16(coverage, uint16(coveredGlyph))

	var subtable []byte
	subtable = u16(subtable, 1)                  // substFormat
	subtable = u16(subtable, 6)                   // coverageOffset
	subtable = u16(subtable, uint16(int16(delta))) // deltaGlyphID
	subtable = append(subtable, coverage...)

	var lookup []byte
	lookup = u16(lookup, 1) // lookupType
	lookup = u16(lookup, 0) // lookupFlag
	lookup = u16(lookup, 1) // subTableCount
	lookup = u16(lookup, 8) // subtableOffset (2+2+2+2)
	lookup = append(lookup, subtable...)
	return lookup
}

func TestReadAndBuildChainSingleSubst(t *testing.T) {
	data := buildGSUB(t, TagLatn, MakeTag("test"), buildSingleSubstLookup(5, 1))

	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("test")})
	if len(chain.Lookups) != 1 {
		t.Fatalf("expected 1 lookup in chain, got %d", len(chain.Lookups))
	}

	seq := glyph.NewFromIDs([]glyph.ID{5})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{6}, seq.Glyphs()); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestBuildChainExplicitUnsupportedScriptFails(t *testing.T) {
	// Only latn is registered. Requesting it directly must resolve
	// normally...
	data := buildGSUB(t, TagLatn, MakeTag("test"), buildSingleSubstLookup(5, 1))
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("test")})
	if len(chain.Lookups) != 1 {
		t.Fatalf("expected latn to resolve directly, got %d lookups", len(chain.Lookups))
	}

	// ...but requesting a different, explicit, unsupported script must
	// fail resolution outright rather than silently falling back to
	// latn: the DFLT/dflt/latn chain only applies when the caller asked
	// for the default script in the first place.
	arabChain := BuildChain(info, MakeTag("arab"), Tag{}, []Tag{MakeTag("test")})
	if len(arabChain.Lookups) != 0 {
		t.Errorf("an explicit unsupported script must not fall back to latn, got %d lookups", len(arabChain.Lookups))
	}

	seq := glyph.NewFromIDs([]glyph.ID{5})
	arabChain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{5}, seq.Glyphs()); d != "" {
		t.Errorf("unsupported script's chain should be a no-op (-want +got):\n%s", d)
	}
}

func TestBuildChainUnmatchedFeatureIsEmpty(t *testing.T) {
	data := buildGSUB(t, TagLatn, MakeTag("test"), buildSingleSubstLookup(5, 1))
	info, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	chain := BuildChain(info, TagLatn, Tag{}, []Tag{MakeTag("liga")})
	if len(chain.Lookups) != 0 {
		t.Errorf("expected no lookups for an unrequested feature, got %d", len(chain.Lookups))
	}

	seq := glyph.NewFromIDs([]glyph.ID{5})
	chain.Apply(seq)
	if d := cmp.Diff([]glyph.ID{5}, seq.Glyphs()); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}
