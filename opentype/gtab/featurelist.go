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

import "github.com/lite-xl/corelayer/opentype/gtabparser"

// LookupIndex is an index into a LookupList.
type LookupIndex uint16

// featureAt mirrors get_feature: FeatureRecord index access plus the
// feature's own FeatureTable, which starts with featureParamsOffset
// (ignored here) followed by the lookup index list.
func featureAt(featureList gtabparser.Reader, index uint16) (gtabparser.Reader, Tag, bool) {
	if featureList.Len() < 2 {
		return gtabparser.Reader{}, Tag{}, false
	}
	count := int(featureList.Uint16(0))
	if int(index) >= count {
		return gtabparser.Reader{}, Tag{}, false
	}
	recOffset := 2 + int(index)*6
	tag := Tag(featureList.Tag(recOffset))
	off := int(featureList.Uint16(recOffset + 4))
	return featureList.Sub(off), tag, true
}

// featureLookupIndices mirrors get_lookups_from_feature: a FeatureTable's
// lookupListIndex array, skipping featureParamsOffset.
func featureLookupIndices(featureTable gtabparser.Reader) []LookupIndex {
	if featureTable.Len() < 4 {
		return nil
	}
	count := int(featureTable.Uint16(2))
	raw := featureTable.Uint16Slice(4, count)
	out := make([]LookupIndex, len(raw))
	for i, v := range raw {
		out[i] = LookupIndex(v)
	}
	return out
}

// findFeatureIndexByTag performs a linear scan of the FeatureList for the
// first FeatureRecord with the given tag. Nothing in the package calls
// it: BuildChain scans the LangSys's own feature indices, and " RQD"
// expands through requiredFeatureIndex.
func findFeatureIndexByTag(featureList gtabparser.Reader, tag Tag) (uint16, bool) {
	if featureList.Len() < 2 {
		return 0, false
	}
	count := int(featureList.Uint16(0))
	for i := 0; i < count; i++ {
		recOffset := 2 + i*6
		if Tag(featureList.Tag(recOffset)) == tag {
			return uint16(i), true
		}
	}
	return 0, false
}
