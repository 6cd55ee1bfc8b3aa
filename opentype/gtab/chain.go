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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lite-xl/corelayer/opentype/gtabparser"
)

// Chain is a resolved, ready-to-run sequence of lookups for one
// script/language/feature-set selection.
type Chain struct {
	Lookups    []*LookupTable // application order: ascending lookup-list index
	allLookups []*LookupTable // the full LookupList, for nested-lookup resolution
}

// RequiredFeature returns the script/language's required feature tag, if
// it has one. Callers use this to decide where " RQD" belongs in the
// features list passed to BuildChain, matching get_required_feature.
func RequiredFeature(info *Info, script, lang Tag) (Tag, bool) {
	if info.empty() {
		return Tag{}, false
	}
	langSys, ok := resolveScriptAndLang(info.scriptList, script, lang)
	if !ok {
		return Tag{}, false
	}
	idx, ok := langSysRequiredFeature(langSys)
	if !ok {
		return Tag{}, false
	}
	_, tag, ok := featureAt(info.featureList, idx)
	return tag, ok
}

// BuildChain resolves script/lang to a LangSysTable (falling back
// through DFLT/dflt/latn and the script's default LangSys, as described
// in resolveScriptAndLang and findLangSysTable), then collects the
// lookups named by features.
//
// features is scanned in caller order only to decide which lookups are
// included (the " RQD" sentinel is expanded to the script/language's
// required feature at whatever position it appears); the resulting
// Chain nonetheless applies lookups in ascending lookup-list index
// order; a lookup referenced by two different requested features still
// runs once. This mirrors generate_chain/get_lookups, which collect
// matches into a "seen lookup index" bitmap and then walk it in index
// order, discarding the caller's feature order entirely except for
// deciding which features are present at all.
func BuildChain(info *Info, script, lang Tag, features []Tag) *Chain {
	if info.empty() {
		return &Chain{}
	}
	langSys, ok := resolveScriptAndLang(info.scriptList, script, lang)
	if !ok {
		return &Chain{}
	}
	all := readLookupList(info.lookupList)

	seen := make(map[uint16]bool)
	requiredIdx, hasRequired := langSysRequiredFeature(langSys)
	featureIndices := langSysFeatureIndices(langSys)

	for _, want := range features {
		if want == TagRequired {
			if hasRequired {
				markFeatureLookups(info.featureList, requiredIdx, seen)
			}
			continue
		}
		for _, idx := range featureIndices {
			_, tag, ok := featureAt(info.featureList, idx)
			if !ok || tag != want {
				continue
			}
			markFeatureLookups(info.featureList, idx, seen)
			break
		}
	}

	indices := maps.Keys(seen)
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	lookups := make([]*LookupTable, 0, len(indices))
	for _, idx := range indices {
		if int(idx) < len(all) {
			lookups = append(lookups, all[idx])
		}
	}
	return &Chain{Lookups: lookups, allLookups: all}
}

// markFeatureLookups mirrors get_lookups_from_feature: mark every lookup
// index referenced by the feature at featureIndex as seen.
func markFeatureLookups(featureList gtabparser.Reader, featureIndex uint16, seen map[uint16]bool) {
	featureTable, _, ok := featureAt(featureList, featureIndex)
	if !ok {
		return
	}
	for _, idx := range featureLookupIndices(featureTable) {
		seen[uint16(idx)] = true
	}
}
