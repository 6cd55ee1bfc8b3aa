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

// ScriptTable finding mirrors get_script_table: a linear scan of the
// ScriptRecord array, since script lists are short and usually not worth
// a binary search.
func findScriptTable(scriptList gtabparser.Reader, script Tag) (gtabparser.Reader, bool) {
	if scriptList.Len() < 2 {
		return gtabparser.Reader{}, false
	}
	count := int(scriptList.Uint16(0))
	for i := 0; i < count; i++ {
		recOffset := 2 + i*6
		tag := scriptList.Tag(recOffset)
		if Tag(tag) != script {
			continue
		}
		off := int(scriptList.Uint16(recOffset + 4))
		return scriptList.Sub(off), true
	}
	return gtabparser.Reader{}, false
}

// findLangSysTable mirrors get_lang_table. When lang is a zero tag or
// DFLT/dflt, the script's default LangSys is used, or failing that the
// first LangSysRecord tagged dflt/DFLT. Otherwise the LangSysRecord whose
// tag equals lang is used, falling back to the default LangSys.
func findLangSysTable(scriptTable gtabparser.Reader, lang Tag) (gtabparser.Reader, bool) {
	if scriptTable.Len() < 4 {
		return gtabparser.Reader{}, false
	}
	defaultOffset := int(scriptTable.Uint16(0))
	count := int(scriptTable.Uint16(2))

	wantDefault := isDefaultTag(lang) || lang == (Tag{})
	if wantDefault {
		if defaultOffset != 0 {
			return scriptTable.Sub(defaultOffset), true
		}
		for i := 0; i < count; i++ {
			recOffset := 4 + i*6
			if isDefaultTag(Tag(scriptTable.Tag(recOffset))) {
				return scriptTable.Sub(int(scriptTable.Uint16(recOffset + 4))), true
			}
		}
		return gtabparser.Reader{}, false
	}

	for i := 0; i < count; i++ {
		recOffset := 4 + i*6
		tag := scriptTable.Tag(recOffset)
		if Tag(tag) != lang {
			continue
		}
		off := int(scriptTable.Uint16(recOffset + 4))
		return scriptTable.Sub(off), true
	}

	if defaultOffset != 0 {
		return scriptTable.Sub(defaultOffset), true
	}
	return gtabparser.Reader{}, false
}

// resolveScriptAndLang walks the DFLT/dflt/latn script fallback chain and
// then the default-LangSys resolution within the chosen script. The
// fallback chain only applies when the caller asked for the default
// script (a zero Tag, or DFLT/dflt itself): a caller naming an explicit,
// unsupported script must fail resolution rather than silently land on
// latn, mirroring findLangSysTable's own wantDefault gate above.
func resolveScriptAndLang(scriptList gtabparser.Reader, script, lang Tag) (gtabparser.Reader, bool) {
	scriptTable, ok := findScriptTable(scriptList, script)
	wantDefault := script == (Tag{}) || isDefaultTag(script)
	if !ok && wantDefault {
		scriptTable, ok = findScriptTable(scriptList, TagDFLT)
	}
	if !ok && wantDefault {
		scriptTable, ok = findScriptTable(scriptList, Tagdflt)
	}
	if !ok && wantDefault {
		scriptTable, ok = findScriptTable(scriptList, TagLatn)
	}
	if !ok {
		return gtabparser.Reader{}, false
	}
	return findLangSysTable(scriptTable, lang)
}

// langSysRequiredFeature returns the LangSysTable's requiredFeatureIndex,
// and whether one is present (0xFFFF means "none").
func langSysRequiredFeature(langSys gtabparser.Reader) (uint16, bool) {
	if langSys.Len() < 4 {
		return 0, false
	}
	idx := langSys.Uint16(2)
	return idx, idx != 0xFFFF
}

// langSysFeatureIndices returns the LangSysTable's featureIndex list
// (excluding the required feature, which is addressed separately).
func langSysFeatureIndices(langSys gtabparser.Reader) []uint16 {
	if langSys.Len() < 6 {
		return nil
	}
	count := int(langSys.Uint16(4))
	return langSys.Uint16Slice(6, count)
}
