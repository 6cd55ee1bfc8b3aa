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

import "golang.org/x/text/language"

// localeScripts maps a BCP-47 base language to the OpenType script tag a
// document in that language is usually typeset in. This is deliberately
// small: it only has to be good enough to pick a script tag for
// [TagsForLocale]'s convenience matcher, not to be a full script
// database.
var localeScripts = map[language.Tag]Tag{
	language.English: TagLatn,
	language.French:  TagLatn,
	language.German:  TagLatn,
	language.Spanish: TagLatn,
}

// TagsForLocale is a convenience helper that picks a script tag for a
// BCP-47 locale, using [language.Matcher] the same way the reference
// library's own FindLookups helper resolves a script from a caller-
// supplied language.Tag. Callers that already know their font's script
// tag should call BuildChain directly instead.
func TagsForLocale(lang language.Tag) (script Tag) {
	tags := make([]language.Tag, 0, len(localeScripts))
	for t := range localeScripts {
		tags = append(tags, t)
	}
	matcher := language.NewMatcher(tags)
	_, index, _ := matcher.Match(lang)
	return localeScripts[tags[index]]
}
