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

// Package gtab reads an OpenType "GSUB" table and applies the chain of
// substitution lookups it selects to a glyph sequence.
package gtab

// Tag is a 4-byte OpenType script, language, or feature tag, such as
// "latn" or "liga".
type Tag [4]byte

// MakeTag builds a Tag from a string. Strings shorter than 4 bytes are
// padded with spaces, matching OpenType's own tag-padding convention.
func MakeTag(s string) Tag {
	var t Tag
	for i := range t {
		t[i] = ' '
	}
	copy(t[:], s)
	return t
}

func (t Tag) String() string {
	return string(t[:])
}

// Well-known tags used by script/language/feature resolution.
var (
	TagDFLT = MakeTag("DFLT")
	Tagdflt = MakeTag("dflt")
	TagLatn = MakeTag("latn")

	// TagRequired is the sentinel feature tag " RQD": when present in a
	// caller's feature list, it is expanded to the script/language's
	// required feature, if any.
	TagRequired = MakeTag(" RQD")
)

func isDefaultTag(t Tag) bool {
	return t == TagDFLT || t == Tagdflt
}
