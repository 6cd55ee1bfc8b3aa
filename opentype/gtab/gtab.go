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

// Info is a parsed view onto a GSUB table. It holds borrowed Readers over
// the table's three top-level subtables; nothing is copied or decoded
// eagerly beyond the header itself.
type Info struct {
	scriptList  gtabparser.Reader
	featureList gtabparser.Reader
	lookupList  gtabparser.Reader
}

// Read parses a GSUB table header. data must be the complete, raw GSUB
// table (as found at the font's "GSUB" table directory entry); Read keeps
// a reference to it and does not copy it.
func Read(data []byte) (*Info, error) {
	if len(data) < 10 {
		return nil, &gtabparser.InvalidTableError{Reason: "GSUB header truncated"}
	}
	r := gtabparser.NewReader(data)

	majorVersion := r.Uint16(0)
	minorVersion := r.Uint16(2)
	if majorVersion != 1 || minorVersion > 1 {
		return nil, &gtabparser.UnsupportedError{Feature: "GSUB table version"}
	}

	scriptListOffset := int(r.Uint16(4))
	featureListOffset := int(r.Uint16(6))
	lookupListOffset := int(r.Uint16(8))

	info := &Info{}
	if scriptListOffset != 0 {
		info.scriptList = r.Sub(scriptListOffset)
	}
	if featureListOffset != 0 {
		info.featureList = r.Sub(featureListOffset)
	}
	if lookupListOffset != 0 {
		info.lookupList = r.Sub(lookupListOffset)
	}
	return info, nil
}

// empty reports whether the table has no scripts or no lookups, and
// therefore can never select any substitutions.
func (info *Info) empty() bool {
	return info.scriptList.Len() == 0 || info.lookupList.Len() == 0
}
