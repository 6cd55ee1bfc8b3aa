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

// Package gtabparser is a thin, trusting big-endian byte-slice reader for
// OpenType layout tables (ScriptList, FeatureList, LookupList and the
// substitution subtables nested below them).
//
// The table bytes are assumed to already be fully resident in memory (as
// spec'd: a GSUB view is a borrowed reference to the font's raw table
// bytes), so there is no seekable stream to wrap, unlike a whole-font
// reader. Offsets inside the table are not validated against the data
// beyond what Go's own slice bounds checks already provide: fonts are
// trusted input here, exactly as in the reference C implementation.
package gtabparser

import "fmt"

// InvalidTableError reports that the GSUB header itself could not be
// parsed (e.g. an unsupported version, or a top-level offset pointing
// outside the table). It does not cover malformed data further inside
// the table, which is undefined behavior by design (see package doc).
type InvalidTableError struct {
	Reason string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("gsub: invalid table: %s", e.Reason)
}

// UnsupportedError reports a recognized but unsupported table feature,
// such as a GSUB major/minor version this package does not implement.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("gsub: unsupported: %s", e.Feature)
}
