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

// gsub3 is lookup type 3 (Alternate Substitution). Choosing among
// alternates is a caller/UI decision (e.g. the 'rand' feature, or a
// glyph-picker for a user-facing alternates menu) that this shaping
// engine has no way to make, so the subtable is parsed just enough to be
// skipped cleanly and never matches.
type gsub3 struct{}

func readGsub3(r gtabparser.Reader) *gsub3 {
	Warnf("gsub: AlternateSubst (lookup type 3) is unsupported")
	return &gsub3{}
}

func (g *gsub3) Apply(state *applyState, pos int) (int, bool) {
	return 0, false
}
