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

package rencache

// fnvInitial and fnvPrime are the 32-bit FNV-1a constants used to hash
// cells of the dirty-rect grid.
const (
	fnvInitial uint32 = 2166136261
	fnvPrime   uint32 = 16777619
)

// fnv1a folds data into h using the FNV-1a mixing step.
func fnv1a(h uint32, data []byte) uint32 {
	for _, b := range data {
		h = (h ^ uint32(b)) * fnvPrime
	}
	return h
}
