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

// Surface is a caller-owned drawable (a loaded texture, typically), kept
// alive by a plain, non-atomic reference count: every DrawTexture
// command holds one reference for the duration it might still be
// replayed, released once End has redrawn (or discarded) the frame that
// queued it. The cache is not safe for concurrent use from multiple
// goroutines, and neither is the refcount it bumps here.
type Surface struct {
	handle   any // opaque handle owned by the Renderer implementation
	refcount int
}

// NewSurface wraps a renderer-owned handle for use with DrawTexture. The
// returned Surface starts with a refcount of zero; it becomes eligible
// for Release consideration only once a DrawTexture command has taken a
// reference on it.
func NewSurface(handle any) *Surface {
	return &Surface{handle: handle}
}

// Handle returns the opaque renderer handle this Surface wraps.
func (s *Surface) Handle() any {
	return s.handle
}

func (s *Surface) retain() {
	s.refcount++
}

// release drops one reference and reports whether the surface just
// reached zero (and should be queued for reclaiming).
func (s *Surface) release() bool {
	s.refcount--
	return s.refcount == 0
}
