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

import "golang.org/x/image/math/fixed"

// Font is an opaque handle to a backend font resource. Beyond identity
// (hashing its address for the cell grid) the cache only asks a Font for
// its line height; everything else is Renderer's concern.
type Font interface {
	// Height reports the font's line height in pixels. The cache uses the
	// tallest font of a fallback chain as the height of a DrawText
	// command's rect.
	Height() int
}

// Renderer performs the actual drawing that Cache replays for each
// dirty rectangle. Implementations wrap a platform drawing surface
// (e.g. an SDL renderer in the reference implementation).
type Renderer interface {
	// SetClipRect restricts subsequent draw calls to r.
	SetClipRect(r Rect)

	// DrawRect fills r with c.
	DrawRect(r Rect, c Color)

	// DrawText draws text at pen position (x, y) using fonts as an
	// ordered fallback chain (the first font covering a given rune
	// wins), expanding tabs to tabSize pixel-columns. It returns the pen
	// x position just past the drawn text, mirroring the reference
	// implementation's ren_draw_text return value.
	DrawText(text string, x fixed.Int26_6, y int, fonts [FontFallbackMax]Font, color Color, tabSize int) fixed.Int26_6

	// DrawTexture blits the region source of surface into dest.
	DrawTexture(surface *Surface, source, dest Rect)

	// GetSize reports the current output size in pixels.
	GetSize() (w, h int)
}
