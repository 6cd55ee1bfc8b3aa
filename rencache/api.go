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

// SetClipRect records a SET_CLIP command with rect ∩ screen, mirroring
// rencache_set_clip_rect. This replaces the active clip outright; it is
// not intersected against whatever clip was active before (a caller
// wanting nested clipping must intersect against its own prior rect
// itself, as the original does).
func (c *Cache) SetClipRect(r Rect) error {
	if err := checkRect(r); err != nil {
		return err
	}
	c.clip = intersect(r, Rect{X: 0, Y: 0, W: c.screenW, H: c.screenH})
	c.ring.push(Command{kind: cmdSetClip, rect: c.clip})
	return nil
}

// DrawRect records a filled rectangle, clipped to the current clip
// rect. No command is recorded if the result is empty.
func (c *Cache) DrawRect(r Rect, color Color) error {
	if err := checkRect(r); err != nil {
		return err
	}
	r = intersect(r, c.clip)
	if r.empty() {
		return nil
	}
	c.ring.push(Command{kind: cmdDrawRect, rect: r, rectColor: color})
	return nil
}

// DrawText records a text run at pen position (x, y) if it overlaps the
// current clip rect, and returns the pen x position just past the run
// (x plus the run's width) so callers can lay out adjacent runs without
// re-measuring.
func (c *Cache) DrawText(text string, x fixed.Int26_6, y int, fonts [FontFallbackMax]Font, color Color, tabSize int) fixed.Int26_6 {
	width := c.r.DrawText(text, x, y, fonts, color, tabSize)

	// The recorded rect keeps the run's own origin, since replay draws
	// the text at cmd.rect.Y; clipping is applied when hashing and by
	// the renderer's clip rect during replay.
	r := Rect{X: x.Round(), Y: y, W: (width - x).Round(), H: lineHeight(fonts)}
	if !intersect(r, c.clip).empty() {
		c.ring.push(Command{
			kind:      cmdDrawText,
			rect:      r,
			textColor: color,
			fonts:     fonts,
			textX:     x,
			tabSize:   tabSize,
			text:      text,
		})
	}
	return width
}

// DrawTexture records a blit of source from surface into dest if dest
// overlaps the current clip rect; dest itself is recorded unclipped, so
// clipping crops the blit rather than rescaling it. The command retains a reference on
// surface, given up during the frame's own End once the command has
// been hashed (see Cache.End); the underlying resource is only ever
// freed by the caller, via ReleasedSurfaces.
func (c *Cache) DrawTexture(surface *Surface, source, dest Rect) error {
	if err := checkRect(source); err != nil {
		return err
	}
	if err := checkRect(dest); err != nil {
		return err
	}
	if intersect(dest, c.clip).empty() {
		return nil
	}
	surface.retain()
	if !c.ring.push(Command{kind: cmdDrawTexture, rect: dest, surface: surface, source: source}) {
		surface.release()
	}
	return nil
}

func lineHeight(fonts [FontFallbackMax]Font) int {
	h := 0
	for _, f := range fonts {
		if f == nil {
			continue
		}
		if fh := f.Height(); fh > h {
			h = fh
		}
	}
	return h
}
