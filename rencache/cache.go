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

// Cache sits between an application and a Renderer, recording draw
// commands for one frame, diffing them against the previous frame via
// a hashed cell grid, and replaying only the commands that touch
// changed regions. This is the render-cache pattern: redrawing the
// full screen every frame is wasted work when most of it is
// unchanged text or UI chrome.
type Cache struct {
	r Renderer

	ring *ring
	grid *grid
	dirt dirtyRects

	clip Rect

	screenW, screenH int
	invalidate       bool
	showDebug        bool

	// toFree holds surfaces whose refcount reached zero during End's
	// hashing pass, pending collection via ReleasedSurfaces.
	toFree []*Surface
}

// NewCache creates a cache driving r, taking its initial output size
// from r.GetSize.
func NewCache(r Renderer) *Cache {
	c := &Cache{
		r:    r,
		ring: newRing(),
		grid: newGrid(),
	}
	c.screenW, c.screenH = r.GetSize()
	c.clip = Rect{X: 0, Y: 0, W: c.screenW, H: c.screenH}
	c.invalidate = true
	return c
}

// ShowDebug toggles tinting of redrawn regions, matching
// rencache_show_debug.
func (c *Cache) ShowDebug(enabled bool) {
	c.showDebug = enabled
}

// Invalidate forces every cell to be treated as changed on the next
// End, matching rencache_invalidate (used e.g. after a resize).
func (c *Cache) Invalidate() {
	c.invalidate = true
}

// Begin starts recording a new frame's commands.
func (c *Cache) Begin() {
	c.ring.reset()
	c.dirt.reset()
	c.clip = Rect{X: 0, Y: 0, W: c.screenW, H: c.screenH}

	w, h := c.r.GetSize()
	if w != c.screenW || h != c.screenH {
		c.screenW, c.screenH = w, h
		c.invalidate = true
	}
}

// ReleasedSurfaces returns the surfaces whose refcount reached zero
// since the last call, and clears the internal list. Callers should
// free each surface's underlying resource before discarding it.
func (c *Cache) ReleasedSurfaces() []*Surface {
	out := c.toFree
	c.toFree = nil
	return out
}

// End replays the commands recorded since Begin for every region whose
// content differs from the previous frame, then advances the cache to
// the next frame. It returns the dirty rectangles that were redrawn,
// primarily for tests and debugging overlays.
func (c *Cache) End() []Rect {
	if c.invalidate {
		for i := range c.grid.prev {
			c.grid.prev[i] = 0
		}
		c.invalidate = false
	}

	// Hashing and texture-reference reclaim happen in the same pass: the
	// ring's own +1 reference on a DrawTexture command's surface
	// (taken when the command was recorded) is given up here, before
	// replay. The surface handle itself is only queued for the caller
	// to dispose of via ReleasedSurfaces, never freed by Cache, so
	// replay below can still safely blit it even if it just dropped to
	// a refcount of zero.
	//
	// clip tracks the clip rect in effect as of the command currently
	// being hashed: it starts at the full screen and is replaced by a
	// SET_CLIP command's own (already screen-bound) rect as the walk
	// reaches it, so a command recorded after a restrictive clip only
	// ever marks the clipped region dirty.
	clip := Rect{X: 0, Y: 0, W: c.screenW, H: c.screenH}
	for i := range c.ring.commands {
		cmd := &c.ring.commands[i]
		if cmd.kind == cmdSetClip {
			clip = cmd.rect
		}
		r := intersect(cmd.rect, clip)
		if r.empty() {
			continue
		}
		h := fnv1a(fnvInitial, cmd.hashBytes())
		c.grid.updateOverlappingCells(r, h)
		if cmd.kind == cmdDrawTexture && cmd.surface.release() {
			c.toFree = append(c.toFree, cmd.surface)
		}
	}

	c.dirt.reset()
	for y := 0; y < CellsY; y++ {
		for x := 0; x < CellsX; x++ {
			idx := cellIndex(x, y)
			if c.grid.cur[idx] != c.grid.prev[idx] {
				r := cellRect(x, y, x, y)
				c.dirt.pushRect(clipToScreen(r, c.screenW, c.screenH))
			}
		}
	}

	for _, rect := range c.dirt.rects {
		c.replay(rect)
	}

	c.grid.swap()

	return c.dirt.rects
}

// replay re-executes every recorded command that overlaps rect, under
// a clip restricted to rect, mirroring rencache_end_frame's per-dirty
// inner loop.
func (c *Cache) replay(rect Rect) {
	c.r.SetClipRect(rect)
	for i := range c.ring.commands {
		cmd := &c.ring.commands[i]
		if cmd.kind == cmdSetClip {
			// Clip changes always apply, in order, so that later
			// draws in this pass see the clip state they were
			// recorded under, even if the clip rect itself does not
			// overlap the region being redrawn.
			c.r.SetClipRect(intersect(cmd.rect, rect))
			continue
		}
		if !overlaps(cmd.rect, rect) {
			continue
		}
		switch cmd.kind {
		case cmdDrawRect:
			color := cmd.rectColor
			if c.showDebug {
				color = debugTint(color)
			}
			c.r.DrawRect(cmd.rect, color)
		case cmdDrawText:
			color := cmd.textColor
			if c.showDebug {
				color = debugTint(color)
			}
			c.r.DrawText(cmd.text, cmd.textX, cmd.rect.Y, cmd.fonts, color, cmd.tabSize)
		case cmdDrawTexture:
			c.r.DrawTexture(cmd.surface, cmd.source, cmd.rect)
		}
	}
	c.r.SetClipRect(Rect{X: 0, Y: 0, W: c.screenW, H: c.screenH})
}

func debugTint(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}
