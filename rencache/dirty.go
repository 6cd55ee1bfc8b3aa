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

// dirtyRects accumulates the set of rectangles that changed this frame.
// pushRect merges a new rect into an existing one whenever they
// overlap, rather than appending unconditionally, mirroring push_rect's
// greedy merge: this keeps the final rect count small at the cost of
// occasionally over-covering unchanged pixels.
type dirtyRects struct {
	rects []Rect
}

func (d *dirtyRects) reset() {
	d.rects = d.rects[:0]
}

func (d *dirtyRects) pushRect(r Rect) {
	if r.empty() {
		return
	}
	for i, existing := range d.rects {
		if overlaps(existing, r) {
			d.rects[i] = merge(existing, r)
			return
		}
	}
	d.rects = append(d.rects, r)
}

// cellRect converts a cell-grid coordinate range into pixel space,
// mirroring the reference implementation's CELL_SIZE scaling when a
// changed cell is translated back into a dirty rectangle.
func cellRect(x1, y1, x2, y2 int) Rect {
	return Rect{
		X: x1 * CellSize,
		Y: y1 * CellSize,
		W: (x2 - x1 + 1) * CellSize,
		H: (y2 - y1 + 1) * CellSize,
	}
}

// clipToScreen intersects r with the current output size so that a
// dirty rect derived from cell coordinates never exceeds the screen.
func clipToScreen(r Rect, w, h int) Rect {
	return intersect(r, Rect{X: 0, Y: 0, W: w, H: h})
}
