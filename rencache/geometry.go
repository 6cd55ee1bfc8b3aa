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

// Package rencache is a retained draw-command cache: it records drawing
// operations issued during a frame, diffs them against the previous
// frame using a hashed cell grid, and reports only the dirty rectangles
// that actually need to be redrawn.
package rencache

import "image/color"

// Rect is an axis-aligned pixel rectangle. W and H are expected to be
// non-negative; a Rect with either at 0 covers no pixels.
type Rect struct {
	X, Y, W, H int
}

// Color is an 8-bit-per-channel RGBA color.
type Color color.RGBA

func (r Rect) empty() bool {
	return r.W <= 0 || r.H <= 0
}

// overlaps reports whether a and b overlap or touch, mirroring
// rects_overlap (a shared edge counts as overlap even though no pixel
// is shared).
func overlaps(a, b Rect) bool {
	return b.X+b.W >= a.X && b.X <= a.X+a.W &&
		b.Y+b.H >= a.Y && b.Y <= a.Y+a.H
}

// intersect mirrors intersect_rects.
func intersect(a, b Rect) Rect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.W, b.X+b.W)
	y2 := min(a.Y+a.H, b.Y+b.H)
	return Rect{X: x1, Y: y1, W: max(0, x2-x1), H: max(0, y2-y1)}
}

// merge mirrors merge_rects: the smallest rect covering both a and b.
func merge(a, b Rect) Rect {
	x1 := min(a.X, b.X)
	y1 := min(a.Y, b.Y)
	x2 := max(a.X+a.W, b.X+b.W)
	y2 := max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}
