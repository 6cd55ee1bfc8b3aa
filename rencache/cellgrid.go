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

// Grid tunables: a fixed CellsX x CellsY array of hashes, each cell
// covering a CellSize x CellSize pixel block.
const (
	CellsX   = 80
	CellsY   = 50
	CellSize = 96
)

// grid is the two-buffer hashed cell array: cur accumulates this
// frame's hashes, prev holds the previous frame's, so they can be
// diffed cell by cell. The two buffers exchange contents at the end of
// every frame.
type grid struct {
	cur, prev [CellsX * CellsY]uint32
}

func newGrid() *grid {
	g := &grid{}
	g.clear(&g.cur)
	g.clear(&g.prev)
	return g
}

func (g *grid) clear(buf *[CellsX * CellsY]uint32) {
	for i := range buf {
		buf[i] = fnvInitial
	}
}

func cellIndex(x, y int) int {
	return x + y*CellsX
}

// updateOverlappingCells folds h into every cell r touches, mirroring
// update_overlapping_cells.
func (g *grid) updateOverlappingCells(r Rect, h uint32) {
	x1 := r.X / CellSize
	y1 := r.Y / CellSize
	x2 := (r.X + r.W) / CellSize
	y2 := (r.Y + r.H) / CellSize

	hb := [4]byte{byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h)}
	for y := y1; y <= y2; y++ {
		if y < 0 || y >= CellsY {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x < 0 || x >= CellsX {
				continue
			}
			idx := cellIndex(x, y)
			g.cur[idx] = fnv1a(g.cur[idx], hb[:])
		}
	}
}

// swap exchanges cur and prev (the next frame builds into what is now
// prev) and resets the new cur to the FNV-1a initial value.
func (g *grid) swap() {
	g.cur, g.prev = g.prev, g.cur
	g.clear(&g.cur)
}
