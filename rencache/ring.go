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

// ringCapacity is the per-frame command budget, matching the reference
// implementation's COMMAND_BUF_SIZE (1024 * 512 bytes).
const ringCapacity = 1024 * 512

// maxAlign mirrors alignof(max_align_t): every command's accounted size
// is rounded up to this boundary.
const maxAlign = 8

func align(n int) int {
	return (n + maxAlign - 1) &^ (maxAlign - 1)
}

// ring is the append-only command buffer for one in-progress frame. It
// is reset (not reallocated) at the start of every frame.
type ring struct {
	commands  []Command
	used      int
	exhausted bool // set by the first failed push, cleared by reset
}

func newRing() *ring {
	return &ring{commands: make([]Command, 0, 256)}
}

// push appends cmd if there is room left in the frame's budget,
// mirroring push_command's overflow handling: a full ring drops the
// command and warns, rather than growing or panicking. After the first
// overflow every further push is dropped silently until reset.
func (r *ring) push(cmd Command) bool {
	if r.exhausted {
		return false
	}
	size := cmd.encodedSize()
	if r.used+size > ringCapacity {
		Warnf("rencache: exhausted command buffer")
		r.exhausted = true
		return false
	}
	r.used += size
	r.commands = append(r.commands, cmd)
	return true
}

func (r *ring) reset() {
	r.commands = r.commands[:0]
	r.used = 0
	r.exhausted = false
}
