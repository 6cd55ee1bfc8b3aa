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

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/image/math/fixed"
)

// FontFallbackMax is the number of font fallbacks a DrawText command can
// carry, matching the reference implementation's fixed-size font array.
const FontFallbackMax = 4

type commandKind int8

const (
	cmdSetClip commandKind = iota
	cmdDrawRect
	cmdDrawText
	cmdDrawTexture
)

// Command is one recorded drawing operation. It is a tagged record: only
// the fields relevant to Kind are meaningful, mirroring the reference
// implementation's Command union.
type Command struct {
	kind commandKind
	rect Rect

	// cmdDrawRect
	rectColor Color

	// cmdDrawText
	textColor Color
	fonts     [FontFallbackMax]Font
	textX     fixed.Int26_6
	tabSize   int
	text      string

	// cmdDrawTexture
	surface *Surface
	source  Rect
}

// baseSize is an implementation-defined per-command accounting unit
// (header + fixed fields) the ring budgets against ringCapacity; it has
// no meaning beyond bookkeeping, since unlike the reference C
// implementation, commands here are Go values, not a packed byte buffer.
const baseSize = 48

// encodedSize reports how much of the ring's capacity this command
// consumes, aligned to maxAlign, mirroring push_command's alignment
// rounding.
func (c *Command) encodedSize() int {
	n := baseSize
	if c.kind == cmdDrawText {
		n += len(c.text)
	}
	return align(n)
}

// hashBytes returns a deterministic byte encoding of the command's
// content, for feeding into the cell-grid's FNV-1a hash. Two commands
// that would render identically hash identically.
func (c *Command) hashBytes() []byte {
	buf := make([]byte, 0, baseSize+len(c.text))
	buf = append(buf, byte(c.kind))
	buf = appendRect(buf, c.rect)

	switch c.kind {
	case cmdDrawRect:
		buf = appendColor(buf, c.rectColor)

	case cmdDrawText:
		buf = appendColor(buf, c.textColor)
		buf = binary.BigEndian.AppendUint32(buf, uint32(c.textX))
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(c.tabSize)))
		for _, f := range c.fonts {
			buf = fmt.Appendf(buf, "%p", f)
		}
		buf = append(buf, c.text...)

	case cmdDrawTexture:
		buf = appendRect(buf, c.source)
		buf = fmt.Appendf(buf, "%p", c.surface)
	}
	return buf
}

func appendRect(buf []byte, r Rect) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(int32(r.X)))
	buf = binary.BigEndian.AppendUint32(buf, uint32(int32(r.Y)))
	buf = binary.BigEndian.AppendUint32(buf, uint32(int32(r.W)))
	buf = binary.BigEndian.AppendUint32(buf, uint32(int32(r.H)))
	return buf
}

func appendColor(buf []byte, c Color) []byte {
	return append(buf, c.R, c.G, c.B, c.A)
}
