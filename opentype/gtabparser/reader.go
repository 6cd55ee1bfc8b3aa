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

package gtabparser

// Reader is a borrowed view onto a byte range of a GSUB table. All
// multi-byte OpenType integers are big-endian; every accessor here does
// the byte-swap on read on the caller's behalf.
//
// A Reader never copies the underlying bytes: Sub returns a Reader over a
// sub-range of the same backing array, the Go analogue of the reference
// implementation's "base + offset, reinterpret the bytes there" pointer
// arithmetic.
type Reader struct {
	data []byte
}

// NewReader wraps data for big-endian structured access. data is not
// copied; the caller must not mutate it while the Reader (or any Reader
// derived from it with Sub) is in use.
func NewReader(data []byte) Reader {
	return Reader{data: data}
}

// Len returns the number of bytes remaining in the view.
func (r Reader) Len() int {
	return len(r.data)
}

// Bytes returns the n raw bytes starting at offset.
func (r Reader) Bytes(offset, n int) []byte {
	return r.data[offset : offset+n]
}

// Sub returns a Reader over the same backing array, starting at offset.
// This is the "pointer plus offset" primitive of the OpenType table
// format: offsets throughout GSUB are relative to their enclosing
// structure, and descending into a nested structure is just re-basing
// the view.
func (r Reader) Sub(offset int) Reader {
	return Reader{data: r.data[offset:]}
}

// Uint16 reads a big-endian uint16 at offset.
func (r Reader) Uint16(offset int) uint16 {
	b := r.data
	return uint16(b[offset])<<8 | uint16(b[offset+1])
}

// Int16 reads a big-endian, two's-complement int16 at offset.
func (r Reader) Int16(offset int) int16 {
	return int16(r.Uint16(offset))
}

// Uint32 reads a big-endian uint32 at offset.
func (r Reader) Uint32(offset int) uint32 {
	b := r.data
	return uint32(b[offset])<<24 | uint32(b[offset+1])<<16 |
		uint32(b[offset+2])<<8 | uint32(b[offset+3])
}

// Tag reads the 4-byte tag at offset (a script, language, or feature tag).
func (r Reader) Tag(offset int) [4]byte {
	var t [4]byte
	copy(t[:], r.data[offset:offset+4])
	return t
}

// Uint16Slice reads count consecutive big-endian uint16 values starting at
// offset.
func (r Reader) Uint16Slice(offset, count int) []uint16 {
	out := make([]uint16, count)
	for i := range out {
		out[i] = r.Uint16(offset + 2*i)
	}
	return out
}
