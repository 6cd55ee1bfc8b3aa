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

package glyph

// growthFactor is applied to a newly required length when a Sequence's
// backing store has to be reallocated, so that repeated single-glyph
// growth does not reallocate on every call.
const growthFactor = 1.3

// Sequence is a growable, overwrite-in-place sequence of glyph ids. It is
// the buffer the GSUB lookup interpreter rewrites as it walks a chain of
// lookups: single and multiple substitution overwrite one or more elements
// in place, ligature substitution shrinks it, and multiple substitution
// grows it.
//
// The zero value is not usable; construct a Sequence with [New] or
// [NewFromIDs].
type Sequence struct {
	data   []ID // len(data) always equals the current capacity
	length int
}

// New returns an empty Sequence with room for capacity glyphs before the
// first reallocation.
func New(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{data: make([]ID, capacity)}
}

// NewFromIDs returns a Sequence containing a copy of src.
func NewFromIDs(src []ID) *Sequence {
	s := New(len(src))
	s.Append(src)
	return s
}

// Len returns the number of glyphs currently in the sequence.
func (s *Sequence) Len() int {
	return s.length
}

// Cap returns the sequence's current capacity.
func (s *Sequence) Cap() int {
	return len(s.data)
}

// At returns the glyph at position i. The caller must ensure i < Len();
// like a plain slice index, an out-of-range access panics.
func (s *Sequence) At(i int) ID {
	return s.data[i]
}

// Glyphs returns the sequence's contents as a slice. The slice aliases the
// Sequence's backing store and is only valid until the next mutation.
func (s *Sequence) Glyphs() []ID {
	return s.data[:s.length]
}

// Clone returns a deep copy of s.
func (s *Sequence) Clone() *Sequence {
	out := New(s.length)
	out.Append(s.Glyphs())
	return out
}

// Equal reports whether s and other contain the same glyphs in the same
// order.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.length != other.length {
		return false
	}
	for i := 0; i < s.length; i++ {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (s *Sequence) growTo(minCap int) {
	if minCap <= len(s.data) {
		return
	}
	newCap := int(float64(minCap) * growthFactor)
	if newCap < minCap {
		// overflowed: fall back to the exact requirement
		newCap = minCap
	}
	newData := make([]ID, newCap)
	copy(newData, s.data[:s.length])
	s.data = newData
}

// OverwriteOne sets the glyph at position i to g. It requires i <= Len();
// i == Len() is accepted (and grows the backing store, but not the logical
// length) so that a caller may always address one past the last glyph. It
// reports whether i was in range.
func (s *Sequence) OverwriteOne(i int, g ID) bool {
	if i < 0 || i > s.length {
		return false
	}
	if i >= len(s.data) {
		s.growTo(i + 1)
	}
	s.data[i] = g
	return true
}

// OverwriteRange overwrites the n glyphs starting at from with src[:n],
// where n = len(src). It requires from <= Len(). If from+n extends past
// the current length, the sequence grows to from+n, enlarging its
// capacity by [growthFactor] if needed.
//
// src may alias the sequence's own backing store (as it does when a
// lookup shifts the glyph sequence's own tail); the write is performed
// with memmove semantics and is safe even when the write also forces a
// reallocation, since src was evaluated by the caller before the call and
// Go keeps the memory it (still) references alive for the duration of
// this call.
func (s *Sequence) OverwriteRange(from int, src []ID) bool {
	if from < 0 || from > s.length {
		return false
	}
	n := len(src)
	newLength := s.length
	if from+n > s.length {
		newLength = from + n
	}
	s.growTo(newLength)
	copy(s.data[from:from+n], src)
	s.length = newLength
	return true
}

// Append appends src to the end of the sequence. It is equivalent to
// OverwriteRange(Len(), src).
func (s *Sequence) Append(src []ID) bool {
	return s.OverwriteRange(s.length, src)
}

// Shrink reduces the sequence's length by k. It requires k <= Len().
func (s *Sequence) Shrink(k int) bool {
	if k < 0 || k > s.length {
		return false
	}
	s.length -= k
	return true
}
