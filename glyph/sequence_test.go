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

import "testing"

func TestOverwriteOne(t *testing.T) {
	s := NewFromIDs([]ID{10, 11, 12})
	if !s.OverwriteOne(1, 99) {
		t.Fatal("OverwriteOne reported out of range")
	}
	if got := s.At(1); got != 99 {
		t.Errorf("s[1] = %d, want 99", got)
	}
	if s.OverwriteOne(4, 1) {
		t.Error("OverwriteOne(4, ...) on a 3-glyph sequence should fail")
	}
}

func TestAppendNoAlias(t *testing.T) {
	s := NewFromIDs([]ID{1, 2, 3})
	src := []ID{4, 5}
	if !s.Append(src) {
		t.Fatal("Append failed")
	}
	want := []ID{1, 2, 3, 4, 5}
	got := s.Glyphs()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("s[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestAppendAliasedGrowth appends a slice of the sequence back onto the end
// of itself, forcing a reallocation while the source aliases the old
// backing store. The appended region must equal the original slice.
func TestAppendAliasedGrowth(t *testing.T) {
	s := New(3) // tight capacity forces growth on the first append
	s.Append([]ID{10, 20, 30})

	src := s.Glyphs()[1:3] // {20, 30}, aliases s's backing store
	if !s.Append(src) {
		t.Fatal("Append failed")
	}
	want := []ID{10, 20, 30, 20, 30}
	got := s.Glyphs()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("s[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestOverwriteRangeSelfShift exercises the in-place tail-shift pattern
// used by multiple-substitution and ligature substitution: overwriting a
// range with a slice of the sequence's own, later-overlapping, tail.
func TestOverwriteRangeSelfShift(t *testing.T) {
	s := NewFromIDs([]ID{1, 2, 3, 4, 5})
	// shift the tail [2,3,4,5] right by one, to make room at index 1
	if !s.OverwriteRange(2, s.Glyphs()[1:5]) {
		t.Fatal("OverwriteRange failed")
	}
	want := []ID{1, 2, 2, 3, 4, 5}
	got := s.Glyphs()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("s[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestShrink(t *testing.T) {
	s := NewFromIDs([]ID{1, 2, 3})
	if !s.Shrink(1) {
		t.Fatal("Shrink failed")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Shrink(5) {
		t.Error("Shrink(5) on a 2-glyph sequence should fail")
	}
}

func TestOverwriteRangeFromEqualsLen(t *testing.T) {
	s := NewFromIDs([]ID{1, 2, 3})
	if !s.OverwriteRange(s.Len(), []ID{4, 5}) {
		t.Fatal("OverwriteRange(len, ...) should be accepted as append")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if s.OverwriteRange(s.Len()+1, []ID{6}) {
		t.Error("OverwriteRange(len+1, ...) should fail")
	}
}

func TestClone(t *testing.T) {
	s := NewFromIDs([]ID{1, 2, 3})
	c := s.Clone()
	c.OverwriteOne(0, 99)
	if s.At(0) != 1 {
		t.Error("mutating the clone affected the original")
	}
}
