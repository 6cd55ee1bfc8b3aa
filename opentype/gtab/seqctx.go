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

package gtab

import "github.com/lite-xl/corelayer/opentype/gtabparser"

// seqRule is a decoded SequenceRule/ClassSequenceRule: the remainder of
// the input sequence it expects (as glyph ids or as classes, depending
// on the owning format) plus the nested lookups to run on a match.
type seqRule struct {
	rest    []uint16 // glyphCount-1 entries: ids (format 1) or classes (format 2)
	actions []NestedAction
}

func readSeqRule(r gtabparser.Reader) seqRule {
	glyphCount := int(r.Uint16(0))
	lookupCount := int(r.Uint16(2))
	rest := r.Uint16Slice(4, glyphCount-1)
	actOff := 4 + (glyphCount-1)*2
	actions := make([]NestedAction, lookupCount)
	for i := range actions {
		actions[i] = NestedAction{
			SequenceIndex:   r.Uint16(actOff + i*4),
			LookupListIndex: LookupIndex(r.Uint16(actOff + i*4 + 2)),
		}
	}
	return seqRule{rest: rest, actions: actions}
}

// gsub5f1 is Sequence Context format 1: per-coverage-index rule sets of
// exact glyph-id sequences.
type gsub5f1 struct {
	coverage gtabparser.Reader
	ruleSets []gtabparser.Reader // by coverage index; Len()==0 if absent
}

func readGsub5Format1(r gtabparser.Reader) *gsub5f1 {
	coverageOffset := int(r.Uint16(2))
	count := int(r.Uint16(4))
	g := &gsub5f1{coverage: r.Sub(coverageOffset)}
	for i := 0; i < count; i++ {
		off := int(r.Uint16(6 + i*2))
		if off == 0 {
			g.ruleSets = append(g.ruleSets, gtabparser.Reader{})
			continue
		}
		g.ruleSets = append(g.ruleSets, r.Sub(off))
	}
	return g
}

func (g *gsub5f1) Apply(state *applyState, pos int) (int, bool) {
	idx, ok := coverageIndex(g.coverage, state.seq.At(pos))
	if !ok || idx >= len(g.ruleSets) || g.ruleSets[idx].Len() < 2 {
		return 0, false
	}
	ruleSet := g.ruleSets[idx]
	count := int(ruleSet.Uint16(0))
	for i := 0; i < count; i++ {
		off := int(ruleSet.Uint16(2 + i*2))
		rule := readSeqRule(ruleSet.Sub(off))
		glyphCount := len(rule.rest) + 1
		if pos+glyphCount > state.seq.Len() {
			continue
		}
		if !checkGlyphSequence(state.seq, pos+1, rule.rest, +1) {
			continue
		}
		return runNestedActions(state, pos, glyphCount, rule.actions), true
	}
	return 0, false
}

// gsub5f2 is Sequence Context format 2: glyph classes instead of exact
// ids, with a single rule set per starting class.
type gsub5f2 struct {
	coverage gtabparser.Reader
	classDef gtabparser.Reader
	ruleSets []gtabparser.Reader // by class
}

func readGsub5Format2(r gtabparser.Reader) *gsub5f2 {
	coverageOffset := int(r.Uint16(2))
	classDefOffset := int(r.Uint16(4))
	count := int(r.Uint16(6))
	g := &gsub5f2{coverage: r.Sub(coverageOffset), classDef: r.Sub(classDefOffset)}
	for i := 0; i < count; i++ {
		off := int(r.Uint16(8 + i*2))
		if off == 0 {
			g.ruleSets = append(g.ruleSets, gtabparser.Reader{})
			continue
		}
		g.ruleSets = append(g.ruleSets, r.Sub(off))
	}
	return g
}

func (g *gsub5f2) Apply(state *applyState, pos int) (int, bool) {
	if !covers(g.coverage, state.seq.At(pos)) {
		return 0, false
	}
	class := int(glyphClass(g.classDef, state.seq.At(pos)))
	if class >= len(g.ruleSets) || g.ruleSets[class].Len() < 2 {
		return 0, false
	}
	ruleSet := g.ruleSets[class]
	count := int(ruleSet.Uint16(0))
	for i := 0; i < count; i++ {
		off := int(ruleSet.Uint16(2 + i*2))
		rule := readSeqRule(ruleSet.Sub(off))
		glyphCount := len(rule.rest) + 1
		if pos+glyphCount > state.seq.Len() {
			continue
		}
		if !checkClassSequence(state.seq, pos+1, g.classDef, rule.rest, +1) {
			continue
		}
		return runNestedActions(state, pos, glyphCount, rule.actions), true
	}
	return 0, false
}

// gsub5f3 is Sequence Context format 3: an explicit, fixed-length list
// of per-position CoverageTables, no rule alternatives.
type gsub5f3 struct {
	coverages []gtabparser.Reader
	actions   []NestedAction
}

func readGsub5Format3(r gtabparser.Reader) *gsub5f3 {
	glyphCount := int(r.Uint16(2))
	lookupCount := int(r.Uint16(4))
	g := &gsub5f3{}
	for i := 0; i < glyphCount; i++ {
		off := int(r.Uint16(6 + i*2))
		g.coverages = append(g.coverages, r.Sub(off))
	}
	actOff := 6 + glyphCount*2
	for i := 0; i < lookupCount; i++ {
		g.actions = append(g.actions, NestedAction{
			SequenceIndex:   r.Uint16(actOff + i*4),
			LookupListIndex: LookupIndex(r.Uint16(actOff + i*4 + 2)),
		})
	}
	return g
}

func (g *gsub5f3) Apply(state *applyState, pos int) (int, bool) {
	glyphCount := len(g.coverages)
	if pos+glyphCount > state.seq.Len() {
		return 0, false
	}
	if !checkCoverageSequence(state.seq, pos, g.coverages, +1) {
		return 0, false
	}
	return runNestedActions(state, pos, glyphCount, g.actions), true
}

func readSeqContext(r gtabparser.Reader) Subtable {
	if r.Len() < 2 {
		return nil
	}
	switch format := r.Uint16(0); format {
	case 1:
		return readGsub5Format1(r)
	case 2:
		return readGsub5Format2(r)
	case 3:
		return readGsub5Format3(r)
	default:
		Warnf("gsub: unknown SequenceContext format %d", format)
		return nil
	}
}
