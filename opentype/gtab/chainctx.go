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

// chainRule is a decoded ChainedSequenceRule/ChainedClassSequenceRule:
// backtrack is stored closest-glyph-first (matched with a -1 step from
// pos-1), input is the remainder of the input sequence after the
// initial (coverage-matched) glyph, and lookahead follows the input run.
type chainRule struct {
	backtrack []uint16
	input     []uint16 // len = inputGlyphCount-1
	lookahead []uint16
	actions   []NestedAction
}

func readChainRule(r gtabparser.Reader) chainRule {
	off := 0
	backtrackCount := int(r.Uint16(off))
	off += 2
	backtrack := r.Uint16Slice(off, backtrackCount)
	off += backtrackCount * 2

	inputGlyphCount := int(r.Uint16(off))
	off += 2
	input := r.Uint16Slice(off, inputGlyphCount-1)
	off += (inputGlyphCount - 1) * 2

	lookaheadCount := int(r.Uint16(off))
	off += 2
	lookahead := r.Uint16Slice(off, lookaheadCount)
	off += lookaheadCount * 2

	lookupCount := int(r.Uint16(off))
	off += 2
	actions := make([]NestedAction, lookupCount)
	for i := range actions {
		actions[i] = NestedAction{
			SequenceIndex:   r.Uint16(off + i*4),
			LookupListIndex: LookupIndex(r.Uint16(off + i*4 + 2)),
		}
	}
	return chainRule{backtrack: backtrack, input: input, lookahead: lookahead, actions: actions}
}

func (rule chainRule) matches(state *applyState, pos int) (glyphCount int, ok bool) {
	glyphCount = len(rule.input) + 1
	if pos+glyphCount+len(rule.lookahead) > state.seq.Len() {
		return 0, false
	}
	if len(rule.backtrack) > pos {
		return 0, false
	}
	if !checkGlyphSequence(state.seq, pos+1, rule.input, +1) {
		return 0, false
	}
	if !checkGlyphSequence(state.seq, pos-1, rule.backtrack, -1) {
		return 0, false
	}
	if !checkGlyphSequence(state.seq, pos+glyphCount, rule.lookahead, +1) {
		return 0, false
	}
	return glyphCount, true
}

// gsub6f1 is Chained Sequence Context format 1: exact-glyph-id backtrack
// / input / lookahead rules, chosen by coverage index.
type gsub6f1 struct {
	coverage gtabparser.Reader
	ruleSets []gtabparser.Reader
}

func readGsub6Format1(r gtabparser.Reader) *gsub6f1 {
	coverageOffset := int(r.Uint16(2))
	count := int(r.Uint16(4))
	g := &gsub6f1{coverage: r.Sub(coverageOffset)}
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

func (g *gsub6f1) Apply(state *applyState, pos int) (int, bool) {
	idx, ok := coverageIndex(g.coverage, state.seq.At(pos))
	if !ok || idx >= len(g.ruleSets) || g.ruleSets[idx].Len() < 2 {
		return 0, false
	}
	ruleSet := g.ruleSets[idx]
	count := int(ruleSet.Uint16(0))
	for i := 0; i < count; i++ {
		off := int(ruleSet.Uint16(2 + i*2))
		rule := readChainRule(ruleSet.Sub(off))
		if glyphCount, ok := rule.matches(state, pos); ok {
			return runNestedActions(state, pos, glyphCount, rule.actions), true
		}
	}
	return 0, false
}

func (rule chainRule) matchesClass(state *applyState, pos int, backtrackCD, inputCD, lookaheadCD gtabparser.Reader) (glyphCount int, ok bool) {
	glyphCount = len(rule.input) + 1
	if pos+glyphCount+len(rule.lookahead) > state.seq.Len() {
		return 0, false
	}
	if len(rule.backtrack) > pos {
		return 0, false
	}
	if !checkClassSequence(state.seq, pos+1, inputCD, rule.input, +1) {
		return 0, false
	}
	if !checkClassSequence(state.seq, pos-1, backtrackCD, rule.backtrack, -1) {
		return 0, false
	}
	if !checkClassSequence(state.seq, pos+glyphCount, lookaheadCD, rule.lookahead, +1) {
		return 0, false
	}
	return glyphCount, true
}

// gsub6f2 is Chained Sequence Context format 2: glyph classes instead
// of exact ids, one rule set per starting input class.
type gsub6f2 struct {
	coverage                          gtabparser.Reader
	backtrackCD, inputCD, lookaheadCD gtabparser.Reader
	ruleSets                          []gtabparser.Reader
}

func readGsub6Format2(r gtabparser.Reader) *gsub6f2 {
	g := &gsub6f2{
		coverage:    r.Sub(int(r.Uint16(2))),
		backtrackCD: r.Sub(int(r.Uint16(4))),
		inputCD:     r.Sub(int(r.Uint16(6))),
		lookaheadCD: r.Sub(int(r.Uint16(8))),
	}
	count := int(r.Uint16(10))
	for i := 0; i < count; i++ {
		off := int(r.Uint16(12 + i*2))
		if off == 0 {
			g.ruleSets = append(g.ruleSets, gtabparser.Reader{})
			continue
		}
		g.ruleSets = append(g.ruleSets, r.Sub(off))
	}
	return g
}

func (g *gsub6f2) Apply(state *applyState, pos int) (int, bool) {
	if !covers(g.coverage, state.seq.At(pos)) {
		return 0, false
	}
	class := int(glyphClass(g.inputCD, state.seq.At(pos)))
	if class >= len(g.ruleSets) || g.ruleSets[class].Len() < 2 {
		return 0, false
	}
	ruleSet := g.ruleSets[class]
	count := int(ruleSet.Uint16(0))
	for i := 0; i < count; i++ {
		off := int(ruleSet.Uint16(2 + i*2))
		rule := readChainRule(ruleSet.Sub(off))
		if glyphCount, ok := rule.matchesClass(state, pos, g.backtrackCD, g.inputCD, g.lookaheadCD); ok {
			return runNestedActions(state, pos, glyphCount, rule.actions), true
		}
	}
	return 0, false
}

// gsub6f3 is Chained Sequence Context format 3: an explicit, fixed
// backtrack/input/lookahead list of CoverageTables, no rule alternatives.
type gsub6f3 struct {
	backtrack []gtabparser.Reader
	input     []gtabparser.Reader
	lookahead []gtabparser.Reader
	actions   []NestedAction
}

func readGsub6Format3(r gtabparser.Reader) *gsub6f3 {
	g := &gsub6f3{}
	off := 2
	backtrackCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < backtrackCount; i++ {
		g.backtrack = append(g.backtrack, r.Sub(int(r.Uint16(off+i*2))))
	}
	off += backtrackCount * 2

	inputCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < inputCount; i++ {
		g.input = append(g.input, r.Sub(int(r.Uint16(off+i*2))))
	}
	off += inputCount * 2

	lookaheadCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < lookaheadCount; i++ {
		g.lookahead = append(g.lookahead, r.Sub(int(r.Uint16(off+i*2))))
	}
	off += lookaheadCount * 2

	lookupCount := int(r.Uint16(off))
	off += 2
	for i := 0; i < lookupCount; i++ {
		g.actions = append(g.actions, NestedAction{
			SequenceIndex:   r.Uint16(off + i*4),
			LookupListIndex: LookupIndex(r.Uint16(off + i*4 + 2)),
		})
	}
	return g
}

func (g *gsub6f3) Apply(state *applyState, pos int) (int, bool) {
	glyphCount := len(g.input)
	if glyphCount == 0 {
		return 0, false
	}
	if pos+glyphCount+len(g.lookahead) > state.seq.Len() {
		return 0, false
	}
	if len(g.backtrack) > pos {
		return 0, false
	}
	if !checkCoverageSequence(state.seq, pos, g.input, +1) {
		return 0, false
	}
	if !checkCoverageSequence(state.seq, pos-1, g.backtrack, -1) {
		return 0, false
	}
	if !checkCoverageSequence(state.seq, pos+glyphCount, g.lookahead, +1) {
		return 0, false
	}
	return runNestedActions(state, pos, glyphCount, g.actions), true
}

func readChainContext(r gtabparser.Reader) Subtable {
	if r.Len() < 2 {
		return nil
	}
	switch format := r.Uint16(0); format {
	case 1:
		return readGsub6Format1(r)
	case 2:
		return readGsub6Format2(r)
	case 3:
		return readGsub6Format3(r)
	default:
		Warnf("gsub: unknown ChainedSequenceContext format %d", format)
		return nil
	}
}
