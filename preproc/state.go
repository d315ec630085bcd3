// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preproc tracks preprocessor conditional nesting (spec.md §4.6,
// component C6): the per-line #if/#elif/#else/#endif stack, the macro table
// fed by #define/#undef, and the expression evaluator #if/#elif conditions
// run through. It is grounded on Lexilla's LexCPP.cxx (LinePPState, PPStates,
// PPDefinition, EvaluateTokens/EvaluateExpression), ported field-for-field
// rather than redesigned, per spec.md §9's direction to preserve its
// left-to-right, no-proper-precedence evaluation order bit for bit.
package preproc

import "github.com/jinzhu/copier"

// maxLevel is the deepest #if nesting level tracked in the state/ifTaken
// bitmasks. Nesting past it is still counted by Level so EndSection stays
// balanced, but StartSection/EndSection/InvertCurrentLevel silently stop
// touching the bitmasks, matching LexCPP.cxx's ValidLevel() guard.
const maxLevel = 32

// LinePPState is the conditional-compilation state as of the start of one
// line: how deeply nested in #if blocks the line is, which enclosing levels
// are currently suppressing output, and which levels have already taken a
// branch (so a later #else/#elif at that level stays inactive). Fields are
// exported so [Clone] can deep-copy a state with copier.Copy.
type LinePPState struct {
	State   int
	IfTaken int
	Level   int
}

// NewLinePPState returns the state for a line outside any #if block.
func NewLinePPState() LinePPState {
	return LinePPState{Level: -1}
}

// Clone returns a deep copy of s via copier.Copy.
func Clone(s LinePPState) LinePPState {
	var out LinePPState
	_ = copier.Copy(&out, &s)
	return out
}

func (s LinePPState) validLevel() bool {
	return s.Level >= 0 && s.Level < maxLevel
}

func (s LinePPState) maskLevel() int {
	return 1 << uint(s.Level)
}

// IsInactive reports whether any enclosing #if level is currently
// suppressing this line (its own branch wasn't taken).
func (s LinePPState) IsInactive() bool {
	return s.State != 0
}

// CurrentIfTaken reports whether the current level has already committed to
// a branch (so a following #else/#elif must stay inactive regardless of its
// own condition).
func (s LinePPState) CurrentIfTaken() bool {
	return s.IfTaken&s.maskLevel() != 0
}

// StartSection pushes a new #if (or #ifdef/#ifndef) level, active if on.
func (s *LinePPState) StartSection(on bool) {
	s.Level++
	if !s.validLevel() {
		return
	}
	if on {
		s.State &^= s.maskLevel()
		s.IfTaken |= s.maskLevel()
	} else {
		s.State |= s.maskLevel()
		s.IfTaken &^= s.maskLevel()
	}
}

// EndSection pops the current #endif level.
func (s *LinePPState) EndSection() {
	if s.validLevel() {
		s.State &^= s.maskLevel()
		s.IfTaken &^= s.maskLevel()
	}
	s.Level--
}

// InvertCurrentLevel flips the current level's active/inactive flag for an
// #else, or an #elif that evaluates true, and marks the level taken.
func (s *LinePPState) InvertCurrentLevel() {
	if s.validLevel() {
		s.State ^= s.maskLevel()
		s.IfTaken |= s.maskLevel()
	}
}

// History holds one LinePPState per source line, indexed by line number. A
// line never visited returns the zero (outside-any-#if) state, matching
// PPStates::ForLine's fallback.
type History struct {
	byLine []LinePPState
}

// ForLine returns the recorded state for line, or NewLinePPState() if line
// hasn't been recorded (or is the document start).
func (h *History) ForLine(line int) LinePPState {
	if line > 0 && line < len(h.byLine) {
		return h.byLine[line]
	}
	return NewLinePPState()
}

// Add records the state as of the start of line.
func (h *History) Add(line int, s LinePPState) {
	if line+1 > len(h.byLine) {
		grown := make([]LinePPState, line+1)
		copy(grown, h.byLine)
		for i := len(h.byLine); i < line; i++ {
			grown[i] = NewLinePPState()
		}
		h.byLine = grown
	}
	h.byLine[line] = s
}
