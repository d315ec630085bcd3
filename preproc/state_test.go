// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preproc

import "testing"

func TestStartEndSectionBasic(t *testing.T) {
	s := NewLinePPState()
	if s.IsInactive() {
		t.Fatal("fresh state should be active")
	}
	s.StartSection(true)
	if s.IsInactive() {
		t.Fatal("taken #if true should stay active")
	}
	s.StartSection(false)
	if !s.IsInactive() {
		t.Fatal("nested #if false should be inactive")
	}
	s.EndSection()
	if s.IsInactive() {
		t.Fatal("ending the inner level should restore the outer active state")
	}
	s.EndSection()
	if s.Level != -1 {
		t.Fatalf("Level = %d, want -1 after matching #endif", s.Level)
	}
}

func TestInvertCurrentLevel(t *testing.T) {
	s := NewLinePPState()
	s.StartSection(false) // #if 0
	if !s.IsInactive() {
		t.Fatal("expected inactive under #if 0")
	}
	s.InvertCurrentLevel() // #else
	if s.IsInactive() {
		t.Fatal("expected #else of a false #if to be active")
	}
	s.InvertCurrentLevel() // a second #else-like flip should not re-activate
	if !s.CurrentIfTaken() {
		t.Fatal("expected level to be marked taken")
	}
}

func TestOuterInactiveMasksInner(t *testing.T) {
	s := NewLinePPState()
	s.StartSection(false) // outer #if 0
	s.StartSection(true)  // inner #if 1, still inside a suppressed outer branch
	if !s.IsInactive() {
		t.Fatal("inner branch should be inactive because the outer branch is inactive")
	}
}

func TestHistoryForLineFallback(t *testing.T) {
	var h History
	if got := h.ForLine(5); got.Level != -1 {
		t.Fatalf("unrecorded line should fall back to the zero state, got Level=%d", got.Level)
	}
	s := NewLinePPState()
	s.StartSection(true)
	h.Add(3, s)
	if got := h.ForLine(3); got.Level != 0 {
		t.Fatalf("ForLine(3).Level = %d, want 0", got.Level)
	}
	if got := h.ForLine(4); got.Level != -1 {
		t.Fatalf("ForLine(4) should fall back since line 4 was never recorded, got Level=%d", got.Level)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewLinePPState()
	s.StartSection(true)
	c := Clone(s)
	c.StartSection(false)
	if s.Level != 0 {
		t.Fatalf("original mutated through clone: Level=%d", s.Level)
	}
	if c.Level != 1 {
		t.Fatalf("clone.Level = %d, want 1", c.Level)
	}
}
