// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import "testing"

func TestAccessorLineIndex(t *testing.T) {
	buf := NewBuffer([]byte("abc\ndef\r\nghi\nj"))
	a := NewAccessor(buf, 0)

	if got := a.GetLine(0); got != 0 {
		t.Errorf("GetLine(0) = %d, want 0", got)
	}
	if got := a.GetLine(4); got != 1 {
		t.Errorf("GetLine(4) = %d, want 1", got)
	}
	if got := a.GetLine(9); got != 2 {
		t.Errorf("GetLine(9) = %d, want 2", got)
	}
	if got := a.LineStart(2); got != 9 {
		t.Errorf("LineStart(2) = %d, want 9", got)
	}
	if got := a.LineEnd(0); got != 3 {
		t.Errorf("LineEnd(0) = %d, want 3 (before \\n)", got)
	}
	if got := a.LineEnd(1); got != 7 {
		t.Errorf("LineEnd(1) = %d, want 7 (before \\r\\n)", got)
	}
	lastLine := a.GetLine(buf.Len() - 1)
	if got := a.LineEnd(lastLine); got != buf.Len() {
		t.Errorf("LineEnd(last) = %d, want %d (no trailing terminator)", got, buf.Len())
	}
}

func TestAccessorCharAtOutOfRange(t *testing.T) {
	buf := NewBuffer([]byte("ab"))
	a := NewAccessor(buf, 0)
	if a.CharAt(-1) != 0 {
		t.Error("expected 0 for negative position")
	}
	if a.CharAt(100) != 0 {
		t.Error("expected 0 for out-of-range position")
	}
	if a.CharAt(0) != 'a' {
		t.Error("expected 'a' at position 0")
	}
}

func TestColourToMonotonic(t *testing.T) {
	buf := NewBuffer([]byte("aaabbbccc"))
	a := NewAccessor(buf, 0)
	a.ColourTo(3, 1)
	a.ColourTo(6, 2)
	a.ColourTo(9, 3)
	want := []byte{1, 1, 1, 2, 2, 2, 3, 3, 3}
	got := buf.StyleSlice(0, 9)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("style[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatch(t *testing.T) {
	buf := NewBuffer([]byte("R\"delim(abc)delim\""))
	a := NewAccessor(buf, 0)
	if !a.Match(0, "R\"") {
		t.Error("expected match at start")
	}
	if a.Match(0, "XY") {
		t.Error("did not expect match")
	}
	if a.Match(len(buf.Text())-1, "XY") {
		t.Error("match must not read past end of document")
	}
}

func TestLineStateRoundTrip(t *testing.T) {
	buf := NewBuffer([]byte("a\nb\nc"))
	a := NewAccessor(buf, 0)
	a.SetLineState(0, 0xDEADBEEF)
	if got := a.LineState(0); got != 0xDEADBEEF {
		t.Errorf("LineState(0) = %x, want DEADBEEF", got)
	}
	if got := a.LineState(-1); got != 0 {
		t.Errorf("LineState(-1) = %x, want 0 (start-of-document sentinel)", got)
	}
}

func TestChangeLexerState(t *testing.T) {
	buf := NewBuffer([]byte("abc"))
	a := NewAccessor(buf, 0)
	a.ChangeLexerState(0, 3)
	changes := a.Changes()
	if len(changes) != 1 || changes[0].Start != 0 || changes[0].End != 3 {
		t.Errorf("unexpected changes: %+v", changes)
	}
}
