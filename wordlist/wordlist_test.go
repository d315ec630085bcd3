// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordlist

import "testing"

func TestInList(t *testing.T) {
	l := New("int float double if else return", false)
	if !l.InList("int") {
		t.Error("expected int in list")
	}
	if l.InList("integer") {
		t.Error("did not expect integer in list")
	}
}

func TestCaseFold(t *testing.T) {
	l := New("Select From Where", true)
	if !l.InList("SELECT") {
		t.Error("expected case-folded match")
	}
}

func TestInListAbbreviated(t *testing.T) {
	l := New("FUNC~TION END~IF", false)
	for _, s := range []string{"FUNC", "FUNCT", "FUNCTI", "FUNCTION"} {
		if !l.InListAbbreviated(s, '~') {
			t.Errorf("expected %q to match abbreviated FUNC~TION", s)
		}
	}
	if l.InListAbbreviated("FUNCTIONX", '~') {
		t.Error("did not expect FUNCTIONX to match")
	}
	if l.InListAbbreviated("FUN", '~') {
		t.Error("did not expect FUN (shorter than required prefix) to match")
	}
	if !l.InListAbbreviated("END", '~') {
		t.Error("expected END to match END~IF")
	}
}

func TestEqual(t *testing.T) {
	a := New("b a c", false)
	b := New("c b a", false)
	if !a.Equal(b) {
		t.Error("expected lists with same content in different order to be equal")
	}
	c := New("c b a d", false)
	if a.Equal(c) {
		t.Error("expected lists with different content to not be equal")
	}
}

func TestSetRebuilds(t *testing.T) {
	l := New("a b c", false)
	if !l.InList("a") {
		t.Fatal("setup")
	}
	l.Set("x y z")
	if l.InList("a") {
		t.Error("expected Set to discard old content")
	}
	if !l.InList("x") {
		t.Error("expected Set to load new content")
	}
}
