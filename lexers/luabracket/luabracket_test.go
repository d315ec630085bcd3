// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luabracket

import (
	"testing"

	"github.com/inkfold/inkfold/document"
)

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func styleRuns(styles []byte) []struct {
	Style byte
	Len   int
} {
	var runs []struct {
		Style byte
		Len   int
	}
	for _, s := range styles {
		if len(runs) > 0 && runs[len(runs)-1].Style == s {
			runs[len(runs)-1].Len++
			continue
		}
		runs = append(runs, struct {
			Style byte
			Len   int
		}{s, 1})
	}
	return runs
}

func TestKeywordAndNumber(t *testing.T) {
	src := "local x = 0x1F"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.WordListSet(wlPrimary, "local")
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	at := func(sub string) byte { return styles[indexOf(src, sub)] }
	if at("local") != Word {
		t.Errorf("local styled %d, want Word", at("local"))
	}
	if at("x") != Identifier {
		t.Errorf("x styled %d, want Identifier", at("x"))
	}
	if at("0x1F") != Number {
		t.Errorf("0x1F styled %d, want Number", at("0x1F"))
	}
}

func TestS5LongBracketString(t *testing.T) {
	src := "s = [==[one\n]]two]==]"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	start := indexOf(src, "[==[")
	for i := start; i < len(src); i++ {
		if styles[i] != LiteralString {
			t.Fatalf("byte %d (%q) styled %d, want LiteralString (whole literal must span the embedded ]])", i, src[i], styles[i])
		}
	}
	if at := styles[indexOf(src, "s")]; at != Identifier {
		t.Errorf("s styled %d, want Identifier", at)
	}
	if at := styles[indexOf(src, "=")]; at != Operator {
		t.Errorf("= styled %d, want Operator", at)
	}
}

func TestS6LongBracketComment(t *testing.T) {
	src := "--[[ x\n y ]]z"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	closeEnd := indexOf(src, "]]") + 2
	for i := 0; i < closeEnd; i++ {
		if styles[i] != Comment {
			t.Fatalf("byte %d (%q) styled %d, want Comment", i, src[i], styles[i])
		}
	}
	if got := styles[indexOf(src, "z")]; got != Identifier {
		t.Errorf("z styled %d, want Identifier", got)
	}
}

func TestS7GotoLabel(t *testing.T) {
	src := "goto fin; ::fin::"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.WordListSet(wlPrimary, "goto")
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	if got := styles[indexOf(src, "goto")]; got != Word {
		t.Errorf("goto styled %d, want Word", got)
	}
	if got := styles[indexOf(src, "fin")]; got != Label {
		t.Errorf("fin (goto target) styled %d, want Label", got)
	}
	if got := styles[indexOf(src, ";")]; got != Operator {
		t.Errorf("';' styled %d, want Operator", got)
	}
	labelStart := indexOf(src, "::fin::")
	for i := labelStart; i < labelStart+len("::fin::"); i++ {
		if styles[i] != Label {
			t.Errorf("byte %d of ::fin:: styled %d, want Label", i, styles[i])
		}
	}
}
