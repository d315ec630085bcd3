// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clike

import (
	"testing"

	"github.com/inkfold/inkfold/document"
)

// styleRuns collapses a byte slice of per-position style bytes into
// (style, length) runs, the shape spec.md §8's scenario table expects.
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

func TestS1NumberAndKeyword(t *testing.T) {
	src := "int x = 0x1Fu;"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.WordListSet(wlPrimary, "int")
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	at := func(sub string) byte {
		i := indexOf(src, sub)
		return styles[i]
	}
	if at("int") != Word {
		t.Errorf("int styled %d, want Word", at("int"))
	}
	if at("x") != Identifier {
		t.Errorf("x styled %d, want Identifier", at("x"))
	}
	if at("=") != Operator {
		t.Errorf("= styled %d, want Operator", at("="))
	}
	if at("0x1Fu") != Number {
		t.Errorf("0x1Fu styled %d, want Number", at("0x1Fu"))
	}
	if styles[len(src)-1] != Operator {
		t.Errorf("trailing ';' styled %d, want Operator", styles[len(src)-1])
	}
}

func TestS2PreprocessorConditionalGreying(t *testing.T) {
	src := "#if 0\nA();\n#endif\nB();\n"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	lineAStart := indexOf(src, "A();")
	lineBStart := indexOf(src, "B();")

	for i := 0; i < len("A();"); i++ {
		if styles[lineAStart+i]&ActiveFlag == 0 {
			t.Fatalf("byte %d of A(); not flagged inactive: style=%d", i, styles[lineAStart+i])
		}
	}
	for i := 0; i < len("B();"); i++ {
		if styles[lineBStart+i]&ActiveFlag != 0 {
			t.Fatalf("byte %d of B(); unexpectedly flagged inactive: style=%d", i, styles[lineBStart+i])
		}
	}
}

func TestS3RawStringSingleRun(t *testing.T) {
	src := `R"delim(abc"def)delim"`
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	runs := styleRuns(styles)
	rawRuns := 0
	for _, r := range runs {
		if MaskActive(r.Style) == StringRaw {
			rawRuns++
			if r.Len != len(src) {
				t.Errorf("raw string run length = %d, want %d (whole literal)", r.Len, len(src))
			}
		}
	}
	if rawRuns == 0 {
		t.Fatal("expected at least one StringRaw run covering the whole literal")
	}
}

func TestS4RegexAfterReturn(t *testing.T) {
	src := `return /ab\/c/i;`
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.WordListSet(wlPrimary, "return")
	lx.Lex(buf, 0, len(src), 0)

	styles := buf.StyleSlice(0, len(src))
	i := indexOf(src, "/ab")
	if MaskActive(styles[i]) != Regex {
		t.Errorf("regex literal styled %d, want Regex", styles[i])
	}
}

func TestS8BraceFolding(t *testing.T) {
	src := "{\n{\n}\n}\n"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)
	lx.Fold(buf, 0, len(src), 0)

	levels := []int{buf.Level(0), buf.Level(1), buf.Level(2), buf.Level(3)}
	if levels[0]&document.LevelMask != baseFoldLevel || levels[0]&document.Header == 0 {
		t.Errorf("line 0 level = %#x, want base with HEADER", levels[0])
	}
	if levels[1]&document.LevelMask != baseFoldLevel+1 || levels[1]&document.Header == 0 {
		t.Errorf("line 1 level = %#x, want base+1 with HEADER", levels[1])
	}
	if levels[2]&document.LevelMask != baseFoldLevel+2 {
		t.Errorf("line 2 level = %#x, want base+2", levels[2])
	}
	if levels[3]&document.LevelMask != baseFoldLevel+1 {
		t.Errorf("line 3 level = %#x, want base+1", levels[3])
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
