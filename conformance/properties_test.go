// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conformance exercises the cross-lexer properties spec.md §9
// states as P1-P6, against concrete lexers rather than in the abstract.
// Each test below is named after the property it checks.
package conformance

import (
	"testing"

	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexers/clike"
	"github.com/inkfold/inkfold/lexers/luabracket"
)

// sources used across properties; chosen to exercise preprocessor state,
// strings, and line continuations so a coverage gap in [0, N) is likely to
// show up as an untouched style byte.
const clikeSrc = "#if 1\nint x = 1;\n#else\nint y = 2;\n#endif\nchar *s = \"a\\\"b\";\n"

func TestP1Coverage(t *testing.T) {
	const sentinel = 0xFF // no clike style uses this value

	run := func(length int) {
		buf := document.NewBuffer([]byte(clikeSrc))
		buf.SetStyleRange(0, len(clikeSrc), sentinel)
		lx := clike.New()
		lx.WordListSet(0, "int char")
		lx.Lex(buf, 0, length, 0)

		styles := buf.StyleSlice(0, length)
		for i, s := range styles {
			if s == sentinel {
				t.Errorf("length=%d: byte %d (%q) left undefined after Lex", length, i, clikeSrc[i])
			}
		}
	}

	run(len(clikeSrc))
	run(len(clikeSrc) / 2)
}

func TestP2Idempotence(t *testing.T) {
	buf := document.NewBuffer([]byte(clikeSrc))
	lx := clike.New()
	lx.WordListSet(0, "int char")
	lx.Lex(buf, 0, len(clikeSrc), 0)
	first := buf.StyleSlice(0, len(clikeSrc))

	initStyle := byte(0)
	if len(clikeSrc) > 1 {
		initStyle = buf.StyleAt(0)
	}
	lx.Lex(buf, 0, len(clikeSrc), initStyle)
	second := buf.StyleSlice(0, len(clikeSrc))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("byte %d changed style on re-lex with its own output style: %d -> %d", i, first[i], second[i])
		}
	}
}

func TestP3DeterminismGivenContext(t *testing.T) {
	prefix := "int a = 1;\n"
	tailA := "int b = 2;\n"
	tailB := "int b = 2;\n// identical suffix, different history before it\n"

	srcA := prefix + tailA
	srcB := prefix + tailB

	bufA := document.NewBuffer([]byte(srcA))
	lxA := clike.New()
	lxA.WordListSet(0, "int")
	lxA.Lex(bufA, 0, len(srcA), 0)

	bufB := document.NewBuffer([]byte(srcB))
	lxB := clike.New()
	lxB.WordListSet(0, "int")
	lxB.Lex(bufB, 0, len(srcB), 0)

	stylesA := bufA.StyleSlice(0, len(prefix)+len(tailA))
	stylesB := bufB.StyleSlice(0, len(prefix)+len(tailA))
	for i := range stylesA {
		if stylesA[i] != stylesB[i] {
			t.Fatalf("byte %d differs despite identical prefix and line-state: %d vs %d", i, stylesA[i], stylesB[i])
		}
	}
}

func TestP4FoldMonotonicity(t *testing.T) {
	src := "{\nif (1) {\nx();\n}\n}\n"
	buf := document.NewBuffer([]byte(src))
	lx := clike.New()
	lx.Lex(buf, 0, len(src), 0)
	lx.Fold(buf, 0, len(src), 0)

	lines := buf.LineCount()
	for l := 0; l < lines-1; l++ {
		level := buf.Level(l) & document.LevelMask
		next := buf.Level(l+1) & document.LevelMask
		isHeader := buf.Level(l)&document.Header != 0
		if isHeader && !(level < next) {
			t.Errorf("line %d marked HEADER but level %d is not strictly less than line %d's level %d", l, level, l+1, next)
		}
	}
}

// TestP5LineStateRoundTrip exercises the property's actual intent: a
// lexer resuming mid-document from only its predecessor line's stored
// line-state word must reproduce exactly what a from-scratch Lex over the
// whole document produces. luabracket is used rather than clike/makefile
// because it is the one lexer in this tree that writes and reads
// document.Accessor's line-state word directly (its long-bracket
// separator count and \z-continuation/doc-comment flags, spec.md §4.12),
// so resuming from it is meaningfully tested rather than vacuous.
func TestP5LineStateRoundTrip(t *testing.T) {
	src := "a = 1\nb = [==[\nfirst\nsecond\nthird\n]==]\nc = 2\n"

	baseline := document.NewBuffer([]byte(src))
	baselineLex := luabracket.New()
	baselineLex.Lex(baseline, 0, len(src), 0)
	wantStyles := baseline.StyleSlice(0, len(src))

	for line := 1; line < baseline.LineCount(); line++ {
		startPos := baseline.LineStart(line)
		if startPos >= len(src) {
			continue
		}

		resumed := document.NewBuffer([]byte(src))
		// Seed only the immediately preceding line's state word, not the
		// whole history, mirroring a host that persists per-line state
		// and discards everything else between edits.
		resumed.SetLineState(line-1, baseline.LineState(line-1))
		initStyle := wantStyles[startPos-1]

		lx := luabracket.New()
		lx.Lex(resumed, startPos, len(src)-startPos, initStyle)

		gotStyles := resumed.StyleSlice(startPos, len(src))
		for i, got := range gotStyles {
			pos := startPos + i
			if want := wantStyles[pos]; got != want {
				t.Fatalf("resuming Lex at line %d (pos %d): byte %d styled %d, from-scratch lex gives %d",
					line, startPos, pos, got, want)
			}
		}
	}
}

func TestP6WordListEquivalence(t *testing.T) {
	lx := clike.New()

	// First load establishes a baseline; any nonempty blob differs from
	// the lexer's initial empty list, so it must report a re-lex.
	if r := lx.WordListSet(0, "int char"); r == -1 {
		t.Fatal("first WordListSet(0, ...) reported -1 (unchanged) for a non-empty initial load")
	}

	// Re-submitting the same set, reordered and with repeated whitespace,
	// is the same sorted set and must report -1 (no re-lex needed).
	if r := lx.WordListSet(0, "char   int"); r != -1 {
		t.Errorf("WordListSet(0, ...) with an equivalent set returned %d, want -1", r)
	}

	// A genuinely different set must report a re-lex (0, per this
	// lexer's "always restart from the top" convention).
	if r := lx.WordListSet(0, "int char long"); r == -1 {
		t.Error("WordListSet(0, ...) with a changed set returned -1, want a re-lex start line")
	}

	// An unknown slot index always reports -1, per the Lexer interface's
	// contract for PropertySet-style "unknown name" sentinels.
	if r := lx.WordListSet(99, "anything"); r != -1 {
		t.Errorf("WordListSet(99, ...) = %d, want -1 for an out-of-range slot", r)
	}
}
