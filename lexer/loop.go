// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "github.com/inkfold/inkfold/document"

// Backtrack walks backward from startLine while safeAtLineStart reports
// false, stopping at line 0 or the first line it reports true for. This is
// step 1 of the generic loop (spec.md §4.10): a lexer whose state machine
// can only safely resume at certain line boundaries (e.g. outside a
// multi-line string) calls this to find where to actually start, then
// widens its requested range to cover the skipped lines.
func Backtrack(startLine int, safeAtLineStart func(line int) bool) int {
	line := startLine
	for line > 0 && !safeAtLineStart(line) {
		line--
	}
	return line
}

// FoldLevelWord packs a nesting level and header-line flag into the word
// format [document.Document.SetLevel] expects (spec.md §3: HEADER=0x2000,
// level mask 0x0FFF). The WHITE flag (blank lines fold with their
// neighbour) is left to callers that track blank lines, via WithWhite.
func FoldLevelWord(level int, header bool) int {
	w := level & document.LevelMask
	if header {
		w |= document.Header
	}
	return w
}

// WithWhite ORs the WHITE flag into an already-built fold-level word.
func WithWhite(word int) int {
	return word | document.White
}
