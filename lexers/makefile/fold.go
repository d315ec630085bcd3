// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package makefile

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
)

// Fold nests a rule's tab-indented recipe lines one level under the target
// line that introduces them. The reference lexer has no folder to port
// (its LexerModule registration passes a null fold callback); this is a
// minimal addition grounded directly in Makefile syntax rather than in the
// source file, since recipe lines are required by `make` itself to begin
// with a tab.
func (lx *Lexer) Fold(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	line := acc.GetLine(startPos)
	lineStart := acc.LineStart(line)
	for lineStart < endPos {
		contentEnd := acc.LineEnd(line)
		blank := contentEnd == lineStart

		var levelNum int
		var header bool
		switch {
		case blank:
			levelNum, header = 0, false
		case acc.CharAt(lineStart) == '\t':
			levelNum, header = 1, false
		default:
			levelNum, header = 0, true
		}

		word := lexer.FoldLevelWord(levelNum, header)
		if blank {
			word = lexer.WithWhite(word)
		}
		if word != acc.Level(line) {
			acc.SetLevel(line, word)
		}

		next := acc.LineStart(line + 1)
		if next <= lineStart {
			break
		}
		line++
		lineStart = next
	}
}
