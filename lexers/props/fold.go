// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
)

// isFoldWhitespace matches Scintilla's isspacechar: space plus the 0x09-0x0d
// control range (tab, LF, VT, FF, CR).
func isFoldWhitespace(ch byte) bool {
	return ch == ' ' || (ch >= 0x09 && ch <= 0x0d)
}

// Fold nests every line under the most recent `[section]` header: a
// section-styled line is itself a fold header at the base level, and every
// other line sits one level below the nearest open header. Ported from
// FoldPropsDoc.
func (lx *Lexer) Fold(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	visibleChars := 0
	lineCurrent := acc.GetLine(startPos)

	chNext := acc.CharAt(startPos)
	styleNext := acc.StyleAt(startPos)
	headerPoint := false

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = acc.CharAt(i + 1)
		st := styleNext
		styleNext = acc.StyleAt(i + 1)
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		if st == Section {
			headerPoint = true
		}

		if atEOL {
			levelNum := 0
			if lineCurrent > 0 {
				prev := acc.Level(lineCurrent - 1)
				if prev&document.Header != 0 {
					levelNum = 1
				} else {
					levelNum = prev & document.LevelMask
				}
			}
			if headerPoint {
				levelNum = 0
			}
			word := lexer.FoldLevelWord(levelNum, headerPoint)
			if visibleChars == 0 && lx.opts.foldCompact {
				word = lexer.WithWhite(word)
			}
			if word != acc.Level(lineCurrent) {
				acc.SetLevel(lineCurrent, word)
			}
			lineCurrent++
			visibleChars = 0
			headerPoint = false
		}
		if !isFoldWhitespace(ch) {
			visibleChars++
		}
	}

	levelNum := 0
	if lineCurrent > 0 {
		prev := acc.Level(lineCurrent - 1)
		if prev&document.Header != 0 {
			levelNum = 1
		} else {
			levelNum = prev & document.LevelMask
		}
	}
	flagsNext := acc.Level(lineCurrent)
	acc.SetLevel(lineCurrent, levelNum|(flagsNext&^document.LevelMask))
}
