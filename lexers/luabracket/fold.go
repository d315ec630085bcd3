// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luabracket

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
)

func isFoldWordStart(ch byte) bool {
	switch ch {
	case 'i', 'd', 'f', 'e', 'r', 'u':
		return true
	default:
		return false
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Fold implements spec.md §4.12's fold rules for the long-bracket lexer:
// the fixed set of folding keywords (if/do/function/repeat open, end/until
// close), `{`/`(` `}`/`)` operator nesting, and multi-line long-bracket
// string/comment spans. Ported from LexerLua::Fold.
func (lx *Lexer) Fold(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	visibleChars := 0
	lineCurrent := acc.GetLine(startPos)
	levelPrev := acc.Level(lineCurrent) & document.LevelMask
	levelCurrent := levelPrev

	chNext := acc.CharAt(startPos)
	st := initStyle
	styleNext := acc.StyleAt(startPos)

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = acc.CharAt(i + 1)
		stylePrev := st
		st = styleNext
		if i+1 < endPos {
			styleNext = acc.StyleAt(i + 1)
		}
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		switch {
		case st == Word:
			if st != stylePrev && isFoldWordStart(ch) {
				const maxFoldWord = 9
				var s []byte
				for j := 0; j < maxFoldWord; j++ {
					c := acc.CharAt(i + j)
					if !setWord.Contains(c) {
						break
					}
					s = append(s, c)
				}
				switch string(s) {
				case "if", "do", "function", "repeat":
					levelCurrent++
				case "end", "until":
					levelCurrent--
				}
			}
		case st == Operator:
			switch ch {
			case '{', '(':
				levelCurrent++
			case '}', ')':
				levelCurrent--
			}
		case st == LiteralString || st == Comment:
			switch {
			case stylePrev != st:
				levelCurrent++
			case styleNext != st:
				levelCurrent--
			}
		}

		if atEOL {
			header := levelCurrent > levelPrev
			word := lexer.FoldLevelWord(levelPrev, header)
			if visibleChars == 0 && lx.opts.foldCompact {
				word = lexer.WithWhite(word)
			}
			if word != acc.Level(lineCurrent) {
				acc.SetLevel(lineCurrent, word)
			}
			lineCurrent++
			levelPrev = levelCurrent
			visibleChars = 0
		}
		if !isSpaceByte(ch) {
			visibleChars++
		}
	}

	word := lexer.FoldLevelWord(levelPrev, false)
	if word != acc.Level(lineCurrent) {
		acc.SetLevel(lineCurrent, word)
	}
}
