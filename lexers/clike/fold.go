// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clike

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
)

const baseFoldLevel = 0

func isStreamCommentStyle(s byte) bool {
	switch s {
	case Comment, CommentDoc, PreprocessorComment, PreprocessorCommentDoc:
		return true
	default:
		return false
	}
}

// Fold implements spec.md §4.11's fold rules for the C family: brace
// nesting, multi-line comment spans, and #if/#region preprocessor nesting,
// each independently toggleable via the fold.* properties. Ported from
// LexerCPP::Fold.
func (lx *Lexer) Fold(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	lineCurrent := acc.GetLine(startPos)
	levelCurrent := baseFoldLevel
	if lineCurrent > 0 {
		levelCurrent = doc.Level(lineCurrent-1) & document.LevelMask
	}
	lineStartNext := acc.LineStart(lineCurrent + 1)
	levelMinCurrent := levelCurrent
	levelNext := levelCurrent

	visibleChars := 0
	inLineComment := false

	chNext := acc.CharAt(startPos)
	styleNext := MaskActive(acc.StyleAt(startPos))
	st := MaskActive(initStyle)

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = acc.CharAt(i + 1)
		st = styleNext
		styleNext = MaskActive(acc.StyleAt(i + 1))
		atEOL := i == lineStartNext-1

		if st == CommentLine || st == CommentLineDoc {
			inLineComment = true
		}
		if lx.opts.foldComment && isStreamCommentStyle(st) && !inLineComment {
			stylePrev := MaskActive(acc.StyleAt(i - 1))
			if i == startPos {
				stylePrev = MaskActive(initStyle)
			}
			switch {
			case !isStreamCommentStyle(stylePrev):
				levelNext++
			case !isStreamCommentStyle(styleNext) && !atEOL:
				levelNext--
			}
		}
		if lx.opts.foldComment && st == CommentLine {
			if ch == '/' && chNext == '/' {
				chNext2 := acc.CharAt(i + 2)
				switch chNext2 {
				case '{':
					levelNext++
				case '}':
					levelNext--
				}
			}
		}
		if lx.opts.foldPreprocessor && st == Preprocessor {
			if ch == '#' {
				j := i + 1
				for j < endPos && (acc.CharAt(j) == ' ' || acc.CharAt(j) == '\t') {
					j++
				}
				switch {
				case acc.Match(j, "region"), acc.Match(j, "if"):
					levelNext++
				case acc.Match(j, "end"):
					levelNext--
				}
			}
		}
		if st == Operator {
			switch ch {
			case '{', '[':
				if levelMinCurrent > levelNext {
					levelMinCurrent = levelNext
				}
				levelNext++
			case '}', ']':
				levelNext--
			}
		}
		if ch != ' ' && ch != '\t' {
			visibleChars++
		}

		if atEOL || i == endPos-1 {
			levelUse := levelCurrent
			if lx.opts.foldAtElse {
				levelUse = levelMinCurrent
			}
			word := lexer.FoldLevelWord(levelUse, levelUse < levelNext)
			if visibleChars == 0 && lx.opts.foldCompact {
				word = lexer.WithWhite(word)
			}
			if word != acc.Level(lineCurrent) {
				acc.SetLevel(lineCurrent, word)
			}
			lineCurrent++
			lineStartNext = acc.LineStart(lineCurrent + 1)
			levelCurrent = levelNext
			levelMinCurrent = levelCurrent
			visibleChars = 0
			inLineComment = false
		}
	}
}
