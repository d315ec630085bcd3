// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffmark

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
)

// Fold assigns a fold level to each diff line from its style alone: a
// "diff "/"Index: " command line opens at level 0, a "---"/"+++"/"***"
// header line opens at level 1, an "@@"-style position line (for a hunk,
// not a deletion marker) opens at level 2, and any other line inherits one
// level below the nearest open header, or its predecessor's level
// unchanged. Ported from FoldDiffDoc.
func (lx *Lexer) Fold(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	curLine := acc.GetLine(startPos)
	curLineStart := acc.LineStart(curLine)

	prevLevelNum := 0
	prevHeader := false
	if curLine > 0 {
		word := acc.Level(curLine - 1)
		prevLevelNum = word & document.LevelMask
		prevHeader = word&document.Header != 0
	}

	for {
		lineType := acc.StyleAt(curLineStart)
		var nextLevelNum int
		var nextHeader bool
		switch {
		case lineType == Command:
			nextLevelNum, nextHeader = 0, true
		case lineType == Header:
			nextLevelNum, nextHeader = 1, true
		case lineType == Position && acc.CharAt(curLineStart) != '-':
			nextLevelNum, nextHeader = 2, true
		case prevHeader:
			nextLevelNum, nextHeader = prevLevelNum+1, false
		default:
			nextLevelNum, nextHeader = prevLevelNum, false
		}

		if nextHeader && nextLevelNum == prevLevelNum && prevHeader {
			acc.SetLevel(curLine-1, lexer.FoldLevelWord(prevLevelNum, false))
		}

		acc.SetLevel(curLine, lexer.FoldLevelWord(nextLevelNum, nextHeader))
		prevLevelNum, prevHeader = nextLevelNum, nextHeader

		curLine++
		curLineStart = acc.LineStart(curLine)
		if endPos <= curLineStart {
			break
		}
	}
}
