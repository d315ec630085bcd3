// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package makefile

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
)

// Lexer is the makefile lexer instance (spec.md §4.9, component C9).
type Lexer struct {
	optSet *lexopt.Set
}

// New constructs a makefile lexer. It takes no options, matching the
// reference lexer's empty word-list descriptor and property reads.
func New() *Lexer {
	return &Lexer{optSet: lexopt.NewSet()}
}

func (lx *Lexer) Name() string { return "makefile" }

func (lx *Lexer) PropertySet(name, text string) (changed, ok bool) {
	return lx.optSet.PropertySet(name, text)
}

func (lx *Lexer) PropertyGet(name string) (string, bool) { return lx.optSet.PropertyGet(name) }

func (lx *Lexer) PropertyNames() []string { return lx.optSet.PropertyNames() }

func (lx *Lexer) DescribeProperty(name string) (string, bool) {
	return lx.optSet.DescribeProperty(name)
}

func (lx *Lexer) PropertyType(name string) (lexopt.Kind, bool) {
	return lx.optSet.PropertyType(name)
}

func (lx *Lexer) DescribeWordListSets() []string { return nil }

func (lx *Lexer) WordListSet(n int, text string) int { return -1 }

func isSpaceChar(ch byte) bool { return ch == ' ' || ch == '\t' }

func byteAt(b []byte, i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

// colouriseLine applies ColouriseMakeLine's classification to one line's
// content (excluding its terminator), committing through termEnd.
func (lx *Lexer) colouriseLine(acc *document.Accessor, lineStart int, content []byte, termEnd int) {
	n := len(content)
	bCommand := n > 0 && content[0] == '\t'

	i := 0
	for i < n && isSpaceChar(content[i]) {
		i++
	}
	if byteAt(content, i) == '#' {
		acc.ColourTo(termEnd, Comment)
		return
	}
	if byteAt(content, i) == '!' {
		acc.ColourTo(termEnd, Preprocessor)
		return
	}

	state := byte(Default)
	bSpecial := false
	lastNonSpace := -1

	for i < n {
		if content[i] == '$' && byteAt(content, i+1) == '(' {
			acc.ColourTo(lineStart+i, state)
			state = Identifier
		} else if state == Identifier && content[i] == ')' {
			acc.ColourTo(lineStart+i+1, state)
			state = Default
		}

		if !bSpecial && !bCommand {
			switch {
			case content[i] == ':':
				if i+1 < n && content[i+1] == '=' {
					if lastNonSpace >= 0 {
						acc.ColourTo(lineStart+lastNonSpace+1, Identifier)
					}
					acc.ColourTo(lineStart+i, Default)
					acc.ColourTo(lineStart+i+2, Operator)
				} else {
					if lastNonSpace >= 0 {
						acc.ColourTo(lineStart+lastNonSpace+1, Target)
					}
					acc.ColourTo(lineStart+i, Default)
					acc.ColourTo(lineStart+i+1, Operator)
				}
				bSpecial = true
				state = Default
			case content[i] == '=':
				if lastNonSpace >= 0 {
					acc.ColourTo(lineStart+lastNonSpace+1, Identifier)
				}
				acc.ColourTo(lineStart+i, Default)
				acc.ColourTo(lineStart+i+1, Operator)
				bSpecial = true
				state = Default
			}
		}

		if !isSpaceChar(content[i]) {
			lastNonSpace = i
		}
		i++
	}

	if state == Identifier {
		acc.ColourTo(termEnd, IdeOl)
	} else {
		acc.ColourTo(termEnd, Default)
	}
}

// Lex drives colouriseLine one line at a time; no cross-line state is
// carried, matching the reference implementation.
func (lx *Lexer) Lex(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	line := acc.GetLine(startPos)
	lineStart := acc.LineStart(line)
	for lineStart < endPos {
		contentEnd := acc.LineEnd(line)
		content := acc.Bytes(lineStart, contentEnd)

		next := acc.LineStart(line + 1)
		if next <= lineStart {
			next = acc.Len()
		}
		lx.colouriseLine(acc, lineStart, content, next)

		line++
		lineStart = next
		if lineStart >= acc.Len() {
			break
		}
	}
	acc.Complete(endPos, Default)
}
