// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
)

// Lexer is the props lexer instance (spec.md §4.9, component C9).
type Lexer struct {
	opts   options
	optSet *lexopt.Set
}

// New constructs a props lexer with default options.
func New() *Lexer {
	lx := &Lexer{opts: defaultOptions()}
	lx.optSet = newOptionSet(&lx.opts)
	return lx
}

func (lx *Lexer) Name() string { return "props" }

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

func isAssignChar(ch byte) bool { return ch == '=' || ch == ':' }

// colouriseLine applies ColourisePropsLine's classification to one line's
// content (excluding its terminator), committing through termEnd (one past
// the line's terminator, or the document end for a final unterminated
// line).
func (lx *Lexer) colouriseLine(acc *document.Accessor, lineStart int, content []byte, termEnd int) {
	n := len(content)
	i := 0
	if lx.opts.allowInitialSpaces {
		for i < n && isSpaceChar(content[i]) {
			i++
		}
	} else if n > 0 && isSpaceChar(content[0]) {
		i = n
	}

	if i >= n {
		acc.ColourTo(termEnd, Default)
		return
	}

	switch {
	case content[i] == '#' || content[i] == '!' || content[i] == ';':
		acc.ColourTo(termEnd, Comment)
	case content[i] == '[':
		acc.ColourTo(termEnd, Section)
	case content[i] == '@':
		// The reference lexer colours the '@' marker itself as DEFVAL, then
		// (due to a pre/post-increment mismatch checking the '@' byte
		// itself as an assign char, which it never is) always falls
		// through to colouring the remainder DEFAULT rather than ever
		// reaching ASSIGNMENT here.
		acc.ColourTo(lineStart+i+1, DefVal)
		acc.ColourTo(termEnd, Default)
	default:
		j := i
		for j < n && !isAssignChar(content[j]) {
			j++
		}
		if j < n {
			acc.ColourTo(lineStart+j, Key)
			acc.ColourTo(lineStart+j+1, Assignment)
		}
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
