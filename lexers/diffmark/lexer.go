// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffmark

import (
	"strconv"
	"strings"

	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
)

// Lexer is the diffmark lexer instance (spec.md §4.9, component C9). It
// carries no options of its own; the property bag is empty but still wired
// through lexopt.Set so it satisfies the same contract as every other
// lexer in the registry.
type Lexer struct {
	optSet *lexopt.Set
}

// New constructs a diffmark lexer with default options.
func New() *Lexer {
	return &Lexer{optSet: lexopt.NewSet()}
}

func (lx *Lexer) Name() string { return "diff" }

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

// leadingNonZeroNumber reports whether s begins with a run of digits that
// parse to a nonzero integer, mirroring the reference lexer's atoi-based
// "does this position offset look real" check.
func leadingNonZeroNumber(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	n, err := strconv.Atoi(s[:i])
	return err == nil && n != 0
}

// classifyLine assigns one style to an entire line's content (excluding its
// terminator), ported from ColouriseDiffLine.
func classifyLine(line []byte) byte {
	s := string(line)
	switch {
	case strings.HasPrefix(s, "diff "):
		return Command
	case strings.HasPrefix(s, "Index: "):
		return Command
	case strings.HasPrefix(s, "---"):
		rest := s[3:]
		if rest == "" {
			return Position
		}
		if rest[0] == ' ' && leadingNonZeroNumber(rest[1:]) && !strings.Contains(s, "/") {
			return Position
		}
		return Header
	case strings.HasPrefix(s, "+++"):
		rest := s[3:]
		if rest != "" && rest[0] == ' ' && leadingNonZeroNumber(rest[1:]) && !strings.Contains(s, "/") {
			return Position
		}
		return Header
	case strings.HasPrefix(s, "===="):
		return Header
	case strings.HasPrefix(s, "***"):
		rest := s[3:]
		switch {
		case rest == "":
			return Position
		case rest[0] == '*':
			return Position
		case rest[0] == ' ' && leadingNonZeroNumber(rest[1:]) && !strings.Contains(s, "/"):
			return Position
		default:
			return Header
		}
	case strings.HasPrefix(s, "? "):
		return Header
	case len(s) > 0 && s[0] == '@':
		return Position
	case len(s) > 0 && s[0] >= '0' && s[0] <= '9':
		return Position
	case len(s) > 0 && (s[0] == '-' || s[0] == '<'):
		return Deleted
	case len(s) > 0 && (s[0] == '+' || s[0] == '>'):
		return Added
	case len(s) > 0 && s[0] == '!':
		return Changed
	case len(s) > 0 && s[0] != ' ':
		return Comment
	default:
		return Default
	}
}

// Lex styles one line at a time: no byte-level state machine and no
// cross-line carry, since a diff's prefix classification never depends on a
// previous line's style (unlike the long-bracket lexer's delimiter state).
func (lx *Lexer) Lex(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	endPos := startPos + length

	line := acc.GetLine(startPos)
	lineStart := acc.LineStart(line)
	for lineStart < endPos {
		contentEnd := acc.LineEnd(line)
		content := acc.Bytes(lineStart, contentEnd)
		st := classifyLine(content)

		next := acc.LineStart(line + 1)
		if next <= lineStart {
			next = acc.Len()
		}
		acc.ColourTo(next, st)

		line++
		lineStart = next
		if lineStart >= acc.Len() {
			break
		}
	}
	acc.Complete(endPos, Default)
}
