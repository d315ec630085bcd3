// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clike implements the C-family lexer (spec.md §4.11, component
// C11): C, C++, Java, JavaScript, and kin, the representative "complex
// lexer" built on top of every lower component (charset, wordlist,
// document, style, preproc, lexopt, lexer, registry). It is
// grounded on Lexilla's LexCPP.cxx, ported rather than reinvented: the
// state-transition table below mirrors LexerCPP::Lex's switch over
// MaskActive(sc.state) line for line, generalized to this module's
// Context/Accessor/Table types in place of Scintilla's StyleContext,
// LexAccessor, and SymbolTable.
package clike

// Style values. Kept under ActiveFlag (0x40) so a style byte can carry the
// "inside an inactive #if region" bit without colliding with a primary
// style number, matching LexCPP.cxx's convention of ORing activeFlag into
// every SCE_C_* value while a preprocessor level is suppressed.
const (
	Default byte = iota
	Comment
	CommentLine
	CommentDoc
	CommentLineDoc
	CommentDocKeyword
	CommentDocKeywordError
	Number
	Word
	Word2
	String
	Character
	UUID
	Preprocessor
	PreprocessorComment
	PreprocessorCommentDoc
	Operator
	Identifier
	StringEOL
	Verbatim
	TripleVerbatim
	Regex
	HashQuotedString
	EscapeSequence
	StringRaw
	UserLiteral
	TaskMarker
	GlobalClass
)

// ActiveFlag is ORed into a style value while the byte lies inside an
// inactive (suppressed by #if/#ifdef) conditional region, so a theme can
// grey it out without losing the underlying classification. Grounded on
// LexCPP.cxx's `enum { activeFlag = 0x40 }`.
const ActiveFlag byte = 0x40

// MaskActive strips ActiveFlag, recovering the underlying style for switch
// dispatch. Grounded on LexCPP.cxx's MaskActive.
func MaskActive(style byte) byte { return style &^ ActiveFlag }
