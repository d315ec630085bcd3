// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer defines the per-language lexer contract (spec.md §4.9,
// component C9) and the shared helpers every lexer's Lex/Fold builds on
// (spec.md §4.10, component C10): [Backtrack], which walks back to a safe
// resumption boundary, and the fold-level word helpers [FoldLevelWord] and
// [WithWhite]. It is grounded on Lexilla's ILexer5 contract
// (include/ILexer.h, referenced throughout original_source/scintilla/lexers)
// and on Scintilla's LexerModule dispatch table.
package lexer

import (
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
)

// Lexer is the per-language object a [Registry] entry constructs: it owns
// its word lists, options, and any cross-call state (macro tables, per-line
// fold-state maps), and exposes the property bag, word-list feed, and the
// two entry points a host calls, Lex and Fold.
type Lexer interface {
	// Name is the lexer's stable textual identifier (e.g. "clike", "lua").
	Name() string

	// PropertySet parses text and applies it to the named option. ok is
	// false for an unknown name (the host sees this as PropertySet
	// returning -1, per spec.md §4.9); changed reports whether applying it
	// altered the option's value.
	PropertySet(name, text string) (changed, ok bool)
	PropertyGet(name string) (string, bool)
	PropertyNames() []string
	DescribeProperty(name string) (string, bool)
	PropertyType(name string) (lexopt.Kind, bool)

	// DescribeWordListSets returns the human-readable label for each
	// word-list slot this lexer accepts, in index order.
	DescribeWordListSets() []string

	// WordListSet loads slot n from the given whitespace-separated blob. It
	// returns -1 if n is out of range or the list is unchanged (P6), or the
	// first line from which re-lexing is required (conventionally 0, since
	// a changed word list invalidates everything already lexed with it).
	WordListSet(n int, text string) int

	// Lex styles [startPos, startPos+length) of doc. initStyle is the style
	// byte at startPos-1 (or 0 at position 0); a lexer that cannot safely
	// resume from startPos backtracks internally and widens the range it
	// actually styles (it still never styles outside what Complete commits
	// through the accessor, which the host observes via doc itself).
	Lex(doc document.Document, startPos, length int, initStyle byte)

	// Fold annotates each line touched by [startPos, startPos+length) with
	// a fold-level word (spec.md §3's HEADER/WHITE/level-mask encoding).
	Fold(doc document.Document, startPos, length int, initStyle byte)
}

// SubstyleLexer is the optional substyle API (spec.md §4.9): a lexer that
// lets identifier classes above the fixed style set be user-subdivided
// (e.g. distinguishing "known type name" from plain identifier) without
// inventing a new primary style. Grounded on Lexilla's ILexerWithSubStyles
// (AllocateSubStyles/SubStylesStart/SubStylesLength/FreeSubStyles/
// SetIdentifiers in LexCPP.cxx).
type SubstyleLexer interface {
	Lexer

	// AllocateSubstyles reserves count new substyles rooted at the primary
	// style styleBase, returning the first allocated substyle number, or -1
	// if styleBase cannot take substyles or count is invalid.
	AllocateSubstyles(styleBase, count int) int

	// SubstylesStart returns the first substyle allocated for styleBase, or
	// -1 if none has been allocated.
	SubstylesStart(styleBase int) int

	// SubstylesLength returns how many substyles were allocated for
	// styleBase.
	SubstylesLength(styleBase int) int

	// FreeSubstyles releases every substyle allocation, reverting to the
	// lexer's fixed primary styles only.
	FreeSubstyles()

	// SetIdentifiers binds identifiers to substyle, so that Lex classifies
	// any of those exact identifiers as substyle rather than the primary
	// style their keyword table would otherwise assign.
	SetIdentifiers(substyle int, identifiers []string)
}
