// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package makefile implements a Makefile lexer, one of spec.md §4.13's
// representative specializations of the generic loop built directly on a
// [document.Accessor] rather than a running [style.Context]. Ported from
// Scintilla's ColouriseMakeLine/ColouriseMakeDoc
// (original_source/scintilla/src/LexOthers.cxx). The reference lexer
// registers no folder at all (its LexerModule passes a null fold
// callback); Fold here is a from-scratch addition, not a port — see
// DESIGN.md for the rationale.
package makefile

// Style constants, matching LexOthers.cxx's SCE_MAKE_* set (IDEOL included,
// omitting the reference's unused OTHER style).
const (
	Default byte = iota
	Comment
	Preprocessor
	Identifier
	Operator
	Target
	IdeOl
)
