// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diffmark implements a unified/context-diff lexer, one of spec.md
// §4.13's representative specializations of the generic loop built directly
// on a [document.Accessor] rather than a running [style.Context]: diffmark
// classifies and folds whole lines at a time from fixed textual prefixes,
// with no per-byte state machine and no cross-line carry. Ported from
// Scintilla's ColouriseDiffLine/ColouriseDiffDoc/FoldDiffDoc
// (original_source/scintilla/src/LexOthers.cxx).
package diffmark

// Style constants, matching LexOthers.cxx's SCE_DIFF_* order.
const (
	Default byte = iota
	Comment
	Command
	Header
	Position
	Deleted
	Added
	Changed
)
