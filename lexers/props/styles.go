// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props implements a ".properties"/INI-style lexer, one of spec.md
// §4.13's representative specializations of the generic loop built
// directly on a [document.Accessor] rather than a running [style.Context].
// Ported from Scintilla's ColourisePropsLine/ColourisePropsDoc/
// FoldPropsDoc (original_source/scintilla/src/LexOthers.cxx).
package props

// Style constants, matching LexOthers.cxx's SCE_PROPS_* order.
const (
	Default byte = iota
	Comment
	Section
	Assignment
	DefVal
	Key
)
