// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package luabracket implements the long-bracket, Lua-like lexer (spec.md
// §4.12, component C12): the second representative non-trivial lexer, built
// to exercise the parts of the framework the C-family lexer (package clike)
// does not — a line-state-carried counted delimiter for nested
// `[=[...]=]`/`--[=[...]=]` literals, identifier-segment longest-match
// keyword classification across `.`/`:`, and `goto`/label scanning. It is
// grounded on Lexilla's LexLua.cxx, ported the same way clike was: the
// state-exit/state-entry structure of LexerLua::Lex carries over almost
// line for line onto this module's Context/Accessor types.
package luabracket

// Style values, grounded on LexLua.cxx's SCE_LUA_* constants.
const (
	Default byte = iota
	Comment
	CommentLine
	CommentDoc
	Number
	Word
	String
	Character
	LiteralString
	Preprocessor
	Operator
	Identifier
	StringEOL
	Word2
	Word3
	Word4
	Word5
	Word6
	Word7
	Word8
	Label
)
