// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langdetect picks a registry lexer name for a file the host
// doesn't already have an explicit mapping for, using the same two-tier
// strategy the teacher's deleted base/fileinfo.MimeFromFile used: an
// extension map first (fast, no content read required), then a
// content-based fallback for extensionless or misnamed input (piped
// stdin, a Makefile with no extension, a shebang-less script).
//
// github.com/h2non/filetype only recognizes binary container formats by
// magic number; it has no notion of C source or a unified diff. So the
// content tier here first uses filetype to rule out binary input, then
// applies small textual heuristics of its own for the handful of lexers
// this module actually ships.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// ExtLexerMap maps a lowercased file extension (including the leading
// dot) to a registry lexer name. Names with no extension (Makefile) are
// matched by NameLexerMap instead.
var ExtLexerMap = map[string]string{
	".c": "clike", ".h": "clike",
	".cc": "clike", ".cpp": "clike", ".cxx": "clike",
	".hh": "clike", ".hpp": "clike", ".hxx": "clike",
	".cs": "clike", ".java": "clike", ".js": "clike",
	".ts": "clike", ".go": "clike",
	".lua": "lua", ".wlua": "lua",
	".diff": "diff", ".patch": "diff",
	".ini": "props", ".cfg": "props", ".properties": "props",
	".mk": "makefile",
}

// NameLexerMap maps a lowercased base file name (no directory component)
// to a registry lexer name, for conventionally-named files that carry no
// extension at all.
var NameLexerMap = map[string]string{
	"makefile":    "makefile",
	"gnumakefile": "makefile",
}

// ByExtension returns the lexer name associated with name's extension or
// exact base name, or ok=false if name doesn't match any known pattern.
func ByExtension(name string) (string, bool) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if lx, ok := NameLexerMap[strings.ToLower(base)]; ok {
		return lx, true
	}
	if lx, ok := ExtLexerMap[strings.ToLower(ext)]; ok {
		return lx, true
	}
	return "", false
}

// Sniff inspects the first KB of content and returns a best-guess lexer
// name, or ok=false if nothing matches. It never reads past 1024 bytes.
func Sniff(content []byte) (string, bool) {
	if len(content) > 1024 {
		content = content[:1024]
	}
	if len(content) == 0 {
		return "", false
	}

	if kind, err := filetype.Match(content); err == nil && kind != filetype.Unknown {
		// A recognized binary container (image, archive, font, ...) is
		// never one of our lexers' input.
		if kind.MIME.Type != "text" {
			return "", false
		}
	}

	switch {
	case looksLikeDiff(content):
		return "diff", true
	case looksLikeMakefile(content):
		return "makefile", true
	case looksLikeLua(content):
		return "lua", true
	case looksLikeProps(content):
		return "props", true
	case looksLikeClike(content):
		return "clike", true
	}
	return "", false
}

// Detect applies the two-tier strategy: ByExtension(name) first, falling
// back to Sniff(content) only when the name carries no recognized
// extension or conventional base name.
func Detect(name string, content []byte) (string, bool) {
	if lx, ok := ByExtension(name); ok {
		return lx, true
	}
	return Sniff(content)
}

func looksLikeDiff(b []byte) bool {
	return bytes.HasPrefix(b, []byte("diff ")) ||
		bytes.HasPrefix(b, []byte("Index: ")) ||
		bytes.HasPrefix(b, []byte("--- ")) ||
		bytes.Contains(b, []byte("\n+++ ")) ||
		bytes.Contains(b, []byte("\n@@ "))
}

func looksLikeMakefile(b []byte) bool {
	if bytes.Contains(b, []byte("\n\t")) && bytes.ContainsAny(string(firstLine(b)), ":") {
		return true
	}
	return bytes.HasPrefix(b, []byte("!include")) || bytes.HasPrefix(b, []byte(".PHONY"))
}

func looksLikeLua(b []byte) bool {
	return bytes.HasPrefix(b, []byte("#!/usr/bin/lua")) ||
		bytes.HasPrefix(b, []byte("#!/usr/bin/env lua")) ||
		bytes.Contains(b, []byte("--[[")) ||
		bytes.Contains(b, []byte("\nlocal function ")) ||
		bytes.HasPrefix(b, []byte("local function "))
}

func looksLikeProps(b []byte) bool {
	first := firstLine(b)
	return len(first) > 1 && first[0] == '[' && first[len(first)-1] == ']'
}

func looksLikeClike(b []byte) bool {
	return bytes.Contains(b, []byte("#include")) ||
		bytes.Contains(b, []byte("package ")) ||
		bytes.Contains(b, []byte("#define"))
}

func firstLine(b []byte) []byte {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i]
	}
	return b
}
