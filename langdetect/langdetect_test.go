// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langdetect

import "testing"

func TestByExtension(t *testing.T) {
	cases := map[string]string{
		"main.c":       "clike",
		"widget.hpp":   "clike",
		"script.lua":   "lua",
		"changes.diff": "diff",
		"app.properties": "props",
		"rules.mk":     "makefile",
		"Makefile":     "makefile",
		"GNUmakefile":  "makefile",
	}
	for name, want := range cases {
		got, ok := ByExtension(name)
		if !ok {
			t.Errorf("ByExtension(%q): no match, want %q", name, want)
			continue
		}
		if got != want {
			t.Errorf("ByExtension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestByExtensionUnknown(t *testing.T) {
	if _, ok := ByExtension("README"); ok {
		t.Error("ByExtension(\"README\") matched, want no match")
	}
}

func TestSniffDiff(t *testing.T) {
	src := "diff --git a/foo.go b/foo.go\nindex 123..456 100644\n--- a/foo.go\n+++ b/foo.go\n"
	lx, ok := Sniff([]byte(src))
	if !ok || lx != "diff" {
		t.Errorf("Sniff(diff) = %q,%v, want diff,true", lx, ok)
	}
}

func TestSniffMakefile(t *testing.T) {
	src := "build:\n\tgo build ./...\n"
	lx, ok := Sniff([]byte(src))
	if !ok || lx != "makefile" {
		t.Errorf("Sniff(makefile) = %q,%v, want makefile,true", lx, ok)
	}
}

func TestSniffLua(t *testing.T) {
	src := "#!/usr/bin/env lua\nlocal x = 1\n"
	lx, ok := Sniff([]byte(src))
	if !ok || lx != "lua" {
		t.Errorf("Sniff(lua) = %q,%v, want lua,true", lx, ok)
	}
}

func TestSniffClike(t *testing.T) {
	src := "#include <stdio.h>\nint main() { return 0; }\n"
	lx, ok := Sniff([]byte(src))
	if !ok || lx != "clike" {
		t.Errorf("Sniff(clike) = %q,%v, want clike,true", lx, ok)
	}
}

func TestSniffEmptyNoMatch(t *testing.T) {
	if _, ok := Sniff(nil); ok {
		t.Error("Sniff(nil) matched, want no match")
	}
}

func TestSniffPNGRejected(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if _, ok := Sniff(png); ok {
		t.Error("Sniff(png magic) matched a lexer, want no match")
	}
}

func TestDetectPrefersExtension(t *testing.T) {
	// Content looks like a makefile recipe, but the name says clike; the
	// extension tier must win.
	src := "x:\n\tdo_something\n"
	lx, ok := Detect("main.c", []byte(src))
	if !ok || lx != "clike" {
		t.Errorf("Detect(main.c,...) = %q,%v, want clike,true", lx, ok)
	}
}

func TestDetectFallsBackToSniff(t *testing.T) {
	src := "diff --git a/x b/x\n--- a/x\n+++ b/x\n"
	lx, ok := Detect("stdin", []byte(src))
	if !ok || lx != "diff" {
		t.Errorf("Detect(stdin,...) = %q,%v, want diff,true", lx, ok)
	}
}
