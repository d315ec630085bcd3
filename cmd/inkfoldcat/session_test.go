// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkfold/inkfold/render"

	_ "github.com/inkfold/inkfold/lexers/makefile"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveLexerExplicitOverride(t *testing.T) {
	cfg := defaultConfig()
	name, err := resolveLexer(cfg, "anything.xyz", nil, "makefile")
	if err != nil || name != "makefile" {
		t.Fatalf("resolveLexer forced = %q,%v, want makefile,nil", name, err)
	}
}

func TestResolveLexerConfigOverride(t *testing.T) {
	cfg := defaultConfig()
	cfg.Lexers[".xyz"] = "makefile"
	name, err := resolveLexer(cfg, "file.xyz", nil, "")
	if err != nil || name != "makefile" {
		t.Fatalf("resolveLexer config override = %q,%v, want makefile,nil", name, err)
	}
}

func TestResolveLexerFallsBackToDetect(t *testing.T) {
	cfg := defaultConfig()
	name, err := resolveLexer(cfg, "rules.mk", nil, "")
	if err != nil || name != "makefile" {
		t.Fatalf("resolveLexer detect = %q,%v, want makefile,nil", name, err)
	}
}

func TestNewSessionAndRender(t *testing.T) {
	path := writeTemp(t, "rules.mk", "all: build\n\tgo build ./...\n")
	cfg := defaultConfig()

	s, err := newSession(cfg, path, "")
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	if s.lexerName != "makefile" {
		t.Fatalf("lexerName = %q, want makefile", s.lexerName)
	}

	var buf bytes.Buffer
	if err := s.render(&buf, "", render.FormatHTML); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("render produced no output")
	}
}

func TestSessionReload(t *testing.T) {
	path := writeTemp(t, "rules.mk", "all:\n\tfirst\n")
	cfg := defaultConfig()
	s, err := newSession(cfg, path, "")
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	if err := os.WriteFile(path, []byte("all:\n\tsecond\n\tthird\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := string(s.buf.Text()); got != "all:\n\tsecond\n\tthird\n" {
		t.Errorf("buf text after reload = %q", got)
	}
}
