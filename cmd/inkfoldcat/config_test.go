// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") = %v", err)
	}
	if cfg.Watch.Debounce != 150*time.Millisecond {
		t.Errorf("default debounce = %v, want 150ms", cfg.Watch.Debounce)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("loadConfig(missing) = %v", err)
	}
	if cfg.Theme != "" {
		t.Errorf("Theme = %q, want empty", cfg.Theme)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkfoldcat.yaml")
	contents := "theme: monokai\nlexers:\n  .mk: makefile\nwatch:\n  debounce: 300ms\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig(%q) = %v", path, err)
	}
	if cfg.Theme != "monokai" {
		t.Errorf("Theme = %q, want monokai", cfg.Theme)
	}
	if cfg.Lexers[".mk"] != "makefile" {
		t.Errorf("Lexers[.mk] = %q, want makefile", cfg.Lexers[".mk"])
	}
	if cfg.Watch.Debounce != 300*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 300ms", cfg.Watch.Debounce)
	}
}
