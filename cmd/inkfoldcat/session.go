// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/langdetect"
	"github.com/inkfold/inkfold/lexer"
	"github.com/inkfold/inkfold/registry"
	"github.com/inkfold/inkfold/render"
)

// session holds one open file's engine state: the registered lexer
// instance driving it, the in-memory buffer it styles, and the lexer
// name it was resolved to (for render.Write's classifier lookup).
type session struct {
	path      string
	lexerName string
	lex       lexer.Lexer
	buf       *document.Buffer
}

// resolveLexer picks a lexer name for path/content: an explicit
// --lexer flag wins outright, then the config's per-extension override
// table, then langdetect's own two-tier extension/content strategy.
func resolveLexer(cfg *Config, path string, content []byte, forced string) (string, error) {
	if forced != "" {
		return forced, nil
	}
	base := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(filepath.Ext(path))
	if lx, ok := cfg.Lexers[base]; ok {
		return lx, nil
	}
	if lx, ok := cfg.Lexers[ext]; ok {
		return lx, nil
	}
	if lx, ok := langdetect.Detect(path, content); ok {
		return lx, nil
	}
	return "", fmt.Errorf("inkfoldcat: could not determine a lexer for %q", path)
}

// newSession loads path and builds a session ready for relex/render.
func newSession(cfg *Config, path, forcedLexer string) (*session, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inkfoldcat: read %q: %w", path, err)
	}
	name, err := resolveLexer(cfg, path, content, forcedLexer)
	if err != nil {
		return nil, err
	}
	lx, ok := registry.Default.ByName(name)
	if !ok {
		return nil, fmt.Errorf("inkfoldcat: no lexer registered under name %q", name)
	}
	s := &session{
		path:      path,
		lexerName: name,
		lex:       lx,
		buf:       document.NewBuffer(content),
	}
	s.relex()
	return s, nil
}

// relex re-styles and re-folds the whole buffer from scratch. A real
// host would narrow this to the changed range and the lexer's own
// backtracking (spec.md §4.10); this demo always re-lexes in full, since
// its buffers are small enough that incremental re-lex would only
// obscure the watch-mode demonstration with bookkeeping.
func (s *session) relex() {
	n := s.buf.Len()
	s.lex.Lex(s.buf, 0, n, 0)
	s.lex.Fold(s.buf, 0, n, 0)
}

// reload re-reads the file from disk, replaces the buffer's text, and
// re-lexes. Used by watch mode after an fsnotify write/create event.
func (s *session) reload() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("inkfoldcat: reload %q: %w", s.path, err)
	}
	s.buf.Replace(0, s.buf.Len(), content)
	s.relex()
	return nil
}

// render writes the session's current styling to w in the given theme
// and format.
func (s *session) render(w io.Writer, theme string, format render.Format) error {
	text := s.buf.Text()
	styles := s.buf.StyleSlice(0, len(text))
	ok, err := render.Write(w, s.lexerName, text, styles, theme, format)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("inkfoldcat: no render classifier registered for lexer %q", s.lexerName)
	}
	return nil
}
