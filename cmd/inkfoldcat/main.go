// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command inkfoldcat is a small demo host that exercises the lexing and
// folding engine end to end: it loads a file (or starts an interactive
// REPL), resolves a lexer for it via langdetect, runs Lex/Fold, and
// renders the styled result to the terminal or as HTML via package
// render. --watch re-lexes on every file change, demonstrating the
// engine's incremental-resume contract against a real filesystem rather
// than a synthetic edit script.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/inkfold/inkfold/render"

	_ "github.com/inkfold/inkfold/lexers/clike"
	_ "github.com/inkfold/inkfold/lexers/diffmark"
	_ "github.com/inkfold/inkfold/lexers/luabracket"
	_ "github.com/inkfold/inkfold/lexers/makefile"
	_ "github.com/inkfold/inkfold/lexers/props"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "inkfoldcat:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("inkfoldcat", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file (lexer overrides, theme, watch defaults)")
	lexerName := fs.String("lexer", "", "force a specific registered lexer name, skipping detection")
	theme := fs.String("theme", "", "chroma style name (overrides the config file's theme)")
	html := fs.Bool("html", false, "render as HTML instead of terminal color escapes")
	watch := fs.Bool("watch", false, "watch the input file and re-render on every change")
	repl := fs.Bool("repl", false, "start an interactive REPL instead of rendering one file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	format := render.FormatAuto
	if *html {
		format = render.FormatHTML
	}

	if *repl {
		return runREPL(cfg)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: inkfoldcat [flags] <file>  (or --repl with no file)")
	}
	path, err := homedir.Expand(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("expand path %q: %w", fs.Arg(0), err)
	}

	s, err := newSession(cfg, path, *lexerName)
	if err != nil {
		return err
	}
	if err := s.render(os.Stdout, cfg.Theme, format); err != nil {
		return err
	}

	if !*watch {
		return nil
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return runWatch(ctx, s, os.Stdout, cfg.Theme, format, cfg.Watch.Debounce)
}
