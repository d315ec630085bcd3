// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkfold/inkfold/base/logx"
	"github.com/inkfold/inkfold/render"
)

// watcher debounces fsnotify write/create events for a single file,
// coalescing the rapid-fire writes an editor's save often produces into
// one re-lex per quiet period. Grounded directly on the pack's own
// fsnotify consumer, which watches the file's parent directory (not the
// file itself — inotify watches on a path an editor replaces via
// rename-into-place are silently dropped otherwise) and filters events
// down to the one path it cares about.
type watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	events   chan struct{}
}

func newWatcher(path string, debounce time.Duration) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &watcher{
		fsw:      fsw,
		path:     abs,
		debounce: debounce,
		events:   make(chan struct{}, 1),
	}, nil
}

func (w *watcher) Close() error { return w.fsw.Close() }

// run drives the debounce loop until ctx is canceled, sending a
// notification on w.events (dropping it if the channel is already full)
// after each quiet period following a write/create to the watched file.
func (w *watcher) run(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || abs != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logx.PrintlnWarn("inkfoldcat: watch error:", err)
		}
	}
}

// runWatch re-renders s to w every time the watched file settles after a
// change, until ctx is canceled (typically by SIGINT in main).
func runWatch(ctx context.Context, s *session, w io.Writer, theme string, format render.Format, debounce time.Duration) error {
	wt, err := newWatcher(s.path, debounce)
	if err != nil {
		return fmt.Errorf("inkfoldcat: watch %q: %w", s.path, err)
	}
	defer wt.Close()

	go wt.run(ctx)

	logx.PrintlnInfo("inkfoldcat: watching", s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wt.events:
			if err := s.reload(); err != nil {
				logx.PrintlnWarn("inkfoldcat:", err)
				continue
			}
			fmt.Fprintln(os.Stderr, "---", s.path, "---")
			if err := s.render(w, theme, format); err != nil {
				logx.PrintlnWarn("inkfoldcat:", err)
			}
		}
	}
}
