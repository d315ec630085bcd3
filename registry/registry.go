// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry is the process-wide lexer module table (spec.md §4.8,
// component C8): an append-only mapping from an integer id and a stable
// textual name to a factory function, grounded on Scintilla's LexerModule
// registration (each lexer source file ends with a line like
// `LexerModule lmCPP(SCLEX_CPP, LexerCPP::LexerFactoryCPP, "cpp",
// cppWordLists);`, and Catalogue.cxx's lookup-by-name/id).
package registry

import (
	"strconv"

	"github.com/inkfold/inkfold/lexer"
)

// Factory constructs a fresh, independent lexer instance. The host owns the
// returned value and may call it as many times as it likes; each call must
// return a lexer with its own state (word lists, macro tables, and so on
// are never shared across instances).
type Factory func() lexer.Lexer

type entry struct {
	id      int
	name    string
	factory Factory
}

// Registry is an append-only id/name -> factory table. The zero value is
// ready to use. Registration is expected at process start (package init
// functions in lexers/* call Register on a shared default Registry); after
// that, treat it as an immutable lookup table — spec.md §9's design note on
// "global mutable state" calls for exactly this discipline.
type Registry struct {
	byID   map[int]*entry
	byName map[string]*entry
	order  []*entry
}

// Default is the process-wide registry every lexers/* package registers
// itself into via its package init function.
var Default = &Registry{}

// Register adds a lexer module. It panics on a duplicate id or name, since
// that can only be a programming error (two lexer packages claiming the
// same identity), caught at init time rather than produced as a runtime
// error a caller might plausibly handle.
func (r *Registry) Register(id int, name string, factory Factory) {
	if r.byID == nil {
		r.byID = make(map[int]*entry)
		r.byName = make(map[string]*entry)
	}
	if _, exists := r.byID[id]; exists {
		panic("registry: duplicate lexer id " + strconv.Itoa(id))
	}
	if _, exists := r.byName[name]; exists {
		panic("registry: duplicate lexer name " + name)
	}
	e := &entry{id: id, name: name, factory: factory}
	r.byID[id] = e
	r.byName[name] = e
	r.order = append(r.order, e)
}

// ByName constructs a new lexer instance for name, or ok=false if no lexer
// is registered under that name.
func (r *Registry) ByName(name string) (lexer.Lexer, bool) {
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// ByID constructs a new lexer instance for id, or ok=false if no lexer is
// registered under that id.
func (r *Registry) ByID(id int) (lexer.Lexer, bool) {
	e, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// Names returns every registered lexer name, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, e := range r.order {
		names[i] = e.name
	}
	return names
}
