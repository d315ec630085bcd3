// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preproc

// Symbol is one entry of the macro table: a #define'd name, its replacement
// text, and (for function-like macros) its comma-separated argument names.
// A non-empty Arguments marks it function-like, matching LexCPP.cxx's
// SymbolValue::IsMacro (arguments.empty() == object-like).
type Symbol struct {
	Value     string
	Arguments string
}

// IsMacro reports whether sym is a function-like macro (was #define'd with
// a non-empty parenthesised argument list; `#define F() x` records no
// arguments and so is object-like).
func (sym Symbol) IsMacro() bool { return sym.Arguments != "" }

// Definition is one entry of the #define/#undef history: what changed, on
// which line, and to what. Grounded on LexCPP.cxx's PPDefinition.
type Definition struct {
	Line      int
	Key       string
	Value     string
	IsUndef   bool
	Arguments string
}

// Table is the macro symbol table a lexer consults while evaluating #if
// conditions and expanding identifiers. It is built from a base table (any
// pre-seeded definitions, e.g. from a properties file or command line) plus
// a replayed history of #define/#undef directives the lexer encountered
// while scanning the document.
//
// On an incremental re-lex starting at line, the lexer calls Truncate(line)
// to discard history entries that may no longer apply (their line is being
// re-scanned or lies after it) before replaying the rest on top of Base,
// matching LexCPP.cxx's "truncate ppDefineHistory before current line, then
// rebuild preprocessorDefinitions from preprocessorDefinitionsStart".
type Table struct {
	Base    map[string]Symbol
	History []Definition

	current map[string]Symbol
}

// NewTable constructs a Table seeded with base (may be nil).
func NewTable(base map[string]Symbol) *Table {
	t := &Table{Base: base}
	t.rebuild()
	return t
}

// Truncate discards history entries whose Line is greater than keepLine,
// then rebuilds the live symbol table from Base plus what remains. Call
// this with keepLine = lineCurrent-1 before re-lexing starting at
// lineCurrent, per spec.md §4.6.
func (t *Table) Truncate(keepLine int) {
	i := 0
	for i < len(t.History) && t.History[i].Line <= keepLine {
		i++
	}
	t.History = t.History[:i]
	t.rebuild()
}

func (t *Table) rebuild() {
	t.current = make(map[string]Symbol, len(t.Base)+len(t.History))
	for k, v := range t.Base {
		t.current[k] = v
	}
	for _, def := range t.History {
		if def.IsUndef {
			delete(t.current, def.Key)
		} else {
			t.current[def.Key] = Symbol{Value: def.Value, Arguments: def.Arguments}
		}
	}
}

// Define records a #define at line and applies it to the live table. It
// reports whether the symbol's value actually changed, so the caller can
// decide whether a re-lex of dependent regions is needed (spec.md §4.6's
// "definitions changed" signal).
func (t *Table) Define(line int, key, value, arguments string) bool {
	old, had := t.current[key]
	changed := !had || old.Value != value || old.Arguments != arguments
	t.History = append(t.History, Definition{Line: line, Key: key, Value: value, Arguments: arguments})
	t.current[key] = Symbol{Value: value, Arguments: arguments}
	return changed
}

// Undef records a #undef at line. It reports whether key was actually
// defined beforehand.
func (t *Table) Undef(line int, key string) bool {
	_, had := t.current[key]
	t.History = append(t.History, Definition{Line: line, Key: key, IsUndef: true})
	delete(t.current, key)
	return had
}

// Lookup finds key in the live table.
func (t *Table) Lookup(key string) (Symbol, bool) {
	sym, ok := t.current[key]
	return sym, ok
}

// Defined reports whether key has any entry, the question `defined(X)` asks.
func (t *Table) Defined(key string) bool {
	_, ok := t.current[key]
	return ok
}
