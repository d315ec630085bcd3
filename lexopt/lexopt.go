// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexopt implements the named, typed option bag every lexer exposes
// (spec.md §4.7, component C7): PropertySet/PropertyGet/PropertyNames/
// DescribeProperty/PropertyType, plus the word-list descriptor array behind
// DescribeWordListSets.
//
// Lexilla binds these to a lexer's options struct with pointer-to-member
// reflection (OptionSet<T>::DefineProperty takes a `bool T::*`). spec.md's
// design notes (§9) flag that pattern for replacement rather than porting it
// as-is: "replace with a small table of typed accessor closures per option,
// or with an enum-discriminated set of field handles." This package takes
// the closures route — each Option closes over the specific *bool/*int/
// *string field it reads and writes, so no reflection is involved and a
// lexer's Set is built with an ordinary function call per option.
package lexopt

import "strconv"

// Kind is the type of value an [Option] holds.
type Kind int

const (
	Bool Kind = iota
	Int
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Option is one named, typed, described entry in a lexer's property bag.
// The getText/setText closures are the field handles the design notes call
// for: each Option is built already bound to the specific struct field it
// governs via Bool/Int/StringOption.
type Option struct {
	Name     string
	Kind     Kind
	Describe string

	getText func() string
	setText func(text string)
}

// BoolOption binds name to *field. Text values follow Scintilla's
// PropertySet convention: the whole text is parsed as a decimal integer
// (text that is not one reads as 0), nonzero is true.
func BoolOption(name string, field *bool, describe string) Option {
	return Option{
		Name: name, Kind: Bool, Describe: describe,
		getText: func() string {
			if *field {
				return "1"
			}
			return "0"
		},
		setText: func(text string) { *field = parseIntOr(text, 0) != 0 },
	}
}

// IntOption binds name to *field, parsed as a decimal integer (0 on parse
// failure, matching atoi's behaviour in the reference lexer).
func IntOption(name string, field *int, describe string) Option {
	return Option{
		Name: name, Kind: Int, Describe: describe,
		getText: func() string { return strconv.Itoa(*field) },
		setText: func(text string) { *field = parseIntOr(text, 0) },
	}
}

// StringOption binds name to *field verbatim, no parsing.
func StringOption(name string, field *string, describe string) Option {
	return Option{
		Name: name, Kind: String, Describe: describe,
		getText: func() string { return *field },
		setText: func(text string) { *field = text },
	}
}

func parseIntOr(text string, fallback int) int {
	v, err := strconv.Atoi(text)
	if err != nil {
		return fallback
	}
	return v
}

// Set is the property bag a lexer instance owns: an ordered, name-indexed
// table of Options.
type Set struct {
	opts   []Option
	byName map[string]int
}

// NewSet builds a Set from opts, in declaration order (PropertyNames
// preserves this order, matching the reference lexer's OptionSet).
func NewSet(opts ...Option) *Set {
	s := &Set{opts: opts, byName: make(map[string]int, len(opts))}
	for i, o := range opts {
		s.byName[o.Name] = i
	}
	return s
}

// PropertySet parses text and writes it into the named option's bound
// field. It reports ok=false for an unknown name (the lexer's PropertySet
// returns -1 in that case, per spec.md §4.9); changed reports whether the
// option's text representation actually differs from before the call.
func (s *Set) PropertySet(name, text string) (changed, ok bool) {
	i, found := s.byName[name]
	if !found {
		return false, false
	}
	before := s.opts[i].getText()
	s.opts[i].setText(text)
	return s.opts[i].getText() != before, true
}

// PropertyGet returns the named option's current text representation.
func (s *Set) PropertyGet(name string) (string, bool) {
	i, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return s.opts[i].getText(), true
}

// PropertyNames returns every option name, in declaration order.
func (s *Set) PropertyNames() []string {
	names := make([]string, len(s.opts))
	for i, o := range s.opts {
		names[i] = o.Name
	}
	return names
}

// DescribeProperty returns the named option's human-readable description.
func (s *Set) DescribeProperty(name string) (string, bool) {
	i, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return s.opts[i].Describe, true
}

// PropertyType returns the named option's value kind.
func (s *Set) PropertyType(name string) (Kind, bool) {
	i, ok := s.byName[name]
	if !ok {
		return 0, false
	}
	return s.opts[i].Kind, true
}

// WordListSet is the fixed, per-lexer array of word-list slot descriptions
// (e.g. {"Keywords", "Types", "Documentation comment keywords"}) behind
// DescribeWordListSets; the slot index is how a host feeds WordListSet(n,
// text) calls to the right internal [wordlist.List].
type WordListSet struct {
	Descriptions []string
}

// Count returns how many word-list slots this lexer declares.
func (w WordListSet) Count() int { return len(w.Descriptions) }

// Describe returns the description for slot n, or ok=false if n is out of
// range.
func (w WordListSet) Describe(n int) (string, bool) {
	if n < 0 || n >= len(w.Descriptions) {
		return "", false
	}
	return w.Descriptions[n], true
}
