// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexer"
	"github.com/inkfold/inkfold/lexopt"
)

type stubLexer struct{ name string }

func (s *stubLexer) Name() string                                       { return s.name }
func (s *stubLexer) PropertySet(name, text string) (bool, bool)         { return false, false }
func (s *stubLexer) PropertyGet(name string) (string, bool)             { return "", false }
func (s *stubLexer) PropertyNames() []string                            { return nil }
func (s *stubLexer) DescribeProperty(name string) (string, bool)        { return "", false }
func (s *stubLexer) PropertyType(name string) (lexopt.Kind, bool)       { return 0, false }
func (s *stubLexer) DescribeWordListSets() []string                     { return nil }
func (s *stubLexer) WordListSet(n int, text string) int                 { return -1 }
func (s *stubLexer) Lex(doc document.Document, start, length int, init byte)  {}
func (s *stubLexer) Fold(doc document.Document, start, length int, init byte) {}

func TestRegisterAndLookup(t *testing.T) {
	r := &Registry{}
	r.Register(1, "stub", func() lexer.Lexer { return &stubLexer{name: "stub"} })

	if _, ok := r.ByName("missing"); ok {
		t.Fatal("expected lookup of unregistered name to fail")
	}
	l, ok := r.ByName("stub")
	if !ok || l.Name() != "stub" {
		t.Fatalf("ByName(stub) = %v, %v", l, ok)
	}
	l2, ok := r.ByID(1)
	if !ok || l2.Name() != "stub" {
		t.Fatalf("ByID(1) = %v, %v", l2, ok)
	}
	if l == l2 {
		t.Fatal("each lookup should construct a fresh instance")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := &Registry{}
	r.Register(1, "stub", func() lexer.Lexer { return &stubLexer{name: "stub"} })
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate id")
		}
	}()
	r.Register(1, "other", func() lexer.Lexer { return &stubLexer{name: "other"} })
}

func TestNamesPreservesOrder(t *testing.T) {
	r := &Registry{}
	r.Register(1, "a", func() lexer.Lexer { return &stubLexer{name: "a"} })
	r.Register(2, "b", func() lexer.Lexer { return &stubLexer{name: "b"} })
	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("Names() = %v", names)
	}
}
