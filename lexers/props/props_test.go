// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"strings"
	"testing"

	"github.com/inkfold/inkfold/document"
)

func TestColourise(t *testing.T) {
	src := strings.Join([]string{
		"# a comment",
		"[section]",
		"key=value",
		"other.key: value2",
		"@defval",
	}, "\n")
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)
	styles := buf.StyleSlice(0, len(src))

	at := func(sub string) byte {
		idx := strings.Index(src, sub)
		return styles[idx]
	}

	if got := at("# a comment"); got != Comment {
		t.Errorf("comment line styled %d, want Comment", got)
	}
	if got := at("[section]"); got != Section {
		t.Errorf("section line styled %d, want Section", got)
	}
	if got := styles[strings.Index(src, "key=value")]; got != Key {
		t.Errorf("key styled %d, want Key", got)
	}
	eq := strings.Index(src, "key=value") + len("key")
	if got := styles[eq]; got != Assignment {
		t.Errorf("'=' styled %d, want Assignment", got)
	}
	val := eq + 1
	if got := styles[val]; got != Default {
		t.Errorf("value styled %d, want Default", got)
	}
	if got := at("@defval"); got != DefVal {
		t.Errorf("'@' styled %d, want DefVal", got)
	}
}

func TestDisallowInitialSpaces(t *testing.T) {
	src := "  key=value"
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.PropertySet("lexer.props.allow.initial.spaces", "0")
	lx.Lex(buf, 0, len(src), 0)
	styles := buf.StyleSlice(0, len(src))
	for i, s := range styles {
		if s != Default {
			t.Errorf("byte %d styled %d, want Default (initial spaces disallowed)", i, s)
		}
	}
}

func TestFoldSectionNesting(t *testing.T) {
	src := strings.Join([]string{
		"[section]",
		"key=value",
		"other=value2",
	}, "\n")
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)
	lx.Fold(buf, 0, len(src), 0)

	if lvl := buf.Level(0) & 0x0FFF; lvl != 0 {
		t.Errorf("section line level = %d, want 0", lvl)
	}
	if lvl := buf.Level(1) & 0x0FFF; lvl != 1 {
		t.Errorf("key line level = %d, want 1", lvl)
	}
	if lvl := buf.Level(2) & 0x0FFF; lvl != 1 {
		t.Errorf("key line level = %d, want 1", lvl)
	}
}
