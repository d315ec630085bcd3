// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffmark

import (
	"strings"
	"testing"

	"github.com/inkfold/inkfold/document"
)

func lineStyles(t *testing.T, src string) []byte {
	t.Helper()
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)
	return buf.StyleSlice(0, len(src))
}

func styleOfLine(src string, styles []byte, lineText string) byte {
	idx := strings.Index(src, lineText)
	return styles[idx]
}

func TestClassifyLines(t *testing.T) {
	src := strings.Join([]string{
		"diff --git a/foo.go b/foo.go",
		"--- a/foo.go",
		"+++ b/foo.go",
		"@@ -1,3 +1,4 @@",
		"-old line",
		"+new line",
		" unchanged line",
		"",
	}, "\n")
	styles := lineStyles(t, src)

	cases := []struct {
		line string
		want byte
	}{
		{"diff --git", Command},
		{"--- a/foo.go", Header},
		{"+++ b/foo.go", Header},
		{"@@ -1,3", Position},
		{"-old line", Deleted},
		{"+new line", Added},
	}
	for _, c := range cases {
		if got := styleOfLine(src, styles, c.line); got != c.want {
			t.Errorf("line %q styled %d, want %d", c.line, got, c.want)
		}
	}
}

func TestFoldNesting(t *testing.T) {
	src := strings.Join([]string{
		"diff --git a/foo.go b/foo.go",
		"--- a/foo.go",
		"+++ b/foo.go",
		"@@ -1,3 +1,4 @@",
		"-old line",
		"+new line",
	}, "\n")
	buf := document.NewBuffer([]byte(src))
	lx := New()
	lx.Lex(buf, 0, len(src), 0)
	lx.Fold(buf, 0, len(src), 0)

	levels := make([]int, 6)
	for i := range levels {
		levels[i] = buf.Level(i) & 0x0FFF
	}
	if levels[0] != 0 {
		t.Errorf("command line level = %d, want 0", levels[0])
	}
	if levels[1] != 1 || levels[2] != 1 {
		t.Errorf("header lines levels = %v, want [1 1]", levels[1:3])
	}
	if levels[3] != 2 {
		t.Errorf("position line level = %d, want 2", levels[3])
	}
	if levels[4] != 3 || levels[5] != 3 {
		t.Errorf("hunk body levels = %v, want [3 3]", levels[4:6])
	}
}
