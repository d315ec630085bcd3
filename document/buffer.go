// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import "bytes"

// Buffer is a minimal in-memory [Document], standing in for a real host
// editor buffer. cmd/inkfoldcat uses it to drive the engine over whole
// files, and every lexer's tests use it for golden-style assertions.
type Buffer struct {
	text       []byte
	styles     []byte
	levels     []int
	lineStates []uint32
}

// NewBuffer creates a Buffer over the given initial text.
func NewBuffer(text []byte) *Buffer {
	b := &Buffer{
		text:   append([]byte(nil), text...),
		styles: make([]byte, len(text)),
	}
	b.resizeLineArrays()
	return b
}

func (b *Buffer) resizeLineArrays() {
	n := b.countLines()
	if len(b.levels) < n {
		b.levels = append(b.levels, make([]int, n-len(b.levels))...)
	}
	if len(b.lineStates) < n {
		b.lineStates = append(b.lineStates, make([]uint32, n-len(b.lineStates))...)
	}
}

func (b *Buffer) countLines() int {
	if len(b.text) == 0 {
		return 1
	}
	n := 1
	for i := 0; i < len(b.text); i++ {
		switch b.text[i] {
		case '\n':
			n++
		case '\r':
			n++
			if i+1 < len(b.text) && b.text[i+1] == '\n' {
				i++
			}
		}
	}
	return n
}

// Len implements [Document].
func (b *Buffer) Len() int { return len(b.text) }

// ByteAt implements [Document].
func (b *Buffer) ByteAt(pos int) byte { return b.text[pos] }

// StyleAt implements [Document].
func (b *Buffer) StyleAt(pos int) byte { return b.styles[pos] }

// SetStyleRange implements [Document].
func (b *Buffer) SetStyleRange(start, end int, style byte) {
	for i := start; i < end; i++ {
		b.styles[i] = style
	}
}

// LineCount implements [Document].
func (b *Buffer) LineCount() int {
	b.resizeLineArrays()
	return b.countLines()
}

// LineStart implements [Document] by scanning; Buffer is a test/demo
// fixture, not a performance-critical host, so it does not keep its own
// cache (package document's [Accessor] already caches on top of this).
func (b *Buffer) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	ln := 0
	for i := 0; i < len(b.text); i++ {
		switch b.text[i] {
		case '\n':
			ln++
			if ln == line {
				return i + 1
			}
		case '\r':
			ln++
			if i+1 < len(b.text) && b.text[i+1] == '\n' {
				i++
			}
			if ln == line {
				return i + 1
			}
		}
	}
	return len(b.text)
}

// Level implements [Document].
func (b *Buffer) Level(line int) int {
	b.resizeLineArrays()
	if line < 0 || line >= len(b.levels) {
		return 0
	}
	return b.levels[line]
}

// SetLevel implements [Document].
func (b *Buffer) SetLevel(line, level int) {
	b.resizeLineArrays()
	if line < 0 || line >= len(b.levels) {
		return
	}
	b.levels[line] = level
}

// LineState implements [Document].
func (b *Buffer) LineState(line int) uint32 {
	b.resizeLineArrays()
	if line < 0 || line >= len(b.lineStates) {
		return 0
	}
	return b.lineStates[line]
}

// SetLineState implements [Document].
func (b *Buffer) SetLineState(line int, state uint32) {
	b.resizeLineArrays()
	if line < 0 || line >= len(b.lineStates) {
		return
	}
	b.lineStates[line] = state
}

// Text returns the full document text.
func (b *Buffer) Text() []byte { return b.text }

// StyleSlice returns a copy of the styles covering [start, end).
func (b *Buffer) StyleSlice(start, end int) []byte {
	return append([]byte(nil), b.styles[start:end]...)
}

// Replace overwrites [start, end) of the text with repl, leaving styles
// and per-line state untouched — the caller (typically a watch-mode host)
// is responsible for deciding how far back to re-lex.
func (b *Buffer) Replace(start, end int, repl []byte) {
	var buf bytes.Buffer
	buf.Write(b.text[:start])
	buf.Write(repl)
	buf.Write(b.text[end:])
	b.text = buf.Bytes()
	if len(b.styles) < len(b.text) {
		b.styles = append(b.styles, make([]byte, len(b.text)-len(b.styles))...)
	} else {
		b.styles = b.styles[:len(b.text)]
	}
}
