// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style implements the forward-only style cursor every lexer
// drives (spec.md §4.4, component C4): a layer on top of [document.Accessor]
// that exposes the current/previous/next byte, line-boundary predicates,
// and the SetState/ChangeState/ForwardSetState family of transactional
// style transitions. It is grounded on Scintilla's StyleContext
// (lexlib/StyleContext.h), the cursor every Lex* function in Lexilla
// drives with a `for (; sc.More(); sc.Forward())` loop.
package style

import (
	"bytes"

	"github.com/inkfold/inkfold/document"
)

// Context is the cursor a lexer's Lex function drives. One is constructed
// per Lex call and discarded when it returns.
type Context struct {
	acc *document.Accessor

	pos    int
	endPos int
	line   int

	// state is the style value being accumulated for the current,
	// not-yet-committed segment. By convention (spec.md §4.4) any
	// active-flag bit is already OR'd in by the caller before SetState.
	state byte
}

// New constructs a Context over acc, covering [startPos, startPos+length),
// with the initial accumulating state initState (this is usually the
// caller's sanitised initStyle, spec.md §4.9/§4.10).
func New(acc *document.Accessor, startPos, length int, initState byte) *Context {
	c := &Context{
		acc:    acc,
		pos:    startPos,
		endPos: startPos + length,
		state:  initState,
	}
	c.line = acc.GetLine(startPos)
	return c
}

// More reports whether the cursor has not yet reached the end of the
// requested range. The canonical driving loop is
// `for ; ctx.More(); ctx.Forward() { ... }`.
func (c *Context) More() bool { return c.pos < c.endPos }

// Ch returns the byte at the current position, or 0 past the end of the
// document.
func (c *Context) Ch() byte { return c.acc.CharAt(c.pos) }

// ChNext returns the byte one past the current position, or 0 past the end
// of the document.
func (c *Context) ChNext() byte { return c.acc.CharAt(c.pos + 1) }

// ChPrev returns the byte one before the current position, or 0 before the
// start of the document.
func (c *Context) ChPrev() byte { return c.acc.CharAt(c.pos - 1) }

// GetRelative returns the byte at currentPos+offset (may be negative), 0 if
// out of range, matching Scintilla's StyleContext::GetRelative.
func (c *Context) GetRelative(offset int) byte { return c.acc.CharAt(c.pos + offset) }

// CurrentPos returns the cursor's current byte position.
func (c *Context) CurrentPos() int { return c.pos }

// CurrentLine returns the 0-based line index containing the current
// position.
func (c *Context) CurrentLine() int { return c.line }

// State returns the style value currently being accumulated.
func (c *Context) State() byte { return c.state }

// AtLineStart reports whether the cursor sits on the first byte of its
// line.
func (c *Context) AtLineStart() bool { return c.pos == c.acc.LineStart(c.line) }

// AtLineEnd reports whether the cursor sits at the line terminator (or
// document end) that closes its line — i.e. one past the last content
// byte of the line.
func (c *Context) AtLineEnd() bool { return c.pos == c.acc.LineEnd(c.line) }

// Match reports whether the document bytes starting at the current
// position equal literal.
func (c *Context) Match(literal string) bool { return c.acc.Match(c.pos, literal) }

// Match2 reports whether the current and next byte equal c1, c2.
func (c *Context) Match2(c1, c2 byte) bool { return c.Ch() == c1 && c.ChNext() == c2 }

// forward advances the cursor by n bytes (n >= 1) and recomputes the
// current line. Crossing into a new line is detected via the document's
// line index rather than scanning terminators a second time here.
func (c *Context) forward(n int) {
	c.pos += n
	if c.pos > c.endPos {
		c.pos = c.endPos
	}
	c.line = c.acc.GetLine(c.pos)
}

// Forward advances the cursor by one byte.
func (c *Context) Forward() { c.forward(1) }

// ForwardN advances the cursor by n bytes in one step (spec.md §4.4's
// Forward(n)).
func (c *Context) ForwardN(n int) { c.forward(n) }

// ForwardBytes is an alias for ForwardN, kept distinct per spec.md §4.4's
// naming (Forward(n) vs ForwardBytes(n)) for callers that want to signal
// "skip this many raw bytes" rather than "advance n style-context steps" —
// in this byte-oriented cursor the two coincide.
func (c *Context) ForwardBytes(n int) { c.forward(n) }

// SetState commits everything from the last commit point up to (but not
// including) the current position with the *old* accumulating state, then
// begins a new segment at the current position with s.
func (c *Context) SetState(s byte) {
	c.acc.ColourTo(c.pos, c.state)
	c.state = s
}

// ChangeState retroactively relabels the current, not-yet-committed
// segment with s, without moving the commit point. Scintilla's lexers use
// this when a token's final classification is only known after scanning
// past its start (e.g. a number that turns out to have a bad suffix).
func (c *Context) ChangeState(s byte) {
	c.state = s
}

// ForwardSetState advances the cursor by one byte, then calls SetState(s).
// This is the common "the byte I'm on belongs to the state ending here;
// the next byte starts state s" idiom.
func (c *Context) ForwardSetState(s byte) {
	c.Forward()
	c.SetState(s)
}

// GetCurrent returns a fresh copy of the bytes of the current, uncommitted
// segment.
func (c *Context) GetCurrent() []byte {
	return c.acc.Bytes(c.acc.LastCommitted(), c.pos)
}

// GetCurrentLowered is GetCurrent with ASCII bytes lowercased, used by
// lexers with case-insensitive keyword lookup.
func (c *Context) GetCurrentLowered() []byte {
	b := c.GetCurrent()
	return bytes.ToLower(b)
}

// Complete commits any remaining uncommitted bytes up to the end of the
// requested range with the current state. Must be called on every exit
// path of Lex so that invariant I1 (every requested byte has a style)
// holds even if the loop exits mid-token.
func (c *Context) Complete() {
	c.acc.Complete(c.endPos, c.state)
}

// EndPos returns the exclusive end of the requested range.
func (c *Context) EndPos() int { return c.endPos }
