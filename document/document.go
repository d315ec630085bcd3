// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document provides the read/write accessor a lexer uses to reach
// the host's text buffer and its parallel style, fold-level, and line-state
// arrays (spec.md §4.3, component C3). The host implements [Document]; a
// lexer never sees it directly, only through [Accessor], which adds the
// cached line index, out-of-range-safe reads, and buffered style commits
// that the spec's invariants (I1, I5) require.
//
// The design mirrors cogentcore's parse/lexer.File in spirit (a buffered,
// line-indexed view over source text used for incremental re-lexing) but is
// byte-addressable rather than rune-addressable, per spec.md §3's Position
// model, and separates the host-owned storage ([Document]) from the
// lexer-facing cursor ([Accessor]) the way Scintilla separates Document
// from LexAccessor.
package document

// FoldFlag bits, stable per spec.md §6 (compatibility with a host's theme
// and margin-drawing tables).
const (
	LevelMask = 0x0FFF
	White     = 0x1000
	Header    = 0x2000
)

// Document is the host-owned storage an [Accessor] reads from and writes
// to. All positions are byte offsets in [0, Len()]. Implementations need
// not be safe for concurrent use; per spec.md §5 the host guarantees
// exclusive access for the duration of one Lex/Fold call.
type Document interface {
	// Len returns the total byte length of the document.
	Len() int

	// ByteAt returns the byte at pos. Behavior for pos outside [0, Len())
	// is up to the implementation; [Accessor] never calls it out of range.
	ByteAt(pos int) byte

	// StyleAt returns the previously-written style byte at pos.
	StyleAt(pos int) byte

	// SetStyleRange commits a single style value across [start, end).
	SetStyleRange(start, end int, style byte)

	// LineCount returns the number of lines in the document (a document of
	// length 0 still has exactly one, empty, line).
	LineCount() int

	// LineStart returns the byte offset where the given line begins.
	LineStart(line int) int

	// Level returns the previously-written fold-level word for line, or 0
	// if never written.
	Level(line int) int

	// SetLevel writes the fold-level word for line.
	SetLevel(line int, level int)

	// LineState returns the previously-written 32-bit line-state word for
	// line, or 0 if never written (start-of-document sentinel).
	LineState(line int) uint32

	// SetLineState writes the 32-bit line-state word for line.
	SetLineState(line int, state uint32)
}

// ChangeRange records a request, made via [Accessor.ChangeLexerState], that
// the host re-invoke Lex over at least [Start, End) because something
// outside the immediately requested range now needs to be re-styled (e.g. a
// #define changed, invalidating conditional-greying downstream).
type ChangeRange struct {
	Start, End int
}

// Accessor is the cursor a lexer drives. It is constructed fresh for each
// Lex/Fold call (each lexer's Lex and Fold call [NewAccessor] on entry) and discarded at the end of
// that call; it has no existence across calls, matching spec.md §5's
// "scoped acquisition" requirement.
type Accessor struct {
	doc Document

	// lastCommitted is the position immediately after the last byte for
	// which SetStyleRange has been called; ColourTo commits [lastCommitted,
	// endPos) in one call, enforcing monotonic writes (invariant I5).
	lastCommitted int

	// lineStarts is a cache of line-start offsets, built lazily and
	// extended as GetLine/LineStart are queried past its current extent.
	lineStarts []int

	changes []ChangeRange
}

// NewAccessor wraps doc for use by one Lex or Fold call, with its style
// cursor starting at startPos (the caller is expected to have already
// written whatever initStyle applies to bytes before startPos).
func NewAccessor(doc Document, startPos int) *Accessor {
	a := &Accessor{doc: doc, lastCommitted: startPos}
	a.lineStarts = append(a.lineStarts, 0)
	return a
}

// Len returns the document's total length.
func (a *Accessor) Len() int { return a.doc.Len() }

// CharAt returns the byte at pos, or 0 if pos is outside [0, Len()), the
// safe-out-of-range-read behavior spec.md §4.3 requires so that lookahead
// at the end of the document never needs a bounds check at every call
// site.
func (a *Accessor) CharAt(pos int) byte {
	if pos < 0 || pos >= a.doc.Len() {
		return 0
	}
	return a.doc.ByteAt(pos)
}

// StyleAt returns the style byte previously written at pos, or 0 if out of
// range.
func (a *Accessor) StyleAt(pos int) byte {
	if pos < 0 || pos >= a.doc.Len() {
		return 0
	}
	return a.doc.StyleAt(pos)
}

// Match reports whether the bytes starting at pos equal literal, without
// reading past the end of the document.
func (a *Accessor) Match(pos int, literal string) bool {
	n := a.doc.Len()
	for i := 0; i < len(literal); i++ {
		p := pos + i
		if p >= n || a.doc.ByteAt(p) != literal[i] {
			return false
		}
	}
	return true
}

// growLineIndex extends the cached line-start index until it covers pos (or
// the document ends), scanning for LF, CR, and CRLF terminators treated as
// one terminator each, per spec.md §3.
func (a *Accessor) growLineIndex(upto int) {
	n := a.doc.Len()
	if upto > n {
		upto = n
	}
	cur := a.lineStarts[len(a.lineStarts)-1]
	for cur < upto {
		b := a.doc.ByteAt(cur)
		if b == '\n' {
			cur++
			a.lineStarts = append(a.lineStarts, cur)
			continue
		}
		if b == '\r' {
			cur++
			if cur < n && a.doc.ByteAt(cur) == '\n' {
				cur++
			}
			a.lineStarts = append(a.lineStarts, cur)
			continue
		}
		cur++
	}
}

// GetLine returns the 0-based line index containing pos.
func (a *Accessor) GetLine(pos int) int {
	if pos < 0 {
		return 0
	}
	a.growLineIndex(pos + 1)
	// binary search over lineStarts for the greatest index whose start <= pos
	lo, hi := 0, len(a.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if a.lineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineStart returns the byte offset where the given line begins.
func (a *Accessor) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if len(a.lineStarts) <= line {
		a.growLineIndex(a.doc.Len())
	}
	if line >= len(a.lineStarts) {
		return a.doc.Len()
	}
	return a.lineStarts[line]
}

// LineEnd returns the offset of the line terminator (or Len()) ending the
// given line, i.e. one past the last content byte of the line.
func (a *Accessor) LineEnd(line int) int {
	start := a.LineStart(line + 1)
	if start == a.doc.Len() && a.GetLine(start) == line {
		return a.doc.Len()
	}
	end := start
	for end > a.LineStart(line) {
		b := a.doc.ByteAt(end - 1)
		if b != '\n' && b != '\r' {
			break
		}
		end--
	}
	return end
}

// LineCount returns the number of lines known to the underlying document.
func (a *Accessor) LineCount() int { return a.doc.LineCount() }

// LastCommitted returns the position immediately after the last committed
// style byte — the start of the currently in-progress, uncommitted
// segment. Used by package style to copy the in-progress token's bytes.
func (a *Accessor) LastCommitted() int { return a.lastCommitted }

// Bytes returns the raw document bytes in [start, end). start and end are
// clamped to the document first, so out-of-range bounds do not panic.
func (a *Accessor) Bytes(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	n := a.doc.Len()
	if end > n {
		end = n
	}
	if start >= end {
		return nil
	}
	out := make([]byte, end-start)
	for i := range out {
		out[i] = a.doc.ByteAt(start + i)
	}
	return out
}

// ColourTo commits a single style value across [lastCommitted, endPos), then
// advances lastCommitted to endPos. This is the only style-writing
// primitive the spec grants the accessor (spec.md §4.3); [style.Context]
// builds SetState/ChangeState on top of it.
func (a *Accessor) ColourTo(endPos int, sty byte) {
	if endPos <= a.lastCommitted {
		return
	}
	a.doc.SetStyleRange(a.lastCommitted, endPos, sty)
	a.lastCommitted = endPos
}

// Complete flushes any trailing uncommitted bytes up to endPos with sty,
// satisfying invariant I1 (every byte in the requested range has a style)
// on every exit path of Lex.
func (a *Accessor) Complete(endPos int, sty byte) {
	a.ColourTo(endPos, sty)
}

// SetLevel writes the fold-level word for line.
func (a *Accessor) SetLevel(line, level int) { a.doc.SetLevel(line, level) }

// Level reads back the fold-level word for line.
func (a *Accessor) Level(line int) int { return a.doc.Level(line) }

// SetLineState writes the 32-bit line-state word for line (component C5).
func (a *Accessor) SetLineState(line int, state uint32) { a.doc.SetLineState(line, state) }

// LineState reads back the 32-bit line-state word for line, or 0 if line is
// negative (the start-of-document sentinel per spec.md §4.5).
func (a *Accessor) LineState(line int) uint32 {
	if line < 0 {
		return 0
	}
	return a.doc.LineState(line)
}

// ChangeLexerState records that the host should re-invoke Lex covering at
// least [start, end); the host is responsible for scheduling that
// (spec.md §5).
func (a *Accessor) ChangeLexerState(start, end int) {
	a.changes = append(a.changes, ChangeRange{start, end})
}

// Changes returns the accumulated [ChangeLexerState] requests made during
// this call.
func (a *Accessor) Changes() []ChangeRange { return a.changes }
