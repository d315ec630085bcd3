// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linestate provides small bit-packing helpers for the 32-bit
// per-line state word every lexer writes at end-of-line and reads back at
// start-of-line (spec.md §3 "Line state", component C5). The bit layout
// itself is private to each lexer (spec.md §9: "Line-state bit allocation
// differs across lexers with no central schema"); this package only
// supplies the generic field-pack/unpack arithmetic so each lexer's own
// state file can declare named fields without repeating shift/mask code.
package linestate

// Field describes a bitfield within a 32-bit line-state word.
type Field struct {
	Shift uint32
	Mask  uint32 // already shifted into position, e.g. 0xFF<<8
}

// NewField returns a Field occupying `bits` bits starting at bit `shift`.
func NewField(shift, bits uint32) Field {
	return Field{Shift: shift, Mask: ((uint32(1) << bits) - 1) << shift}
}

// Get extracts this field's value from a packed word.
func (f Field) Get(word uint32) uint32 {
	return (word & f.Mask) >> f.Shift
}

// Set returns word with this field replaced by v (v is masked to the
// field's width first).
func (f Field) Set(word, v uint32) uint32 {
	return (word &^ f.Mask) | ((v << f.Shift) & f.Mask)
}

// Flag is a single-bit Field convenience wrapper.
type Flag struct {
	Bit uint32
}

// NewFlag returns a Flag at the given bit position.
func NewFlag(bit uint32) Flag { return Flag{Bit: uint32(1) << bit} }

// Get reports whether the flag bit is set in word.
func (f Flag) Get(word uint32) bool { return word&f.Bit != 0 }

// Set returns word with the flag bit set to v.
func (f Flag) Set(word uint32, v bool) uint32 {
	if v {
		return word | f.Bit
	}
	return word &^ f.Bit
}
