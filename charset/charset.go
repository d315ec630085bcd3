// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charset implements fast membership tests over small character
// sets, the kind every lexer state machine needs dozens of times per byte
// (is this a word-start byte, a hex digit, an operator byte...). It is
// grounded on the match predicates in Lexilla's lexlib (CharacterSet) and
// on the IsLetter/IsDigit helpers in cogentcore's parse/lexer/matches.go,
// generalized into a reusable, user-extensible bitmap type.
package charset

// Seed selects a base alphabet that a [Set] is built from before any extra
// characters are unioned in.
type Seed int

const (
	// None starts from an empty set.
	None Seed = iota
	// Alpha seeds with ASCII letters (a-z, A-Z).
	Alpha
	// Digits seeds with ASCII digits (0-9).
	Digits
	// AlphaNum seeds with ASCII letters and digits.
	AlphaNum
)

// Set is a precomputed membership table over bytes. ASCII membership
// (0x00-0x7F) is a single array lookup; non-ASCII bytes (0x80-0xFF) are
// either all admitted or all rejected, controlled by AllowHighBit, matching
// Scintilla's CharacterSet, which treats any byte with the top bit set as a
// potential UTF-8 continuation/lead byte for "word" characters.
type Set struct {
	table       [128]bool
	AllowHighBit bool
}

// New builds a Set from a seed alphabet plus an extra string of ASCII
// characters to union in. allowHighBit mirrors Scintilla's CharacterSet
// constructor argument of the same name, which most lexers set true only
// for identifier character sets (so UTF-8 encoded identifiers lex as one
// run) and false for things like operator sets.
func New(seed Seed, extra string, allowHighBit bool) *Set {
	s := &Set{AllowHighBit: allowHighBit}
	switch seed {
	case Alpha:
		s.addRange('a', 'z')
		s.addRange('A', 'Z')
	case Digits:
		s.addRange('0', '9')
	case AlphaNum:
		s.addRange('a', 'z')
		s.addRange('A', 'Z')
		s.addRange('0', '9')
	}
	s.Add(extra)
	return s
}

func (s *Set) addRange(lo, hi byte) {
	for c := lo; c <= hi; c++ {
		s.table[c] = true
	}
}

// Add unions additional ASCII bytes into the set. Bytes outside [0, 0x7F]
// in extra are ignored (high-bit handling is the AllowHighBit flag, not a
// per-byte table entry).
func (s *Set) Add(extra string) {
	for i := 0; i < len(extra); i++ {
		c := extra[i]
		if c < 128 {
			s.table[c] = true
		}
	}
}

// Contains reports whether b is a member of the set: one array lookup for
// ASCII, one comparison for non-ASCII.
func (s *Set) Contains(b byte) bool {
	if b < 128 {
		return s.table[b]
	}
	return s.AllowHighBit
}

// Common character classes, precomputed once at package init the way
// Scintilla lexers precompute their CharacterSet globals.
var (
	// Hex is hexadecimal digit characters: 0-9, a-f, A-F.
	Hex = New(Digits, "abcdefABCDEF", false)

	// WordStart is the set of bytes that can begin an identifier: letters,
	// underscore, and any high-bit byte (so a UTF-8 identifier lexes as one
	// run starting from its lead byte).
	WordStart = New(Alpha, "_", true)

	// WordContinue is the set of bytes that can continue an identifier
	// after its first byte: letters, digits, underscore, high-bit bytes.
	WordContinue = New(AlphaNum, "_", true)

	// Digit10 is decimal digits only (no high-bit, no letters).
	Digit10 = New(Digits, "", false)

	// Whitespace is space and tab; line terminators are handled separately
	// by the line-splitting logic in package document, not here.
	Whitespace = New(None, " \t", false)
)
