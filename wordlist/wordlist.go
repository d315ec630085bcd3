// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordlist implements a sorted, lowercase-normalisable keyword set,
// grounded on Scintilla's WordList (lexlib/WordList.cxx): built from a
// whitespace-delimited blob, sorted lazily on first query, with support for
// exact membership and the "abbreviated match" convention
// (FUNC~TION matches FUNC, FUNCT, ..., FUNCTION) used throughout the
// Lexilla lexers for things like task markers and Fortran's abbreviated
// keywords.
package wordlist

import (
	"bufio"
	"bytes"
	"sort"
	"strings"
)

// List is a set of keywords. The zero value is an empty, ready-to-use list.
type List struct {
	words    []string
	sorted   bool
	caseFold bool
}

// New builds a List from a whitespace/newline-delimited blob of words. If
// caseFold is true, all words and all queries are lowercased first, the way
// lexers with case-insensitive keywords (SQL, Pascal, Basic) configure
// their word lists.
func New(blob string, caseFold bool) *List {
	l := &List{caseFold: caseFold}
	l.Set(blob)
	return l
}

// Set discards the current contents and rebuilds the list from blob,
// mirroring Scintilla's WordList::Set used by the host's "set keywords n"
// call.
func (l *List) Set(blob string) {
	l.words = l.words[:0]
	sc := bufio.NewScanner(strings.NewReader(blob))
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := sc.Text()
		if l.caseFold {
			w = strings.ToLower(w)
		}
		l.words = append(l.words, w)
	}
	l.sorted = false
}

func (l *List) ensureSorted() {
	if l.sorted {
		return
	}
	sort.Strings(l.words)
	l.sorted = true
}

// norm applies case folding to a query string without allocating unless
// folding is actually configured and needed.
func (l *List) norm(s string) string {
	if l.caseFold {
		return strings.ToLower(s)
	}
	return s
}

// InList reports whether s is an exact member of the list, via binary
// search over the lazily-sorted backing slice.
func (l *List) InList(s string) bool {
	if len(l.words) == 0 {
		return false
	}
	l.ensureSorted()
	s = l.norm(s)
	i := sort.SearchStrings(l.words, s)
	return i < len(l.words) && l.words[i] == s
}

// InListBytes is InList for a byte slice, avoiding an allocation for the
// common case of a non-case-folded list (the hot path for every identifier
// classified by a lexer).
func (l *List) InListBytes(b []byte) bool {
	if !l.caseFold {
		if len(l.words) == 0 {
			return false
		}
		l.ensureSorted()
		i := sort.Search(len(l.words), func(i int) bool { return l.words[i] >= string(b) })
		return i < len(l.words) && l.words[i] == string(b)
	}
	return l.InList(string(b))
}

// InListAbbreviated reports whether s matches a stored word that contains
// marker, where marker splits the stored word into a required prefix and
// an optional suffix: s matches if it is at least the prefix and at most
// the full word. This is Scintilla's WordList::InListAbbreviated, used for
// e.g. Fortran's "END~PROGRAM" (matches END, ENDP, ..., ENDPROGRAM) and for
// C-family task markers with a trailing optional colon.
func (l *List) InListAbbreviated(s string, marker byte) bool {
	if len(l.words) == 0 {
		return false
	}
	l.ensureSorted()
	s = l.norm(s)
	if len(s) == 0 {
		return false
	}
	first := s[0]
	// Walk from the first candidate whose first byte matches; abbreviated
	// entries are sorted alongside plain entries so a linear scan from the
	// first same-first-byte candidate is sufficient and bounded by the
	// list's fan-out for that letter.
	i := sort.SearchStrings(l.words, string(first))
	for ; i < len(l.words) && len(l.words[i]) > 0 && l.words[i][0] == first; i++ {
		w := l.words[i]
		mi := strings.IndexByte(w, marker)
		if mi < 0 {
			if w == s {
				return true
			}
			continue
		}
		prefix := w[:mi]
		full := prefix + w[mi+1:]
		if len(s) < len(prefix) || len(s) > len(full) {
			continue
		}
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		// s must agree with full on every byte up to len(s).
		if s == full[:len(s)] {
			return true
		}
	}
	return false
}

// Equal reports whether two lists have the same sorted, normalised
// content. The host's "set word list n" call should report "first modified
// line = 0" (i.e. no re-lex needed) exactly when Equal holds between the
// old and new list, per spec.md §4.2.
func (l *List) Equal(o *List) bool {
	l.ensureSorted()
	o.ensureSorted()
	return slicesEqual(l.words, o.words)
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Len returns the number of words currently in the list.
func (l *List) Len() int { return len(l.words) }

// Dump returns the sorted words joined by a single space, useful for
// debugging and for golden tests that assert on a list's normalized form.
func (l *List) Dump() string {
	l.ensureSorted()
	var b bytes.Buffer
	for i, w := range l.words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
