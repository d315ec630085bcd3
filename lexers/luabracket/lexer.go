// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luabracket

import (
	"github.com/inkfold/inkfold/charset"
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
	"github.com/inkfold/inkfold/style"
	"github.com/inkfold/inkfold/wordlist"
)

var (
	setWordStart = charset.New(charset.Alpha, "_", true)
	setWord      = charset.New(charset.AlphaNum, "_", true)
	setNumber    = charset.New(charset.Digits, ".-+abcdefpABCDEFP", false)
	setExponent  = charset.New(charset.None, "eEpP", false)
	setLuaOp     = charset.New(charset.None, "*/-+()={}~[];<>,.^%:#&|", false)
	setEscSkip   = charset.New(charset.None, "\"'\\", false)
)

// maskSeparator/maskStringWs/maskDocComment carve up the 32-bit line-state
// word per spec.md §4.12: low 8 bits the long-bracket equals-count, bit 8
// a pending `\z` whitespace-escape continuation, bit 9 "previous line was
// a doc-comment run". Grounded on LexLua.cxx's same-named constants.
const (
	maskSeparator = 0xFF
	maskStringWs  = 0x100
	maskDocComment = 0x200
)

func isASpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isASpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// longDelimCheck tests for a `[=[`/`]=]`-style delimiter starting at sc's
// current position: 0 if it's only a bare `[`/`]`, 1 for `[[`/`]]`, and
// >=2 for `[=[`/`]=]` and so on, up to 254 `=` characters. Grounded on
// LexLua.cxx's LongDelimCheck.
func longDelimCheck(sc *style.Context) int {
	const maximumEqualCharacters = 254
	sep := 1
	for sc.GetRelative(sep) == '=' && sep <= maximumEqualCharacters {
		sep++
	}
	if sc.GetRelative(sep) == sc.Ch() {
		return sep
	}
	return 0
}

// Lexer is the long-bracket lexer instance (spec.md component C9/C12).
type Lexer struct {
	opts   options
	optSet *lexopt.Set

	primary *wordlist.List
	w2      *wordlist.List
	w3      *wordlist.List
	w4      *wordlist.List
	w5      *wordlist.List
	w6      *wordlist.List
	w7      *wordlist.List
	w8      *wordlist.List
}

// New constructs a luabracket lexer with Lexilla's default Lua option
// values.
func New() *Lexer {
	lx := &Lexer{
		opts:    defaultOptions(),
		primary: wordlist.New("", false),
		w2:      wordlist.New("", false),
		w3:      wordlist.New("", false),
		w4:      wordlist.New("", false),
		w5:      wordlist.New("", false),
		w6:      wordlist.New("", false),
		w7:      wordlist.New("", false),
		w8:      wordlist.New("", false),
	}
	lx.optSet = newOptionSet(&lx.opts)
	return lx
}

func (lx *Lexer) Name() string { return "lua" }

func (lx *Lexer) PropertySet(name, text string) (bool, bool)  { return lx.optSet.PropertySet(name, text) }
func (lx *Lexer) PropertyGet(name string) (string, bool)       { return lx.optSet.PropertyGet(name) }
func (lx *Lexer) PropertyNames() []string                      { return lx.optSet.PropertyNames() }
func (lx *Lexer) DescribeProperty(name string) (string, bool)  { return lx.optSet.DescribeProperty(name) }
func (lx *Lexer) PropertyType(name string) (lexopt.Kind, bool) { return lx.optSet.PropertyType(name) }

func (lx *Lexer) DescribeWordListSets() []string { return wordListSet.Descriptions }

func (lx *Lexer) wordListSlot(n int) *wordlist.List {
	switch n {
	case wlPrimary:
		return lx.primary
	case wlWord2:
		return lx.w2
	case wlWord3:
		return lx.w3
	case wlWord4:
		return lx.w4
	case wlWord5:
		return lx.w5
	case wlWord6:
		return lx.w6
	case wlWord7:
		return lx.w7
	case wlWord8:
		return lx.w8
	default:
		return nil
	}
}

func (lx *Lexer) WordListSet(n int, text string) int {
	target := lx.wordListSlot(n)
	if target == nil {
		return -1
	}
	before := wordlist.New(text, false)
	if target.Equal(before) {
		return -1
	}
	target.Set(text)
	return 0
}

// classifyWord returns the style for ident if it matches one of the eight
// keyword lists, or Identifier if it matches none. Grounded on LexLua.cxx's
// chain of keywords/keywords2/.../keywords8 checks.
func (lx *Lexer) classifyWord(ident string) byte {
	switch {
	case lx.primary.InList(ident):
		return Word
	case lx.w2.InList(ident):
		return Word2
	case lx.w3.InList(ident):
		return Word3
	case lx.w4.InList(ident):
		return Word4
	case lx.w5.InList(ident):
		return Word5
	case lx.w6.InList(ident):
		return Word6
	case lx.w7.InList(ident):
		return Word7
	case lx.w8.InList(ident):
		return Word8
	default:
		return Identifier
	}
}

// Lex is the generic-loop driver (spec.md §4.10) specialised to the
// long-bracket Lua-like state machine, ported from LexerLua::Lex.
func (lx *Lexer) Lex(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	currentLine := acc.GetLine(startPos)

	sepCount := 0
	stringWs := false
	lastLineDocComment := false
	if currentLine > 0 {
		switch initStyle {
		case Default, LiteralString, Comment, CommentDoc, String, Character:
			ls := acc.LineState(currentLine - 1)
			sepCount = int(ls & maskSeparator)
			stringWs = ls&maskStringWs != 0
			lastLineDocComment = ls&maskDocComment != 0
		}
	}

	// Results of the in-progress identifier/keyword longest match.
	idenPos := 0
	idenWordPos := 0
	idenStyle := byte(Identifier)
	foundGoto := false

	// Do not leak onto the next line.
	switch initStyle {
	case StringEOL, CommentLine, CommentDoc, Preprocessor:
		initStyle = Default
	}

	sc := style.New(acc, startPos, length, initStyle)
	if startPos == 0 && sc.Ch() == '#' && sc.ChNext() == '!' {
		sc.SetState(CommentLine)
	}

	for sc.More() {
		if sc.AtLineEnd() {
			currentLine = acc.GetLine(sc.CurrentPos())
			switch sc.State() {
			case Default, LiteralString, Comment, CommentDoc, String, Character:
				ls := uint32(sepCount)
				if stringWs {
					ls |= maskStringWs
				}
				if lastLineDocComment {
					ls |= maskDocComment
				}
				acc.SetLineState(currentLine, ls)
			default:
				acc.SetLineState(currentLine, 0)
			}
		}
		if sc.AtLineStart() && sc.State() == String {
			sc.SetState(String)
		}

		if (sc.State() == String || sc.State() == Character) && sc.Ch() == '\\' {
			if sc.ChNext() == '\n' || sc.ChNext() == '\r' {
				sc.Forward()
				if sc.Ch() == '\r' && sc.ChNext() == '\n' {
					sc.Forward()
				}
				sc.Forward()
				continue
			}
		}

		switch sc.State() {
		case Operator:
			if sc.Ch() == ':' && sc.ChPrev() == ':' {
				sc.Forward()
				ln := 0
				for isASpaceOrTab(sc.GetRelative(ln)) {
					ln++
				}
				ws1 := ln
				if setWordStart.Contains(sc.GetRelative(ln)) {
					var s []byte
					for {
						c := sc.GetRelative(ln)
						if !setWord.Contains(c) {
							break
						}
						s = append(s, c)
						ln++
					}
					lbl := ln
					if !lx.primary.InList(string(s)) {
						for isASpaceOrTab(sc.GetRelative(ln)) {
							ln++
						}
						ws2 := ln - lbl
						if sc.GetRelative(ln) == ':' && sc.GetRelative(ln+1) == ':' {
							sc.ChangeState(Label)
							if ws1 > 0 {
								sc.SetState(Default)
								sc.ForwardN(ws1)
							}
							sc.SetState(Label)
							sc.ForwardN(lbl - ws1)
							if ws2 > 0 {
								sc.SetState(Default)
								sc.ForwardN(ws2)
							}
							sc.SetState(Label)
							sc.ForwardN(2)
						}
					}
				}
			}
			sc.SetState(Default)

		case Number:
			if !setNumber.Contains(sc.Ch()) {
				sc.SetState(Default)
			} else if sc.Ch() == '-' || sc.Ch() == '+' {
				if !setExponent.Contains(sc.ChPrev()) {
					sc.SetState(Default)
				}
			}

		case Identifier:
			idenPos--
			if idenWordPos > 0 {
				idenWordPos--
				sc.ChangeState(idenStyle)
				sc.ForwardN(idenWordPos)
				idenPos -= idenWordPos
				if idenPos > 0 {
					sc.SetState(Identifier)
					sc.ForwardN(idenPos)
				}
			} else {
				sc.ForwardN(idenPos)
			}
			sc.SetState(Default)
			if foundGoto {
				for isASpaceOrTab(sc.Ch()) && !sc.AtLineEnd() {
					sc.Forward()
				}
				if setWordStart.Contains(sc.Ch()) {
					sc.SetState(Label)
					sc.Forward()
					for setWord.Contains(sc.Ch()) {
						sc.Forward()
					}
					word := string(sc.GetCurrent())
					if lx.primary.InList(word) {
						sc.ChangeState(Word)
					}
				}
				sc.SetState(Default)
			}

		case CommentLine, CommentDoc, Preprocessor:
			if sc.AtLineEnd() {
				sc.ForwardSetState(Default)
			}

		case String:
			if stringWs && !isASpace(sc.Ch()) {
				stringWs = false
			}
			switch {
			case sc.Ch() == '\\':
				if setEscSkip.Contains(sc.ChNext()) {
					sc.Forward()
				} else if sc.ChNext() == 'z' {
					sc.Forward()
					stringWs = true
				}
			case sc.Ch() == '"':
				sc.ForwardSetState(Default)
			case !stringWs && sc.AtLineEnd():
				sc.ChangeState(StringEOL)
				sc.ForwardSetState(Default)
			}

		case Character:
			if stringWs && !isASpace(sc.Ch()) {
				stringWs = false
			}
			switch {
			case sc.Ch() == '\\':
				if setEscSkip.Contains(sc.ChNext()) {
					sc.Forward()
				} else if sc.ChNext() == 'z' {
					sc.Forward()
					stringWs = true
				}
			case sc.Ch() == '\'':
				sc.ForwardSetState(Default)
			case !stringWs && sc.AtLineEnd():
				sc.ChangeState(StringEOL)
				sc.ForwardSetState(Default)
			}

		default:
			if sc.Ch() == ']' && (sc.State() == LiteralString || sc.State() == Comment) {
				sep := longDelimCheck(sc)
				if sep == sepCount {
					sc.ForwardN(sep)
					sc.ForwardSetState(Default)
				}
			}
		}

		if sc.State() == Default {
			switch {
			case isDigit(sc.Ch()) || (sc.Ch() == '.' && isDigit(sc.ChNext())):
				sc.SetState(Number)
				if sc.Ch() == '0' && (sc.ChNext() == 'x' || sc.ChNext() == 'X') {
					sc.Forward()
				}

			case setWordStart.Contains(sc.Ch()):
				ident := ""
				idenPos = 0
				idenWordPos = 0
				idenStyle = Identifier
				foundGoto = false
				var cNext byte
				for {
					idenPosOld := idenPos
					var identSeg []byte
					identSeg = append(identSeg, sc.GetRelative(idenPos))
					idenPos++
					var cIdent byte
					for {
						cIdent = sc.GetRelative(idenPos)
						if !setWord.Contains(cIdent) {
							break
						}
						identSeg = append(identSeg, cIdent)
						idenPos++
					}
					if lx.primary.InList(string(identSeg)) && idenPosOld > 0 {
						idenPos = idenPosOld - 1
						ident = ident[:len(ident)-1]
						break
					}
					ident += string(identSeg)
					newStyle := lx.classifyWord(ident)
					if newStyle != Identifier {
						idenStyle = newStyle
						idenWordPos = idenPos
					}
					if idenStyle == Word {
						break
					}
					cNext = sc.GetRelative(idenPos + 1)
					if (cIdent == '.' || cIdent == ':') && setWordStart.Contains(cNext) {
						ident += string(cIdent)
						idenPos++
					} else {
						cNext = 0
					}
					if cNext == 0 {
						break
					}
				}
				if idenStyle == Word && ident == "goto" {
					foundGoto = true
				}
				sc.SetState(Identifier)

			case sc.Ch() == '"':
				sc.SetState(String)
				stringWs = false

			case sc.Ch() == '\'':
				sc.SetState(Character)
				stringWs = false

			case sc.Ch() == '[':
				sepCount = longDelimCheck(sc)
				if sepCount == 0 {
					sc.SetState(Operator)
				} else {
					sc.SetState(LiteralString)
					sc.ForwardN(sepCount)
				}

			case sc.Ch() == '-' && sc.ChNext() == '-':
				if lastLineDocComment {
					sc.SetState(CommentDoc)
				} else {
					sc.SetState(CommentLine)
				}
				switch {
				case sc.Match("--["):
					sc.ForwardN(2)
					sepCount = longDelimCheck(sc)
					if sepCount > 0 {
						sc.ChangeState(Comment)
						sc.ForwardN(sepCount)
					}
				case sc.Match("---"):
					sc.SetState(CommentDoc)
					lastLineDocComment = true
				default:
					sc.Forward()
				}

			case sc.AtLineStart() && sc.Ch() == '$':
				sc.SetState(Preprocessor)

			case setLuaOp.Contains(sc.Ch()):
				sc.SetState(Operator)
			}

			if sc.State() != Default && sc.State() != CommentDoc {
				lastLineDocComment = false
			}
		}

		sc.Forward()
	}

	sc.Complete()
}
