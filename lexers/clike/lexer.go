// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clike

import (
	"strings"

	"github.com/inkfold/inkfold/charset"
	"github.com/inkfold/inkfold/document"
	"github.com/inkfold/inkfold/lexopt"
	"github.com/inkfold/inkfold/preproc"
	"github.com/inkfold/inkfold/style"
	"github.com/inkfold/inkfold/wordlist"
)

var (
	setWordStart   = charset.New(charset.Alpha, "_$", true)
	setWord        = charset.New(charset.AlphaNum, "_$", true)
	setOKBeforeRE  = charset.New(charset.None, "([{=,:;!%^&*|?~+-", false)
	setCouldBePost = charset.New(charset.None, "+-", false)
)

func isSpaceEquivStyle(s byte) bool {
	switch MaskActive(s) {
	case Default, Comment, CommentDoc, CommentLine, CommentLineDoc:
		return true
	default:
		return false
	}
}

func isOperatorByte(b byte) bool {
	switch b {
	case '(', ')', '{', '}', '[', ']', '+', '-', '*', '/', '%', '^', '&', '|',
		'~', '!', '<', '>', '=', ',', ':', ';', '?', '.':
		return true
	default:
		return false
	}
}

// rawDelimHistory is the raw-string terminator map (spec.md §9's sparse
// "container keyed by line" pattern): which raw-string delimiter, if any,
// was still open at the end of a given line. Grounded on LexCPP.cxx's
// `SparseState<std::string> rawStringTerminators`.
type rawDelimHistory struct {
	byLine map[int]string
}

func (h *rawDelimHistory) ForLine(line int) string {
	if h.byLine == nil {
		return ""
	}
	return h.byLine[line]
}

func (h *rawDelimHistory) Add(line int, delim string) {
	if h.byLine == nil {
		h.byLine = make(map[int]string)
	}
	h.byLine[line] = delim
}

func (h *rawDelimHistory) TruncateFrom(line int) {
	for k := range h.byLine {
		if k >= line {
			delete(h.byLine, k)
		}
	}
}

// Lexer is the C-family lexer instance (spec.md component C9/C11): one per
// open document, owning its word lists, macro table, and per-line
// conditional/raw-string history so repeated Lex calls over the same
// document stay consistent with each other.
type Lexer struct {
	opts   options
	optSet *lexopt.Set

	primary     *wordlist.List
	secondary   *wordlist.List
	docComment  *wordlist.List
	globalClass *wordlist.List
	taskMarker  *wordlist.List

	macros       *preproc.Table
	conditionals preproc.History
	rawDelims    rawDelimHistory
}

// New constructs a clike lexer. Its default option values are this host's
// own opinionated defaults (folding comments, preprocessor conditionals,
// and trailing blanks turned on out of the box), not a port of Lexilla's
// CPP defaults — see DESIGN.md's lexers/clike entry for the specific
// divergences (notably the lack of a master fold/foldSyntaxBased gate).
func New() *Lexer {
	lx := &Lexer{
		opts:        defaultOptions(),
		primary:     wordlist.New("", false),
		secondary:   wordlist.New("", false),
		docComment:  wordlist.New("", false),
		globalClass: wordlist.New("", false),
		taskMarker:  wordlist.New("", true),
		macros:      preproc.NewTable(nil),
	}
	lx.optSet = newOptionSet(&lx.opts)
	return lx
}

func (lx *Lexer) Name() string { return "clike" }

func (lx *Lexer) PropertySet(name, text string) (bool, bool) { return lx.optSet.PropertySet(name, text) }
func (lx *Lexer) PropertyGet(name string) (string, bool)      { return lx.optSet.PropertyGet(name) }
func (lx *Lexer) PropertyNames() []string                     { return lx.optSet.PropertyNames() }
func (lx *Lexer) DescribeProperty(name string) (string, bool) { return lx.optSet.DescribeProperty(name) }
func (lx *Lexer) PropertyType(name string) (lexopt.Kind, bool) { return lx.optSet.PropertyType(name) }

func (lx *Lexer) DescribeWordListSets() []string { return wordListSet.Descriptions }

func (lx *Lexer) WordListSet(n int, text string) int {
	var target *wordlist.List
	switch n {
	case wlPrimary:
		target = lx.primary
	case wlSecondary:
		target = lx.secondary
	case wlDocComment:
		target = lx.docComment
	case wlGlobalClass:
		target = lx.globalClass
	case wlTaskMarker:
		target = lx.taskMarker
	case wlPreprocessor:
		lx.loadPreprocessorDefinitions(text)
		return 0
	default:
		return -1
	}
	before := wordlist.New(text, false)
	if target.Equal(before) {
		return -1
	}
	target.Set(text)
	return 0
}

// loadPreprocessorDefinitions seeds the macro table's base set from a
// "NAME=value" or bare "NAME" per-token blob, the word-list slot a host
// uses to feed in command-line -D style definitions.
func (lx *Lexer) loadPreprocessorDefinitions(text string) {
	base := make(map[string]preproc.Symbol)
	for _, tok := range strings.Fields(text) {
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			base[tok[:eq]] = preproc.Symbol{Value: tok[eq+1:]}
		} else {
			base[tok] = preproc.Symbol{Value: "1"}
		}
	}
	lx.macros = preproc.NewTable(base)
}

// restOfLine returns the document bytes from pos to the end of its line,
// matching LexCPP.cxx's GetRestOfLine (stopAtLineComment true stops at a
// following "//" the way an #if condition does, so a trailing comment
// never reaches the expression evaluator).
func restOfLine(acc *document.Accessor, pos int, stopAtLineComment bool) string {
	line := acc.GetLine(pos)
	end := acc.LineEnd(line)
	if pos >= end {
		return ""
	}
	b := acc.Bytes(pos, end)
	if stopAtLineComment {
		for i := 0; i+1 < len(b); i++ {
			if b[i] == '/' && (b[i+1] == '/' || b[i+1] == '*') {
				b = b[:i]
				break
			}
		}
	}
	return string(b)
}

// Lex is the generic-loop driver (spec.md §4.10) specialised to the
// C-family state machine, ported from LexerCPP::Lex.
func (lx *Lexer) Lex(doc document.Document, startPos, length int, initStyle byte) {
	acc := document.NewAccessor(doc, startPos)
	lineCurrent := acc.GetLine(startPos)

	continuationLine := false
	switch MaskActive(initStyle) {
	case Preprocessor, CommentLine, CommentLineDoc:
		if lineCurrent > 0 {
			endPrev := acc.LineEnd(lineCurrent - 1)
			if endPrev > 0 {
				continuationLine = acc.CharAt(endPrev-1) == '\\'
			}
		}
	}

	chPrevNonWhite := byte(' ')
	if startPos > 0 {
		back := startPos
		for back > 0 {
			back--
			if !isSpaceEquivStyle(MaskActive(acc.StyleAt(back))) {
				break
			}
		}
		if MaskActive(acc.StyleAt(back)) == Operator {
			chPrevNonWhite = acc.CharAt(back)
		}
	}

	sc := style.New(acc, startPos, length, initStyle)

	if !lx.opts.trackPreprocessor {
		lx.macros = preproc.NewTable(lx.macros.Base)
		lx.conditionals = preproc.History{}
	} else {
		lx.macros.Truncate(lineCurrent - 1)
	}
	lx.rawDelims.TruncateFrom(lineCurrent)

	pp := lx.conditionals.ForLine(lineCurrent)
	rawStringTerminator := lx.rawDelims.ForLine(lineCurrent - 1)

	activitySet := byte(0)
	if pp.IsInactive() {
		activitySet = ActiveFlag
	}

	lineEndNext := acc.LineEnd(lineCurrent)

	visibleChars := 0
	lastWordWasUUID := false
	styleBeforeDocKeyword := Default
	styleBeforeTaskMarker := Default
	isIncludePreprocessor := false
	isStringInPreprocessor := false
	inRERange := false
	seenDocKeyBrace := false
	definitionsChanged := false

	for sc.More() {
		if sc.AtLineStart() {
			if sc.State() == String || sc.State() == Character {
				sc.SetState(sc.State())
			}
			if MaskActive(sc.State()) == Preprocessor && !continuationLine {
				sc.SetState(Default | activitySet)
			}
			visibleChars = 0
			lastWordWasUUID = false
			isIncludePreprocessor = false
			inRERange = false
			if pp.IsInactive() {
				activitySet = ActiveFlag
				sc.SetState(sc.State() | activitySet)
			}
		}

		if sc.AtLineEnd() {
			lineCurrent++
			lineEndNext = acc.LineEnd(lineCurrent)
			lx.conditionals.Add(lineCurrent, pp)
			if rawStringTerminator != "" {
				lx.rawDelims.Add(lineCurrent-1, rawStringTerminator)
			}
		}

		if sc.Ch() == '\\' {
			if sc.CurrentPos()+1 >= lineEndNext {
				lineCurrent++
				lineEndNext = acc.LineEnd(lineCurrent)
				lx.conditionals.Add(lineCurrent, pp)
				sc.Forward()
				if sc.Ch() == '\r' && sc.ChNext() == '\n' {
					sc.Forward()
				}
				continuationLine = true
				sc.Forward()
				continue
			}
		}

		atLineEndBeforeSwitch := sc.AtLineEnd()

		switch MaskActive(sc.State()) {
		case Operator:
			sc.SetState(Default | activitySet)
		case Number:
			if sc.Ch() == '_' {
				sc.ChangeState(UserLiteral | activitySet)
			} else if !(setWord.Contains(sc.Ch()) || sc.Ch() == '\'' ||
				((sc.Ch() == '+' || sc.Ch() == '-') &&
					(sc.ChPrev() == 'e' || sc.ChPrev() == 'E' || sc.ChPrev() == 'p' || sc.ChPrev() == 'P'))) {
				sc.SetState(Default | activitySet)
			}
		case UserLiteral:
			if !setWord.Contains(sc.Ch()) {
				sc.SetState(Default | activitySet)
			}
		case Identifier:
			if sc.AtLineStart() || sc.AtLineEnd() || !setWord.Contains(sc.Ch()) || sc.Ch() == '.' {
				word := string(sc.GetCurrent())
				if lx.opts.caseSensitive {
					if lx.primary.InList(word) {
						lastWordWasUUID = word == "uuid"
						sc.ChangeState(Word | activitySet)
					} else if lx.secondary.InList(word) {
						sc.ChangeState(Word2 | activitySet)
					} else if lx.globalClass.InList(word) {
						sc.ChangeState(GlobalClass | activitySet)
					}
				} else {
					lower := strings.ToLower(word)
					if lx.primary.InList(lower) {
						lastWordWasUUID = lower == "uuid"
						sc.ChangeState(Word | activitySet)
					} else if lx.secondary.InList(lower) {
						sc.ChangeState(Word2 | activitySet)
					} else if lx.globalClass.InList(lower) {
						sc.ChangeState(GlobalClass | activitySet)
					}
				}
				literalString := sc.Ch() == '"'
				if literalString || sc.Ch() == '\'' {
					raw := literalString && sc.ChPrev() == 'R'
					lenS := len(word)
					if raw {
						lenS--
					}
					valid := lenS == 0 ||
						(lenS == 1 && (word[0] == 'L' || word[0] == 'u' || word[0] == 'U')) ||
						(lenS == 2 && literalString && word[0] == 'u' && word[1] == '8')
					switch {
					case !valid:
						sc.SetState(Default | activitySet)
					case literalString && raw:
						sc.ChangeState(StringRaw | activitySet)
						sc.SetState(Default | activitySet)
					case literalString:
						sc.ChangeState(String | activitySet)
					default:
						sc.ChangeState(Character | activitySet)
					}
				} else {
					sc.SetState(Default | activitySet)
				}
			}
		case Preprocessor:
			if lx.opts.stylingWithinPreproc {
				if sc.Ch() == ' ' || sc.Ch() == '\t' {
					sc.SetState(Default | activitySet)
				}
			} else if isStringInPreprocessor && (sc.Ch() == '>' || sc.Ch() == '"' || sc.AtLineEnd()) {
				isStringInPreprocessor = false
			} else if !isStringInPreprocessor {
				if (isIncludePreprocessor && sc.Ch() == '<') || sc.Ch() == '"' {
					isStringInPreprocessor = true
				} else if sc.Match2('/', '*') {
					if sc.Match("/**") || sc.Match("/*!") {
						sc.SetState(PreprocessorCommentDoc | activitySet)
					} else {
						sc.SetState(PreprocessorComment | activitySet)
					}
					sc.Forward()
				} else if sc.Match2('/', '/') {
					sc.SetState(Default | activitySet)
				}
			}
		case PreprocessorComment, PreprocessorCommentDoc:
			if sc.Match2('*', '/') {
				sc.Forward()
				sc.ForwardSetState(Preprocessor | activitySet)
				continue
			}
		case Comment:
			if sc.Match2('*', '/') {
				sc.Forward()
				sc.ForwardSetState(Default | activitySet)
			} else {
				styleBeforeTaskMarker = Comment
				lx.highlightTaskMarker(sc, activitySet, &styleBeforeTaskMarker)
			}
		case CommentDoc:
			if sc.Match2('*', '/') {
				sc.Forward()
				sc.ForwardSetState(Default | activitySet)
			} else if sc.Ch() == '@' || sc.Ch() == '\\' {
				if (sc.ChPrev() == ' ' || sc.ChPrev() == '\t' || sc.ChPrev() == '*') && sc.ChNext() != ' ' && sc.ChNext() != '\t' {
					styleBeforeDocKeyword = CommentDoc
					sc.SetState(CommentDocKeyword | activitySet)
				}
			}
		case CommentLine:
			if sc.AtLineStart() && !continuationLine {
				sc.SetState(Default | activitySet)
			} else {
				styleBeforeTaskMarker = CommentLine
				lx.highlightTaskMarker(sc, activitySet, &styleBeforeTaskMarker)
			}
		case CommentLineDoc:
			if sc.AtLineStart() && !continuationLine {
				sc.SetState(Default | activitySet)
			} else if sc.Ch() == '@' || sc.Ch() == '\\' {
				if (sc.ChPrev() == ' ' || sc.ChPrev() == '/' || sc.ChPrev() == '!') && sc.ChNext() != ' ' {
					styleBeforeDocKeyword = CommentLineDoc
					sc.SetState(CommentDocKeyword | activitySet)
				}
			}
		case CommentDocKeyword:
			if styleBeforeDocKeyword == CommentDoc && sc.Match2('*', '/') {
				sc.ChangeState(CommentDocKeywordError)
				sc.Forward()
				sc.ForwardSetState(Default | activitySet)
				seenDocKeyBrace = false
			} else if sc.Ch() == '[' || sc.Ch() == '{' {
				seenDocKeyBrace = true
			} else if !docKeywordCharset.Contains(sc.Ch()) && !(seenDocKeyBrace && (sc.Ch() == ',' || sc.Ch() == '.')) {
				word := string(sc.GetCurrent())
				if len(word) > 1 {
					key := word[1:]
					if lx.opts.caseSensitive {
						if !lx.docComment.InList(key) {
							sc.ChangeState(CommentDocKeywordError | activitySet)
						}
					} else if !lx.docComment.InList(strings.ToLower(key)) {
						sc.ChangeState(CommentDocKeywordError | activitySet)
					}
				}
				sc.SetState(styleBeforeDocKeyword | activitySet)
				seenDocKeyBrace = false
			}
		case String:
			if sc.AtLineEnd() {
				sc.ChangeState(StringEOL | activitySet)
			} else if isIncludePreprocessor {
				if sc.Ch() == '>' {
					sc.ForwardSetState(Default | activitySet)
					isIncludePreprocessor = false
				}
			} else if sc.Ch() == '\\' {
				if lx.opts.escapeSequence {
					sc.SetState(EscapeSequence | activitySet)
				}
				sc.Forward()
			} else if sc.Ch() == '"' {
				if sc.ChNext() == '_' {
					sc.ChangeState(UserLiteral | activitySet)
				} else {
					sc.ForwardSetState(Default | activitySet)
				}
			}
		case EscapeSequence:
			if sc.Ch() == '"' {
				sc.SetState(String | activitySet)
				sc.ForwardSetState(Default | activitySet)
			} else if sc.Ch() != '\\' {
				sc.SetState(String | activitySet)
			}
		case StringRaw:
			if rawStringTerminator != "" && sc.Match(rawStringTerminator) {
				sc.ForwardBytes(len(rawStringTerminator))
				sc.SetState(Default | activitySet)
				rawStringTerminator = ""
			}
		case Character:
			if sc.AtLineEnd() {
				sc.ChangeState(StringEOL | activitySet)
			} else if sc.Ch() == '\\' {
				if sc.ChNext() == '"' || sc.ChNext() == '\'' || sc.ChNext() == '\\' {
					sc.Forward()
				}
			} else if sc.Ch() == '\'' {
				if sc.ChNext() == '_' {
					sc.ChangeState(UserLiteral | activitySet)
				} else {
					sc.ForwardSetState(Default | activitySet)
				}
			}
		case Regex:
			if sc.AtLineStart() {
				sc.SetState(Default | activitySet)
			} else if !inRERange && sc.Ch() == '/' {
				sc.Forward()
				for sc.Ch() < 0x80 && sc.Ch() >= 'a' && sc.Ch() <= 'z' {
					sc.Forward()
				}
				sc.SetState(Default | activitySet)
			} else if sc.Ch() == '\\' && sc.CurrentPos()+1 < lineEndNext {
				sc.Forward()
			} else if sc.Ch() == '[' {
				inRERange = true
			} else if sc.Ch() == ']' {
				inRERange = false
			}
		case StringEOL:
			if sc.AtLineStart() {
				sc.SetState(Default | activitySet)
			}
		case Verbatim:
			if sc.Ch() == '"' {
				if sc.ChNext() == '"' {
					sc.Forward()
				} else {
					sc.ForwardSetState(Default | activitySet)
				}
			}
		case TripleVerbatim:
			if sc.Match(`"""`) {
				for sc.Ch() == '"' {
					sc.Forward()
				}
				sc.SetState(Default | activitySet)
			}
		case HashQuotedString:
			if sc.Ch() == '\\' {
				if sc.ChNext() == '"' || sc.ChNext() == '\'' || sc.ChNext() == '\\' {
					sc.Forward()
				}
			} else if sc.Ch() == '"' {
				sc.ForwardSetState(Default | activitySet)
			}
		case UUID:
			if sc.AtLineEnd() || sc.Ch() == ')' {
				sc.SetState(Default | activitySet)
			}
		case TaskMarker:
			if isOperatorByte(sc.Ch()) || sc.Ch() == ' ' || sc.Ch() == '\t' {
				sc.SetState(styleBeforeTaskMarker | activitySet)
				styleBeforeTaskMarker = Default
			}
		}

		if sc.AtLineEnd() && !atLineEndBeforeSwitch {
			lineCurrent++
			lineEndNext = acc.LineEnd(lineCurrent)
			lx.conditionals.Add(lineCurrent, pp)
		}

		if MaskActive(sc.State()) == Default {
			switch {
			case sc.Match2('@', '"'):
				sc.SetState(Verbatim | activitySet)
				sc.Forward()
			case sc.Match(`"""`):
				sc.SetState(TripleVerbatim | activitySet)
				sc.ForwardN(2)
			case sc.Match2('#', '"'):
				sc.SetState(HashQuotedString | activitySet)
				sc.Forward()
			case sc.Ch() == '`':
				sc.SetState(StringRaw | activitySet)
				rawStringTerminator = "`"
			case isDigit(sc.Ch()) || (sc.Ch() == '.' && isDigit(sc.ChNext())):
				if lastWordWasUUID {
					sc.SetState(UUID | activitySet)
					lastWordWasUUID = false
				} else {
					sc.SetState(Number | activitySet)
				}
			case !sc.AtLineEnd() && (setWordStart.Contains(sc.Ch()) || sc.Ch() == '@'):
				if lastWordWasUUID {
					sc.SetState(UUID | activitySet)
					lastWordWasUUID = false
				} else {
					sc.SetState(Identifier | activitySet)
				}
			case sc.Match2('/', '*'):
				if sc.Match("/**") || sc.Match("/*!") {
					sc.SetState(CommentDoc | activitySet)
				} else {
					sc.SetState(Comment | activitySet)
				}
				sc.Forward()
			case sc.Match2('/', '/'):
				if (sc.Match("///") && !sc.Match("////")) || sc.Match("//!") {
					sc.SetState(CommentLineDoc | activitySet)
				} else {
					sc.SetState(CommentLine | activitySet)
				}
			case sc.Ch() == '/' &&
				(setOKBeforeRE.Contains(chPrevNonWhite) || followsReturnKeyword(acc, sc)) &&
				(!setCouldBePost.Contains(chPrevNonWhite) || !followsPostfixOperator(acc, sc)):
				sc.SetState(Regex | activitySet)
				inRERange = false
			case sc.Ch() == '"':
				if sc.ChPrev() == 'R' && MaskActive(acc.StyleAt(sc.CurrentPos()-1)) == StringRaw {
					sc.SetState(StringRaw | activitySet)
					term := ")"
					for p := sc.CurrentPos() + 1; ; p++ {
						ch := acc.CharAt(p)
						if ch == 0 || ch == '(' {
							break
						}
						term += string(ch)
					}
					term += `"`
					rawStringTerminator = term
				} else {
					sc.SetState(String | activitySet)
				}
				isIncludePreprocessor = false
			case isIncludePreprocessor && sc.Ch() == '<':
				sc.SetState(String | activitySet)
			case sc.Ch() == '\'':
				sc.SetState(Character | activitySet)
			case sc.Ch() == '#' && visibleChars == 0:
				sc.SetState(Preprocessor | activitySet)
				for {
					sc.Forward()
					if !(sc.Ch() == ' ' || sc.Ch() == '\t') || !sc.More() {
						break
					}
				}
				if sc.AtLineEnd() {
					sc.SetState(Default | activitySet)
				} else if sc.Match("include") {
					isIncludePreprocessor = true
				} else if lx.opts.trackPreprocessor {
					definitionsChanged = lx.directive(acc, sc, &pp, &activitySet, lineCurrent) || definitionsChanged
				}
			case isOperatorByte(sc.Ch()):
				sc.SetState(Operator | activitySet)
			}
		}

		if sc.Ch() != ' ' && sc.Ch() != '\t' && !isSpaceEquivStyle(MaskActive(sc.State())) {
			chPrevNonWhite = sc.Ch()
			visibleChars++
		}
		continuationLine = false
		sc.Forward()
	}

	sc.Complete()
	if definitionsChanged {
		acc.ChangeLexerState(startPos, startPos+length)
	}
}

var docKeywordCharset = charset.New(charset.Alpha, "$@\\&<>#{}[]", false)

// followsPostfixOperator reports whether the nearest preceding run of '+'
// or '-' bytes before the cursor is doubled ("++"/"--"), in which case a
// following '/' is division, not a regex literal. Grounded on LexCPP.cxx's
// FollowsPostfixOperator.
func followsPostfixOperator(acc *document.Accessor, sc *style.Context) bool {
	pos := sc.CurrentPos()
	for pos > 0 {
		pos--
		ch := acc.CharAt(pos)
		if ch == '+' || ch == '-' {
			return pos > 0 && acc.CharAt(pos-1) == ch
		}
	}
	return false
}

// followsReturnKeyword reports whether the bytes immediately preceding the
// cursor on the current line, skipping spaces/tabs, spell "return"
// backwards. Grounded on LexCPP.cxx's followsReturnKeyword.
func followsReturnKeyword(acc *document.Accessor, sc *style.Context) bool {
	pos := sc.CurrentPos()
	line := acc.GetLine(pos)
	lineStart := acc.LineStart(line)
	for pos > lineStart {
		pos--
		ch := acc.CharAt(pos)
		if ch != ' ' && ch != '\t' {
			break
		}
	}
	want := "nruter"
	for i := 0; i < len(want); i++ {
		if pos < lineStart || acc.CharAt(pos) != want[i] {
			return false
		}
		pos--
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// highlightTaskMarker switches into TaskMarker when the upcoming word
// matches the configured marker list (e.g. "TODO", "FIXME"), grounded on
// LexCPP.cxx's highlightTaskMarker helper.
func (lx *Lexer) highlightTaskMarker(sc *style.Context, activitySet byte, styleBefore *byte) {
	if sc.AtLineStart() || !setWordStart.Contains(sc.Ch()) {
		return
	}
	prev := sc.ChPrev()
	if prev != 0 && prev != ' ' && prev != '\t' && prev != '*' && prev != '!' && prev != '/' {
		return
	}
	start := sc.CurrentPos()
	var buf []byte
	for p := start; ; p++ {
		ch := sc.GetRelative(p - start)
		if !setWord.Contains(ch) {
			break
		}
		buf = append(buf, ch)
	}
	if len(buf) == 0 {
		return
	}
	if lx.taskMarker.InListAbbreviated(string(buf), '~') {
		*styleBefore = MaskActive(sc.State())
		sc.SetState(TaskMarker | activitySet)
		sc.ForwardN(len(buf) - 1)
	}
}

// directive parses the preprocessor directive word starting at sc's current
// position (right after the leading "#" and its whitespace) and applies its
// effect to pp/activitySet/the macro table, mirroring LexCPP.cxx's big
// if/else chain over sc.Match("ifdef")/.../sc.Match("undef"). It reports
// whether a macro definition changed, so Lex can request a re-lex of
// dependent regions.
func (lx *Lexer) directive(acc *document.Accessor, sc *style.Context, pp *preproc.LinePPState, activitySet *byte, lineCurrent int) bool {
	switch {
	case sc.Match("ifdef"), sc.Match("ifndef"):
		isIfDef := sc.Match("ifdef")
		skip := 5
		if !isIfDef {
			skip = 6
		}
		key := strings.TrimSpace(restOfLine(acc, sc.CurrentPos()+skip, false))
		found := lx.macros.Defined(key)
		pp.StartSection(isIfDef == found)
	case sc.Match("if"):
		expr := restOfLine(acc, sc.CurrentPos()+2, true)
		pp.StartSection(preproc.EvaluateExpression(expr, lx.macros))
	case sc.Match("else"):
		if !pp.CurrentIfTaken() || !pp.IsInactive() {
			pp.InvertCurrentLevel()
			*activitySet = 0
			if pp.IsInactive() {
				*activitySet = ActiveFlag
			}
			if *activitySet == 0 {
				sc.ChangeState(Preprocessor)
			}
		}
	case sc.Match("elif"):
		if !pp.CurrentIfTaken() {
			expr := restOfLine(acc, sc.CurrentPos()+2, true)
			if preproc.EvaluateExpression(expr, lx.macros) {
				pp.InvertCurrentLevel()
				*activitySet = 0
				if pp.IsInactive() {
					*activitySet = ActiveFlag
				}
				if *activitySet == 0 {
					sc.ChangeState(Preprocessor)
				}
			}
		} else if !pp.IsInactive() {
			pp.InvertCurrentLevel()
			*activitySet = 0
			if pp.IsInactive() {
				*activitySet = ActiveFlag
			}
			if *activitySet == 0 {
				sc.ChangeState(Preprocessor)
			}
		}
	case sc.Match("endif"):
		pp.EndSection()
		*activitySet = 0
		if pp.IsInactive() {
			*activitySet = ActiveFlag
		}
		sc.ChangeState(Preprocessor | *activitySet)
	case sc.Match("define"):
		if lx.opts.updatePreprocessor && !pp.IsInactive() {
			return lx.defineDirective(acc, sc, lineCurrent)
		}
	case sc.Match("undef"):
		if lx.opts.updatePreprocessor && !pp.IsInactive() {
			rest := restOfLine(acc, sc.CurrentPos()+5, false)
			tokens := preproc.Tokenize(rest)
			if len(tokens) >= 1 {
				return lx.macros.Undef(lineCurrent, tokens[0])
			}
		}
	}
	return false
}

func (lx *Lexer) defineDirective(acc *document.Accessor, sc *style.Context, lineCurrent int) bool {
	rest := restOfLine(acc, sc.CurrentPos()+6, true)
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	start := i
	for i < len(rest) && setWord.Contains(rest[i]) {
		i++
	}
	key := rest[start:i]
	if key == "" {
		return false
	}
	if i < len(rest) && rest[i] == '(' {
		j := i
		for j < len(rest) && rest[j] != ')' {
			j++
		}
		args := rest[i+1 : j]
		k := j + 1
		for k < len(rest) && (rest[k] == ' ' || rest[k] == '\t') {
			k++
		}
		return lx.macros.Define(lineCurrent, key, rest[k:], args)
	}
	k := i
	for k < len(rest) && (rest[k] == ' ' || rest[k] == '\t') {
		k++
	}
	return lx.macros.Define(lineCurrent, key, rest[k:], "")
}
