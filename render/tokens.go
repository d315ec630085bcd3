// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is the demo CLI's output backend: it maps the style bytes
// an inkfold lexer wrote (spec.md §3's per-byte style code space, meaning
// defined independently by each lexer package) onto chroma.TokenType, then
// hands the resulting token stream to chroma's own formatters for
// colorized HTML or terminal output. Chroma's lexers are never invoked —
// inkfold is the lexer here, chroma is reused purely as the pack's
// existing "turn tokens into colored output" library, the same role it
// plays for file-type association elsewhere in the teacher's stack.
package render

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/inkfold/inkfold/lexers/clike"
	"github.com/inkfold/inkfold/lexers/diffmark"
	"github.com/inkfold/inkfold/lexers/luabracket"
	"github.com/inkfold/inkfold/lexers/makefile"
	"github.com/inkfold/inkfold/lexers/props"
)

// classifier maps one lexer's style byte space to chroma's token types.
type classifier func(style byte) chroma.TokenType

// classifiers is keyed by the lexer's registry name (registry.ByName's
// argument), not its Go package name.
var classifiers = map[string]classifier{
	"clike":    classifyClike,
	"lua":      classifyLua,
	"diff":     classifyDiff,
	"props":    classifyProps,
	"makefile": classifyMakefile,
}

// ToTokens coalesces consecutive same-style bytes of src into one
// chroma.Token apiece, using the named lexer's style-to-class mapping. It
// returns ok=false if no classifier is registered for lexerName.
func ToTokens(lexerName string, src []byte, styles []byte) ([]chroma.Token, bool) {
	classify, ok := classifiers[lexerName]
	if !ok {
		return nil, false
	}
	if len(src) == 0 {
		return nil, true
	}
	var tokens []chroma.Token
	runStart := 0
	runStyle := styles[0]
	flush := func(end int) {
		tokens = append(tokens, chroma.Token{
			Type:  classify(runStyle),
			Value: string(src[runStart:end]),
		})
	}
	for i := 1; i < len(src); i++ {
		if styles[i] != runStyle {
			flush(i)
			runStart = i
			runStyle = styles[i]
		}
	}
	flush(len(src))
	return tokens, true
}

func classifyClike(style byte) chroma.TokenType {
	switch clike.MaskActive(style) {
	case clike.Comment, clike.CommentLine:
		return chroma.Comment
	case clike.CommentDoc, clike.CommentLineDoc:
		return chroma.CommentSpecial
	case clike.CommentDocKeyword:
		return chroma.CommentSpecial
	case clike.CommentDocKeywordError:
		return chroma.GenericError
	case clike.Number:
		return chroma.LiteralNumber
	case clike.Word:
		return chroma.Keyword
	case clike.Word2:
		return chroma.KeywordType
	case clike.String, clike.StringRaw, clike.Verbatim, clike.TripleVerbatim, clike.HashQuotedString:
		return chroma.LiteralString
	case clike.Character:
		return chroma.LiteralStringChar
	case clike.UUID:
		return chroma.LiteralStringOther
	case clike.Preprocessor, clike.PreprocessorComment, clike.PreprocessorCommentDoc:
		return chroma.CommentPreproc
	case clike.Operator:
		return chroma.Operator
	case clike.Identifier:
		return chroma.Name
	case clike.StringEOL:
		return chroma.GenericError
	case clike.Regex:
		return chroma.LiteralStringRegex
	case clike.EscapeSequence:
		return chroma.LiteralStringEscape
	case clike.UserLiteral:
		return chroma.LiteralStringAffix
	case clike.TaskMarker:
		return chroma.CommentSpecial
	case clike.GlobalClass:
		return chroma.NameClass
	default:
		return chroma.Text
	}
}

func classifyLua(style byte) chroma.TokenType {
	switch style {
	case luabracket.Comment, luabracket.CommentLine:
		return chroma.Comment
	case luabracket.CommentDoc:
		return chroma.CommentSpecial
	case luabracket.Number:
		return chroma.LiteralNumber
	case luabracket.Word:
		return chroma.Keyword
	case luabracket.Word2, luabracket.Word3, luabracket.Word4:
		return chroma.NameBuiltin
	case luabracket.Word5, luabracket.Word6, luabracket.Word7, luabracket.Word8:
		return chroma.NameVariable
	case luabracket.String, luabracket.LiteralString:
		return chroma.LiteralString
	case luabracket.Character:
		return chroma.LiteralStringChar
	case luabracket.Preprocessor:
		return chroma.CommentPreproc
	case luabracket.Operator:
		return chroma.Operator
	case luabracket.Identifier:
		return chroma.Name
	case luabracket.StringEOL:
		return chroma.GenericError
	case luabracket.Label:
		return chroma.NameLabel
	default:
		return chroma.Text
	}
}

func classifyDiff(style byte) chroma.TokenType {
	switch style {
	case diffmark.Command:
		return chroma.GenericHeading
	case diffmark.Header:
		return chroma.GenericSubheading
	case diffmark.Position:
		return chroma.GenericEmph
	case diffmark.Deleted:
		return chroma.GenericDeleted
	case diffmark.Added:
		return chroma.GenericInserted
	case diffmark.Changed:
		return chroma.GenericStrong
	case diffmark.Comment:
		return chroma.Comment
	default:
		return chroma.Text
	}
}

func classifyProps(style byte) chroma.TokenType {
	switch style {
	case props.Comment:
		return chroma.Comment
	case props.Section:
		return chroma.GenericHeading
	case props.Assignment:
		return chroma.Operator
	case props.DefVal:
		return chroma.NameConstant
	case props.Key:
		return chroma.NameAttribute
	default:
		return chroma.Text
	}
}

func classifyMakefile(style byte) chroma.TokenType {
	switch style {
	case makefile.Comment:
		return chroma.Comment
	case makefile.Preprocessor:
		return chroma.CommentPreproc
	case makefile.Identifier:
		return chroma.NameVariable
	case makefile.Operator:
		return chroma.Operator
	case makefile.Target:
		return chroma.NameFunction
	case makefile.IdeOl:
		return chroma.GenericError
	default:
		return chroma.Text
	}
}
