// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clike

import "github.com/inkfold/inkfold/lexopt"

// options holds the tunables LexCPP.cxx's OptionsCPP struct exposes,
// bound into a [lexopt.Set] via closures rather than pointer-to-member
// reflection (spec.md §9's redesign flag).
type options struct {
	foldComment         bool
	foldPreprocessor    bool
	foldAtElse          bool
	foldCompact         bool
	stylingWithinPreproc bool
	updatePreprocessor  bool
	identifiersAllowDollars bool
	escapeSequence      bool
	caseSensitive       bool
	trackPreprocessor   bool
}

func defaultOptions() options {
	return options{
		foldComment:             true,
		foldPreprocessor:        true,
		foldAtElse:              false,
		foldCompact:             true,
		stylingWithinPreproc:    false,
		updatePreprocessor:      true,
		identifiersAllowDollars: true,
		escapeSequence:          false,
		caseSensitive:           true,
		trackPreprocessor:       true,
	}
}

func newOptionSet(o *options) *lexopt.Set {
	return lexopt.NewSet(
		lexopt.BoolOption("fold.comment", &o.foldComment,
			"Set this property to 0 to disable folding multi-line comments and explicit fold points."),
		lexopt.BoolOption("fold.preprocessor", &o.foldPreprocessor,
			"Set this property to 0 to disable folding preprocessor conditionals."),
		lexopt.BoolOption("fold.at.else", &o.foldAtElse,
			"Set this property to 1 to give each line the lowest brace level reached on it, so a '} else {' line folds at the outer level."),
		lexopt.BoolOption("fold.compact", &o.foldCompact,
			"Set this property to 0 to not include trailing blank lines in a fold block."),
		lexopt.BoolOption("styling.within.preprocessor", &o.stylingWithinPreproc,
			"For C++ code, determines whether all preprocessor code is styled in the preprocessor style (0, the default) or only from the initial # to the end of the command word (1)."),
		lexopt.BoolOption("lexer.cpp.track.preprocessor", &o.trackPreprocessor,
			"Set this property to 0 to disable tracking of #if/#else/#endif, so inactive code is no longer greyed out."),
		lexopt.BoolOption("lexer.cpp.update.preprocessor", &o.updatePreprocessor,
			"Set this property to 0 to stop updating preprocessor definitions when #define is found."),
		lexopt.BoolOption("lexer.cpp.allow.dollars", &o.identifiersAllowDollars,
			"Stored but not read by the lexer: identifiers always accept '$' characters, whatever this property is set to."),
		lexopt.BoolOption("lexer.cpp.escape.sequence", &o.escapeSequence,
			"Set this property to 1 to enable highlighting of escape sequences in strings."),
		lexopt.BoolOption("lexer.cpp.case.sensitive", &o.caseSensitive,
			"Set this property to 0 to fold keyword lookup to lower case before matching."),
	)
}

var wordListSet = lexopt.WordListSet{Descriptions: []string{
	"Primary keywords and identifiers",
	"Secondary keywords and identifiers",
	"Documentation comment keywords",
	"Global classes and typedefs",
	"Preprocessor definitions",
	"Task marker and warning marker keywords",
}}

const (
	wlPrimary = iota
	wlSecondary
	wlDocComment
	wlGlobalClass
	wlPreprocessor
	wlTaskMarker
)
