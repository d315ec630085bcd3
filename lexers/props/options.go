// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "github.com/inkfold/inkfold/lexopt"

type options struct {
	allowInitialSpaces bool
	foldCompact        bool
}

func defaultOptions() options {
	return options{allowInitialSpaces: true, foldCompact: true}
}

func newOptionSet(o *options) *lexopt.Set {
	return lexopt.NewSet(
		lexopt.BoolOption("lexer.props.allow.initial.spaces", &o.allowInitialSpaces,
			"For properties files, set to 0 to style all lines that start with "+
				"whitespace in the default style. This is not suitable for files "+
				"that use indentation for flow control, but can be used for "+
				"RFC2822 text where indentation marks a continuation line."),
		lexopt.BoolOption("fold.compact", &o.foldCompact,
			"Set this property to 0 to not include trailing blank lines in a fold block."),
	)
}
