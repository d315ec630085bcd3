// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luabracket

import "github.com/inkfold/inkfold/lexopt"

// options holds the tunables LexLua.cxx's OptionsLua struct exposes, bound
// into a [lexopt.Set] via closures rather than pointer-to-member reflection
// (spec.md §9's redesign flag, same as package clike).
type options struct {
	foldCompact bool
}

func defaultOptions() options {
	return options{foldCompact: true}
}

func newOptionSet(o *options) *lexopt.Set {
	return lexopt.NewSet(
		lexopt.BoolOption("fold.compact", &o.foldCompact,
			"Set this property to 0 to not include trailing blank lines in a fold block."),
	)
}

var wordListSet = lexopt.WordListSet{Descriptions: []string{
	"Keywords",
	"Basic functions",
	"String, (table) & math functions",
	"(coroutines), I/O & system facilities",
	"user1",
	"user2",
	"user3",
	"user4",
}}

const (
	wlPrimary = iota
	wlWord2
	wlWord3
	wlWord4
	wlWord5
	wlWord6
	wlWord7
	wlWord8
	wlCount
)
