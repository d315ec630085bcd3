// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clike

import (
	"github.com/inkfold/inkfold/lexer"
	"github.com/inkfold/inkfold/registry"
)

// ID is this lexer's stable registry id, grounded on Lexilla's
// SCLEX_CPP (Lexilla/include/SciLexer.h assigns small, stable integers
// per lexer so a host's saved session can reference a lexer by id).
const ID = 3

func init() {
	registry.Default.Register(ID, "clike", func() lexer.Lexer { return New() })
}
