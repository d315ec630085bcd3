// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package makefile

import (
	"github.com/inkfold/inkfold/lexer"
	"github.com/inkfold/inkfold/registry"
)

// ID is this lexer's stable registry id, grounded on Lexilla's
// SCLEX_MAKEFILE.
const ID = 13

func init() {
	registry.Default.Register(ID, "makefile", func() lexer.Lexer { return New() })
}
