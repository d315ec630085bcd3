// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"github.com/inkfold/inkfold/lexer"
	"github.com/inkfold/inkfold/registry"
)

// ID is this lexer's stable registry id, grounded on Lexilla's
// SCLEX_PROPERTIES.
const ID = 9

func init() {
	registry.Default.Register(ID, "props", func() lexer.Lexer { return New() })
}
