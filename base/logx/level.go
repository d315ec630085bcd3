// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled, optionally colored printing on top of
// log/slog, used by cmd/inkfoldcat for the messages a host would otherwise
// just surface in its own UI: the REPL's and watch mode's status and
// warning lines.
package logx

import "log/slog"

// UserLevel is the minimum level that will be printed by [Print] and its
// variants. Messages below this level are silently dropped.
var UserLevel = defaultUserLevel

func init() {
	if UseColor {
		InitColor()
	}
}
