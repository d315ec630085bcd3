// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

var (
	// UseColor is whether to use color in log messages. It is on by default.
	UseColor = true

	// ColorSchemeIsDark is whether the color scheme of the current terminal is dark-themed.
	ColorSchemeIsDark = true
)

// colorProfile is the termenv color profile, stored globally for convenience.
// It is set by [InitColor] if [UseColor] is true.
var colorProfile termenv.Profile

// InitColor sets up the terminal environment for color output. It is called automatically
// in an init function if UseColor is set to true. However, if you call a system command
// that itself prints colored output, you may need to call this again afterward.
func InitColor() {
	restoreFunc, err := termenv.EnableVirtualTerminalProcessing(termenv.DefaultOutput())
	if err != nil {
		slog.Warn("logx: could not enable virtual terminal processing for colored output", "err", err)
	}
	_ = restoreFunc
	colorProfile = termenv.ColorProfile()
	ColorSchemeIsDark = termenv.HasDarkBackground()
}

// ApplyColor applies the given ANSI color to the given string and returns the
// resulting string. If [UseColor] is false, it just returns str unchanged.
func ApplyColor(clr termenv.Color, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(clr).String()
}

// LevelColor applies the color associated with the given slog level to the
// given string and returns the resulting string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level < slog.LevelInfo:
		return DebugColor(str)
	case level < slog.LevelWarn:
		return InfoColor(str)
	case level < slog.LevelError:
		return WarnColor(str)
	default:
		return ErrorColor(str)
	}
}

// DebugColor applies the debug-level color (dim cyan) to str.
func DebugColor(str string) string {
	return ApplyColor(colorProfile.Color("#6aa0a0"), str)
}

// InfoColor applies the info-level color to str. Info messages are
// undecorated, but this exists for API consistency with the other levels.
func InfoColor(str string) string {
	return str
}

// WarnColor applies the warn-level color (amber) to str. Used for the
// warning lines cmd/inkfoldcat's REPL and watch mode print.
func WarnColor(str string) string {
	return ApplyColor(colorProfile.Color("#d9a441"), str)
}

// ErrorColor applies the error-level color (red) to str.
func ErrorColor(str string) string {
	return ApplyColor(colorProfile.Color("#c2454e"), str)
}

// TaskColor applies the task-marker highlight color (purple, for markers
// such as TODO and FIXME) to str.
func TaskColor(str string) string {
	return ApplyColor(colorProfile.Color("#b36ae2"), str)
}
