// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// emit is the shared gate behind Print/Println/Printf: it applies the
// [UserLevel] cutoff and the level's color exactly once, so the three
// entry points and their Debug/Info/Warn/Error convenience wrappers below
// don't each repeat the cutoff check.
func emit(level slog.Level, newline bool, s string) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	colored := LevelColor(level, s)
	if newline {
		return fmt.Println(colored)
	}
	return fmt.Print(colored)
}

// Print is equivalent to [fmt.Print], but with color based on the given level.
// Also, if [UserLevel] is above the given level, it does not print anything.
func Print(level slog.Level, a ...any) (n int, err error) {
	return emit(level, false, fmt.Sprint(a...))
}

// PrintDebug is equivalent to [Print] with level [slog.LevelDebug].
func PrintDebug(a ...any) (n int, err error) { return Print(slog.LevelDebug, a...) }

// PrintInfo is equivalent to [Print] with level [slog.LevelInfo].
func PrintInfo(a ...any) (n int, err error) { return Print(slog.LevelInfo, a...) }

// PrintWarn is equivalent to [Print] with level [slog.LevelWarn]. Used by
// cmd/inkfoldcat for recoverable host-side conditions (a watch-mode reload
// or render that failed but left the session otherwise usable).
func PrintWarn(a ...any) (n int, err error) { return Print(slog.LevelWarn, a...) }

// PrintError is equivalent to [Print] with level [slog.LevelError].
func PrintError(a ...any) (n int, err error) { return Print(slog.LevelError, a...) }

// Println is equivalent to [fmt.Println], but with color based on the given level.
// Also, if [UserLevel] is above the given level, it does not print anything.
func Println(level slog.Level, a ...any) (n int, err error) {
	return emit(level, true, fmt.Sprint(a...))
}

// PrintlnDebug is equivalent to [Println] with level [slog.LevelDebug].
func PrintlnDebug(a ...any) (n int, err error) { return Println(slog.LevelDebug, a...) }

// PrintlnInfo is equivalent to [Println] with level [slog.LevelInfo]. Used
// by cmd/inkfoldcat to announce watch-mode status ("watching <path>").
func PrintlnInfo(a ...any) (n int, err error) { return Println(slog.LevelInfo, a...) }

// PrintlnWarn is equivalent to [Println] with level [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) { return Println(slog.LevelWarn, a...) }

// PrintlnError is equivalent to [Println] with level [slog.LevelError].
func PrintlnError(a ...any) (n int, err error) { return Println(slog.LevelError, a...) }

// Printf is equivalent to [fmt.Println] applied to a formatted string, but
// with color based on the given level (matching the upstream logx
// behavior this is ported from: Printf never writes without a trailing
// newline, despite the name).
func Printf(level slog.Level, format string, a ...any) (n int, err error) {
	return emit(level, true, fmt.Sprintf(format, a...))
}

// PrintfDebug is equivalent to [Printf] with level [slog.LevelDebug].
func PrintfDebug(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelDebug, format, a...)
}

// PrintfInfo is equivalent to [Printf] with level [slog.LevelInfo].
func PrintfInfo(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelInfo, format, a...)
}

// PrintfWarn is equivalent to [Printf] with level [slog.LevelWarn].
func PrintfWarn(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelWarn, format, a...)
}

// PrintfError is equivalent to [Printf] with level [slog.LevelError].
func PrintfError(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelError, format, a...)
}
