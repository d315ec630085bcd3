// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Format selects a chroma output backend.
type Format int

const (
	// FormatAuto picks a terminal formatter matched to termenv's detected
	// color profile, falling back to Fallback (no escapes) for a
	// non-interactive or dumb terminal.
	FormatAuto Format = iota
	FormatHTML
)

// ttyFormatter picks among chroma's TTY formatters by termenv's detected
// color profile, mirroring the teacher's own logx.ColorScheme detection.
func ttyFormatter() chroma.Formatter {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return formatters.TTY16m
	case termenv.ANSI256:
		return formatters.TTY256
	case termenv.ANSI:
		return formatters.TTY
	default:
		return formatters.Fallback
	}
}

// Write renders src (already styled by lexerName's Lex) to w, in theme
// styleName (a chroma builtin style, e.g. "monokai"; "" falls back to
// chroma's default), using format. It returns ok=false if lexerName has no
// registered classifier.
func Write(w io.Writer, lexerName string, src, styleBytes []byte, styleName string, format Format) (bool, error) {
	tokens, ok := ToTokens(lexerName, src, styleBytes)
	if !ok {
		return false, nil
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var formatter chroma.Formatter
	switch format {
	case FormatHTML:
		formatter = html.New(html.WithClasses(false), html.Standalone(false))
	default:
		formatter = ttyFormatter()
	}

	iterator := chroma.Literator(tokens...)
	if err := formatter.Format(w, style, iterator); err != nil {
		return false, fmt.Errorf("render: format tokens: %w", err)
	}
	return true, nil
}
