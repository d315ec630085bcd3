// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/inkfold/lexers/clike"
)

func TestToTokensCoalescesRuns(t *testing.T) {
	src := []byte("int x")
	sty := []byte{clike.Word, clike.Word, clike.Word, clike.Default, clike.Identifier}

	tokens, ok := ToTokens("clike", src, sty)
	require.True(t, ok)
	require.Len(t, tokens, 3)
	assert.Equal(t, chroma.Keyword, tokens[0].Type)
	assert.Equal(t, "int", tokens[0].Value)
	assert.Equal(t, chroma.Text, tokens[1].Type)
	assert.Equal(t, " ", tokens[1].Value)
	assert.Equal(t, chroma.Name, tokens[2].Type)
	assert.Equal(t, "x", tokens[2].Value)
}

func TestToTokensUnknownLexer(t *testing.T) {
	_, ok := ToTokens("nonexistent", []byte("x"), []byte{0})
	assert.False(t, ok)
}

func TestToTokensEmpty(t *testing.T) {
	tokens, ok := ToTokens("clike", nil, nil)
	require.True(t, ok)
	assert.Empty(t, tokens)
}
