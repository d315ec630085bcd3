// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charset

import "testing"

func TestWordStartContinue(t *testing.T) {
	if !WordStart.Contains('_') {
		t.Error("expected underscore to start a word")
	}
	if WordStart.Contains('3') {
		t.Error("expected digit to not start a word")
	}
	if !WordContinue.Contains('3') {
		t.Error("expected digit to continue a word")
	}
	if !WordStart.Contains(0xC3) {
		t.Error("expected high-bit byte to start a word (UTF-8 lead byte)")
	}
}

func TestHex(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		if !Hex.Contains(c) {
			t.Errorf("expected %q to be a hex digit", c)
		}
	}
	if Hex.Contains('g') {
		t.Error("expected 'g' to not be a hex digit")
	}
}

func TestCustomSeedAndExtra(t *testing.T) {
	s := New(None, "$?", false)
	if !s.Contains('$') || !s.Contains('?') {
		t.Error("expected custom extras to be members")
	}
	if s.Contains('a') {
		t.Error("expected no seed characters with Seed None")
	}
}

func TestHighBitFlag(t *testing.T) {
	strict := New(Digits, "", false)
	lenient := New(Digits, "", true)
	if strict.Contains(0x80) {
		t.Error("expected strict set to reject high-bit byte")
	}
	if !lenient.Contains(0x80) {
		t.Error("expected lenient set to accept high-bit byte")
	}
}
