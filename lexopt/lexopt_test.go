// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexopt

import "testing"

func TestBoolOptionRoundTrip(t *testing.T) {
	var fold bool
	s := NewSet(BoolOption("fold", &fold, "Enable folding"))

	changed, ok := s.PropertySet("fold", "1")
	if !ok || !changed || !fold {
		t.Fatalf("PropertySet(fold, 1) = changed=%v ok=%v fold=%v", changed, ok, fold)
	}
	changed, ok = s.PropertySet("fold", "1")
	if !ok || changed {
		t.Fatal("setting the same value again should report changed=false")
	}
	changed, ok = s.PropertySet("fold", "0")
	if !ok || !changed || fold {
		t.Fatal("PropertySet(fold, 0) should clear fold and report changed")
	}
}

func TestIntOption(t *testing.T) {
	tabWidth := 4
	s := NewSet(IntOption("tab.width", &tabWidth, "Tab width in columns"))
	changed, ok := s.PropertySet("tab.width", "8")
	if !ok || !changed || tabWidth != 8 {
		t.Fatalf("tabWidth = %d, changed=%v ok=%v", tabWidth, changed, ok)
	}
	if got, _ := s.PropertyGet("tab.width"); got != "8" {
		t.Fatalf("PropertyGet = %q, want \"8\"", got)
	}
}

func TestStringOption(t *testing.T) {
	var explicitStart string
	s := NewSet(StringOption("fold.explicit.start", &explicitStart, "Explicit fold start marker"))
	s.PropertySet("fold.explicit.start", "{{{")
	if explicitStart != "{{{" {
		t.Fatalf("explicitStart = %q, want {{{", explicitStart)
	}
}

func TestUnknownProperty(t *testing.T) {
	s := NewSet(BoolOption("fold", new(bool), ""))
	if _, ok := s.PropertySet("nope", "1"); ok {
		t.Fatal("unknown property should report ok=false")
	}
	if _, ok := s.PropertyGet("nope"); ok {
		t.Fatal("PropertyGet of unknown property should report ok=false")
	}
	if _, ok := s.DescribeProperty("nope"); ok {
		t.Fatal("DescribeProperty of unknown property should report ok=false")
	}
	if _, ok := s.PropertyType("nope"); ok {
		t.Fatal("PropertyType of unknown property should report ok=false")
	}
}

func TestPropertyNamesOrder(t *testing.T) {
	s := NewSet(
		BoolOption("fold", new(bool), ""),
		BoolOption("fold.comment", new(bool), ""),
		IntOption("tab.width", new(int), ""),
	)
	want := []string{"fold", "fold.comment", "tab.width"}
	got := s.PropertyNames()
	if len(got) != len(want) {
		t.Fatalf("PropertyNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PropertyNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordListSetDescribe(t *testing.T) {
	wls := WordListSet{Descriptions: []string{"Keywords", "Types"}}
	if wls.Count() != 2 {
		t.Fatalf("Count = %d, want 2", wls.Count())
	}
	if d, ok := wls.Describe(1); !ok || d != "Types" {
		t.Fatalf("Describe(1) = %q, %v", d, ok)
	}
	if _, ok := wls.Describe(5); ok {
		t.Fatal("out-of-range Describe should report ok=false")
	}
}
