// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for docpane.
package styles

import "testing"

func TestHighlight_KnownAndUnknownGroups(t *testing.T) {
	theme := NewTheme()

	if _, ok := theme.highlights["NormalFloat"]; !ok {
		t.Fatal("NormalFloat missing from highlight table")
	}

	// Unknown groups fall back to the doc body style rather than failing.
	got := theme.Highlight("NoSuchGroup")
	want := theme.DocBody
	if got.GetForeground() != want.GetForeground() {
		t.Error("unknown group did not fall back to DocBody")
	}
}

func TestBorderStyle(t *testing.T) {
	for _, name := range []string{"single", "double", "rounded", "solid", "shadow"} {
		if _, ok := BorderStyle(name); !ok {
			t.Errorf("BorderStyle(%q) not recognized", name)
		}
	}
	if _, ok := BorderStyle("fancy"); ok {
		t.Error("BorderStyle accepted an unknown name")
	}
}
