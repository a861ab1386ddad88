// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for docpane.
package components

import (
	"testing"

	"github.com/jeranaias/docpane/internal/config"
	"github.com/jeranaias/docpane/internal/ui/styles"
)

func testMenu(count int) *CompletionMenu {
	m := NewCompletionMenu(styles.NewTheme(), config.MenuConfig{Width: 30, MaxVisible: 4, Border: "rounded"})
	items := make([]*Item, count)
	for i := range items {
		items[i] = &Item{Identity: string(rune('a' + i)), Label: "item", Kind: "cmd"}
	}
	m.SetItems(items)
	return m
}

func TestCompletionMenu_SelectionWraps(t *testing.T) {
	m := testMenu(3)

	m.Next()
	m.Next()
	m.Next()
	if got := m.Selected(); got == nil || got.Identity != "a" {
		t.Errorf("selection did not wrap forward: %+v", got)
	}

	m.Prev()
	if got := m.Selected(); got == nil || got.Identity != "c" {
		t.Errorf("selection did not wrap backward: %+v", got)
	}
}

func TestCompletionMenu_EmptyMenu(t *testing.T) {
	m := testMenu(0)
	if m.Selected() != nil {
		t.Error("empty menu has a selection")
	}
	if m.View() != "" {
		t.Error("empty menu rendered content")
	}
	m.Next() // must not panic
	m.Prev()
}

func TestCompletionMenu_AnchorIncludesBorder(t *testing.T) {
	m := testMenu(1)
	m.SetPosition(5, 12)

	anchor := m.Anchor()
	if anchor.Row != 5 || anchor.Col != 12 {
		t.Errorf("anchor position = (%d, %d), want (5, 12)", anchor.Row, anchor.Col)
	}
	// 30 content cells plus 2 border cells.
	if anchor.Width != 32 {
		t.Errorf("anchor width = %d, want 32", anchor.Width)
	}
}

func TestCompletionMenu_WindowFollowsSelection(t *testing.T) {
	m := testMenu(10)
	for i := 0; i < 9; i++ {
		m.Next()
	}

	start, end := m.window()
	if end-start != 4 {
		t.Fatalf("window size = %d, want 4", end-start)
	}
	if m.selected < start || m.selected >= end {
		t.Errorf("selection %d outside window [%d, %d)", m.selected, start, end)
	}
}

func TestItem_ImplementsEntryAccessors(t *testing.T) {
	item := &Item{Identity: "id-1", Docs: []string{"**doc**"}}
	if item.ID() != "id-1" {
		t.Errorf("ID() = %q", item.ID())
	}
	if len(item.Documentation()) != 1 {
		t.Errorf("Documentation() = %v", item.Documentation())
	}
}
