// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for docpane.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docpane/internal/config"
	"github.com/jeranaias/docpane/internal/geometry"
	"github.com/jeranaias/docpane/internal/ui/styles"
	"github.com/jeranaias/docpane/internal/util"
)

// =============================================================================
// MENU ITEMS
// =============================================================================

// Item is one selectable entry. It satisfies popup.Entry so the menu's
// selection can be handed straight to the documentation controller.
type Item struct {
	Identity string
	Label    string
	Kind     string
	Docs     []string
}

// ID is the item's stable unique identifier.
func (it *Item) ID() string {
	return it.Identity
}

// Documentation returns the item's raw formatted fragments.
func (it *Item) Documentation() []string {
	return it.Docs
}

// =============================================================================
// COMPLETION MENU
// =============================================================================

// CompletionMenu is the primary selection popup. Its rectangle is the
// anchor the documentation popup is placed against.
type CompletionMenu struct {
	items    []*Item
	selected int
	row      int
	col      int
	width    int
	visible  int
	border   string
	theme    *styles.Theme
}

// NewCompletionMenu creates a menu styled per cfg.
func NewCompletionMenu(theme *styles.Theme, cfg config.MenuConfig) *CompletionMenu {
	width := cfg.Width
	if width <= 0 {
		width = 40
	}
	visible := cfg.MaxVisible
	if visible <= 0 {
		visible = 8
	}
	return &CompletionMenu{
		width:   width,
		visible: visible,
		border:  cfg.Border,
		theme:   theme,
	}
}

// SetItems replaces the menu content and resets the selection.
func (m *CompletionMenu) SetItems(items []*Item) {
	m.items = items
	m.selected = 0
}

// SetPosition moves the menu's top-left corner.
func (m *CompletionMenu) SetPosition(row, col int) {
	m.row = row
	m.col = col
}

// Len reports the number of items.
func (m *CompletionMenu) Len() int {
	return len(m.items)
}

// Selected returns the highlighted item, or nil when the menu is empty.
func (m *CompletionMenu) Selected() *Item {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// Next moves the selection down, wrapping at the end.
func (m *CompletionMenu) Next() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.items)
}

// Prev moves the selection up, wrapping at the start.
func (m *CompletionMenu) Prev() {
	if len(m.items) == 0 {
		return
	}
	m.selected--
	if m.selected < 0 {
		m.selected = len(m.items) - 1
	}
}

// Anchor returns the menu's current rectangle for documentation popup
// placement. The width includes the menu border cells.
func (m *CompletionMenu) Anchor() geometry.Anchor {
	border := (&config.Style{Border: m.border}).BorderInfo()
	return geometry.Anchor{Row: m.row, Col: m.col, Width: m.width + border.Horiz}
}

// View renders the menu.
func (m *CompletionMenu) View() string {
	if len(m.items) == 0 {
		return ""
	}

	start, end := m.window()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderItem(m.items[i], i == m.selected))
	}

	box := lipgloss.NewStyle()
	if border, ok := styles.BorderStyle(m.border); ok {
		box = box.BorderStyle(border).BorderForeground(styles.Cyan)
	}
	return box.Render(strings.Join(rows, "\n"))
}

// window computes the visible item range, keeping the selection centered
// once the list outgrows the menu.
func (m *CompletionMenu) window() (int, int) {
	if len(m.items) <= m.visible {
		return 0, len(m.items)
	}
	start := m.selected - m.visible/2
	if start < 0 {
		start = 0
	}
	end := start + m.visible
	if end > len(m.items) {
		end = len(m.items)
		start = end - m.visible
	}
	return start, end
}

// renderItem renders one menu row: indicator, label, kind.
func (m *CompletionMenu) renderItem(item *Item, selected bool) string {
	kindWidth := 10
	labelWidth := m.width - kindWidth - 3
	if labelWidth < 1 {
		labelWidth = 1
	}

	indicator := " "
	labelStyle := m.theme.MenuItem
	if selected {
		indicator = ">"
		labelStyle = m.theme.MenuSelected
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		labelStyle.Render(indicator+" "+util.PadWidth(item.Label, labelWidth)),
		m.theme.MenuKind.Render(" "+util.PadWidth(item.Kind, kindWidth)),
	)
}
