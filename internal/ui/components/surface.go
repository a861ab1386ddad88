// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for docpane.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docpane/internal/popup"
	"github.com/jeranaias/docpane/internal/ui/styles"
	"github.com/jeranaias/docpane/internal/util"
)

// =============================================================================
// TERMINAL SURFACE
// =============================================================================

// TermSurface is a terminal implementation of popup.Surface: a floating
// bordered box whose content, position, and scroll state the popup
// controller drives. The host composites View() into its frame at
// Row()/Col().
type TermSurface struct {
	theme *styles.Theme

	screenCols int
	screenRows int

	visible   bool
	cfg       popup.SurfaceConfig
	lines     []string
	topline   int
	modified  bool
	winblend  int
	highlight map[string]string
}

// NewTermSurface creates a hidden surface for an 80x24 screen.
func NewTermSurface(theme *styles.Theme) *TermSurface {
	return &TermSurface{
		theme:      theme,
		screenCols: 80,
		screenRows: 24,
		topline:    1,
	}
}

// SetScreenSize updates the screen dimensions the surface lives in.
func (s *TermSurface) SetScreenSize(cols, rows int) {
	s.screenCols = cols
	s.screenRows = rows
}

// =============================================================================
// popup.Surface IMPLEMENTATION
// =============================================================================

// Open shows the surface with the given placement, or moves it when
// already shown.
func (s *TermSurface) Open(cfg popup.SurfaceConfig) {
	s.cfg = cfg
	s.visible = true
	s.clampTopline()
}

// Close hides the surface.
func (s *TermSurface) Close() {
	s.visible = false
}

// Visible reports whether the surface is shown.
func (s *TermSurface) Visible() bool {
	return s.visible
}

// ScreenCols is the screen width in cells.
func (s *TermSurface) ScreenCols() int {
	return s.screenCols
}

// SetLines replaces the buffer content and rewinds the viewport.
func (s *TermSurface) SetLines(lines []string) {
	s.lines = lines
	s.topline = 1
}

// LineCount is the buffer's line count.
func (s *TermSurface) LineCount() int {
	return len(s.lines)
}

// SetModified sets the buffer's modified flag.
func (s *TermSurface) SetModified(modified bool) {
	s.modified = modified
}

// Viewport returns the first visible line (1-based) and the viewport
// height in rows.
func (s *TermSurface) Viewport() (int, int) {
	return s.topline, s.cfg.Height
}

// SetTopline scrolls the viewport.
func (s *TermSurface) SetTopline(n int) {
	s.topline = n
	s.clampTopline()
}

// ScrollbarWidth reports the rendered scrollbar width: one cell when the
// content overflows the viewport, zero otherwise.
func (s *TermSurface) ScrollbarWidth() int {
	if !s.visible {
		return 0
	}
	if len(s.lines) > s.cfg.Height {
		return 1
	}
	return 0
}

// ApplyStyle applies per-surface display options.
func (s *TermSurface) ApplyStyle(winblend int, highlight map[string]string) {
	s.winblend = winblend
	s.highlight = highlight
}

// =============================================================================
// RENDERING
// =============================================================================

// Row is the surface's top row on screen.
func (s *TermSurface) Row() int {
	return s.cfg.Row
}

// Col is the surface's left column on screen.
func (s *TermSurface) Col() int {
	return s.cfg.Col
}

// View renders the surface, or "" when hidden.
func (s *TermSurface) View() string {
	if !s.visible || s.cfg.Width <= 0 || s.cfg.Height <= 0 {
		return ""
	}

	body := s.theme.Highlight(s.resolveGroup("NormalFloat"))
	if s.winblend > 50 {
		// Crude opacity: heavily blended popups render dimmed.
		body = s.theme.DocDimmed
	}

	scrollbar := s.ScrollbarWidth() > 0
	textWidth := s.cfg.Width
	if scrollbar {
		textWidth--
	}
	if textWidth < 1 {
		textWidth = 1
		scrollbar = false
	}

	rows := make([]string, 0, s.cfg.Height)
	for i := 0; i < s.cfg.Height; i++ {
		idx := s.topline - 1 + i
		line := ""
		if idx >= 0 && idx < len(s.lines) {
			line = s.lines[idx]
		}
		row := body.Render(util.PadWidth(line, textWidth))
		if scrollbar {
			row += s.theme.DocScrollbar.Render(s.scrollbarGlyph(i))
		}
		rows = append(rows, row)
	}

	box := lipgloss.NewStyle()
	if border, ok := styles.BorderStyle(s.cfg.Border); ok {
		box = box.
			BorderStyle(border).
			BorderForeground(s.theme.Highlight(s.resolveGroup("FloatBorder")).GetForeground())
	}
	return box.Render(strings.Join(rows, "\n"))
}

// scrollbarGlyph picks the thumb or track glyph for viewport row i.
func (s *TermSurface) scrollbarGlyph(i int) string {
	total := len(s.lines)
	if total <= s.cfg.Height || s.cfg.Height <= 0 {
		return " "
	}

	thumbSize := s.cfg.Height * s.cfg.Height / total
	if thumbSize < 1 {
		thumbSize = 1
	}
	maxTop := total - s.cfg.Height
	thumbTop := (s.topline - 1) * (s.cfg.Height - thumbSize) / maxTop

	if i >= thumbTop && i < thumbTop+thumbSize {
		return "█"
	}
	return "│"
}

// clampTopline keeps the viewport inside the buffer.
func (s *TermSurface) clampTopline() {
	max := len(s.lines) - s.cfg.Height + 1
	if max < 1 {
		max = 1
	}
	if s.topline > max {
		s.topline = max
	}
	if s.topline < 1 {
		s.topline = 1
	}
}

// resolveGroup applies the configured highlight mapping to a group name.
func (s *TermSurface) resolveGroup(group string) string {
	if mapped, ok := s.highlight[group]; ok {
		return mapped
	}
	return group
}
