// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for docpane.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components shared by the menu and the
// documentation popup. It detects the terminal's color capability once at
// startup.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Menu styles
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuKind     lipgloss.Style
	MenuHint     lipgloss.Style

	// Documentation popup styles
	DocBody      lipgloss.Style
	DocDimmed    lipgloss.Style
	DocScrollbar lipgloss.Style

	// highlights maps highlight-group names to styles so a StyleConfig
	// highlight override can be resolved to something drawable.
	highlights map[string]lipgloss.Style
}

// NewTheme builds the default theme for the current terminal.
func NewTheme() *Theme {
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}

	t.MenuItem = lipgloss.NewStyle().Foreground(TextPrimary)
	t.MenuSelected = lipgloss.NewStyle().
		Background(Cyan).
		Foreground(Surface).
		Bold(true)
	t.MenuKind = lipgloss.NewStyle().Foreground(Purple)
	t.MenuHint = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	t.DocBody = lipgloss.NewStyle().Foreground(TextSecondary)
	t.DocDimmed = lipgloss.NewStyle().Foreground(TextMuted)
	t.DocScrollbar = lipgloss.NewStyle().Foreground(OverlayDim)

	t.highlights = map[string]lipgloss.Style{
		"NormalFloat":      t.DocBody,
		"FloatBorder":      lipgloss.NewStyle().Foreground(Overlay),
		"DocpaneDoc":       t.DocBody,
		"DocpaneDocBorder": lipgloss.NewStyle().Foreground(Cyan),
	}

	return t
}

// Highlight resolves a highlight-group name to a style, falling back to
// the doc body style for unknown groups.
func (t *Theme) Highlight(group string) lipgloss.Style {
	if style, ok := t.highlights[group]; ok {
		return style
	}
	return t.DocBody
}

// BorderStyle maps a config border name to a lipgloss border.
func BorderStyle(name string) (lipgloss.Border, bool) {
	switch name {
	case "single":
		return lipgloss.NormalBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "solid":
		return lipgloss.ThickBorder(), true
	case "shadow":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}
