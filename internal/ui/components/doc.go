// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for docpane.

Two components make up the docpane surface stack:

CompletionMenu (menu.go) - the primary selection popup. It owns the list
of items, the selection cursor, and its own on-screen rectangle, which it
exposes as a geometry.Anchor for the documentation popup.

TermSurface (surface.go) - a terminal implementation of the popup.Surface
contract: a Lip Gloss bordered box composited into the host view, with
buffer lines, viewport scroll state, and a right-edge scrollbar column
when content overflows.

Both components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	menu := components.NewCompletionMenu(theme, cfg.Menu)
	surface := components.NewTermSurface(theme)
*/
package components
