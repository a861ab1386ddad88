// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for docpane.

All colors are Lip Gloss AdaptiveColor values so the same theme reads well
on light and dark terminals. Theme carries the prebuilt styles for the two
popups plus the highlight-group table that resolves StyleConfig highlight
overrides to drawable styles.

	theme := styles.NewTheme()
	view := theme.MenuSelected.Render("entry")
*/
package styles
