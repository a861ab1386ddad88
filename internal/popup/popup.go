// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package popup orchestrates the documentation popup.
package popup

// =============================================================================
// COLLABORATOR CONTRACTS
// =============================================================================

// Entry is one selectable item in the primary menu. The controller never
// looks past these two accessors, so any completion engine representation
// can sit behind them.
type Entry interface {
	// ID is a stable unique identifier used to skip content rebuilds.
	ID() string

	// Documentation returns the raw formatted fragments for this entry,
	// in display order. An empty result means "nothing to show".
	Documentation() []string
}

// SurfaceConfig is the placement descriptor handed to the surface when the
// popup is opened or moved.
type SurfaceConfig struct {
	Relative string
	Style    string
	Width    int
	Height   int
	Row      int
	Col      int
	Border   string
	ZIndex   int
}

// Relative anchoring and style values for SurfaceConfig.
const (
	RelativeEditor = "editor"
	StyleMinimal   = "minimal"
)

// Surface is the floating rectangle primitive the popup draws on. One
// controller exclusively owns its surface; nothing else may mutate it.
type Surface interface {
	// Open shows the surface with the given placement, or moves and
	// resizes it if already shown.
	Open(cfg SurfaceConfig)

	// Close hides the surface. Closing a hidden surface is a no-op.
	Close()

	// Visible reports whether the surface is currently shown.
	Visible() bool

	// ScreenCols is the total width of the screen in cells.
	ScreenCols() int

	// SetLines replaces the surface's buffer content.
	SetLines(lines []string)

	// LineCount is the buffer's current line count.
	LineCount() int

	// SetModified sets the buffer's modified flag.
	SetModified(modified bool)

	// Viewport returns the first visible buffer line (1-based) and the
	// viewport height in rows.
	Viewport() (topline, height int)

	// SetTopline scrolls the viewport so line n (1-based) is on top.
	SetTopline(n int)

	// ScrollbarWidth is the width in cells of the currently rendered
	// scrollbar, zero when none is drawn. Only meaningful while visible.
	ScrollbarWidth() int

	// ApplyStyle applies per-surface display options: opacity and the
	// highlight-group mapping.
	ApplyStyle(winblend int, highlight map[string]string)
}

// Scheduler posts work onto the host's single-threaded event loop to run
// on a later turn, after any surface mutation from the current one.
type Scheduler interface {
	Defer(fn func())
}
