// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package popup orchestrates the documentation popup.
package popup

import (
	"strings"

	"github.com/jeranaias/docpane/internal/config"
	"github.com/jeranaias/docpane/internal/geometry"
	"github.com/jeranaias/docpane/internal/sanitize"
)

// =============================================================================
// CONTROLLER
// =============================================================================

// StyleFn resolves the active documentation style. It is consulted once
// per Open call; returning nil means the documentation popup is disabled.
type StyleFn func() *config.Style

// Controller drives the documentation popup for a single surface. It is
// not safe for concurrent use; all methods must run on the host's event
// loop.
type Controller struct {
	surface Surface
	sched   Scheduler
	style   StyleFn
	planner *geometry.Planner

	// entryID is the identity of the entry whose content currently sits
	// in the surface buffer. Empty means no valid content.
	entryID string

	// lines mirrors the buffer content for geometry planning on reopens.
	lines []string

	// scrollGen invalidates any pending deferred scroll task.
	scrollGen int
}

// NewController returns a Controller drawing on surface, deferring scroll
// work to sched, and resolving style per open via style.
func NewController(surface Surface, sched Scheduler, style StyleFn) *Controller {
	return &Controller{
		surface: surface,
		sched:   sched,
		style:   style,
		planner: geometry.NewPlanner(),
	}
}

// Open shows documentation for entry next to anchor, or repositions the
// popup if it is already showing this entry. Content is rebuilt only when
// the entry identity changes; geometry is recomputed on every call because
// the anchor may have moved.
func (c *Controller) Open(entry Entry, anchor *geometry.Anchor) {
	style := c.style()
	if style == nil {
		// Documentation popup disabled; not an error.
		return
	}
	if entry == nil || anchor == nil {
		c.Close()
		return
	}

	if c.entryID == "" || c.entryID != entry.ID() {
		fragments := entry.Documentation()
		if len(fragments) == 0 {
			c.Close()
			return
		}
		lines := contentLines(sanitize.Sanitize(fragments))
		if len(lines) == 0 {
			c.Close()
			return
		}
		c.surface.SetLines(lines)
		c.surface.SetModified(false)
		c.lines = lines
		c.entryID = entry.ID()
	}

	border := style.BorderInfo()
	placement, ok := c.planner.Plan(*anchor, c.surface.ScreenCols(), border, style.Limits(), c.lines)
	if !ok {
		c.Close()
		return
	}

	c.scrollGen++
	c.surface.ApplyStyle(style.WinBlend, style.Highlight)
	c.surface.Open(c.surfaceConfig(style, placement))

	if placement.Left {
		// Second pass: the first placement may have introduced or
		// removed a scrollbar, and a left-placed popup must shift to
		// make room for it. The width is only known after rendering.
		if offset := c.surface.ScrollbarWidth(); offset > 0 {
			border.ScrollbarOffset = offset
			placement.Col -= border.ScrollbarOffset
			c.surface.Open(c.surfaceConfig(style, placement))
		}
	}
}

// Close hides the popup and forgets the cached entry. Idempotent.
func (c *Controller) Close() {
	if c.surface.Visible() {
		c.surface.Close()
	}
	c.entryID = ""
	c.lines = nil
	c.scrollGen++
}

// Scroll moves the viewport by delta lines, clamped to the content. The
// actual viewport move runs on the next event-loop turn so it never acts
// on geometry from a render still in flight; a newer scroll, open, or
// close supersedes it.
func (c *Controller) Scroll(delta int) {
	if !c.Visible() {
		return
	}

	topline, height := c.surface.Viewport()
	target := clampTopline(topline+delta, c.surface.LineCount(), height)

	c.scrollGen++
	gen := c.scrollGen
	c.sched.Defer(func() {
		if gen != c.scrollGen || !c.surface.Visible() {
			return
		}
		// Re-clamp against then-current state; the viewport height used
		// above may have changed by the time this runs.
		_, height := c.surface.Viewport()
		c.surface.SetTopline(clampTopline(target, c.surface.LineCount(), height))
	})
}

// Visible reports whether the popup is currently shown.
func (c *Controller) Visible() bool {
	return c.surface.Visible()
}

// surfaceConfig builds the placement descriptor for one Open pass.
func (c *Controller) surfaceConfig(style *config.Style, pl geometry.Placement) SurfaceConfig {
	return SurfaceConfig{
		Relative: RelativeEditor,
		Style:    StyleMinimal,
		Width:    pl.Width,
		Height:   pl.Height,
		Row:      pl.Row,
		Col:      pl.Col,
		Border:   style.Border,
		ZIndex:   style.ZIndexOrDefault(),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// contentLines splits sanitized fragments into buffer lines, dropping
// lines that are exactly empty.
func contentLines(fragments []string) []string {
	var lines []string
	for _, f := range fragments {
		for _, line := range strings.Split(f, "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// clampTopline clamps top into [1, total-viewHeight+1].
func clampTopline(top, total, viewHeight int) int {
	max := total - viewHeight + 1
	if max < 1 {
		max = 1
	}
	if top > max {
		return max
	}
	if top < 1 {
		return 1
	}
	return top
}
