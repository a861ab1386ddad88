// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package geometry computes documentation popup placement.
package geometry

import (
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// TYPES
// =============================================================================

// Anchor is the primary popup's rectangle in screen cells. It is supplied
// fresh on every placement request and never stored.
type Anchor struct {
	Row   int
	Col   int
	Width int
}

// Border carries the extra cells consumed by decorative border rendering.
type Border struct {
	// Horiz is the total horizontal thickness (left edge + right edge).
	Horiz int

	// Vert is the total vertical thickness (top edge + bottom edge).
	Vert int

	// ScrollbarOffset is the extra horizontal shift applied to a
	// left-placed popup once the surface reports a rendered scrollbar.
	ScrollbarOffset int
}

// Limits are the style-level size constraints. Zero means unconstrained.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

// Placement is a computed popup rectangle.
type Placement struct {
	Width  int
	Height int
	Row    int
	Col    int

	// Left reports whether the popup sits left of the anchor. Left
	// placements are subject to a second-pass scrollbar correction.
	Left bool
}

// MeasureFunc computes the minimal rectangle needed to display lines
// without exceeding maxWidth columns, soft-wrapping long lines. When
// maxHeight > 0 the height is capped. Non-positive results mean the
// content cannot be displayed.
type MeasureFunc func(lines []string, maxWidth, maxHeight int) (width, height int)

// =============================================================================
// PLANNER
// =============================================================================

// Planner computes popup placement. The measure function is pluggable for
// hosts whose display surface measures text itself.
type Planner struct {
	Measure MeasureFunc
}

// NewPlanner returns a Planner using the runewidth-based Measure.
func NewPlanner() *Planner {
	return &Planner{Measure: Measure}
}

// Plan computes where and how large to draw the popup relative to anchor.
// The second return value is false when the content fits on neither side.
func (p *Planner) Plan(anchor Anchor, screenWidth int, border Border, limits Limits, lines []string) (Placement, bool) {
	rightSpace := screenWidth - (anchor.Col + anchor.Width) - 1
	leftSpace := anchor.Col - 1

	maxWidth := leftSpace
	if rightSpace > maxWidth {
		maxWidth = rightSpace
	}
	if limits.MaxWidth > 0 && limits.MaxWidth < maxWidth {
		maxWidth = limits.MaxWidth
	}

	maxHeight := 0
	if limits.MaxHeight > 0 {
		maxHeight = limits.MaxHeight - border.Vert
		if maxHeight <= 0 {
			return Placement{}, false
		}
	}

	measure := p.Measure
	if measure == nil {
		measure = Measure
	}
	width, height := measure(lines, maxWidth-border.Horiz, maxHeight)
	if width <= 0 || height <= 0 {
		return Placement{}, false
	}

	fitsLeft := width+border.Horiz <= leftSpace
	fitsRight := width+border.Horiz <= rightSpace

	var left bool
	switch {
	case fitsLeft && fitsRight:
		// Both sides work: the popup goes left exactly when the right
		// gap is the smaller one.
		left = rightSpace < leftSpace
	case fitsLeft:
		left = true
	case fitsRight:
		left = false
	default:
		return Placement{}, false
	}

	col := anchor.Col + anchor.Width
	if left {
		col = anchor.Col - width - border.Horiz
	}

	return Placement{
		Width:  width,
		Height: height,
		Row:    anchor.Row,
		Col:    col,
		Left:   left,
	}, true
}

// =============================================================================
// TEXT MEASUREMENT
// =============================================================================

// Measure computes the minimal display rectangle for lines, soft-wrapping
// any line wider than maxWidth at cell granularity. Cell widths come from
// go-runewidth so CJK and other double-width runes measure correctly.
func Measure(lines []string, maxWidth, maxHeight int) (int, int) {
	if maxWidth <= 0 || len(lines) == 0 {
		return 0, 0
	}

	width := 0
	height := 0
	for _, line := range lines {
		w, rows := wrapLine(line, maxWidth)
		if w > width {
			width = w
		}
		height += rows
	}

	if maxHeight > 0 && height > maxHeight {
		height = maxHeight
	}
	return width, height
}

// wrapLine returns the widest resulting row and the row count after
// soft-wrapping line into maxWidth-cell rows. An empty line still occupies
// one row.
func wrapLine(line string, maxWidth int) (int, int) {
	if line == "" {
		return 0, 1
	}

	widest := 0
	rows := 1
	row := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if row+rw > maxWidth {
			if row > widest {
				widest = row
			}
			rows++
			row = 0
		}
		row += rw
	}
	if row > widest {
		widest = row
	}
	return widest, rows
}
