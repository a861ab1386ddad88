// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package geometry computes placement for a documentation popup anchored to
// a primary selection popup.
//
// The planner answers one question: given the anchor's rectangle, the
// screen width, the border thickness of the popup to be drawn, and the
// content to display, where does the popup go and how big is it? The
// answer is either a Placement or "does not fit". The planner never
// overlaps the anchor or the screen edges.
//
// Side selection is deliberate: when the popup fits on both sides it goes
// left exactly when the right gap is the smaller one. Do not "simplify"
// the rule; it is observable placement behavior that hosts depend on.
package geometry
