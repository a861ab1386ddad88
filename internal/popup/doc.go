// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package popup orchestrates the documentation popup shown next to a
// selection menu.
//
// The Controller owns the identity of the entry being displayed and wires
// three collaborators together: the sanitize pipeline for content, the
// geometry planner for placement, and a Surface (the host's floating
// rectangle primitive) for everything drawn on screen. Entries, anchors,
// and style all arrive from the caller on every Open; the controller keeps
// only the last entry identity so unchanged content is not rebuilt.
//
// Everything runs on the host's single event loop. The one piece of
// asynchrony is scrolling: the viewport move is posted to the Scheduler so
// it runs after any surface mutation from the same turn, never against
// geometry that is still being updated. At most one scroll task is
// outstanding per controller; a newer scroll, open, or close supersedes it.
//
// There are no error returns from the four operations. Anything that goes
// wrong (missing entry, empty documentation, no room on either side)
// degrades to the closed state.
package popup
