// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for docpane.
//
// String helpers here are display-cell aware: widths come from
// go-runewidth, so CJK and other double-width runes count as two columns
// and truncation never splits a multi-byte character.
//
// AtomicWriteFile provides crash-safe file writing for the config layer.
package util
