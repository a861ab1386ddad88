// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for docpane.
//
// Configuration lives in ~/.docpane/config.toml. Built-in defaults cover
// every field, a handful of DOCPANE_* environment variables override the
// file, and validation rejects values the renderer cannot honor.
//
// The [doc] table configures the documentation popup: size limits, border
// style, opacity, highlight mapping, and layering. Omitting the table
// disables the documentation popup entirely; the popup controller treats
// a nil style as "do nothing".
//
// A Watcher built on fsnotify reloads the file when it changes on disk, so
// style tweaks land without restarting the host.
package config
