// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sanitize converts lightweight Markdown documentation into plain
// text suitable for a plain display surface.
//
// Documentation arrives as an ordered sequence of fragments (one raw
// formatted string per paragraph or section). Sanitize maps each fragment
// to exactly one plain-text line by running an ordered pipeline of
// transformation steps: code fences, inline code, emphasis, strikethrough,
// links and images, a minimal entity set, blockquote and list markers,
// backslash escapes, and a final trim.
//
// Every step is total and side-effect-free. Malformed markup never fails;
// unmatched markers pass through as literal text. Empty fragments are
// preserved so callers decide their own blank-line policy.
//
// # Usage
//
//	lines := sanitize.Sanitize([]string{
//		"**bold** and *italic*",
//		"```go\nfmt.Println(1)\n```",
//	})
//	// lines == []string{"bold and italic", "fmt.Println(1)"}
package sanitize
