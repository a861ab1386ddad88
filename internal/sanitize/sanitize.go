// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sanitize converts lightweight Markdown into plain text.
package sanitize

import (
	"regexp"
	"strings"
)

// =============================================================================
// TRANSFORMATION PIPELINE
// =============================================================================

// Step is one named, total, side-effect-free transformation over a fragment.
// Steps run in Pipeline order; each consumes the previous step's output.
type Step struct {
	Name  string
	Apply func(string) string
}

// Pipeline is the ordered list of transformations applied to each fragment.
// Order matters: bold runs before italic so "**x**" is not mis-parsed as two
// italic spans, and images run before links so an image's alt text survives
// the generic link rule.
var Pipeline = []Step{
	replace("code-fence", "(?m)^`{3}[0-9A-Za-z_+-]*[ \t]*$\n?", ""),
	replace("inline-code", "`([^`\n]+)`", "$1"),
	replace("bold-star", `\*\*(.+?)\*\*`, "$1"),
	replace("bold-underscore", `__(.+?)__`, "$1"),
	replace("italic-star", `\*([^*\n]+)\*`, "$1"),
	replace("italic-underscore", `_([^_\n]+)_`, "$1"),
	replace("strikethrough", `~~(.+?)~~`, "$1"),
	replace("image", `!\[([^\]]*)\]\([^)]*\)`, "$1"),
	replace("link", `\[([^\]]*)\]\([^)]*\)`, "$1"),
	{Name: "entities", Apply: decodeEntities},
	replace("blockquote", "(?m)^>+[ \t]?", ""),
	replace("unordered-list", "(?m)^[-*+][ \t]+", ""),
	replace("ordered-list", "(?m)^[0-9]+\\.[ \t]+", ""),
	replace("escapes", `\\([[:punct:]])`, "$1"),
	{Name: "trim", Apply: strings.TrimSpace},
}

// replace builds a Step from a compiled regular expression and replacement.
func replace(name, pattern, repl string) Step {
	re := regexp.MustCompile(pattern)
	return Step{
		Name: name,
		Apply: func(s string) string {
			return re.ReplaceAllString(s, repl)
		},
	}
}

// decodeEntities decodes the minimal entity set that shows up in hover and
// completion documentation. &amp; is decoded last so it cannot manufacture
// new entities out of surrounding text.
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// =============================================================================
// PUBLIC API
// =============================================================================

// Fragment runs the full pipeline over a single fragment.
func Fragment(s string) string {
	for _, step := range Pipeline {
		s = step.Apply(s)
	}
	return s
}

// Sanitize maps each input fragment to exactly one plain-text line.
// Fragments that end up empty are kept; blank-line suppression belongs to
// the caller.
func Sanitize(fragments []string) []string {
	if len(fragments) == 0 {
		return nil
	}
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = Fragment(f)
	}
	return out
}
