// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sanitize converts lightweight Markdown into plain text.
package sanitize

import (
	"testing"
)

// =============================================================================
// FULL PIPELINE TESTS
// =============================================================================

func TestFragment_RoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"code fence", "```python\nprint(1)\n```", "print(1)"},
		{"code fence no lang", "```\nx := 1\n```", "x := 1"},
		{"inline code", "use `go build` here", "use go build here"},
		{"bold and italic", "**bold** and *italic*", "bold and italic"},
		{"bold underscore", "__bold__ and _italic_", "bold and italic"},
		{"strikethrough", "~~gone~~ kept", "gone kept"},
		{"link", "[see here](http://x)", "see here"},
		{"image", "![diagram](http://x/a.png)", "diagram"},
		{"escaped parens", "\\(hello\\)", "(hello)"},
		{"blockquote", "> quoted text", "quoted text"},
		{"nested blockquote", ">> deeper", "deeper"},
		{"unordered list", "- item one", "item one"},
		{"unordered list star", "* item two", "item two"},
		{"unordered list plus", "+ item three", "item three"},
		{"ordered list", "12. item twelve", "item twelve"},
		{"entities", "a&nbsp;&lt;b&gt;&amp;c", "a <b>&c"},
		{"trim", "   padded   ", "padded"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fragment(tc.input)
			if got != tc.want {
				t.Errorf("Fragment(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFragment_PlainTextUnchanged(t *testing.T) {
	// Text with no markup must survive the full pipeline unchanged, modulo
	// whitespace trimming.
	inputs := []string{
		"A plain sentence with no markup.",
		"func Open(entry Entry) error",
		"columns: 80, rows: 24",
	}

	for _, in := range inputs {
		if got := Fragment(in); got != in {
			t.Errorf("Fragment(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestFragment_MalformedMarkupIsLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"**unclosed bold", "**unclosed bold"},
		{"a ~~half strike", "a ~~half strike"},
		{"[label without url]", "[label without url]"},
		{"lone ` backtick", "lone ` backtick"},
	}

	for _, tc := range tests {
		got := Fragment(tc.input)
		if got != tc.want {
			t.Errorf("Fragment(%q) = %q, want literal %q", tc.input, got, tc.want)
		}
	}
}

func TestFragment_BoldBeforeItalic(t *testing.T) {
	// "**x**" must be unwrapped as bold, not parsed as two empty italics.
	if got := Fragment("**x**"); got != "x" {
		t.Errorf("Fragment(**x**) = %q, want %q", got, "x")
	}
	if got := Fragment("***x***"); got != "x" {
		t.Errorf("Fragment(***x***) = %q, want %q", got, "x")
	}
}

func TestFragment_ImageAltPreserved(t *testing.T) {
	// The generic link rule must not swallow an image's alt text: the
	// leading "!" distinguishes the two, and exactly the alt must remain.
	got := Fragment("before ![alt text](u.png) after")
	want := "before alt text after"
	if got != want {
		t.Errorf("Fragment(image) = %q, want %q", got, want)
	}
}

func TestFragment_ListMarkerOnlyAtLineStart(t *testing.T) {
	// "2 + 2" and "a - b" are prose, not list items.
	inputs := []string{"2 + 2 = 4", "pick a - b"}
	for _, in := range inputs {
		if got := Fragment(in); got != in {
			t.Errorf("Fragment(%q) = %q, want unchanged", in, got)
		}
	}
}

// =============================================================================
// SANITIZE TESTS
// =============================================================================

func TestSanitize_OneLinePerFragment(t *testing.T) {
	in := []string{"**head**", "", "> body"}
	got := Sanitize(in)

	if len(got) != len(in) {
		t.Fatalf("Sanitize returned %d lines, want %d", len(got), len(in))
	}
	want := []string{"head", "", "body"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(nil); got != nil {
		t.Errorf("Sanitize(nil) = %v, want nil", got)
	}
}

// =============================================================================
// PER-STEP TESTS
// =============================================================================

func TestPipeline_StepsAreIndependent(t *testing.T) {
	steps := make(map[string]Step, len(Pipeline))
	for _, s := range Pipeline {
		steps[s.Name] = s
	}

	tests := []struct {
		step  string
		input string
		want  string
	}{
		{"code-fence", "```go\nx\n```", "x\n"},
		{"inline-code", "`a` and `b`", "a and b"},
		{"bold-star", "**a** *b*", "a *b*"},
		{"italic-star", "*b*", "b"},
		{"strikethrough", "~~a~~", "a"},
		{"image", "![a](u)", "a"},
		{"link", "[a](u)", "a"},
		{"entities", "&lt;&gt;", "<>"},
		{"blockquote", "> q", "q"},
		{"unordered-list", "- x", "x"},
		{"ordered-list", "3. x", "x"},
		{"escapes", `\.`, "."},
		{"trim", " x ", "x"},
	}

	for _, tc := range tests {
		step, ok := steps[tc.step]
		if !ok {
			t.Fatalf("pipeline has no step %q", tc.step)
		}
		if got := step.Apply(tc.input); got != tc.want {
			t.Errorf("step %s(%q) = %q, want %q", tc.step, tc.input, got, tc.want)
		}
	}
}
