// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for docpane.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/docpane/internal/geometry"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_FullConfig(t *testing.T) {
	path := writeConfig(t, `
version = "1"

[menu]
width = 30
max_visible = 5
border = "single"

[doc]
max_width = 50
max_height = 15
border = "double"
winblend = 10
zindex = 60

[doc.highlight]
NormalFloat = "MyFloat"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Menu.Width)
	assert.Equal(t, 5, cfg.Menu.MaxVisible)

	require.NotNil(t, cfg.Doc)
	assert.Equal(t, 50, cfg.Doc.MaxWidth)
	assert.Equal(t, 15, cfg.Doc.MaxHeight)
	assert.Equal(t, "double", cfg.Doc.Border)
	assert.Equal(t, 10, cfg.Doc.WinBlend)
	assert.Equal(t, 60, cfg.Doc.ZIndex)
	assert.Equal(t, "MyFloat", cfg.Doc.Highlight["NormalFloat"])
}

func TestLoadFromPath_MissingDocTableDisablesPopup(t *testing.T) {
	path := writeConfig(t, `
version = "1"

[menu]
width = 30
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Doc, "absent [doc] table must disable the documentation popup")
}

func TestLoadFromPath_DocZIndexDefaults(t *testing.T) {
	path := writeConfig(t, `
[doc]
border = "rounded"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Doc)
	assert.Equal(t, DefaultZIndex, cfg.Doc.ZIndex)
}

func TestLoadFromPath_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad border", "[doc]\nborder = \"fancy\"\n"},
		{"winblend too high", "[doc]\nwinblend = 150\n"},
		{"negative width", "[doc]\nmax_width = -1\n"},
		{"negative menu width", "[menu]\nwidth = -2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	t.Setenv("DOCPANE_BORDER", "double")
	t.Setenv("DOCPANE_MAX_WIDTH", "33")

	path := writeConfig(t, `
[doc]
border = "rounded"
max_width = 50
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Doc)
	assert.Equal(t, "double", cfg.Doc.Border)
	assert.Equal(t, 33, cfg.Doc.MaxWidth)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Doc)
	assert.Equal(t, DefaultZIndex, cfg.Doc.ZIndex)
}

// =============================================================================
// STYLE DERIVATION TESTS
// =============================================================================

func TestStyle_BorderInfo(t *testing.T) {
	tests := []struct {
		border    string
		wantHoriz int
		wantVert  int
	}{
		{"", 0, 0},
		{"none", 0, 0},
		{"single", 2, 2},
		{"double", 2, 2},
		{"rounded", 2, 2},
		{"solid", 2, 2},
		{"shadow", 1, 1},
	}

	for _, tc := range tests {
		s := &Style{Border: tc.border}
		info := s.BorderInfo()
		assert.Equal(t, tc.wantHoriz, info.Horiz, "border %q horiz", tc.border)
		assert.Equal(t, tc.wantVert, info.Vert, "border %q vert", tc.border)
		assert.Zero(t, info.ScrollbarOffset, "border %q scrollbar offset starts at 0", tc.border)
	}
}

func TestStyle_Limits(t *testing.T) {
	s := &Style{MaxWidth: 42, MaxHeight: 7}
	assert.Equal(t, geometry.Limits{MaxWidth: 42, MaxHeight: 7}, s.Limits())
}

func TestStyle_ZIndexOrDefault(t *testing.T) {
	assert.Equal(t, DefaultZIndex, (&Style{}).ZIndexOrDefault())
	assert.Equal(t, 75, (&Style{ZIndex: 75}).ZIndexOrDefault())
}

// =============================================================================
// ROUND-TRIP TEST
// =============================================================================

func TestLoad_EnvConfigPathRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DOCPANE_CONFIG", path)

	cfg := Default()
	cfg.Doc.MaxWidth = 44

	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(cfg))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded.Doc)
	assert.Equal(t, 44, loaded.Doc.MaxWidth)
}
