// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for docpane.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/docpane/internal/geometry"
	"github.com/jeranaias/docpane/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete docpane configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version"`

	// Menu configures the primary selection popup.
	Menu MenuConfig `toml:"menu"`

	// Doc configures the documentation popup. A nil Doc disables it.
	Doc *Style `toml:"doc"`
}

// MenuConfig configures the primary selection popup.
type MenuConfig struct {
	// Width is the menu width in cells.
	Width int `toml:"width"`

	// MaxVisible is the maximum number of entries shown at once.
	MaxVisible int `toml:"max_visible"`

	// Border is the menu border style (same values as Style.Border).
	Border string `toml:"border"`
}

// Style configures the documentation popup surface.
type Style struct {
	// MaxWidth caps the popup content width in cells. 0 = unconstrained.
	MaxWidth int `toml:"max_width"`

	// MaxHeight caps the popup height in rows. 0 = unconstrained.
	MaxHeight int `toml:"max_height"`

	// Border is one of: "", "none", "single", "double", "rounded",
	// "solid", "shadow".
	Border string `toml:"border"`

	// WinBlend is the popup opacity, 0 (opaque) to 100 (invisible).
	WinBlend int `toml:"winblend"`

	// Highlight maps highlight groups to replacements, e.g.
	// NormalFloat = "DocpaneDoc".
	Highlight map[string]string `toml:"highlight"`

	// ZIndex is the popup's layering value. 0 means DefaultZIndex.
	ZIndex int `toml:"zindex"`
}

// DefaultZIndex is the layering value used when Style.ZIndex is unset.
const DefaultZIndex = 50

// =============================================================================
// STYLE DERIVATIONS
// =============================================================================

// borderCells maps a border style to the horizontal and vertical cells it
// consumes around the content area.
var borderCells = map[string][2]int{
	"":        {0, 0},
	"none":    {0, 0},
	"single":  {2, 2},
	"double":  {2, 2},
	"rounded": {2, 2},
	"solid":   {2, 2},
	"shadow":  {1, 1},
}

// BorderInfo derives the border thickness for geometry planning. The
// scrollbar offset starts at zero; the controller fills it in once the
// surface reports a rendered scrollbar.
func (s *Style) BorderInfo() geometry.Border {
	cells, ok := borderCells[s.Border]
	if !ok {
		cells = borderCells["single"]
	}
	return geometry.Border{Horiz: cells[0], Vert: cells[1]}
}

// Limits returns the style's size constraints for geometry planning.
func (s *Style) Limits() geometry.Limits {
	return geometry.Limits{MaxWidth: s.MaxWidth, MaxHeight: s.MaxHeight}
}

// ZIndexOrDefault returns the configured z-index, or DefaultZIndex when
// unset.
func (s *Style) ZIndexOrDefault() int {
	if s.ZIndex > 0 {
		return s.ZIndex
	}
	return DefaultZIndex
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Menu: MenuConfig{
			Width:      40,
			MaxVisible: 8,
			Border:     "rounded",
		},
		Doc: &Style{
			MaxWidth:  60,
			MaxHeight: 20,
			Border:    "rounded",
			WinBlend:  0,
			Highlight: map[string]string{
				"NormalFloat": "DocpaneDoc",
				"FloatBorder": "DocpaneDocBorder",
			},
			ZIndex: DefaultZIndex,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the docpane configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".docpane"), nil
}

// ConfigPath returns the path to config.toml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration from the default location, falling back to
// built-in defaults when no file exists. Environment overrides apply in
// both cases.
func Load() (*Config, error) {
	if path := os.Getenv("DOCPANE_CONFIG"); path != "" {
		return LoadFromPath(path)
	}

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path. Tables that
// are absent keep their defaults, except [doc]: omitting it disables the
// documentation popup.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	cfg.Doc = nil // only present when the file (or an override) says so

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if !meta.IsDefined("doc") {
		cfg.Doc = nil
	} else if cfg.Doc != nil && cfg.Doc.ZIndex == 0 {
		cfg.Doc.ZIndex = DefaultZIndex
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the default location atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("# docpane configuration\n\n")
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(sb.String()), 0600)
}

// =============================================================================
// OVERRIDES AND VALIDATION
// =============================================================================

// ApplyEnvOverrides applies DOCPANE_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if c.Doc == nil {
		return
	}
	if border := os.Getenv("DOCPANE_BORDER"); border != "" {
		c.Doc.Border = border
	}
	if maxWidth := os.Getenv("DOCPANE_MAX_WIDTH"); maxWidth != "" {
		if n, err := strconv.Atoi(maxWidth); err == nil {
			c.Doc.MaxWidth = n
		}
	}
	if maxHeight := os.Getenv("DOCPANE_MAX_HEIGHT"); maxHeight != "" {
		if n, err := strconv.Atoi(maxHeight); err == nil {
			c.Doc.MaxHeight = n
		}
	}
}

// Validate rejects values the renderer cannot honor.
func (c *Config) Validate() error {
	if c.Menu.Width < 0 {
		return fmt.Errorf("menu.width must be >= 0, got %d", c.Menu.Width)
	}
	if c.Menu.MaxVisible < 0 {
		return fmt.Errorf("menu.max_visible must be >= 0, got %d", c.Menu.MaxVisible)
	}
	if err := validBorder(c.Menu.Border); err != nil {
		return fmt.Errorf("menu.border: %w", err)
	}

	if c.Doc == nil {
		return nil
	}
	if c.Doc.MaxWidth < 0 {
		return fmt.Errorf("doc.max_width must be >= 0, got %d", c.Doc.MaxWidth)
	}
	if c.Doc.MaxHeight < 0 {
		return fmt.Errorf("doc.max_height must be >= 0, got %d", c.Doc.MaxHeight)
	}
	if c.Doc.WinBlend < 0 || c.Doc.WinBlend > 100 {
		return fmt.Errorf("doc.winblend must be in [0, 100], got %d", c.Doc.WinBlend)
	}
	if err := validBorder(c.Doc.Border); err != nil {
		return fmt.Errorf("doc.border: %w", err)
	}
	if c.Doc.ZIndex < 0 {
		return fmt.Errorf("doc.zindex must be >= 0, got %d", c.Doc.ZIndex)
	}
	return nil
}

// validBorder checks border against the recognized style names.
func validBorder(border string) error {
	if _, ok := borderCells[border]; !ok {
		return fmt.Errorf("unknown border style %q", border)
	}
	return nil
}
