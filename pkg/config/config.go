// Package config handles loading and saving canopy configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/canopy/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/canopy/pkg/reflow"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

// Corner names accepted by the corner setting.
const (
	CornerTopLeft    = "top-left"
	CornerBottomLeft = "bottom-left"
)

// SymbolsConfig holds the glyphs drawn in front of nodes.
type SymbolsConfig struct {
	Open   string `yaml:"open,omitempty"`
	Closed string `yaml:"closed,omitempty"`
	Leaf   string `yaml:"leaf,omitempty"`
}

// Config is the top-level configuration for canopy.
type Config struct {
	Mode            string        `yaml:"mode,omitempty"` // wrap or truncate
	Trim            bool          `yaml:"trim,omitempty"`
	IndentWidth     int           `yaml:"indent_width,omitempty"`
	HighlightSymbol string        `yaml:"highlight_symbol,omitempty"`
	HighlightColor  string        `yaml:"highlight_color,omitempty"` // lipgloss colour, "" = reverse video
	Symbols         SymbolsConfig `yaml:"symbols,omitempty"`
	Corner          string        `yaml:"corner,omitempty"`

	// Viewport size used when the terminal size is unknown.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	sym := tree.DefaultSymbols()
	return Config{
		Mode:            reflow.ModeTruncate.String(),
		IndentWidth:     2,
		HighlightSymbol: ">> ",
		Symbols: SymbolsConfig{
			Open:   sym.Open,
			Closed: sym.Closed,
			Leaf:   sym.Leaf,
		},
		Corner: CornerTopLeft,
		Width:  80,
		Height: 24,
	}
}

// ConfigDir returns the XDG config directory for canopy.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "canopy")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "canopy")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist. Settings missing from the
// file keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the enumerated and numeric settings.
func (c Config) Validate() error {
	if _, err := reflow.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := parseCorner(c.Corner); err != nil {
		return err
	}
	if c.IndentWidth < 0 {
		return fmt.Errorf("indent_width must not be negative, got %d", c.IndentWidth)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// View builds a tree view over roots from the configuration. Invalid
// enumerated settings fall back to their defaults; call Validate first to
// report them.
func (c Config) View(roots []*tree.Node) tree.View {
	v := tree.DefaultView(roots)

	if mode, err := reflow.ParseMode(c.Mode); err == nil {
		v.Wrap = mode == reflow.ModeWrap
	}
	v.Trim = c.Trim
	v.IndentWidth = max(c.IndentWidth, 0)
	v.HighlightSymbol = c.HighlightSymbol

	def := tree.DefaultSymbols()
	v.Symbols = tree.Symbols{
		Open:   orDefault(c.Symbols.Open, def.Open),
		Closed: orDefault(c.Symbols.Closed, def.Closed),
		Leaf:   orDefault(c.Symbols.Leaf, def.Leaf),
	}
	if corner, err := parseCorner(c.Corner); err == nil {
		v.Corner = corner
	}

	if c.HighlightColor != "" {
		v.HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.HighlightColor))
	} else {
		v.HighlightStyle = lipgloss.NewStyle().Reverse(true)
	}
	return v
}

func parseCorner(s string) (tree.Corner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", CornerTopLeft:
		return tree.CornerTopLeft, nil
	case CornerBottomLeft:
		return tree.CornerBottomLeft, nil
	default:
		return tree.CornerTopLeft, fmt.Errorf("unknown corner %q (want %s or %s)", s, CornerTopLeft, CornerBottomLeft)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
