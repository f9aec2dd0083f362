// Package config loads splitgrid configuration: the initial layout,
// per-pane pixel bounds, gutter appearance and named presets. Embedded
// defaults are always loaded first; a user file, when present, is
// merged on top.
package config

import (
	"embed"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"github.com/splitgrid/splitgrid/internal/splitter"
)

//go:embed default/config.toml
var configFS embed.FS

type Config struct {
	Layout  LayoutConfig         `toml:"layout"`
	Gutter  GutterConfig         `toml:"gutter"`
	Presets map[string][]float64 `toml:"presets"`
}

type LayoutConfig struct {
	Sizes           []float64 `toml:"sizes"`
	MinPx           []float64 `toml:"min_px"`
	MaxPx           []float64 `toml:"max_px"`
	SnapThresholdPx float64   `toml:"snap_threshold_px"`
	Vertical        bool      `toml:"vertical"`
	Titles          []string  `toml:"titles"`
}

type GutterConfig struct {
	Thickness int    `toml:"thickness"`
	Glyph     string `toml:"glyph"`
}

// Load decodes TOML data over the current config.
func (c *Config) Load(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// Bounds converts the pixel bound tables into the allocator's bound
// set. Missing or mismatched tables yield no bounds for that side.
func (c *Config) Bounds() []splitter.Bounds {
	count := len(c.Layout.Sizes)
	if count == 0 {
		return nil
	}
	bounds := make([]splitter.Bounds, count)
	if len(c.Layout.MinPx) == count {
		for i, v := range c.Layout.MinPx {
			bounds[i].MinPx = v
		}
	}
	if len(c.Layout.MaxPx) == count {
		for i, v := range c.Layout.MaxPx {
			bounds[i].MaxPx = v
		}
	}
	return bounds
}

// Validate checks the layout section and falls back to the embedded
// defaults when it is unusable, logging what was wrong. The config
// surface is tolerant by design: a bad user file degrades, it does not
// abort.
func (c *Config) Validate() {
	if reason := c.layoutProblem(); reason != "" {
		log.Printf("config: %s, falling back to default layout", reason)
		defaults := loadDefaultConfig()
		c.Layout = defaults.Layout
	}
	if c.Gutter.Thickness < 0 {
		c.Gutter.Thickness = 0
	}
}

func (c *Config) layoutProblem() string {
	if len(c.Layout.Sizes) == 0 {
		return "no pane sizes"
	}
	var total float64
	for i, size := range c.Layout.Sizes {
		if size < 0 {
			return fmt.Sprintf("negative size for pane %d", i)
		}
		total += size
	}
	if total <= 0 {
		return "sizes sum to zero"
	}
	count := len(c.Layout.Sizes)
	if n := len(c.Layout.MinPx); n != 0 && n != count {
		return fmt.Sprintf("min_px has %d entries for %d panes", n, count)
	}
	if n := len(c.Layout.MaxPx); n != 0 && n != count {
		return fmt.Sprintf("max_px has %d entries for %d panes", n, count)
	}
	return ""
}
