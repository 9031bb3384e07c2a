package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mordeng/hex-map-editor/hexmap"
)

// Settings is the optional editor configuration file. Every field has a
// sensible default; a missing file is not an error.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	DefaultMap   string  `yaml:"default_map"`
	PanSpeed     float64 `yaml:"pan_speed"`

	// TerrainColors overrides palette entries, keyed by terrain name with
	// "#rrggbb" values.
	TerrainColors map[string]string `yaml:"terrain_colors"`
}

func defaultSettings() Settings {
	return Settings{
		WindowWidth:  1500,
		WindowHeight: 900,
		PanSpeed:     12,
	}
}

// LoadSettings reads the yaml settings file. A missing file yields defaults;
// a present-but-broken file is an error so typos do not silently vanish.
func LoadSettings(path string) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: unmarshal %s: %w", path, err)
	}
	if s.WindowWidth <= 0 {
		s.WindowWidth = defaultSettings().WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = defaultSettings().WindowHeight
	}
	if s.PanSpeed <= 0 {
		s.PanSpeed = defaultSettings().PanSpeed
	}
	return s, nil
}

// Apply pushes palette overrides into the terrain color table.
func (s Settings) Apply() error {
	for name, hex := range s.TerrainColors {
		c, err := parseHexColor(hex)
		if err != nil {
			return fmt.Errorf("settings: terrain %q: %w", name, err)
		}
		hexmap.SetBaseColor(hexmap.Terrain(name), c)
	}
	return nil
}

// parseHexColor parses a color in the form #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}
