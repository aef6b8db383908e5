package theme

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/draw"
	"github.com/go-loom/loom/pkg/errors"
)

// Config represents the optional loom.yaml theme configuration.
type Config struct {
	Metrics Metrics      `yaml:"metrics"`
	Colors  ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds palette overrides as 0xRRGGBB values. Zero fields
// keep the default palette entry.
type ColorsConfig struct {
	Background  uint32 `yaml:"background,omitempty"`
	Text        uint32 `yaml:"text,omitempty"`
	Frame       uint32 `yaml:"frame,omitempty"`
	ButtonIdle  uint32 `yaml:"button_idle,omitempty"`
	ButtonHover uint32 `yaml:"button_hover,omitempty"`
	ButtonPress uint32 `yaml:"button_press,omitempty"`
	Track       uint32 `yaml:"track,omitempty"`
	Handle      uint32 `yaml:"handle,omitempty"`
}

// LoadConfig reads a loom.yaml theme file if present. A missing file is
// not an error: defaults are returned. A malformed file is reported as a
// config-kind error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Metrics: DefaultMetrics()}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, &errors.LoomError{Op: "theme.LoadConfig", Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.LoomError{
			Op:        "theme.LoadConfig",
			Kind:      errors.KindConfig,
			Err:       fmt.Errorf("parse %s: %w", path, err),
			Timestamp: time.Now(),
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, &errors.LoomError{Op: "theme.LoadConfig", Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
	}
	return cfg, nil
}

func (c *Config) validate() error {
	m := c.Metrics
	if m.ScrollBarThickness < 1 || m.ScrollBarMinHandle < 1 || m.ScrollBarMinLength < 1 {
		return fmt.Errorf("scrollbar metrics must be positive: %+v", m)
	}
	if m.FrameThickness < 0 || m.ButtonMargin < 0 {
		return fmt.Errorf("frame and margin metrics must not be negative: %+v", m)
	}
	return nil
}

// Palette applies the color overrides to the default palette.
func (c *Config) Palette() Colors {
	colors := DefaultColors()
	apply := func(dst *draw.Color, hex uint32) {
		if hex != 0 {
			*dst = draw.RGB(hex)
		}
	}
	apply(&colors.Background, c.Colors.Background)
	apply(&colors.Text, c.Colors.Text)
	apply(&colors.Frame, c.Colors.Frame)
	apply(&colors.ButtonIdle, c.Colors.ButtonIdle)
	apply(&colors.ButtonHover, c.Colors.ButtonHover)
	apply(&colors.ButtonPress, c.Colors.ButtonPress)
	apply(&colors.Track, c.Colors.Track)
	apply(&colors.Handle, c.Colors.Handle)
	return colors
}
