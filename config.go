package quill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config tunes the engine's thresholds and policies. Distances are in screen
// pixels and are divided by the current zoom before use in canvas space.
type Config struct {
	LongPressDelay     time.Duration `env:"QUILL_LONG_PRESS_DELAY"`
	LongPressSlop      float64       `env:"QUILL_LONG_PRESS_SLOP"`
	SnapEnabled        bool          `env:"QUILL_SNAP_ENABLED"`
	SnapThreshold      float64       `env:"QUILL_SNAP_THRESHOLD"`
	MinZoom            float64       `env:"QUILL_MIN_ZOOM"`
	MaxZoom            float64       `env:"QUILL_MAX_ZOOM"`
	HandleSize         float64       `env:"QUILL_HANDLE_SIZE"`
	HighlighterOpacity float64       `env:"QUILL_HIGHLIGHTER_OPACITY"`
	CommitPolicy       CommitPolicy  `env:"QUILL_COMMIT_POLICY"`
	MinElementSize     float64       `env:"QUILL_MIN_ELEMENT_SIZE"`
	WheelZoomStep      float64       `env:"QUILL_WHEEL_ZOOM_STEP"`
	// FreeResizeModifier disables aspect lock while resizing and enables
	// equal-ratio lock while drawing shapes.
	FreeResizeModifier KeyModifiers
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		LongPressDelay:     defaultLongPressDelay,
		LongPressSlop:      defaultLongPressSlop,
		SnapEnabled:        true,
		SnapThreshold:      defaultSnapThreshold,
		MinZoom:            defaultMinZoom,
		MaxZoom:            defaultMaxZoom,
		HandleSize:         8,
		HighlighterOpacity: 0.35,
		CommitPolicy:       CommitAlways,
		MinElementSize:     1,
		WheelZoomStep:      1.1,
		FreeResizeModifier: ModShift,
	}
}

// fileConfig mirrors Config for YAML. Pointer fields distinguish "unset" from
// zero so a partial file only overrides what it names.
type fileConfig struct {
	LongPressDelay     *time.Duration `yaml:"longPressDelay"`
	LongPressSlop      *float64       `yaml:"longPressSlop"`
	SnapEnabled        *bool          `yaml:"snapEnabled"`
	SnapThreshold      *float64       `yaml:"snapThreshold"`
	MinZoom            *float64       `yaml:"minZoom"`
	MaxZoom            *float64       `yaml:"maxZoom"`
	HandleSize         *float64       `yaml:"handleSize"`
	HighlighterOpacity *float64       `yaml:"highlighterOpacity"`
	CommitPolicy       *string        `yaml:"commitPolicy"`
	MinElementSize     *float64       `yaml:"minElementSize"`
	WheelZoomStep      *float64       `yaml:"wheelZoomStep"`
}

// LoadConfig builds a Config from defaults, an optional YAML file at path and
// QUILL_* environment variables, in that order of precedence. A missing file
// is not an error; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := ParseConfig(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig merges YAML data onto cfg.
func ParseConfig(data []byte, cfg *Config) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return mergeConfig(cfg, fc)
}

func mergeConfig(dst *Config, src fileConfig) error {
	if src.LongPressDelay != nil {
		dst.LongPressDelay = *src.LongPressDelay
	}
	if src.LongPressSlop != nil {
		dst.LongPressSlop = *src.LongPressSlop
	}
	if src.SnapEnabled != nil {
		dst.SnapEnabled = *src.SnapEnabled
	}
	if src.SnapThreshold != nil {
		dst.SnapThreshold = *src.SnapThreshold
	}
	if src.MinZoom != nil {
		dst.MinZoom = *src.MinZoom
	}
	if src.MaxZoom != nil {
		dst.MaxZoom = *src.MaxZoom
	}
	if src.HandleSize != nil {
		dst.HandleSize = *src.HandleSize
	}
	if src.HighlighterOpacity != nil {
		dst.HighlighterOpacity = *src.HighlighterOpacity
	}
	if src.CommitPolicy != nil {
		if err := dst.CommitPolicy.UnmarshalText([]byte(*src.CommitPolicy)); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	if src.MinElementSize != nil {
		dst.MinElementSize = *src.MinElementSize
	}
	if src.WheelZoomStep != nil {
		dst.WheelZoomStep = *src.WheelZoomStep
	}
	return nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.MinZoom <= 0:
		return fmt.Errorf("config: minZoom must be positive, got %v", c.MinZoom)
	case c.MaxZoom < c.MinZoom:
		return fmt.Errorf("config: maxZoom %v below minZoom %v", c.MaxZoom, c.MinZoom)
	case c.LongPressDelay < 0:
		return fmt.Errorf("config: negative longPressDelay %v", c.LongPressDelay)
	case c.MinElementSize < 0:
		return fmt.Errorf("config: negative minElementSize %v", c.MinElementSize)
	}
	return nil
}
