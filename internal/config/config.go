// Package config loads the widget configuration from a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// FileName is the config file name inside the config directory.
const FileName = "config.json"

// Config is the on-disk configuration. Zero fields take the defaults.
type Config struct {
	InitialSegmentCount int      `json:"initial_segment_count"`
	UnitType            string   `json:"unit_type"`
	TotalValue          float64  `json:"total_value"`
	MinimumSegmentSize  float64  `json:"minimum_segment_size"`
	CurrencySymbol      string   `json:"currency_symbol"`
	Palette             []string `json:"palette,omitempty"`
}

// Default returns the stock configuration.
func Default() *Config {
	return FromOptions(segment.DefaultOptions())
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "segbar", FileName), nil
	}
	if dir := os.Getenv("APPDATA"); dir != "" {
		return filepath.Join(dir, "segbar", FileName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "segbar", FileName), nil
}

// Load reads path, or the default location when path is empty. A missing
// file yields the defaults. Malformed JSON is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	cfg.Palette = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config into model options. Unusable values are
// replaced by defaults and reported through log.
func (c *Config) Options(log hclog.Logger) segment.Options {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	opts := segment.DefaultOptions()

	if segment.Positive(c.MinimumSegmentSize) && c.MinimumSegmentSize*segment.MinSegmentCount <= segment.Whole {
		opts.MinimumSegmentSize = c.MinimumSegmentSize
	} else if c.MinimumSegmentSize != 0 {
		log.Warn("ignoring unusable minimum_segment_size", "value", c.MinimumSegmentSize, "default", opts.MinimumSegmentSize)
	}

	limit := segment.MaxSegmentCount(opts.MinimumSegmentSize)
	switch {
	case c.InitialSegmentCount == 0:
	case c.InitialSegmentCount < segment.MinSegmentCount:
		log.Warn("ignoring initial_segment_count below minimum", "value", c.InitialSegmentCount, "default", opts.InitialSegmentCount)
	case c.InitialSegmentCount > limit:
		log.Warn("ignoring initial_segment_count above limit", "value", c.InitialSegmentCount, "limit", limit, "default", opts.InitialSegmentCount)
	default:
		opts.InitialSegmentCount = c.InitialSegmentCount
	}

	if c.UnitType != "" {
		if unit, ok := segment.ParseUnitType(c.UnitType); ok {
			opts.UnitType = unit
		} else {
			log.Warn("ignoring unknown unit_type", "value", c.UnitType, "default", opts.UnitType)
		}
	}

	if segment.Positive(c.TotalValue) {
		opts.TotalValue = c.TotalValue
	} else if c.TotalValue != 0 {
		log.Warn("ignoring non-positive total_value", "value", c.TotalValue, "default", opts.TotalValue)
	}

	if c.CurrencySymbol != "" {
		opts.CurrencySymbol = c.CurrencySymbol
	}

	if len(c.Palette) > 0 {
		palette := make(segment.Palette, 0, len(c.Palette))
		for _, raw := range c.Palette {
			col, err := segment.ParseColor(raw)
			if err != nil {
				log.Warn("ignoring palette entry", "value", raw, "error", err)
				continue
			}
			palette = append(palette, col)
		}
		if len(palette) > 0 {
			opts.Palette = palette
		}
	}
	return opts
}

// JSON renders the config for display.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// FromOptions renders resolved model options back into config form.
func FromOptions(opts segment.Options) *Config {
	palette := make([]string, len(opts.Palette))
	for i, c := range opts.Palette {
		palette[i] = string(c)
	}
	return &Config{
		InitialSegmentCount: opts.InitialSegmentCount,
		UnitType:            string(opts.UnitType),
		TotalValue:          opts.TotalValue,
		MinimumSegmentSize:  opts.MinimumSegmentSize,
		CurrencySymbol:      opts.CurrencySymbol,
		Palette:             palette,
	}
}
