package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts := cfg.Options(nil)
	def := segment.DefaultOptions()
	if opts.InitialSegmentCount != def.InitialSegmentCount || opts.UnitType != def.UnitType ||
		opts.TotalValue != def.TotalValue || opts.MinimumSegmentSize != def.MinimumSegmentSize {
		t.Fatalf("options = %+v, want defaults", opts)
	}
	if len(opts.Palette) != 10 {
		t.Fatalf("palette has %d entries", len(opts.Palette))
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
  "initial_segment_count": 6,
  "unit_type": "currency",
  "total_value": 2500,
  "minimum_segment_size": 2,
  "currency_symbol": "$",
  "palette": ["#000000", "fff"]
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts := cfg.Options(nil)
	if opts.InitialSegmentCount != 6 || opts.UnitType != segment.UnitCurrency ||
		opts.TotalValue != 2500 || opts.MinimumSegmentSize != 2 || opts.CurrencySymbol != "$" {
		t.Fatalf("options = %+v", opts)
	}
	if len(opts.Palette) != 2 || opts.Palette[1] != "#FFFFFF" {
		t.Fatalf("palette = %v", opts.Palette)
	}
}

func TestOptionsReplacesBadValues(t *testing.T) {
	path := writeConfig(t, `{
  "initial_segment_count": 1,
  "unit_type": "yen",
  "total_value": -3,
  "minimum_segment_size": 60,
  "palette": ["nope"]
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var logs bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Warn})
	opts := cfg.Options(log)
	def := segment.DefaultOptions()
	if opts.InitialSegmentCount != def.InitialSegmentCount || opts.UnitType != def.UnitType ||
		opts.TotalValue != def.TotalValue || opts.MinimumSegmentSize != def.MinimumSegmentSize {
		t.Fatalf("options = %+v, want defaults", opts)
	}
	if len(opts.Palette) != len(def.Palette) {
		t.Fatalf("palette = %v, want default", opts.Palette)
	}
	for _, want := range []string{"initial_segment_count", "unit_type", "total_value", "minimum_segment_size", "palette"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("warnings missing %q:\n%s", want, logs.String())
		}
	}
}

func TestOptionsCapsCountByMinimum(t *testing.T) {
	cfg := &Config{InitialSegmentCount: 30, MinimumSegmentSize: 5}
	var logs bytes.Buffer
	opts := cfg.Options(hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Warn}))
	if opts.MinimumSegmentSize != 5 {
		t.Fatalf("minimum = %v, want 5", opts.MinimumSegmentSize)
	}
	if opts.InitialSegmentCount != segment.DefaultSegmentCount {
		t.Fatalf("count = %d, want default %d", opts.InitialSegmentCount, segment.DefaultSegmentCount)
	}
	if !strings.Contains(logs.String(), "above limit") {
		t.Fatalf("missing warning:\n%s", logs.String())
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `{"initial_segment_count": `)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load should fail on malformed JSON")
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(dir, "segbar", FileName); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}
