package osm2map

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	fname := writeTestFile(t, "config.yaml", `
origin: bbox
recenter: centroid
map_radius: 750
exclude_service_roads: true
road_widths:
  primary: 9.5
building_color:
  r: 10
  g: 20
  b: 30
precision: 2
`)
	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Error(err)
		return
	}
	if cfg.OriginPolicy != "bbox" || cfg.RecenterPolicy != "centroid" {
		t.Errorf("Policies must be 'bbox' and 'centroid', but got '%s' and '%s'", cfg.OriginPolicy, cfg.RecenterPolicy)
	}
	if cfg.MapRadius != 750 || cfg.Precision != 2 || !cfg.ExcludeServiceRoads {
		t.Errorf("Overrides are not applied: %+v", cfg)
	}
	if cfg.BuildingColor != (Color{R: 10, G: 20, B: 30}) {
		t.Errorf("Building color must be %v, but got %v", Color{R: 10, G: 20, B: 30}, cfg.BuildingColor)
	}
	if cfg.roadWidth("primary") != 9.5 {
		t.Errorf("Primary width must be %f, but got %f", 9.5, cfg.roadWidth("primary"))
	}
	// Absent keys keep defaults
	if cfg.roadWidth("motorway") != 15.0 {
		t.Errorf("Motorway width must stay %f, but got %f", 15.0, cfg.roadWidth("motorway"))
	}
	if cfg.LevelHeight != 3.5 || cfg.POIMergeDistance != 5.0 {
		t.Errorf("Defaults must be kept, but got level height %f and merge distance %f", cfg.LevelHeight, cfg.POIMergeDistance)
	}
	if _, ok := cfg.excludedRoadsSet()["service"]; !ok {
		t.Errorf("Service roads must be excluded")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Errorf("Missing file must give error")
	}

	fname := writeTestFile(t, "bad.yaml", "map_radius: [1, 2\n")
	_, err = LoadConfig(fname)
	if err == nil {
		t.Errorf("Broken YAML must give error")
	}

	fname = writeTestFile(t, "policy.yaml", "origin: random\n")
	_, err = LoadConfig(fname)
	if errors.Cause(err) != ErrUnknownOriginPolicy {
		t.Errorf("Error must be %v, but got %v", ErrUnknownOriginPolicy, err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must be valid, but got %v", err)
	}
	cases := map[string]func(cfg *Config){
		"recenter":       func(cfg *Config) { cfg.RecenterPolicy = "median" },
		"min_area":       func(cfg *Config) { cfg.MinBuildingArea = -1 },
		"lane_width":     func(cfg *Config) { cfg.LaneWidth = 0 },
		"road_widths":    func(cfg *Config) { cfg.RoadWidths = map[string]float64{"primary": -2} },
		"fallback_range": func(cfg *Config) { cfg.FallbackHeightMax = cfg.FallbackHeightMin - 1 },
		"zero_fallback": func(cfg *Config) {
			cfg.FallbackHeightMin = 0
			cfg.FallbackHeightMax = 0
		},
		"zero_fallback_min": func(cfg *Config) { cfg.FallbackHeightMin = 0 },
		"jitter":            func(cfg *Config) { cfg.ColorJitter = 300 },
		"precision":         func(cfg *Config) { cfg.Precision = 3 },
	}
	for name, modify := range cases {
		cfg := DefaultConfig()
		modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Case '%s' must give validation error", name)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := DefaultConfig().String()
	for _, key := range []string{"origin: anchor", "recenter: bbox", "precision: 1"} {
		if !strings.Contains(str, key) {
			t.Errorf("Config representation must contain '%s', but got:\n%s", key, str)
		}
	}
}
