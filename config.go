package osm2map

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Color is RGB triple
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Config enumerates every knob of the conversion pipeline
type Config struct {
	// Projection origin: "anchor" (first loaded point), "bbox" (midpoint of all points) or "fixed"
	OriginPolicy string  `yaml:"origin"`
	OriginLat    float64 `yaml:"origin_lat"`
	OriginLon    float64 `yaml:"origin_lon"`
	// Final shift: "bbox" (midpoint of road nodes) or "centroid" (mean of road nodes)
	RecenterPolicy string `yaml:"recenter"`

	ExcludedRoads       []string           `yaml:"excluded_roads"`
	ExcludeServiceRoads bool               `yaml:"exclude_service_roads"`
	RoadWidths          map[string]float64 `yaml:"road_widths"`
	DefaultWidth        float64            `yaml:"default_width"`
	LaneWidth           float64            `yaml:"lane_width"`
	DefaultSpeed        int                `yaml:"default_speed"`
	DefaultLanes        int                `yaml:"default_lanes"`

	BuildingTolerance float64 `yaml:"building_tolerance"`
	NatureTolerance   float64 `yaml:"nature_tolerance"`
	MinBuildingArea   float64 `yaml:"min_building_area"`
	MinNatureArea     float64 `yaml:"min_nature_area"`
	// Polygons with less unique points than this are replaced by convex hull. 0 disables the hull
	HullThreshold int `yaml:"hull_threshold"`

	// Zero radius means no culling
	MapRadius float64 `yaml:"map_radius"`
	POIRadius float64 `yaml:"poi_radius"`

	POIMergeDistance float64  `yaml:"poi_merge_distance"`
	PlaceholderNames []string `yaml:"placeholder_names"`

	LevelHeight       float64 `yaml:"level_height"`
	FallbackHeightMin float64 `yaml:"fallback_height_min"`
	FallbackHeightMax float64 `yaml:"fallback_height_max"`
	BuildingColor     Color   `yaml:"building_color"`
	ColorJitter       int     `yaml:"color_jitter"`
	ParkColor         Color   `yaml:"park_color"`
	WaterColor        Color   `yaml:"water_color"`

	// Fractional digits of output coordinates: 1 or 2
	Precision int `yaml:"precision"`
}

// DefaultConfig returns configuration of the reference pipeline
func DefaultConfig() Config {
	return Config{
		OriginPolicy:        ORIGIN_ANCHOR.String(),
		RecenterPolicy:      RECENTER_BBOX.String(),
		ExcludedRoads:       defaultExcludedRoads(),
		ExcludeServiceRoads: false,
		RoadWidths:          defaultRoadWidths(),
		DefaultWidth:        DEFAULT_ROAD_WIDTH,
		LaneWidth:           DEFAULT_LANE_WIDTH,
		DefaultSpeed:        DEFAULT_SPEED,
		DefaultLanes:        DEFAULT_LANES,
		BuildingTolerance:   0.1,
		NatureTolerance:     10.0,
		MinBuildingArea:     2.0,
		MinNatureArea:       200.0,
		HullThreshold:       6,
		MapRadius:           0,
		POIRadius:           0,
		POIMergeDistance:    5.0,
		PlaceholderNames:    []string{"Unknown"},
		LevelHeight:         3.5,
		FallbackHeightMin:   8.0,
		FallbackHeightMax:   13.0,
		BuildingColor:       Color{R: 200, G: 200, B: 200},
		ColorJitter:         0,
		ParkColor:           Color{R: 50, G: 150, B: 50},
		WaterColor:          Color{R: 50, G: 100, B: 200},
		Precision:           1,
	}
}

// LoadConfig reads YAML file on top of DefaultConfig. Keys absent in file keep default values
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return cfg, errors.Wrapf(err, "Can't read config file '%s'", fname)
	}
	err = yaml.Unmarshal(bytes, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "Can't parse config file '%s'", fname)
	}
	err = cfg.Validate()
	if err != nil {
		return cfg, errors.Wrapf(err, "Bad config file '%s'", fname)
	}
	return cfg, nil
}

// Validate checks policy names and numeric ranges
func (cfg *Config) Validate() error {
	if _, err := parseOriginPolicy(cfg.OriginPolicy); err != nil {
		return errors.Wrapf(err, "'%s'", cfg.OriginPolicy)
	}
	if _, err := parseRecenterPolicy(cfg.RecenterPolicy); err != nil {
		return errors.Wrapf(err, "'%s'", cfg.RecenterPolicy)
	}
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"building_tolerance", cfg.BuildingTolerance},
		{"nature_tolerance", cfg.NatureTolerance},
		{"min_building_area", cfg.MinBuildingArea},
		{"min_nature_area", cfg.MinNatureArea},
		{"map_radius", cfg.MapRadius},
		{"poi_radius", cfg.POIRadius},
		{"poi_merge_distance", cfg.POIMergeDistance},
		{"hull_threshold", float64(cfg.HullThreshold)},
		{"color_jitter", float64(cfg.ColorJitter)},
	}
	for _, field := range nonNegative {
		if field.value < 0 {
			return errors.Errorf("'%s' must not be negative, but got %v", field.name, field.value)
		}
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"default_width", cfg.DefaultWidth},
		{"lane_width", cfg.LaneWidth},
		{"default_speed", float64(cfg.DefaultSpeed)},
		{"default_lanes", float64(cfg.DefaultLanes)},
		{"level_height", cfg.LevelHeight},
		{"fallback_height_min", cfg.FallbackHeightMin},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return errors.Errorf("'%s' must be positive, but got %v", field.name, field.value)
		}
	}
	for highway, width := range cfg.RoadWidths {
		if width <= 0 {
			return errors.Errorf("width of '%s' must be positive, but got %v", highway, width)
		}
	}
	if cfg.FallbackHeightMax < cfg.FallbackHeightMin {
		return errors.Errorf("'fallback_height_max' (%v) must not be less than 'fallback_height_min' (%v)", cfg.FallbackHeightMax, cfg.FallbackHeightMin)
	}
	if cfg.ColorJitter > 255 {
		return errors.Errorf("'color_jitter' must not exceed 255, but got %d", cfg.ColorJitter)
	}
	if cfg.Precision != 1 && cfg.Precision != 2 {
		return errors.Errorf("'precision' must be 1 or 2, but got %d", cfg.Precision)
	}
	return nil
}

// String returns YAML representation of configuration
func (cfg Config) String() string {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return strings.TrimSpace(string(bytes))
}

func (cfg *Config) excludedRoadsSet() map[string]struct{} {
	set := make(map[string]struct{}, len(cfg.ExcludedRoads)+1)
	for _, highway := range cfg.ExcludedRoads {
		set[highway] = struct{}{}
	}
	if cfg.ExcludeServiceRoads {
		set[HIGHWAY_SERVICE.String()] = struct{}{}
	}
	return set
}

func (cfg *Config) roadWidth(highway string) float64 {
	if width, ok := cfg.RoadWidths[highway]; ok {
		return width
	}
	return cfg.DefaultWidth
}
