package osm2map

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunStats holds data quality counters of a single conversion
type RunStats struct {
	Ways         int
	RoadWays     int
	ExcludedWays int
	// Contiguous runs of resolvable points which produced edges
	RoadSegments int
	// Road ways with at least one missing point
	BrokenRoads     int
	DanglingRefs    int
	Edges           int
	DegenerateEdges int
	Nodes           int

	Buildings          int
	Areas              int
	DegeneratePolygons int
	SmallPolygons      int

	POICandidates int
	POIRejected   int
	POIDuplicates int
	POIs          int

	CulledEdges     int
	CulledNodes     int
	CulledBuildings int
	CulledAreas     int
	CulledPOIs      int

	TagFailures   int
	UnknownOneway int
	// Great circle length of input bounding box diagonal
	ExtentMeters float64
}

// Counters returns counters keyed by snake_case name
func (stats *RunStats) Counters() map[string]float64 {
	return map[string]float64{
		"ways":                float64(stats.Ways),
		"road_ways":           float64(stats.RoadWays),
		"excluded_ways":       float64(stats.ExcludedWays),
		"road_segments":       float64(stats.RoadSegments),
		"broken_roads":        float64(stats.BrokenRoads),
		"dangling_refs":       float64(stats.DanglingRefs),
		"edges":               float64(stats.Edges),
		"degenerate_edges":    float64(stats.DegenerateEdges),
		"nodes":               float64(stats.Nodes),
		"buildings":           float64(stats.Buildings),
		"areas":               float64(stats.Areas),
		"degenerate_polygons": float64(stats.DegeneratePolygons),
		"small_polygons":      float64(stats.SmallPolygons),
		"poi_candidates":      float64(stats.POICandidates),
		"poi_rejected":        float64(stats.POIRejected),
		"poi_duplicates":      float64(stats.POIDuplicates),
		"pois":                float64(stats.POIs),
		"culled_edges":        float64(stats.CulledEdges),
		"culled_nodes":        float64(stats.CulledNodes),
		"culled_buildings":    float64(stats.CulledBuildings),
		"culled_areas":        float64(stats.CulledAreas),
		"culled_pois":         float64(stats.CulledPOIs),
		"tag_failures":        float64(stats.TagFailures),
		"unknown_oneway":      float64(stats.UnknownOneway),
		"extent_meters":       stats.ExtentMeters,
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (stats *RunStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for name, value := range stats.Counters() {
		enc.AddFloat64(name, value)
	}
	return nil
}

func (stats *RunStats) zapField() zap.Field {
	return zap.Object("stats", stats)
}
