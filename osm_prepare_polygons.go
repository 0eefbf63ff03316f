package osm2map

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

func (builder *mapBuilder) preparePolygons() {
	st := time.Now()
	for _, way := range builder.data.ways {
		switch way.kind {
		case WAY_BUILDING:
			builder.extractBuilding(way)
		case WAY_AREA:
			builder.extractArea(way)
		}
	}
	builder.logger.Info("Done preparing polygons",
		zap.Int("buildings", len(builder.gm.Buildings)),
		zap.Int("areas", len(builder.gm.Areas)),
		zap.Int("degenerate", builder.stats.DegeneratePolygons),
		zap.Int("too_small", builder.stats.SmallPolygons),
		zap.Duration("took", time.Since(st)),
	)
}

// wayPolygon repairs, filters by area and simplifies polygon of given way.
// Area equal to minArea is kept unless strictArea is set.
// Returns false when the polygon must be dropped
func (builder *mapBuilder) wayPolygon(way *WayData, tolerance, minArea float64, strictArea bool) (orb.Ring, bool) {
	pts := make([]orb.Point, 0, len(way.Nodes))
	for _, ref := range way.Nodes {
		node, ok := builder.resolve(ref)
		if !ok {
			builder.stats.DanglingRefs++
			continue
		}
		pts = append(pts, node.local)
	}
	ring := repairPolygon(pts, builder.cfg.HullThreshold)
	if len(ring) < 3 {
		builder.stats.DegeneratePolygons++
		return nil, false
	}
	area := polygonArea(ring)
	if area < minArea || (strictArea && area == minArea) {
		builder.stats.SmallPolygons++
		builder.logger.Debug("Polygon is too small",
			zap.Int64("way_id", int64(way.ID)),
			zap.Float64("area", area),
			zap.String("wkt", polygonWKT(ring)),
		)
		return nil, false
	}
	simplified := orb.Ring(simplifyRadial(ring, tolerance))
	if len(simplified) < 3 {
		builder.stats.DegeneratePolygons++
		builder.logger.Debug("Polygon degenerated after simplification",
			zap.Int64("way_id", int64(way.ID)),
			zap.String("wkt", polygonWKT(ring)),
		)
		return nil, false
	}
	return simplified, true
}

func (builder *mapBuilder) extractBuilding(way *WayData) {
	ring, ok := builder.wayPolygon(way, builder.cfg.BuildingTolerance, builder.cfg.MinBuildingArea, false)
	if !ok {
		return
	}
	building := &Building{
		WayID:   way.ID,
		Height:  builder.buildingHeight(way),
		Color:   builder.buildingColor(way),
		Polygon: ring,
		POI:     -1,
	}
	builder.gm.Buildings = append(builder.gm.Buildings, building)
	if way.poiType != POI_NONE {
		building.POI = builder.offerPOI(way.poiType, findCentroid(ring), way.name)
	}
}

func (builder *mapBuilder) extractArea(way *WayData) {
	ring, ok := builder.wayPolygon(way, builder.cfg.NatureTolerance, builder.cfg.MinNatureArea, true)
	if !ok {
		return
	}
	color := builder.cfg.ParkColor
	if way.areaType == AREA_WATER {
		color = builder.cfg.WaterColor
	}
	builder.gm.Areas = append(builder.gm.Areas, &Area{
		WayID:   way.ID,
		Type:    way.areaType,
		Color:   color,
		Polygon: ring,
	})
}

// buildingHeight takes `building:levels`, then `height`, then a pseudo-random value from
// fallback range. Fallback is seeded by way ID so reruns give the same map
func (builder *mapBuilder) buildingHeight(way *WayData) float64 {
	if way.levels > 0 {
		return way.levels * builder.cfg.LevelHeight
	}
	if way.height > 0 {
		return way.height
	}
	seed := xxhash.Sum64String(strconv.FormatInt(int64(way.ID), 10))
	frac := float64(seed%10000) / 10000.0
	return builder.cfg.FallbackHeightMin + frac*(builder.cfg.FallbackHeightMax-builder.cfg.FallbackHeightMin)
}

// buildingColor returns configured color brightened by jitter seeded from the first reference
func (builder *mapBuilder) buildingColor(way *WayData) Color {
	color := builder.cfg.BuildingColor
	if builder.cfg.ColorJitter <= 0 || len(way.Nodes) == 0 {
		return color
	}
	seed := xxhash.Sum64String(strconv.FormatInt(int64(way.Nodes[0]), 10))
	jitter := int(seed % uint64(builder.cfg.ColorJitter))
	return Color{
		R: addChannel(color.R, jitter),
		G: addChannel(color.G, jitter),
		B: addChannel(color.B, jitter),
	}
}

func addChannel(channel uint8, delta int) uint8 {
	value := int(channel) + delta
	if value > 255 {
		return 255
	}
	return uint8(value)
}
