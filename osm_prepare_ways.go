package osm2map

import (
	"time"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

func (builder *mapBuilder) prepareRoads() {
	st := time.Now()
	for _, way := range builder.data.ways {
		if way.kind != WAY_ROAD {
			continue
		}
		builder.stats.RoadWays++
		// Ignore ways of excluded types
		if _, ok := builder.excluded[way.highway]; ok {
			builder.stats.ExcludedWays++
			continue
		}
		builder.extractRoad(way)
	}
	builder.logger.Info("Done preparing roads",
		zap.Int("road_ways", builder.stats.RoadWays),
		zap.Int("excluded", builder.stats.ExcludedWays),
		zap.Int("edges", len(builder.gm.Edges)),
		zap.Int("nodes", builder.table.Len()),
		zap.Int("dangling_refs", builder.stats.DanglingRefs),
		zap.Duration("took", time.Since(st)),
	)
}

// roadAttributes returns width, speed limit and lanes number.
//
// Width layers: type default, then lanes number times lane width, then explicit `width` tag.
// Every layer overrides previous one only if it is present and valid
func (builder *mapBuilder) roadAttributes(way *WayData) (float64, int, int) {
	width := builder.cfg.roadWidth(way.highway)
	lanes := builder.cfg.DefaultLanes
	if way.lanes > 0 {
		lanes = way.lanes
		width = float64(way.lanes) * builder.cfg.LaneWidth
	}
	if way.width > 0 {
		width = way.width
	}
	speed := builder.cfg.DefaultSpeed
	if way.maxSpeed > 0 {
		speed = way.maxSpeed
	}
	return width, speed, lanes
}

func (builder *mapBuilder) extractRoad(way *WayData) {
	width, speed, lanes := builder.roadAttributes(way)
	runs, dangling := salvageSegments(way.orderedNodes(), builder.resolve)
	if dangling > 0 {
		builder.stats.DanglingRefs += dangling
		builder.stats.BrokenRoads++
		builder.logger.Debug("Road references missing points",
			zap.Int64("way_id", int64(way.ID)),
			zap.Int("dangling", dangling),
			zap.Int("salvaged_runs", len(runs)),
		)
	}
	for _, run := range runs {
		builder.stats.RoadSegments++
		ids := make([]NetworkNodeID, len(run))
		for i, node := range run {
			ids[i] = builder.table.register(node)
		}
		nodes := builder.table.Nodes()
		for i := 1; i < len(ids); i++ {
			source, target := ids[i-1], ids[i]
			if source == target || nodes[source].Geom == nodes[target].Geom {
				builder.stats.DegenerateEdges++
				builder.logger.Debug("Zero-length edge",
					zap.Int64("way_id", int64(way.ID)),
					zap.String("wkt", edgeWKT(nodes[source].Geom, nodes[target].Geom)),
				)
				continue
			}
			builder.gm.Edges = append(builder.gm.Edges, &RoadEdge{
				Source:     source,
				Target:     target,
				Width:      width,
				Oneway:     way.Oneway,
				SpeedLimit: speed,
				Lanes:      lanes,
				WayID:      way.ID,
			})
		}
	}
}

// salvageSegments splits references into maximal runs of resolvable points. Missing points
// break the run. Runs of less than 2 points are dropped.
// Returns runs and number of missing references
func salvageSegments(refs []osm.NodeID, resolve func(osm.NodeID) (*Node, bool)) ([][]*Node, int) {
	runs := make([][]*Node, 0, 1)
	dangling := 0
	current := make([]*Node, 0, len(refs))
	flush := func() {
		if len(current) > 1 {
			runs = append(runs, current)
		}
		current = make([]*Node, 0, len(refs))
	}
	for _, ref := range refs {
		node, ok := resolve(ref)
		if !ok {
			dangling++
			flush()
			continue
		}
		current = append(current, node)
	}
	flush()
	return runs, dangling
}
