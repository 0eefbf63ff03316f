package osm2map

import (
	"time"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// mapBuilder is the single owner of every collection built during a run
type mapBuilder struct {
	cfg      *Config
	logger   *zap.Logger
	data     *OSMDataRaw
	excluded map[string]struct{}

	table *NodeTable
	dedup *POIDeduplicator
	gm    *GameMap
	stats *RunStats
}

func newMapBuilder(data *OSMDataRaw, cfg *Config, logger *zap.Logger, origin GeoPoint) *mapBuilder {
	data.project(NewProjector(origin))
	gm := newGameMap(origin)
	return &mapBuilder{
		cfg:      cfg,
		logger:   logger,
		data:     data,
		excluded: cfg.excludedRoadsSet(),
		table:    newNodeTable(),
		dedup:    NewPOIDeduplicator(data.localBound(), cfg.POIMergeDistance, cfg.PlaceholderNames),
		gm:       gm,
		stats:    &gm.Stats,
	}
}

// resolve returns loaded point for given reference
func (builder *mapBuilder) resolve(id osm.NodeID) (*Node, bool) {
	node, ok := builder.data.nodes[id]
	return node, ok
}

func (builder *mapBuilder) prepareTags() {
	st := time.Now()
	for _, way := range builder.data.ways {
		way.processTags(builder.logger)
		builder.stats.TagFailures += way.tagFailures
		if way.onewayUnknown {
			builder.stats.UnknownOneway++
		}
	}
	builder.stats.Ways = len(builder.data.ways)
	builder.logger.Info("Done preparing tags",
		zap.Int("ways", builder.stats.Ways),
		zap.Int("tag_failures", builder.stats.TagFailures),
		zap.Duration("took", time.Since(st)),
	)
}

// finish moves collections into the game map, recenters and culls it
func (builder *mapBuilder) finish(policy RecenterPolicy) *GameMap {
	st := time.Now()
	gm := builder.gm
	gm.Nodes = builder.table.Nodes()
	gm.POIs = builder.dedup.POIs()

	shift := gm.recenter(policy)
	culled := gm.cull(builder.cfg.MapRadius, builder.cfg.POIRadius)

	stats := builder.stats
	stats.CulledEdges = culled.edges
	stats.CulledNodes = culled.nodes
	stats.CulledBuildings = culled.buildings
	stats.CulledAreas = culled.areas
	stats.CulledPOIs = culled.pois
	stats.Nodes = len(gm.Nodes)
	stats.Edges = len(gm.Edges)
	stats.Buildings = len(gm.Buildings)
	stats.Areas = len(gm.Areas)
	stats.POIs = len(gm.POIs)
	stats.ExtentMeters = extentMeters(builder.data.geoBound())

	builder.logger.Info("Done recentering and culling",
		zap.String("recenter", policy.String()),
		zap.Float64("shift_x", shift[0]),
		zap.Float64("shift_z", shift[1]),
		zap.Int("culled_edges", culled.edges),
		zap.Int("culled_buildings", culled.buildings),
		zap.Int("culled_areas", culled.areas),
		zap.Int("culled_pois", culled.pois),
		zap.Duration("took", time.Since(st)),
	)
	return gm
}
