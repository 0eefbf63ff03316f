package osm2map

import (
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// WayKind is the role of a way in the game map
type WayKind uint16

const (
	WAY_OTHER = WayKind(iota)
	WAY_ROAD
	WAY_BUILDING
	WAY_AREA
)

func (iotaIdx WayKind) String() string {
	return [...]string{"other", "road", "building", "area"}[iotaIdx]
}

type WayData struct {
	ID     osm.WayID
	Nodes  []osm.NodeID
	TagMap osm.Tags

	kind     WayKind
	highway  string
	junction string
	name     string
	areaType AreaType
	poiType  POIType

	// Parsed numeric tags. Negative value means absent or unparseable
	lanes    int
	maxSpeed int
	width    float64
	levels   float64
	height   float64

	Oneway        bool
	IsReversed    bool
	onewayUnknown bool
	tagFailures   int
}

func newWayData(id osm.WayID, nodes []osm.NodeID, tags osm.Tags) *WayData {
	way := &WayData{
		ID:     id,
		Nodes:  make([]osm.NodeID, len(nodes)),
		TagMap: make(osm.Tags, len(tags)),
	}
	copy(way.Nodes, nodes)
	copy(way.TagMap, tags)
	return way
}

// processTags flattens tags into typed fields. Unparseable values are logged and counted
func (way *WayData) processTags(logger *zap.Logger) {
	way.lanes = -1
	way.maxSpeed = -1
	way.width = -1
	way.levels = -1
	way.height = -1
	way.tagFailures = 0

	way.highway = way.TagMap.Find("highway")
	way.junction = way.TagMap.Find("junction")
	way.poiType = poiTypeFromTags(way.TagMap)
	way.name = poiNameFromTags(way.TagMap)
	way.kind = classifyWay(way.TagMap)
	if way.kind == WAY_AREA {
		way.areaType, _ = areaTypeFromTags(way.TagMap)
	}

	switch way.kind {
	case WAY_ROAD:
		way.processOneway(logger)
		way.lanes = way.parseIntTag(logger, "lanes", parseLanes)
		way.maxSpeed = way.parseIntTag(logger, "maxspeed", parseSpeed)
		way.width = way.parseFloatTag(logger, "width", parseLength)
	case WAY_BUILDING:
		way.levels = way.parseFloatTag(logger, "building:levels", parseLevels)
		way.height = way.parseFloatTag(logger, "height", parseLength)
	}
}

func (way *WayData) processOneway(logger *zap.Logger) {
	way.Oneway = false
	way.IsReversed = false
	way.onewayUnknown = false
	onewayText := way.TagMap.Find("oneway")
	if onewayText == "" {
		if _, ok := junctionTypes[way.junction]; ok {
			way.Oneway = true
		}
		return
	}
	oneway, reversed, known := parseOneway(onewayText)
	if !known {
		way.onewayUnknown = true
		logger.Debug("Unhandled `oneway` tag value", zap.String("value", onewayText), zap.Int64("way_id", int64(way.ID)))
		return
	}
	way.Oneway = oneway
	way.IsReversed = reversed
}

func (way *WayData) parseIntTag(logger *zap.Logger, key string, parse func(string) (int, error)) int {
	text := way.TagMap.Find(key)
	if text == "" {
		return -1
	}
	value, err := parse(text)
	if err != nil {
		way.tagFailures++
		logger.Debug("Can't parse tag", zap.String("key", key), zap.Int64("way_id", int64(way.ID)), zap.Error(err))
		return -1
	}
	return value
}

func (way *WayData) parseFloatTag(logger *zap.Logger, key string, parse func(string) (float64, error)) float64 {
	text := way.TagMap.Find(key)
	if text == "" {
		return -1
	}
	value, err := parse(text)
	if err != nil {
		way.tagFailures++
		logger.Debug("Can't parse tag", zap.String("key", key), zap.Int64("way_id", int64(way.ID)), zap.Error(err))
		return -1
	}
	return value
}

// classifyWay picks a single role per way: road first, then building, then nature area
func classifyWay(tags osm.Tags) WayKind {
	if tags.Find("highway") != "" && tags.Find("area") != "yes" {
		return WAY_ROAD
	}
	for _, key := range buildingKeys {
		if value := tags.Find(key); value != "" && value != "no" {
			return WAY_BUILDING
		}
	}
	if _, ok := buildingBarriers[tags.Find("barrier")]; ok {
		return WAY_BUILDING
	}
	if _, ok := areaTypeFromTags(tags); ok {
		return WAY_AREA
	}
	return WAY_OTHER
}

// orderedNodes returns references in travel direction
func (way *WayData) orderedNodes() []osm.NodeID {
	if way.IsReversed {
		reversed := make([]osm.NodeID, len(way.Nodes))
		for i, id := range way.Nodes {
			reversed[len(way.Nodes)-i-1] = id
		}
		return reversed
	}
	return way.Nodes
}
