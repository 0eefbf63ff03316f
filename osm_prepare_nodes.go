package osm2map

import (
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// preparePOIs offers tagged standalone points in load order. Must run after buildings so
// building POIs win over nearby standalone ones
func (builder *mapBuilder) preparePOIs() {
	st := time.Now()
	for _, id := range builder.data.nodesOrder {
		node := builder.data.nodes[id]
		poiType := poiTypeFromTags(node.Tags)
		if poiType == POI_NONE {
			continue
		}
		builder.offerPOI(poiType, node.local, poiNameFromTags(node.Tags))
	}
	builder.logger.Info("Done preparing POIs",
		zap.Int("candidates", builder.stats.POICandidates),
		zap.Int("rejected", builder.stats.POIRejected),
		zap.Int("duplicates", builder.stats.POIDuplicates),
		zap.Int("pois", len(builder.dedup.POIs())),
		zap.Duration("took", time.Since(st)),
	)
}

func (builder *mapBuilder) offerPOI(poiType POIType, pt orb.Point, name string) int {
	builder.stats.POICandidates++
	idx, verdict := builder.dedup.Offer(poiType, pt, name)
	switch verdict {
	case POI_DUPLICATE:
		builder.stats.POIDuplicates++
	case POI_REJECTED_CATEGORY, POI_REJECTED_NAME:
		builder.stats.POIRejected++
	}
	return idx
}
