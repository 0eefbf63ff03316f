package osm2map

import (
	"github.com/paulmach/osm"
)

// RoadEdge connects two entries of the node table. Directed only when Oneway is set
type RoadEdge struct {
	Source     NetworkNodeID
	Target     NetworkNodeID
	Width      float64
	Oneway     bool
	SpeedLimit int
	Lanes      int
	WayID      osm.WayID
}

// lengthMeters returns planar length of the edge
func (edge *RoadEdge) lengthMeters(nodes []*NetworkNode) float64 {
	return findDistance(nodes[edge.Source].Geom, nodes[edge.Target].Geom)
}
