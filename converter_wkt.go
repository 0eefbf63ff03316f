package osm2map

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// closedRing returns copy of ring with the first point repeated at the end
func closedRing(ring orb.Ring) orb.Ring {
	closed := make(orb.Ring, 0, len(ring)+1)
	closed = append(closed, ring...)
	if len(ring) > 0 && !ring.Closed() {
		closed = append(closed, ring[0])
	}
	return closed
}

// polygonWKT returns WKT representation of local polygon
func polygonWKT(ring orb.Ring) string {
	return wkt.MarshalString(orb.Polygon{closedRing(ring)})
}

// edgeWKT returns WKT representation of local edge
func edgeWKT(source, target orb.Point) string {
	return wkt.MarshalString(orb.LineString{source, target})
}
