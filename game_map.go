package osm2map

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Building is an extruded footprint
type Building struct {
	WayID   osm.WayID
	Height  float64
	Color   Color
	Polygon orb.Ring
	// Index of co-located POI or -1
	POI int
}

// Area is a flat nature polygon
type Area struct {
	WayID   osm.WayID
	Type    AreaType
	Color   Color
	Polygon orb.Ring
}

// GameMap owns final entity collections. Edges address Nodes by index
type GameMap struct {
	Nodes     []*NetworkNode
	Edges     []*RoadEdge
	Buildings []*Building
	Areas     []*Area
	POIs      []*POI

	// Projection origin
	Origin GeoPoint
	// Translation subtracted from every coordinate by recentering
	Shift orb.Point
	Stats RunStats
}

func newGameMap(origin GeoPoint) *GameMap {
	return &GameMap{
		Nodes:     make([]*NetworkNode, 0),
		Edges:     make([]*RoadEdge, 0),
		Buildings: make([]*Building, 0),
		Areas:     make([]*Area, 0),
		POIs:      make([]*POI, 0),
		Origin:    origin,
	}
}

// Projector returns projector which maps final coordinates back to geodetic ones with Unproject
func (gm *GameMap) Projector() Projector {
	return NewProjector(gm.Origin)
}

// Unproject converts final (recentered) coordinates to geodetic ones
func (gm *GameMap) Unproject(pt orb.Point) GeoPoint {
	return gm.Projector().Unproject(orb.Point{pt[0] + gm.Shift[0], pt[1] + gm.Shift[1]})
}

// allVertices returns every entity vertex: nodes, polygon vertices and POI positions
func (gm *GameMap) allVertices() []orb.Point {
	pts := make([]orb.Point, 0, len(gm.Nodes)+len(gm.POIs))
	for _, node := range gm.Nodes {
		pts = append(pts, node.Geom)
	}
	for _, building := range gm.Buildings {
		pts = append(pts, building.Polygon...)
	}
	for _, area := range gm.Areas {
		pts = append(pts, area.Polygon...)
	}
	for _, poi := range gm.POIs {
		pts = append(pts, poi.Geom)
	}
	return pts
}
