package osm2map

import (
	"github.com/paulmach/orb"
)

// RecenterPolicy defines reference point which is moved to (0, 0) after all entities are built
type RecenterPolicy uint16

const (
	RECENTER_BBOX = RecenterPolicy(iota + 1)
	RECENTER_CENTROID
)

func (iotaIdx RecenterPolicy) String() string {
	return [...]string{"bbox", "centroid"}[iotaIdx-1]
}

var recenterPolicies = map[string]RecenterPolicy{
	"bbox":     RECENTER_BBOX,
	"centroid": RECENTER_CENTROID,
}

func parseRecenterPolicy(str string) (RecenterPolicy, error) {
	if policy, ok := recenterPolicies[str]; ok {
		return policy, nil
	}
	return 0, ErrUnknownRecenterPolicy
}

// recenter translates every coordinate so the reference point of road nodes lands at (0, 0).
// Without road nodes every entity vertex is used. Empty map is not shifted.
// Returns applied shift
func (gm *GameMap) recenter(policy RecenterPolicy) orb.Point {
	pts := make([]orb.Point, 0, len(gm.Nodes))
	for _, node := range gm.Nodes {
		pts = append(pts, node.Geom)
	}
	if len(pts) == 0 {
		pts = gm.allVertices()
	}
	if len(pts) == 0 {
		return orb.Point{}
	}

	var center orb.Point
	switch policy {
	case RECENTER_CENTROID:
		center = findCentroid(pts)
	default:
		center = boundOf(pts).Center()
	}

	for _, node := range gm.Nodes {
		node.Geom = shiftPoint(node.Geom, center)
	}
	for _, building := range gm.Buildings {
		shiftRing(building.Polygon, center)
	}
	for _, area := range gm.Areas {
		shiftRing(area.Polygon, center)
	}
	for _, poi := range gm.POIs {
		poi.Geom = shiftPoint(poi.Geom, center)
	}
	gm.Shift = orb.Point{gm.Shift[0] + center[0], gm.Shift[1] + center[1]}
	return center
}

func shiftPoint(pt, shift orb.Point) orb.Point {
	return orb.Point{pt[0] - shift[0], pt[1] - shift[1]}
}

func shiftRing(ring orb.Ring, shift orb.Point) {
	for i := range ring {
		ring[i] = shiftPoint(ring[i], shift)
	}
}

type cullStats struct {
	edges     int
	nodes     int
	buildings int
	areas     int
	pois      int
}

// cull drops entities outside of radius around (0, 0). Zero radius disables culling.
//
// Edge is kept when either endpoint is inside (no clipping). Buildings and areas are kept when
// the mean of their vertices is inside. POIs use their own radius.
// Node table is compacted and edges are reindexed
func (gm *GameMap) cull(mapRadius, poiRadius float64) cullStats {
	stats := cullStats{}
	if mapRadius > 0 {
		stats.edges, stats.nodes = gm.cullRoads(mapRadius)

		buildings := make([]*Building, 0, len(gm.Buildings))
		for _, building := range gm.Buildings {
			if insideRadius(findCentroid(building.Polygon), mapRadius) {
				buildings = append(buildings, building)
			}
		}
		stats.buildings = len(gm.Buildings) - len(buildings)
		gm.Buildings = buildings

		areas := make([]*Area, 0, len(gm.Areas))
		for _, area := range gm.Areas {
			if insideRadius(findCentroid(area.Polygon), mapRadius) {
				areas = append(areas, area)
			}
		}
		stats.areas = len(gm.Areas) - len(areas)
		gm.Areas = areas
	}
	if poiRadius > 0 {
		stats.pois = gm.cullPOIs(poiRadius)
	}
	return stats
}

func (gm *GameMap) cullRoads(radius float64) (int, int) {
	edges := make([]*RoadEdge, 0, len(gm.Edges))
	used := make([]bool, len(gm.Nodes))
	for _, edge := range gm.Edges {
		if insideRadius(gm.Nodes[edge.Source].Geom, radius) || insideRadius(gm.Nodes[edge.Target].Geom, radius) {
			edges = append(edges, edge)
			used[edge.Source] = true
			used[edge.Target] = true
		}
	}

	reindex := make([]NetworkNodeID, len(gm.Nodes))
	nodes := make([]*NetworkNode, 0, len(gm.Nodes))
	for i, node := range gm.Nodes {
		if !used[i] {
			reindex[i] = -1
			continue
		}
		reindex[i] = NetworkNodeID(len(nodes))
		node.ID = reindex[i]
		nodes = append(nodes, node)
	}
	for _, edge := range edges {
		edge.Source = reindex[edge.Source]
		edge.Target = reindex[edge.Target]
	}

	culledEdges := len(gm.Edges) - len(edges)
	culledNodes := len(gm.Nodes) - len(nodes)
	gm.Edges = edges
	gm.Nodes = nodes
	return culledEdges, culledNodes
}

func (gm *GameMap) cullPOIs(radius float64) int {
	reindex := make([]int, len(gm.POIs))
	pois := make([]*POI, 0, len(gm.POIs))
	for i, poi := range gm.POIs {
		if !insideRadius(poi.Geom, radius) {
			reindex[i] = -1
			continue
		}
		reindex[i] = len(pois)
		pois = append(pois, poi)
	}
	for _, building := range gm.Buildings {
		if building.POI >= 0 {
			building.POI = reindex[building.POI]
		}
	}
	culled := len(gm.POIs) - len(pois)
	gm.POIs = pois
	return culled
}
