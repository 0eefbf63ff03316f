package osm2map

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// metersPerDegree is the flat-earth scale used by the projection. Valid for city-scale extents only
	metersPerDegree = 111139.0
	pi180           = math.Pi / 180.0
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// Point returns GeoPoint as orb.Point (X == Lon, Y == Lat)
func (gp GeoPoint) Point() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// project converts geodetic coordinates to the local planar frame around the origin.
// X grows to the east, Z grows to the south.
func project(lat, lon, originLat, originLon float64) (float64, float64) {
	x := (lon - originLon) * metersPerDegree * math.Cos(degreesToRadians(originLat))
	z := (originLat - lat) * metersPerDegree
	return x, z
}

// Projector converts between GeoPoint and local (x, z) meters around a fixed origin
type Projector struct {
	Origin GeoPoint
}

// NewProjector returns projector for given origin
func NewProjector(origin GeoPoint) Projector {
	return Projector{Origin: origin}
}

// Project returns local point for given geo point
func (p Projector) Project(gp GeoPoint) orb.Point {
	x, z := project(gp.Lat, gp.Lon, p.Origin.Lat, p.Origin.Lon)
	return orb.Point{x, z}
}

// Unproject is the inverse of Project
func (p Projector) Unproject(pt orb.Point) GeoPoint {
	lat := p.Origin.Lat - pt[1]/metersPerDegree
	lon := p.Origin.Lon
	scale := metersPerDegree * math.Cos(degreesToRadians(p.Origin.Lat))
	if scale != 0 {
		lon += pt[0] / scale
	}
	return GeoPoint{Lat: lat, Lon: lon}
}

// OriginPolicy defines how the projection origin is chosen for a run
type OriginPolicy uint16

const (
	ORIGIN_ANCHOR = OriginPolicy(iota + 1)
	ORIGIN_BBOX
	ORIGIN_FIXED
)

func (iotaIdx OriginPolicy) String() string {
	return [...]string{"anchor", "bbox", "fixed"}[iotaIdx-1]
}

var originPolicies = map[string]OriginPolicy{
	"anchor": ORIGIN_ANCHOR,
	"bbox":   ORIGIN_BBOX,
	"fixed":  ORIGIN_FIXED,
}

func parseOriginPolicy(str string) (OriginPolicy, error) {
	if policy, ok := originPolicies[str]; ok {
		return policy, nil
	}
	return 0, ErrUnknownOriginPolicy
}

// findOrigin picks projection origin among loaded points.
//
// ORIGIN_ANCHOR takes the first loaded point: outliers can't skew the frame, but the frame
// is biased toward that point. ORIGIN_BBOX takes the midpoint of the bounding box of all points.
func findOrigin(data *OSMDataRaw, policy OriginPolicy, fixed GeoPoint) (GeoPoint, error) {
	if len(data.nodesOrder) == 0 {
		return GeoPoint{}, ErrNoPoints
	}
	switch policy {
	case ORIGIN_ANCHOR:
		return data.nodes[data.nodesOrder[0]].Geom, nil
	case ORIGIN_BBOX:
		center := data.geoBound().Center()
		return GeoPoint{Lat: center.Lat(), Lon: center.Lon()}, nil
	case ORIGIN_FIXED:
		return fixed, nil
	default:
		return GeoPoint{}, ErrUnknownOriginPolicy
	}
}

// extentMeters returns great circle length of the diagonal of given geo bound
func extentMeters(bound orb.Bound) float64 {
	if bound.IsEmpty() {
		return 0
	}
	return geo.Distance(bound.Min, bound.Max)
}
