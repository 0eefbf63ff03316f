package osm2map

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// findDistance returns Euclidean distance between two local points
func findDistance(p, q orb.Point) float64 {
	return planar.Distance(p, q)
}

// insideRadius reports whether point is within radius of the local origin (boundary included)
func insideRadius(p orb.Point, radius float64) bool {
	return p[0]*p[0]+p[1]*p[1] <= radius*radius
}

// signedArea returns signed area of polygon (shoelace formula). Closing edge is implicit.
// Positive value means counter-clockwise order in (x, z) axes
func signedArea(pts []orb.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return sum / 2.0
}

// polygonArea returns absolute area of polygon
func polygonArea(pts []orb.Point) float64 {
	return math.Abs(signedArea(pts))
}

// findCentroid returns mean of given points (not the area centroid)
func findCentroid(pts []orb.Point) orb.Point {
	if len(pts) == 0 {
		return orb.Point{}
	}
	x, z := 0.0, 0.0
	for _, pt := range pts {
		x += pt[0]
		z += pt[1]
	}
	n := float64(len(pts))
	return orb.Point{x / n, z / n}
}

// boundOf returns bounding box for given points. Empty input gives empty bound
func boundOf(pts []orb.Point) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{-1, -1}}
	}
	bound := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		bound = bound.Extend(pt)
	}
	return bound
}

// simplifyRadial drops every point that is not farther than tolerance from the last
// retained one. First and last points are always kept; less than 3 points pass through.
// Returns new slice, input is not modified
func simplifyRadial(pts []orb.Point, tolerance float64) []orb.Point {
	if len(pts) < 3 {
		return copyLine(pts)
	}
	line := orb.LineString(copyLine(pts))
	return []orb.Point(simplify.Radial(planar.Distance, tolerance).LineString(line))
}

// copyLine returns copy of given points
func copyLine(pts []orb.Point) []orb.Point {
	output := make([]orb.Point, len(pts))
	copy(output, pts)
	return output
}

// reverseLine reverses order of points in given line. Returns new slice
func reverseLine(pts []orb.Point) []orb.Point {
	inputLen := len(pts)
	output := make([]orb.Point, inputLen)
	for i, n := range pts {
		j := inputLen - i - 1
		output[j] = n
	}
	return output
}
