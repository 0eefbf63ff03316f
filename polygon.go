package osm2map

import (
	"sort"

	"github.com/paulmach/orb"
)

// dedupPoints removes repeated points by value keeping the first occurrence.
// Closing point of a closed way is removed as well
func dedupPoints(pts []orb.Point) []orb.Point {
	seen := make(map[orb.Point]struct{}, len(pts))
	output := make([]orb.Point, 0, len(pts))
	for _, pt := range pts {
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}
		output = append(output, pt)
	}
	return output
}

// cross returns z-component of (a - o) x (b - o). Positive means counter-clockwise turn
func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// convexHull returns convex hull of given points in counter-clockwise order (monotone chain).
// Collinear points are dropped. Input must not contain duplicates
func convexHull(pts []orb.Point) orb.Ring {
	n := len(pts)
	if n < 3 {
		return orb.Ring(copyLine(pts))
	}
	sorted := copyLine(pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	lower := make([]orb.Point, 0, n)
	for _, pt := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]orb.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		pt := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	hull := make(orb.Ring, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// repairPolygon turns raw way points into polygon with a single consistent boundary.
//
// Below hullThreshold (deduplicated) points the polygon is replaced by its convex hull:
// concave footprints are flattened to their envelope. At or above the threshold the raw
// order is kept and only the winding is normalized to counter-clockwise.
// hullThreshold <= 0 disables the hull.
//
// Result may have less than 3 points: callers must drop such polygons
func repairPolygon(pts []orb.Point, hullThreshold int) orb.Ring {
	unique := dedupPoints(pts)
	if len(unique) < 3 {
		return orb.Ring(unique)
	}
	if len(unique) < hullThreshold {
		return convexHull(unique)
	}
	if signedArea(unique) < 0 {
		return orb.Ring(reverseLine(unique))
	}
	return orb.Ring(unique)
}
