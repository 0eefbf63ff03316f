package osm2map

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

func TestDedupPoints(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {1, 0}, {0, 0}}
	unique := dedupPoints(pts)
	correct := []orb.Point{{0, 0}, {1, 0}, {1, 1}}
	if len(unique) != len(correct) {
		t.Errorf("Unique points must be %v, but got %v", correct, unique)
		return
	}
	for i := range correct {
		if unique[i] != correct[i] {
			t.Errorf("Point #%d must be %v, but got %v", i, correct[i], unique[i])
		}
	}
}

func TestConvexHullSquare(t *testing.T) {
	// Clockwise square with an inner point and a collinear one
	pts := []orb.Point{{0, 0}, {0, 10}, {5, 10}, {10, 10}, {10, 0}, {4, 4}}
	hull := convexHull(pts)
	correct := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if len(hull) != len(correct) {
		t.Errorf("Hull must be %v, but got %v", correct, hull)
		return
	}
	for i := range correct {
		if hull[i] != correct[i] {
			t.Errorf("Hull point #%d must be %v, but got %v", i, correct[i], hull[i])
		}
	}
}

func TestConvexHullInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for iter := 0; iter < 50; iter++ {
		n := 3 + rnd.Intn(40)
		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = orb.Point{float64(rnd.Intn(200) - 100), float64(rnd.Intn(200) - 100)}
		}
		unique := dedupPoints(pts)
		hull := convexHull(unique)

		input := make(map[orb.Point]struct{}, len(unique))
		for _, pt := range unique {
			input[pt] = struct{}{}
		}
		for _, pt := range hull {
			if _, ok := input[pt]; !ok {
				t.Errorf("Iteration %d: hull vertex %v is not an input point", iter, pt)
			}
		}
		if len(hull) < 3 {
			// All points are collinear
			continue
		}
		if signedArea(hull) <= 0 {
			t.Errorf("Iteration %d: hull must be counter-clockwise, but got area %f", iter, signedArea(hull))
		}
		for _, pt := range unique {
			for i := range hull {
				a := hull[i]
				b := hull[(i+1)%len(hull)]
				if cross(a, b, pt) < 0 {
					t.Errorf("Iteration %d: point %v lies outside of hull edge %v-%v", iter, pt, a, b)
				}
			}
		}
	}
}

func TestRepairPolygonHullBelowThreshold(t *testing.T) {
	// Self-intersecting "bow tie"
	pts := []orb.Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}, {0, 0}}
	ring := repairPolygon(pts, 6)
	if len(ring) != 4 {
		t.Errorf("Repaired polygon must have %d points, but got %v", 4, ring)
		return
	}
	if polygonArea(ring) != 100 {
		t.Errorf("Area must be %f, but got %f", 100.0, polygonArea(ring))
	}
	if signedArea(ring) <= 0 {
		t.Errorf("Repaired polygon must be counter-clockwise")
	}
}

func TestRepairPolygonPassThrough(t *testing.T) {
	// Clockwise concave "L" of 6 points: kept as is, but re-oriented
	pts := []orb.Point{{0, 0}, {0, 10}, {5, 10}, {5, 5}, {10, 5}, {10, 0}, {0, 0}}
	ring := repairPolygon(pts, 6)
	if len(ring) != 6 {
		t.Errorf("Polygon must keep %d points, but got %v", 6, ring)
		return
	}
	if polygonArea(ring) != 75 {
		t.Errorf("Concave area must be kept (%f), but got %f", 75.0, polygonArea(ring))
	}
	if signedArea(ring) <= 0 {
		t.Errorf("Polygon must be re-oriented counter-clockwise")
	}

	// Same polygon with hull enabled for it: the inner corner (5, 5) is cut off
	hull := repairPolygon(pts, 7)
	if len(hull) != 5 {
		t.Errorf("Hull must have %d points, but got %v", 5, hull)
	}
	if polygonArea(hull) != 87.5 {
		t.Errorf("Hull area must be %f, but got %f", 87.5, polygonArea(hull))
	}
	input := make(map[orb.Point]struct{}, len(pts))
	for _, pt := range pts {
		input[pt] = struct{}{}
	}
	for _, pt := range hull {
		if _, ok := input[pt]; !ok {
			t.Errorf("Hull vertex %v is not an input point", pt)
		}
		if pt == (orb.Point{5, 5}) {
			t.Errorf("Concave vertex %v must not be on the hull", pt)
		}
	}

	// Zero threshold disables hull even for a triangle
	triangle := []orb.Point{{0, 0}, {0, 10}, {10, 0}}
	ring = repairPolygon(triangle, 0)
	if ring[0] != triangle[2] || signedArea(ring) <= 0 {
		t.Errorf("Triangle must be reversed to counter-clockwise order, but got %v", ring)
	}
}

func TestRepairPolygonDegenerate(t *testing.T) {
	ring := repairPolygon([]orb.Point{{0, 0}, {1, 1}, {0, 0}, {1, 1}}, 6)
	if len(ring) >= 3 {
		t.Errorf("Polygon of two unique points must be degenerate, but got %v", ring)
	}
	ring = repairPolygon([]orb.Point{{0, 0}, {1, 1}, {2, 2}}, 6)
	if len(ring) >= 3 {
		t.Errorf("Collinear points must give degenerate hull, but got %v", ring)
	}
}
