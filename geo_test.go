package osm2map

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func TestProjectOrigin(t *testing.T) {
	origins := []GeoPoint{
		{Lat: 55.751849391735284, Lon: 37.6417350769043},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 0, Lon: 0},
	}
	for _, origin := range origins {
		x, z := project(origin.Lat, origin.Lon, origin.Lat, origin.Lon)
		if x != 0 || z != 0 {
			t.Errorf("Origin %s must be projected to (0, 0), but got (%v, %v)", origin, x, z)
		}
	}
}

func TestProjectAxes(t *testing.T) {
	projector := NewProjector(GeoPoint{Lat: 60, Lon: 30})
	north := projector.Project(GeoPoint{Lat: 60.001, Lon: 30})
	if math.Abs(north[1]-(-111.139)) > 1e-6 || north[0] != 0 {
		t.Errorf("Point to the north must be (0, %f), but got %v", -111.139, north)
	}
	east := projector.Project(GeoPoint{Lat: 60, Lon: 30.001})
	// cos(60) == 0.5
	if math.Abs(east[0]-55.5695) > 1e-6 || east[1] != 0 {
		t.Errorf("Point to the east must be (%f, 0), but got %v", 55.5695, east)
	}
}

func TestUnproject(t *testing.T) {
	projector := NewProjector(GeoPoint{Lat: 55.75, Lon: 37.61})
	gp := GeoPoint{Lat: 55.7612, Lon: 37.5934}
	back := projector.Unproject(projector.Project(gp))
	if math.Abs(back.Lat-gp.Lat) > 1e-9 || math.Abs(back.Lon-gp.Lon) > 1e-9 {
		t.Errorf("Unprojected point must be %s, but got %s", gp, back)
	}
}

func TestFindOrigin(t *testing.T) {
	data := NewOSMDataRaw()
	data.AddNode(3, 10, 20, nil)
	data.AddNode(1, 12, 26, nil)
	data.AddNode(2, 11, 21, nil)

	anchor, err := findOrigin(data, ORIGIN_ANCHOR, GeoPoint{})
	if err != nil {
		t.Error(err)
		return
	}
	if anchor != (GeoPoint{Lat: 10, Lon: 20}) {
		t.Errorf("Anchor origin must be the first loaded point, but got %s", anchor)
	}

	bbox, err := findOrigin(data, ORIGIN_BBOX, GeoPoint{})
	if err != nil {
		t.Error(err)
		return
	}
	if bbox != (GeoPoint{Lat: 11, Lon: 23}) {
		t.Errorf("BBox origin must be %s, but got %s", GeoPoint{Lat: 11, Lon: 23}, bbox)
	}

	fixed := GeoPoint{Lat: 1, Lon: 2}
	origin, err := findOrigin(data, ORIGIN_FIXED, fixed)
	if err != nil {
		t.Error(err)
		return
	}
	if origin != fixed {
		t.Errorf("Fixed origin must be %s, but got %s", fixed, origin)
	}
}

func TestFindOriginNoPoints(t *testing.T) {
	data := NewOSMDataRaw()
	data.AddWay(1, []osm.NodeID{1, 2}, osm.Tags{{Key: "highway", Value: "primary"}})
	_, err := findOrigin(data, ORIGIN_BBOX, GeoPoint{})
	if errors.Cause(err) != ErrNoPoints {
		t.Errorf("Error must be %v, but got %v", ErrNoPoints, err)
	}
}

func TestParseOriginPolicy(t *testing.T) {
	for _, policy := range []OriginPolicy{ORIGIN_ANCHOR, ORIGIN_BBOX, ORIGIN_FIXED} {
		parsed, err := parseOriginPolicy(policy.String())
		if err != nil {
			t.Error(err)
			continue
		}
		if parsed != policy {
			t.Errorf("Policy must be %s, but got %s", policy, parsed)
		}
	}
	if _, err := parseOriginPolicy("corner"); err != ErrUnknownOriginPolicy {
		t.Errorf("Error must be %v, but got %v", ErrUnknownOriginPolicy, err)
	}
}

func TestExtentMeters(t *testing.T) {
	if extentMeters(boundOf(nil)) != 0 {
		t.Errorf("Extent of empty bound must be 0")
	}
	bound := orb.Bound{Min: orb.Point{37.6, 55.75}, Max: orb.Point{37.6, 55.76}}
	extent := extentMeters(bound)
	// 0.01 degree of latitude
	if math.Abs(extent-1112) > 5 {
		t.Errorf("Extent must be about %f, but got %f", 1112.0, extent)
	}
}
