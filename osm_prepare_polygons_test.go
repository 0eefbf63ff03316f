package osm2map

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

func TestExtractBuildingTriangle(t *testing.T) {
	nodes := []testNode{
		{id: 1, geom: orb.Point{0, 0}},
		{id: 2, geom: orb.Point{10, 0}},
		{id: 3, geom: orb.Point{10, 10}},
	}
	ways := []testWay{
		{id: 100, refs: []osm.NodeID{1, 2, 3, 1}, tags: testTags("building", "yes", "building:levels", "3")},
	}
	cfg := DefaultConfig()
	cfg.MinBuildingArea = 50
	builder := newTestBuilder(cfg, nodes, ways)
	builder.preparePolygons()

	if len(builder.gm.Buildings) != 1 {
		t.Errorf("Building must be kept with minimum area 50, but got %d buildings", len(builder.gm.Buildings))
		return
	}
	building := builder.gm.Buildings[0]
	if building.Height != 10.5 {
		t.Errorf("Height must be %f, but got %f", 10.5, building.Height)
	}
	if building.Color != cfg.BuildingColor {
		t.Errorf("Color must be %v, but got %v", cfg.BuildingColor, building.Color)
	}
	if polygonArea(building.Polygon) != 50 {
		t.Errorf("Area must be %f, but got %f", 50.0, polygonArea(building.Polygon))
	}
	if len(building.Polygon) != 3 {
		t.Errorf("Polygon must have %d points, but got %v", 3, building.Polygon)
	}
	if building.POI != -1 {
		t.Errorf("Building without category must have no POI, but got %d", building.POI)
	}

	cfg.MinBuildingArea = 50.01
	builder = newTestBuilder(cfg, nodes, ways)
	builder.preparePolygons()
	if len(builder.gm.Buildings) != 0 {
		t.Errorf("Building must be dropped with minimum area 50.01")
	}
	if builder.stats.SmallPolygons != 1 {
		t.Errorf("Small polygons must be %d, but got %d", 1, builder.stats.SmallPolygons)
	}
}

func TestBuildingHeight(t *testing.T) {
	cfg := DefaultConfig()
	builder := &mapBuilder{cfg: &cfg}
	cases := []struct {
		tags   osm.Tags
		height float64
	}{
		{testTags("building", "yes", "building:levels", "2", "height", "100"), 7.0},
		{testTags("building", "yes", "height", "12.5 m"), 12.5},
		{testTags("building", "yes", "building:levels", "many", "height", "9"), 9.0},
	}
	for _, c := range cases {
		way := newWayData(1, []osm.NodeID{1, 2, 3}, c.tags)
		way.processTags(zap.NewNop())
		height := builder.buildingHeight(way)
		if height != c.height {
			t.Errorf("Height of %v must be %f, but got %f", c.tags, c.height, height)
		}
	}

	// Fallback is deterministic and stays in range
	for id := osm.WayID(1); id < 100; id++ {
		way := newWayData(id, []osm.NodeID{1, 2, 3}, testTags("building", "yes"))
		way.processTags(zap.NewNop())
		height := builder.buildingHeight(way)
		if height < cfg.FallbackHeightMin || height >= cfg.FallbackHeightMax {
			t.Errorf("Fallback height of way %d must be in [%f, %f), but got %f", id, cfg.FallbackHeightMin, cfg.FallbackHeightMax, height)
		}
		if again := builder.buildingHeight(way); again != height {
			t.Errorf("Fallback height of way %d must be stable, but got %f and %f", id, height, again)
		}
	}
}

func TestBuildingColorJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BuildingColor = Color{R: 180, G: 180, B: 250}
	cfg.ColorJitter = 50
	builder := &mapBuilder{cfg: &cfg}
	for ref := osm.NodeID(1); ref < 50; ref++ {
		way := newWayData(1, []osm.NodeID{ref, ref + 1, ref + 2}, testTags("building", "yes"))
		color := builder.buildingColor(way)
		jitter := int(color.R) - 180
		if jitter < 0 || jitter >= 50 {
			t.Errorf("Jitter must be in [0, 50), but got %d", jitter)
		}
		if int(color.G)-180 != jitter {
			t.Errorf("Jitter must be the same for every channel, but got %v", color)
		}
		if color.B < 250 {
			t.Errorf("Blue channel must be clamped, but got %d", color.B)
		}
		if builder.buildingColor(way) != color {
			t.Errorf("Color must be stable for the same first reference")
		}
	}
}

func TestExtractBuildingPOI(t *testing.T) {
	nodes := []testNode{
		{id: 1, geom: orb.Point{0, 0}},
		{id: 2, geom: orb.Point{20, 0}},
		{id: 3, geom: orb.Point{20, 20}},
		{id: 4, geom: orb.Point{0, 20}},
		// Standalone POI inside the building: dropped as duplicate
		{id: 5, geom: orb.Point{11, 10}, tags: testTags("amenity", "cafe", "name", "Corner cafe")},
		// Standalone POI far away: kept
		{id: 6, geom: orb.Point{100, 100}, tags: testTags("shop", "supermarket", "brand", "Lidl")},
	}
	ways := []testWay{
		{id: 100, refs: []osm.NodeID{1, 2, 3, 4, 1}, tags: testTags("building", "retail", "amenity", "restaurant", "name", "Big Restaurant")},
	}
	builder := newTestBuilder(DefaultConfig(), nodes, ways)
	builder.preparePolygons()
	builder.preparePOIs()

	pois := builder.dedup.POIs()
	if len(pois) != 2 {
		t.Errorf("POIs number must be %d, but got %d", 2, len(pois))
		return
	}
	if pois[0].Type != POI_RESTAURANT || pois[0].Name != "Big_Restaurant" || pois[0].Geom != (orb.Point{10, 10}) {
		t.Errorf("First POI must be building restaurant at the vertex mean, but got %+v", pois[0])
	}
	if pois[1].Type != POI_SUPERMARKET || pois[1].Name != "Lidl" {
		t.Errorf("Second POI must be standalone supermarket, but got %+v", pois[1])
	}
	if builder.gm.Buildings[0].POI != 0 {
		t.Errorf("Building must reference POI %d, but got %d", 0, builder.gm.Buildings[0].POI)
	}
	if builder.stats.POIDuplicates != 1 {
		t.Errorf("Duplicates must be %d, but got %d", 1, builder.stats.POIDuplicates)
	}
}

func TestExtractAreas(t *testing.T) {
	nodes := []testNode{
		{id: 1, geom: orb.Point{0, 0}},
		{id: 2, geom: orb.Point{100, 0}},
		{id: 3, geom: orb.Point{100, 100}},
		{id: 4, geom: orb.Point{0, 100}},
		{id: 5, geom: orb.Point{5, 0}},
		{id: 6, geom: orb.Point{10, 0}},
		{id: 7, geom: orb.Point{10, 10}},
	}
	ways := []testWay{
		{id: 100, refs: []osm.NodeID{1, 2, 3, 4, 1}, tags: testTags("leisure", "park")},
		{id: 101, refs: []osm.NodeID{4, 3, 2, 1, 4}, tags: testTags("natural", "water")},
		// Too small for nature
		{id: 102, refs: []osm.NodeID{5, 6, 7, 5}, tags: testTags("landuse", "grass")},
		// Not a nature area
		{id: 103, refs: []osm.NodeID{1, 2, 3, 1}, tags: testTags("landuse", "residential")},
		// Two points only
		{id: 104, refs: []osm.NodeID{1, 2, 1}, tags: testTags("natural", "wood")},
	}
	builder := newTestBuilder(DefaultConfig(), nodes, ways)
	builder.preparePolygons()

	areas := builder.gm.Areas
	if len(areas) != 2 {
		t.Errorf("Areas number must be %d, but got %d", 2, len(areas))
		return
	}
	if areas[0].Type != AREA_PARK || areas[0].Color != DefaultConfig().ParkColor {
		t.Errorf("First area must be park, but got %s with color %v", areas[0].Type, areas[0].Color)
	}
	if areas[1].Type != AREA_WATER || areas[1].Color != DefaultConfig().WaterColor {
		t.Errorf("Second area must be water, but got %s with color %v", areas[1].Type, areas[1].Color)
	}
	for i, area := range areas {
		if signedArea(area.Polygon) <= 0 {
			t.Errorf("Area #%d must be counter-clockwise", i)
		}
	}
	if builder.stats.SmallPolygons != 1 || builder.stats.DegeneratePolygons != 1 {
		t.Errorf("Stats must count 1 small and 1 degenerate polygon, but got %d and %d", builder.stats.SmallPolygons, builder.stats.DegeneratePolygons)
	}
}

func TestMinAreaFilterSubset(t *testing.T) {
	nodes := make([]testNode, 0)
	ways := make([]testWay, 0)
	nodeID := osm.NodeID(1)
	for i := 1; i <= 10; i++ {
		side := float64(i)
		offset := float64(i * 50)
		corners := []orb.Point{{offset, 0}, {offset + side, 0}, {offset + side, side}, {offset, side}}
		refs := make([]osm.NodeID, 0, 5)
		for _, corner := range corners {
			nodes = append(nodes, testNode{id: nodeID, geom: corner})
			refs = append(refs, nodeID)
			nodeID++
		}
		refs = append(refs, refs[0])
		ways = append(ways, testWay{id: osm.WayID(i), refs: refs, tags: testTags("building", "yes")})
	}

	kept := func(minArea float64) map[osm.WayID]struct{} {
		cfg := DefaultConfig()
		cfg.MinBuildingArea = minArea
		cfg.BuildingTolerance = 0
		builder := newTestBuilder(cfg, nodes, ways)
		builder.preparePolygons()
		result := make(map[osm.WayID]struct{})
		for _, building := range builder.gm.Buildings {
			result[building.WayID] = struct{}{}
		}
		return result
	}

	all := kept(0)
	if len(all) != 10 {
		t.Errorf("Every building must be kept without filter, but got %d", len(all))
	}
	for _, minArea := range []float64{1, 10, 30, 64, 100, 1000} {
		filtered := kept(minArea)
		for id := range filtered {
			if _, ok := all[id]; !ok {
				t.Errorf("Building %d kept with minimum area %f must be kept without filter", id, minArea)
			}
		}
	}
	if len(kept(30)) != 5 {
		t.Errorf("Buildings with area of at least 30 must be %d, but got %d", 5, len(kept(30)))
	}
}

func TestExtractAreaStrictMinimum(t *testing.T) {
	nodes := []testNode{
		{id: 1, geom: orb.Point{0, 0}},
		{id: 2, geom: orb.Point{20, 0}},
		{id: 3, geom: orb.Point{20, 20}},
		{id: 4, geom: orb.Point{0, 20}},
	}
	ways := []testWay{
		{id: 100, refs: []osm.NodeID{1, 2, 3, 4, 1}, tags: testTags("leisure", "park")},
		{id: 101, refs: []osm.NodeID{1, 2, 3, 4, 1}, tags: testTags("building", "yes")},
	}
	cfg := DefaultConfig()
	cfg.MinNatureArea = 400
	cfg.MinBuildingArea = 400
	builder := newTestBuilder(cfg, nodes, ways)
	builder.preparePolygons()
	// Nature area must exceed the minimum, building may equal it
	if len(builder.gm.Areas) != 0 {
		t.Errorf("Area equal to minimum must be dropped, but got %d areas", len(builder.gm.Areas))
	}
	if len(builder.gm.Buildings) != 1 {
		t.Errorf("Building equal to minimum must be kept, but got %d buildings", len(builder.gm.Buildings))
	}

	cfg.MinNatureArea = 399.9
	builder = newTestBuilder(cfg, nodes, ways)
	builder.preparePolygons()
	if len(builder.gm.Areas) != 1 {
		t.Errorf("Area above minimum must be kept, but got %d areas", len(builder.gm.Areas))
	}
}
