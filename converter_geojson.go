package osm2map

import (
	"os"
	"path/filepath"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func (gm *GameMap) geoCoordinates(pt orb.Point) []float64 {
	gp := gm.Unproject(pt)
	return []float64{gp.Lon, gp.Lat}
}

func (gm *GameMap) geoPolygon(ring orb.Ring) [][][]float64 {
	closed := closedRing(ring)
	coords := make([][]float64, len(closed))
	for i, pt := range closed {
		coords[i] = gm.geoCoordinates(pt)
	}
	return [][][]float64{coords}
}

func colorProperty(color Color) []int {
	return []int{int(color.R), int(color.G), int(color.B)}
}

// GeoJSON returns every entity of the map in WGS84 coordinates for previewing
func (gm *GameMap) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, edge := range gm.Edges {
		f := geojson.NewLineStringFeature([][]float64{
			gm.geoCoordinates(gm.Nodes[edge.Source].Geom),
			gm.geoCoordinates(gm.Nodes[edge.Target].Geom),
		})
		f.SetProperty("kind", "edge")
		f.SetProperty("id", i)
		f.SetProperty("source", int(edge.Source))
		f.SetProperty("target", int(edge.Target))
		f.SetProperty("width", edge.Width)
		f.SetProperty("oneway", edge.Oneway)
		f.SetProperty("speed", edge.SpeedLimit)
		f.SetProperty("lanes", edge.Lanes)
		f.SetProperty("osm_way_id", int64(edge.WayID))
		fc.AddFeature(f)
	}
	for _, building := range gm.Buildings {
		f := geojson.NewPolygonFeature(gm.geoPolygon(building.Polygon))
		f.SetProperty("kind", "building")
		f.SetProperty("height", building.Height)
		f.SetProperty("color", colorProperty(building.Color))
		f.SetProperty("osm_way_id", int64(building.WayID))
		fc.AddFeature(f)
	}
	for _, area := range gm.Areas {
		f := geojson.NewPolygonFeature(gm.geoPolygon(area.Polygon))
		f.SetProperty("kind", "area")
		f.SetProperty("type", area.Type.String())
		f.SetProperty("color", colorProperty(area.Color))
		f.SetProperty("osm_way_id", int64(area.WayID))
		fc.AddFeature(f)
	}
	for _, poi := range gm.POIs {
		f := geojson.NewPointFeature(gm.geoCoordinates(poi.Geom))
		f.SetProperty("kind", "poi")
		f.SetProperty("type", poi.Type.String())
		f.SetProperty("name", poi.Name)
		fc.AddFeature(f)
	}
	return fc
}

// ExportGeoJSON writes GeoJSON preview of the map. Directory is created on demand
func (gm *GameMap) ExportGeoJSON(fname string) error {
	bytes, err := gm.GeoJSON().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal GeoJSON")
	}
	err = os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return errors.Wrapf(err, "Can't create directory for '%s'", fname)
	}
	err = os.WriteFile(fname, bytes, 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't write file '%s'", fname)
	}
	return nil
}
