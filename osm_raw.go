package osm2map

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMDataRaw is the loaded input: points keyed by id (in load order) and ways in file order
type OSMDataRaw struct {
	nodes      map[osm.NodeID]*Node
	nodesOrder []osm.NodeID
	ways       []*WayData
}

// NewOSMDataRaw returns empty input set. Use AddNode and AddWay to fill it
func NewOSMDataRaw() *OSMDataRaw {
	return &OSMDataRaw{
		nodes:      make(map[osm.NodeID]*Node),
		nodesOrder: make([]osm.NodeID, 0),
		ways:       make([]*WayData, 0),
	}
}

// AddNode adds point to the input set. Repeated ids are ignored (the first one is kept)
func (data *OSMDataRaw) AddNode(id osm.NodeID, lat, lon float64, tags osm.Tags) bool {
	if _, ok := data.nodes[id]; ok {
		return false
	}
	nodeTags := make(osm.Tags, len(tags))
	copy(nodeTags, tags)
	data.nodes[id] = &Node{
		ID:          id,
		Geom:        GeoPoint{Lat: lat, Lon: lon},
		Tags:        nodeTags,
		controlType: controlTypeFromTags(nodeTags),
	}
	data.nodesOrder = append(data.nodesOrder, id)
	return true
}

// AddWay adds way to the input set. References are not checked
func (data *OSMDataRaw) AddWay(id osm.WayID, refs []osm.NodeID, tags osm.Tags) {
	data.ways = append(data.ways, newWayData(id, refs, tags))
}

// NodesNum returns number of loaded points
func (data *OSMDataRaw) NodesNum() int {
	return len(data.nodesOrder)
}

// WaysNum returns number of loaded ways
func (data *OSMDataRaw) WaysNum() int {
	return len(data.ways)
}

// geoBound returns bounding box of all points in (lon, lat) axes
func (data *OSMDataRaw) geoBound() orb.Bound {
	pts := make([]orb.Point, 0, len(data.nodesOrder))
	for _, id := range data.nodesOrder {
		pts = append(pts, data.nodes[id].Geom.Point())
	}
	return boundOf(pts)
}

// project fills local position of every point
func (data *OSMDataRaw) project(projector Projector) {
	for _, node := range data.nodes {
		node.local = projector.Project(node.Geom)
	}
}

// localBound returns bounding box of all projected points
func (data *OSMDataRaw) localBound() orb.Bound {
	pts := make([]orb.Point, 0, len(data.nodesOrder))
	for _, id := range data.nodesOrder {
		pts = append(pts, data.nodes[id].local)
	}
	return boundOf(pts)
}

func newOSMScanner(ctx context.Context, file *os.File, filename string) (OSMScanner, error) {
	// Guess file extension and prepare correct scanner
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pbf"):
		return osmpbf.New(ctx, file, 4), nil
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return osmxml.New(ctx, file), nil
	default:
		return nil, errors.Errorf("File extension '%s' for file '%s' is not handled yet", filepath.Ext(filename), filename)
	}
}

// readOSM loads points and ways in a single scan. Relations are ignored
func readOSM(ctx context.Context, filename string, logger *zap.Logger) (*OSMDataRaw, error) {
	logger.Info("Opening file", zap.String("file", filename))
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open file '%s'", filename)
	}
	defer file.Close()

	scanner, err := newOSMScanner(ctx, file, filename)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	st := time.Now()
	data := NewOSMDataRaw()
	duplicated := 0
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			if !data.AddNode(obj.ID, obj.Lat, obj.Lon, obj.Tags) {
				duplicated++
			}
		case *osm.Way:
			data.AddWay(obj.ID, obj.Nodes.NodeIDs(), obj.Tags)
		}
	}
	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't scan file '%s'", filename)
	}
	logger.Info("Done reading",
		zap.Int("nodes", data.NodesNum()),
		zap.Int("ways", data.WaysNum()),
		zap.Int("duplicated_nodes", duplicated),
		zap.Duration("took", time.Since(st)),
	)
	return data, nil
}
