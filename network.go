package osm2map

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ExportToCSV writes road graph for inspection in GIS tools: 'name_nodes.csv' and
// 'name_edges.csv' with local geometry as WKT
func (gm *GameMap) ExportToCSV(fname string) error {
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return errors.Wrapf(err, "Can't create directory for '%s'", fname)
	}

	fnameParts := strings.Split(fname, ".csv")
	fnameNodes := fnameParts[0] + "_nodes.csv"
	fnameEdges := fnameParts[0] + "_edges.csv"

	err = gm.exportNodesToCSV(fnameNodes)
	if err != nil {
		return errors.Wrap(err, "Can't export nodes")
	}

	err = gm.exportEdgesToCSV(fnameEdges)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}
	return nil
}

func (gm *GameMap) exportEdgesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "source_node", "target_node", "osm_way_id", "width", "oneway", "speed", "lanes", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, edge := range gm.Edges {
		source := gm.Nodes[edge.Source].Geom
		target := gm.Nodes[edge.Target].Geom
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			fmt.Sprintf("%d", edge.WayID),
			fmt.Sprintf("%f", edge.Width),
			fmt.Sprintf("%t", edge.Oneway),
			fmt.Sprintf("%d", edge.SpeedLimit),
			fmt.Sprintf("%d", edge.Lanes),
			fmt.Sprintf("%f", edge.lengthMeters(gm.Nodes)),
			edgeWKT(source, target),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	writer.Flush()
	return writer.Error()
}

func (gm *GameMap) exportNodesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "osm_node_id", "control_type", "x", "z", "longitude", "latitude"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, node := range gm.Nodes {
		gp := gm.Unproject(node.Geom)
		err = writer.Write([]string{
			fmt.Sprintf("%d", node.ID),
			fmt.Sprintf("%d", node.OSMNodeID),
			fmt.Sprintf("%s", node.ControlType),
			fmt.Sprintf("%f", node.Geom[0]),
			fmt.Sprintf("%f", node.Geom[1]),
			fmt.Sprintf("%f", gp.Lon),
			fmt.Sprintf("%f", gp.Lat),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	writer.Flush()
	return writer.Error()
}
