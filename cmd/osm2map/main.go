package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LdDl/osm2map"
	"github.com/LdDl/osm2map/internal/logger"
	"github.com/LdDl/osm2map/internal/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	osmFileName = flag.String("file", "map.osm", "Filename of *.osm, *.xml or *.osm.pbf file")
	out         = flag.String("out", "maps/map.map", "Filename of output map. Directory is created if needed")
	configFile  = flag.String("config", "", "Filename of YAML configuration. Defaults are used if empty")
	geojsonOut  = flag.String("geojson", "", "Filename of GeoJSON preview (WGS84). Skipped if empty")
	csvOut      = flag.String("csv", "", "Filename of road graph CSV. E.g.: if file name is 'map.csv' then 'map_nodes.csv' and 'map_edges.csv' will be produced. Skipped if empty")
	metricsOut  = flag.String("metrics", "", "Filename of Prometheus text file with run statistics. Skipped if empty")
	route       = flag.String("route", "", "Pair of node indices 'u,v' to check shortest path between after conversion")
	verbose     = flag.Bool("verbose", false, "Print debug messages and run statistics")

	origin         = flag.String("origin", "anchor", "Projection origin. Expected values: anchor / bbox / fixed")
	recenter       = flag.String("recenter", "bbox", "Recenter policy. Expected values: bbox / centroid")
	radius         = flag.Float64("radius", 0, "Map culling radius in meters. 0 disables culling")
	poiRadius      = flag.Float64("poi-radius", 0, "POI culling radius in meters. 0 disables culling")
	precision      = flag.Int("precision", 1, "Fractional digits of output coordinates. Expected values: 1 / 2")
	excludeService = flag.Bool("exclude-service", false, "Skip `highway=service` roads")
)

func main() {
	flag.Parse()

	log := logger.NewOrNop(*verbose)
	defer log.Sync()

	err := run(log)
	if err != nil {
		log.Error("Conversion failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	st := time.Now()
	cfg := osm2map.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = osm2map.LoadConfig(*configFile)
		if err != nil {
			return err
		}
	}
	applyOverrides(&cfg)

	parser := osm2map.NewParser(
		*osmFileName,
		osm2map.WithConfig(cfg),
		osm2map.WithLogger(log),
		osm2map.WithVerbose(*verbose),
	)
	log.Debug("Parser is ready", zap.Stringer("parser", parser))

	gm, err := parser.Run(context.Background())
	if err != nil {
		return err
	}

	err = gm.ExportToFile(*out, cfg.Precision)
	if err != nil {
		return err
	}
	log.Info("Map saved", zap.String("file", *out))

	if *geojsonOut != "" {
		err = gm.ExportGeoJSON(*geojsonOut)
		if err != nil {
			return err
		}
		log.Info("GeoJSON preview saved", zap.String("file", *geojsonOut))
	}

	if *csvOut != "" {
		err = gm.ExportToCSV(*csvOut)
		if err != nil {
			return err
		}
		log.Info("Road graph CSV saved", zap.String("file", *csvOut))
	}

	if *route != "" {
		err = checkRoute(gm, *route, log)
		if err != nil {
			return err
		}
	}

	if *metricsOut != "" {
		collector, err := metrics.NewRunCollector(nil)
		if err != nil {
			return err
		}
		collector.Record(gm.Stats.Counters(), time.Since(st).Seconds())
		err = collector.WriteTextfile(*metricsOut)
		if err != nil {
			return err
		}
		log.Info("Run statistics saved", zap.String("file", *metricsOut))
	}
	return nil
}

// applyOverrides copies explicitly set flags into configuration
func applyOverrides(cfg *osm2map.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "origin":
			cfg.OriginPolicy = *origin
		case "recenter":
			cfg.RecenterPolicy = *recenter
		case "radius":
			cfg.MapRadius = *radius
		case "poi-radius":
			cfg.POIRadius = *poiRadius
		case "precision":
			cfg.Precision = *precision
		case "exclude-service":
			cfg.ExcludeServiceRoads = *excludeService
		}
	})
}

func parseRoute(str string) (osm2map.NetworkNodeID, osm2map.NetworkNodeID, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("Route should be 'u,v', but got '%s'", str)
	}
	source, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrap(err, "Can't parse source node")
	}
	target, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrap(err, "Can't parse target node")
	}
	return osm2map.NetworkNodeID(source), osm2map.NetworkNodeID(target), nil
}

func checkRoute(gm *osm2map.GameMap, str string, log *zap.Logger) error {
	source, target, err := parseRoute(str)
	if err != nil {
		return err
	}
	router, err := osm2map.NewRouter(gm, log)
	if err != nil {
		return errors.Wrap(err, "Can't build router")
	}
	cost, path, err := router.ShortestPath(source, target)
	if err != nil {
		return errors.Wrap(err, "Can't find route")
	}
	fmt.Printf("Route %d -> %d: %.2f m via %v\n", source, target, cost, path)
	return nil
}
