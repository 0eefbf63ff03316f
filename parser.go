package osm2map

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Parser struct {
	filename string
	cfg      Config
	logger   *zap.Logger
	verbose  bool
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Map parser parameters:
	filename: '%s'
	verbose: %t
%s
	`,
		parser.filename,
		parser.verbose,
		parser.cfg,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename: fileName,
		cfg:      DefaultConfig(),
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithConfig(cfg Config) func(*Parser) {
	return func(parser *Parser) {
		parser.cfg = cfg
	}
}

func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

// Config returns configuration of the parser
func (parser *Parser) Config() Config {
	return parser.cfg
}

// Run reads input file and converts it
func (parser *Parser) Run(ctx context.Context) (*GameMap, error) {
	if err := parser.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Can't validate configuration")
	}
	data, err := readOSM(ctx, parser.filename, parser.logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read OSM data")
	}
	return parser.Convert(data)
}

// Convert builds game map from loaded data: roads, then polygons, then standalone POIs,
// then recentering and culling. Fails only on bad configuration or empty input
func (parser *Parser) Convert(data *OSMDataRaw) (*GameMap, error) {
	cfg := parser.cfg
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Can't validate configuration")
	}
	originPolicy, err := parseOriginPolicy(cfg.OriginPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse origin policy")
	}
	recenterPolicy, err := parseRecenterPolicy(cfg.RecenterPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse recenter policy")
	}
	origin, err := findOrigin(data, originPolicy, GeoPoint{Lat: cfg.OriginLat, Lon: cfg.OriginLon})
	if err != nil {
		return nil, errors.Wrap(err, "Can't find projection origin")
	}
	parser.logger.Info("Projection origin",
		zap.String("policy", originPolicy.String()),
		zap.Float64("lat", origin.Lat),
		zap.Float64("lon", origin.Lon),
	)

	st := time.Now()
	builder := newMapBuilder(data, &cfg, parser.logger, origin)
	builder.prepareTags()
	builder.prepareRoads()
	builder.preparePolygons()
	builder.preparePOIs()
	gm := builder.finish(recenterPolicy)

	if parser.verbose {
		parser.logger.Info("Run statistics", gm.Stats.zapField())
	}
	parser.logger.Info("Done converting",
		zap.Int("nodes", len(gm.Nodes)),
		zap.Int("edges", len(gm.Edges)),
		zap.Int("buildings", len(gm.Buildings)),
		zap.Int("areas", len(gm.Areas)),
		zap.Int("pois", len(gm.POIs)),
		zap.Duration("took", time.Since(st)),
	)
	return gm, nil
}
