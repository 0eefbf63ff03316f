package osm2map

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Router answers shortest path queries over road edges with contraction hierarchies.
// Weight is planar length in meters; one-way edges are traversed in their direction only
type Router struct {
	graph    ch.Graph
	nodesNum int
}

type routerArc struct {
	source NetworkNodeID
	target NetworkNodeID
}

// NewRouter builds and contracts graph of given map
func NewRouter(gm *GameMap, logger *zap.Logger) (*Router, error) {
	st := time.Now()
	router := &Router{
		graph:    ch.Graph{},
		nodesNum: len(gm.Nodes),
	}
	for _, node := range gm.Nodes {
		err := router.graph.CreateVertex(int64(node.ID))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex %d", node.ID)
		}
	}

	// Parallel edges keep the shortest one
	weights := make(map[routerArc]float64, len(gm.Edges)*2)
	order := make([]routerArc, 0, len(gm.Edges)*2)
	addArc := func(arc routerArc, weight float64) {
		if existing, ok := weights[arc]; ok {
			if weight < existing {
				weights[arc] = weight
			}
			return
		}
		weights[arc] = weight
		order = append(order, arc)
	}
	for _, edge := range gm.Edges {
		weight := edge.lengthMeters(gm.Nodes)
		addArc(routerArc{edge.Source, edge.Target}, weight)
		if !edge.Oneway {
			addArc(routerArc{edge.Target, edge.Source}, weight)
		}
	}
	for _, arc := range order {
		err := router.graph.AddEdge(int64(arc.source), int64(arc.target), weights[arc])
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add edge %d->%d", arc.source, arc.target)
		}
	}
	router.graph.PrepareContractionHierarchies()
	logger.Info("Done contraction process",
		zap.Int("vertices", router.nodesNum),
		zap.Int("arcs", len(order)),
		zap.Duration("took", time.Since(st)),
	)
	return router, nil
}

// ShortestPath returns cost and node sequence from source to target
func (router *Router) ShortestPath(source, target NetworkNodeID) (float64, []NetworkNodeID, error) {
	if int(source) < 0 || int(source) >= router.nodesNum {
		return 0, nil, errors.Wrapf(ErrUnknownNodeID, "%d", source)
	}
	if int(target) < 0 || int(target) >= router.nodesNum {
		return 0, nil, errors.Wrapf(ErrUnknownNodeID, "%d", target)
	}
	if source == target {
		return 0, []NetworkNodeID{source}, nil
	}
	cost, path := router.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(path) == 0 {
		return 0, nil, errors.Wrapf(ErrNoPath, "%d->%d", source, target)
	}
	nodes := make([]NetworkNodeID, len(path))
	for i, id := range path {
		nodes[i] = NetworkNodeID(id)
	}
	return cost, nodes, nil
}
