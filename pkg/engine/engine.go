package engine

import (
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"go.uber.org/zap"
)

type Engine struct {
	routingEngine *routing.RoutingEngine
	segments      graphloader.SegmentMap
	intersections []geo.GeographicPoint
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetSegments() graphloader.SegmentMap {
	return e.segments
}

func (e *Engine) GetIntersections() []geo.GeographicPoint {
	return e.intersections
}

// NewEngine loads mapFilePath (plain or .bz2) with its road segments and wraps it in a routing engine.
func NewEngine(mapFilePath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting road network query engine...")
	logger.Info("Reading road map from ", zap.String("mapFilePath", mapFilePath))

	result, err := graphloader.LoadRoadMapFile(mapFilePath, graphloader.WithSegments(),
		graphloader.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return NewEngineFromResult(result, logger), nil
}

func NewEngineFromResult(result *graphloader.Result, logger *zap.Logger) *Engine {
	logger.Info("road network ready", zap.Int("vertices", result.Graph.NumVertices()),
		zap.Int("edges", result.Graph.NumEdges()))

	sccs := result.Graph.RunKosaraju()
	if len(sccs) > 1 {
		logger.Sugar().Warnf("road network has %d strongly connected components, the largest holds %d of %d intersections; "+
			"some routes will not be found", len(sccs), len(sccs[0]), result.Graph.NumVertices())
	}
	return &Engine{
		routingEngine: routing.NewRoutingEngine(result.Graph, logger),
		segments:      result.Segments,
		intersections: result.Intersections,
	}
}
