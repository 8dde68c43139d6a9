package routing

import (
	da "github.com/lintang-b-s/roadgraph/pkg/datastructure"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"go.uber.org/zap"
)

// RoutingEngine answers point to point queries on a read-only road graph.
// Every query keeps its own search state, so one engine can serve concurrent queries.
type RoutingEngine struct {
	graph  *da.MapGraph
	logger *zap.Logger
}

func NewRoutingEngine(graph *da.MapGraph, logger *zap.Logger) *RoutingEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.MapGraph {
	return re.graph
}

func (re *RoutingEngine) HasVertex(p geo.GeographicPoint) bool {
	return re.graph.HasVertex(p)
}
