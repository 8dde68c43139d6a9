package controllers

import (
	"context"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, algorithm routing.Algorithm, origLat, origLon, dstLat, dstLon float64) (*usecases.RouteResult, error)
	SearchVisualization(ctx context.Context, algorithm routing.Algorithm, origLat, origLon, dstLat, dstLon float64,
		onVisit routing.VisitFunc) (*usecases.RouteResult, error)
	Intersections() []geo.GeographicPoint
}
