package usecases

import (
	"context"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

type RoutingEngine interface {
	ShortestPath(ctx context.Context, algorithm routing.Algorithm, start, goal geo.GeographicPoint,
		opts ...routing.SearchOption) (*routing.Route, error)
}

type SpatialIndex interface {
	Nearest(qLat, qLon, radius float64) []geo.GeographicPoint
}

type SegmentIndex interface {
	Between(a, b geo.GeographicPoint) (geo.RoadSegment, bool)
	Touching(p geo.GeographicPoint) []geo.RoadSegment
}
