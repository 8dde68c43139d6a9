package routing

import "github.com/lintang-b-s/roadgraph/pkg/geo"

// SegmentLookup finds the drawable road segment between two adjacent intersections.
type SegmentLookup interface {
	Between(a, b geo.GeographicPoint) (geo.RoadSegment, bool)
}

type Router interface {
	BreadthFirstSearch(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool)
	Dijkstra(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool)
	AStarSearch(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool)
}

var _ Router = (*RoutingEngine)(nil)
