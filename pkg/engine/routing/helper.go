package routing

import (
	"context"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
)

// RouteStep is one hop of a route along a single edge.
type RouteStep struct {
	From     geo.GeographicPoint `json:"from"`
	To       geo.GeographicPoint `json:"to"`
	RoadName string              `json:"road_name"`
	RoadType string              `json:"road_type"`
	Length   float64             `json:"length"`
	Bearing  float64             `json:"bearing"`
}

type Route struct {
	Algorithm  Algorithm
	Path       []geo.GeographicPoint
	Steps      []RouteStep
	Length     float64
	NumSettled int
}

func (r *Route) NumHops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// ShortestPath runs algorithm from start to goal. A missing or unreachable endpoint gives an error
// with code util.ErrNotFound wrapping ErrPathNotFound; a done ctx gives its error.
func (re *RoutingEngine) ShortestPath(ctx context.Context, algorithm Algorithm, start, goal geo.GeographicPoint,
	opts ...SearchOption) (*Route, error) {
	o := buildSearchOptions(opts)
	WithContext(ctx)(&o)

	var res searchResult
	switch algorithm {
	case BFS:
		res = re.breadthFirstSearch(start, goal, o)
	case DIJKSTRA:
		res = re.bestFirstSearch(start, goal, zeroHeuristic, o)
	case ASTAR:
		res = re.bestFirstSearch(start, goal, greatCircleHeuristic(goal), o)
	default:
		return nil, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "algorithm %d", algorithm)
	}

	if res.err != nil {
		return nil, util.WrapErrorf(res.err, util.ErrInternalServerError, "%s search from %s to %s stopped",
			algorithm, start, goal)
	}
	if !res.found {
		return nil, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %s to %s", start, goal)
	}

	steps := re.routeSteps(res.path)
	length := 0.0
	for _, s := range steps {
		length += s.Length
	}
	re.logger.Sugar().Debugf("%s settled %d nodes, path of %d hops, %.4f km", algorithm, res.numSettled,
		len(steps), length)

	return &Route{
		Algorithm:  algorithm,
		Path:       res.path,
		Steps:      steps,
		Length:     length,
		NumSettled: res.numSettled,
	}, nil
}

// routeSteps picks the shortest edge for every hop of path.
func (re *RoutingEngine) routeSteps(path []geo.GeographicPoint) []RouteStep {
	steps := make([]RouteStep, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		e, ok := re.graph.EdgeBetween(path[i], path[i+1])
		if !ok {
			continue
		}
		steps = append(steps, RouteStep{
			From:     e.GetFrom(),
			To:       e.GetTo(),
			RoadName: e.GetRoadName(),
			RoadType: e.GetRoadType(),
			Length:   e.GetLength(),
			Bearing:  geo.BearingTo(e.GetFrom(), e.GetTo()),
		})
	}
	return steps
}

// PathGeometry expands an intersection path into drawable points, using the shortest segment of
// each hop. A hop without a known segment is drawn as a straight line.
func PathGeometry(path []geo.GeographicPoint, segments SegmentLookup) []geo.GeographicPoint {
	if len(path) == 0 {
		return nil
	}
	points := make([]geo.GeographicPoint, 0, len(path))
	points = append(points, path[0])
	for i := 0; i+1 < len(path); i++ {
		var hop []geo.GeographicPoint
		if segments != nil {
			if seg, ok := segments.Between(path[i], path[i+1]); ok {
				if pts, err := seg.Points(path[i], path[i+1]); err == nil {
					hop = pts
				}
			}
		}
		if hop == nil {
			hop = []geo.GeographicPoint{path[i], path[i+1]}
		}
		points = append(points, hop[1:]...)
	}
	return points
}
