package usecases

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/guidance"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrOriginNotSnapped      = errors.New("no intersection found near the origin")
	ErrDestinationNotSnapped = errors.New("no intersection found near the destination")
)

type routeCacheKey struct {
	algorithm   routing.Algorithm
	start, goal geo.GeographicPoint
}

// RouteResult is a route between the intersections nearest to the requested coordinates.
type RouteResult struct {
	Route        *routing.Route
	Origin       geo.GeographicPoint
	Destination  geo.GeographicPoint
	Geometry     []geo.GeographicPoint
	Polyline     string
	Instructions []guidance.Instruction

	// distance in km from the requested coordinates to the closest road touching the snapped intersection
	OriginSnapDistance      float64
	DestinationSnapDistance float64
}

type RoutingService struct {
	log           *zap.Logger
	engine        RoutingEngine
	spatialIndex  SpatialIndex
	segments      SegmentIndex
	intersections []geo.GeographicPoint
	searchRadius  float64
	routeCache    *lru.Cache[routeCacheKey, *routing.Route]
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	segments SegmentIndex, intersections []geo.GeographicPoint, searchRadius float64,
	routeCacheSize int) (*RoutingService, error) {
	if routeCacheSize <= 0 {
		routeCacheSize = 1
	}
	routeCache, err := lru.New[routeCacheKey, *routing.Route](routeCacheSize)
	if err != nil {
		return nil, err
	}
	return &RoutingService{
		log:           log,
		engine:        engine,
		spatialIndex:  spatialIndex,
		segments:      segments,
		intersections: intersections,
		searchRadius:  searchRadius,
		routeCache:    routeCache,
	}, nil
}

func (rs *RoutingService) Intersections() []geo.GeographicPoint {
	return rs.intersections
}

// ShortestPath snaps both coordinates to the nearest intersection and searches between them.
// Routes are cached per (algorithm, snapped origin, snapped destination).
func (rs *RoutingService) ShortestPath(ctx context.Context, algorithm routing.Algorithm,
	origLat, origLon, dstLat, dstLon float64) (*RouteResult, error) {
	start, goal, err := rs.snapOrigDestToIntersections(origLat, origLon, dstLat, dstLon)
	if err != nil {
		return nil, err
	}

	key := routeCacheKey{algorithm: algorithm, start: start, goal: goal}
	route, ok := rs.routeCache.Get(key)
	if !ok {
		route, err = rs.engine.ShortestPath(ctx, algorithm, start, goal)
		if err != nil {
			return nil, err
		}
		rs.routeCache.Add(key, route)
	} else {
		rs.log.Debug("route cache hit", zap.String("algorithm", algorithm.String()),
			zap.Stringer("origin", start), zap.Stringer("destination", goal))
	}

	return rs.newRouteResult(route, start, goal, origLat, origLon, dstLat, dstLon), nil
}

// SearchVisualization runs an uncached search and reports every settled intersection to onVisit.
func (rs *RoutingService) SearchVisualization(ctx context.Context, algorithm routing.Algorithm,
	origLat, origLon, dstLat, dstLon float64, onVisit routing.VisitFunc) (*RouteResult, error) {
	start, goal, err := rs.snapOrigDestToIntersections(origLat, origLon, dstLat, dstLon)
	if err != nil {
		return nil, err
	}

	route, err := rs.engine.ShortestPath(ctx, algorithm, start, goal, routing.WithVisitor(onVisit))
	if err != nil {
		return nil, err
	}
	return rs.newRouteResult(route, start, goal, origLat, origLon, dstLat, dstLon), nil
}

func (rs *RoutingService) newRouteResult(route *routing.Route, start, goal geo.GeographicPoint,
	origLat, origLon, dstLat, dstLon float64) *RouteResult {
	geometry := routing.PathGeometry(route.Path, rs.segments)
	return &RouteResult{
		Route:                   route,
		Origin:                  start,
		Destination:             goal,
		Geometry:                geometry,
		Polyline:                geo.PolylineFromPoints(geometry),
		Instructions:            guidance.NewDirectionBuilder(rs.segments).GetDrivingDirections(route.Steps),
		OriginSnapDistance:      rs.roadDistance(start, geo.NewGeographicPoint(origLat, origLon)),
		DestinationSnapDistance: rs.roadDistance(goal, geo.NewGeographicPoint(dstLat, dstLon)),
	}
}

func snapError(sentinel error, lat, lon, radius float64) error {
	return util.WrapErrorf(sentinel, util.ErrNotFound, "nothing within %.3f km of %f,%f", radius, lat, lon)
}
