package usecases

import (
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

func (rs *RoutingService) snapOrigDestToIntersections(origLat, origLon, dstLat, dstLon float64) (geo.GeographicPoint,
	geo.GeographicPoint, error) {
	// candidates come back sorted by distance
	origCandidates := rs.spatialIndex.Nearest(origLat, origLon, rs.searchRadius)
	if len(origCandidates) == 0 {
		return geo.GeographicPoint{}, geo.GeographicPoint{}, snapError(ErrOriginNotSnapped, origLat, origLon,
			rs.searchRadius)
	}

	dstCandidates := rs.spatialIndex.Nearest(dstLat, dstLon, rs.searchRadius)
	if len(dstCandidates) == 0 {
		return geo.GeographicPoint{}, geo.GeographicPoint{}, snapError(ErrDestinationNotSnapped, dstLat, dstLon,
			rs.searchRadius)
	}

	return origCandidates[0], dstCandidates[0], nil
}

// roadDistance. shortest distance in km from q to any road drawn out of the intersection p,
// or straight to p when p has no known segment.
func (rs *RoutingService) roadDistance(p, q geo.GeographicPoint) float64 {
	best := q.Distance(p)
	if rs.segments == nil {
		return best
	}
	for _, seg := range rs.segments.Touching(p) {
		points, err := seg.Points(seg.Start, seg.End)
		if err != nil {
			continue
		}
		if d := geo.PointPolylineDistance(points, q); d < best {
			best = d
		}
	}
	return best
}
