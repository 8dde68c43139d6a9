package geo

import (
	"github.com/lintang-b-s/roadgraph/pkg/util"

	"github.com/golang/geo/s2"
)

// ProjectPointToLine projects snap onto the great-circle segment a-b.
func ProjectPointToLine(pointA, pointB, snap GeographicPoint) GeographicPoint {
	pointA = makeSixDigitsAfterComa(pointA, 6)
	pointB = makeSixDigitsAfterComa(pointB, 6)
	snap = makeSixDigitsAfterComa(snap, 6)

	pointAS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointA.Lat, pointA.Lon))
	pointBS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointB.Lat, pointB.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	projection := s2.Project(snapS2, pointAS2, pointBS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return NewGeographicPoint(projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees())
}

// PointLinePerpendicularDistance. return in km
func PointLinePerpendicularDistance(pointA, pointB, snap GeographicPoint) float64 {
	projectionPoint := ProjectPointToLine(pointA, pointB, snap)

	return snap.Distance(projectionPoint)
}

// PointPolylineDistance. shortest perpendicular distance from snap to any piece of the polyline, in km
func PointPolylineDistance(points []GeographicPoint, snap GeographicPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	if len(points) == 1 {
		return snap.Distance(points[0])
	}
	best := -1.0
	for i := 0; i+1 < len(points); i++ {
		d := PointLinePerpendicularDistance(points[i], points[i+1], snap)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func makeSixDigitsAfterComa(n GeographicPoint, precision int) GeographicPoint {

	if util.CountDecimalPlacesF64(n.Lat) > precision {
		n.Lat = util.RoundFloat(n.Lat, uint(precision))
	}
	if util.CountDecimalPlacesF64(n.Lon) > precision {
		n.Lon = util.RoundFloat(n.Lon, uint(precision))
	}
	return n
}
