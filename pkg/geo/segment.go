package geo

import (
	"errors"
	"fmt"
)

var ErrNotSegmentEndpoint = errors.New("point is not an endpoint of the road segment")

// RoadSegment is the physical road between two intersections. Geometry holds the pass-through
// points in the stored start->end direction and is only used for drawing.
type RoadSegment struct {
	Start    GeographicPoint   `json:"start"`
	End      GeographicPoint   `json:"end"`
	Geometry []GeographicPoint `json:"geometry"`
	RoadName string            `json:"road_name"`
	RoadType string            `json:"road_type"`
	Length   float64           `json:"length"`
}

func NewRoadSegment(start, end GeographicPoint, geometry []GeographicPoint, roadName, roadType string,
	length float64) RoadSegment {
	return RoadSegment{
		Start:    start,
		End:      end,
		Geometry: geometry,
		RoadName: roadName,
		RoadType: roadType,
		Length:   length,
	}
}

// Points returns start, geometry..., end in travel order. Asking for end->start reverses the stored geometry.
func (rs RoadSegment) Points(start, end GeographicPoint) ([]GeographicPoint, error) {
	points := make([]GeographicPoint, 0, len(rs.Geometry)+2)
	switch {
	case start == rs.Start && end == rs.End:
		points = append(points, start)
		points = append(points, rs.Geometry...)
	case start == rs.End && end == rs.Start:
		points = append(points, start)
		for i := len(rs.Geometry) - 1; i >= 0; i-- {
			points = append(points, rs.Geometry[i])
		}
	default:
		return nil, fmt.Errorf("%w: segment %s -> %s, asked %s -> %s", ErrNotSegmentEndpoint,
			rs.Start, rs.End, start, end)
	}
	points = append(points, end)
	return points, nil
}

// OtherPoint returns the endpoint opposite p.
func (rs RoadSegment) OtherPoint(p GeographicPoint) (GeographicPoint, bool) {
	switch p {
	case rs.Start:
		return rs.End, true
	case rs.End:
		return rs.Start, true
	}
	return GeographicPoint{}, false
}

// Connects reports whether the segment joins a and b, in either direction.
func (rs RoadSegment) Connects(a, b GeographicPoint) bool {
	return (rs.Start == a && rs.End == b) || (rs.Start == b && rs.End == a)
}

// Equal compares road name, the unordered endpoint pair and length.
func (rs RoadSegment) Equal(other RoadSegment) bool {
	return rs.RoadName == other.RoadName && rs.Connects(other.Start, other.End) && rs.Length == other.Length
}

// SegmentKey is a comparable, direction independent identity matching Equal.
type SegmentKey struct {
	a, b     GeographicPoint
	roadName string
	length   float64
}

func (rs RoadSegment) Key() SegmentKey {
	a, b := rs.Start, rs.End
	if b.Lat < a.Lat || (b.Lat == a.Lat && b.Lon < a.Lon) {
		a, b = b, a
	}
	return SegmentKey{a: a, b: b, roadName: rs.RoadName, length: rs.Length}
}
