package graphloader

import (
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

// SegmentMap maps every intersection to the road segments touching it.
type SegmentMap map[geo.GeographicPoint][]geo.RoadSegment

// add records seg under both endpoints. Equal segments are stored once per endpoint.
func (sm SegmentMap) add(seg geo.RoadSegment) {
	for _, p := range []geo.GeographicPoint{seg.Start, seg.End} {
		if sm.contains(p, seg) {
			continue
		}
		sm[p] = append(sm[p], seg)
	}
}

func (sm SegmentMap) contains(p geo.GeographicPoint, seg geo.RoadSegment) bool {
	key := seg.Key()
	for _, s := range sm[p] {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// Touching returns the segments with p as one endpoint.
func (sm SegmentMap) Touching(p geo.GeographicPoint) []geo.RoadSegment {
	return sm[p]
}

// Between returns the shortest segment joining a and b in either direction.
func (sm SegmentMap) Between(a, b geo.GeographicPoint) (geo.RoadSegment, bool) {
	var (
		best  geo.RoadSegment
		found bool
	)
	for _, s := range sm[a] {
		if !s.Connects(a, b) {
			continue
		}
		if !found || s.Length < best.Length {
			best = s
			found = true
		}
	}
	return best, found
}

// NumSegments counts distinct segments.
func (sm SegmentMap) NumSegments() int {
	seen := make(map[geo.SegmentKey]struct{})
	for _, segs := range sm {
		for _, s := range segs {
			seen[s.Key()] = struct{}{}
		}
	}
	return len(seen)
}
