package graphloader

import "github.com/lintang-b-s/roadgraph/pkg/geo"

type pointLines struct {
	out []RoadLineInfo
	in  []RoadLineInfo
}

// pointMap indexes every input point with the records leaving and entering it.
// points keeps first-seen order so that loading is deterministic.
type pointMap struct {
	lines  map[geo.GeographicPoint]*pointLines
	points []geo.GeographicPoint
}

func newPointMap() *pointMap {
	return &pointMap{
		lines:  make(map[geo.GeographicPoint]*pointLines),
		points: make([]geo.GeographicPoint, 0),
	}
}

func (pm *pointMap) get(p geo.GeographicPoint) *pointLines {
	pl, ok := pm.lines[p]
	if !ok {
		pl = &pointLines{}
		pm.lines[p] = pl
		pm.points = append(pm.points, p)
	}
	return pl
}

func (pm *pointMap) add(line RoadLineInfo) {
	pm.get(line.point1).out = append(pm.get(line.point1).out, line)
	pm.get(line.point2).in = append(pm.get(line.point2).in, line)
}

func (pm *pointMap) outgoing(p geo.GeographicPoint) []RoadLineInfo {
	pl, ok := pm.lines[p]
	if !ok {
		return nil
	}
	return pl.out
}

func (pm *pointMap) numPoints() int {
	return len(pm.points)
}

// isOneWayPassThrough: one line in, one line out, the road keeps its name and does not double back.
func isOneWayPassThrough(in, out []RoadLineInfo) bool {
	if len(in) != 1 || len(out) != 1 {
		return false
	}
	return !in[0].swappedEndpoints(out[0]) && in[0].roadName == out[0].roadName
}

// isTwoWayPassThrough: a two-way road under one name runs straight through, each incoming line
// being the reverse of one of the outgoing lines.
func isTwoWayPassThrough(in, out []RoadLineInfo) bool {
	if len(in) != 2 || len(out) != 2 {
		return false
	}
	if !sameRoadName(in, out) {
		return false
	}
	return (in[0].IsReverse(out[0]) && in[1].IsReverse(out[1])) ||
		(in[0].IsReverse(out[1]) && in[1].IsReverse(out[0]))
}

func sameRoadName(in, out []RoadLineInfo) bool {
	name := in[0].roadName
	for _, l := range in {
		if l.roadName != name {
			return false
		}
	}
	for _, l := range out {
		if l.roadName != name {
			return false
		}
	}
	return true
}

// isIntersection: dead ends, branches, name changes and degree mismatches all stay as vertices.
func isIntersection(pl *pointLines) bool {
	return !isOneWayPassThrough(pl.in, pl.out) && !isTwoWayPassThrough(pl.in, pl.out)
}

// findIntersections returns the intersection points in first-seen order.
func (pm *pointMap) findIntersections() []geo.GeographicPoint {
	intersections := make([]geo.GeographicPoint, 0)
	for _, p := range pm.points {
		if isIntersection(pm.lines[p]) {
			intersections = append(intersections, p)
		}
	}
	return intersections
}
