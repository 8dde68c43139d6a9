package geo

import (
	"math"

	"github.com/lintang-b-s/roadgraph/pkg/util"
)

const (
	earthRadiusKM = 6373.0
)

// CalculateHaversineDistance. calculate haversine distance in km.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	sinDLat := math.Sin((latTwo - latOne) / 2)
	sinDLon := math.Sin((longTwo - longOne) / 2)
	a := sinDLat*sinDLat + math.Cos(latOne)*math.Cos(latTwo)*sinDLon*sinDLon
	if a > 1 {
		a = 1
	}
	c := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// RoadLength. running sum of great-circle distances start -> geometry... -> end, in km
func RoadLength(start, end GeographicPoint, geometry []GeographicPoint) float64 {
	dist := 0.0
	curr := start
	for _, next := range geometry {
		dist += curr.Distance(next)
		curr = next
	}
	dist += curr.Distance(end)
	return dist
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
