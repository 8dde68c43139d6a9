package geo

import (
	"math"

	"github.com/lintang-b-s/roadgraph/pkg/util"
)

/*
BearingTo. initial bearing (degrees, clockwise from north) when leaving from towards to.
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(from, to GeographicPoint) float64 {

	dLon := util.DegreeToRadians(to.Lon - from.Lon)

	lat1 := util.DegreeToRadians(from.Lat)
	lat2 := util.DegreeToRadians(to.Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}
