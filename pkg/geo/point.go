package geo

import (
	"fmt"
	"strconv"
)

// GeographicPoint is a latitude/longitude pair in decimal degrees. Two points with the same
// coordinates are the same point, so the value is used directly as a map key and node id.
type GeographicPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewGeographicPoint(lat, lon float64) GeographicPoint {
	return GeographicPoint{
		Lat: lat,
		Lon: lon,
	}
}

func (p GeographicPoint) GetLat() float64 {
	return p.Lat
}

func (p GeographicPoint) GetLon() float64 {
	return p.Lon
}

// Distance. great-circle distance to other in km
func (p GeographicPoint) Distance(other GeographicPoint) float64 {
	return CalculateHaversineDistance(p.Lat, p.Lon, other.Lat, other.Lon)
}

func (p GeographicPoint) String() string {
	return fmt.Sprintf("Lat: %v, Lon: %v", p.Lat, p.Lon)
}

// LineString renders the point the way it appears in map and intersections files.
func (p GeographicPoint) LineString() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + " " + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}
