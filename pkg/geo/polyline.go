package geo

import "github.com/twpayne/go-polyline"

// PolylineFromPoints encodes points with the google encoded polyline algorithm (precision 5).
func PolylineFromPoints(points []GeographicPoint) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

func PointsFromPolyline(encoded string) ([]GeographicPoint, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([]GeographicPoint, 0, len(coords))
	for _, c := range coords {
		points = append(points, NewGeographicPoint(c[0], c[1]))
	}
	return points, nil
}
