package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRtreeNearest(t *testing.T) {
	points := []geo.GeographicPoint{
		geo.NewGeographicPoint(32.8756538, -117.2435715),
		geo.NewGeographicPoint(32.8742087, -117.2381344),
		geo.NewGeographicPoint(32.8709815, -117.2434254),
		geo.NewGeographicPoint(32.9000000, -117.2000000),
	}
	rt := NewRtree()
	rt.Build(points, 0.05, zap.NewNop())
	require.Equal(t, len(points), rt.Len())

	testCases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     []geo.GeographicPoint
	}{
		{
			name:   "exact point",
			lat:    32.8756538,
			lon:    -117.2435715,
			radius: 0.1,
			want:   []geo.GeographicPoint{points[0]},
		},
		{
			name:   "close to the second point",
			lat:    32.87425,
			lon:    -117.23815,
			radius: 0.2,
			want:   []geo.GeographicPoint{points[1]},
		},
		{
			name:   "wide radius sorted by distance",
			lat:    32.8750,
			lon:    -117.2430,
			radius: 1.0,
			want:   []geo.GeographicPoint{points[0], points[2], points[1]},
		},
		{
			name:   "nothing nearby",
			lat:    0,
			lon:    0,
			radius: 0.5,
			want:   []geo.GeographicPoint{},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := rt.Nearest(tt.lat, tt.lon, tt.radius)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchWithinRadiusIsCapped(t *testing.T) {
	points := make([]geo.GeographicPoint, 0, 50)
	for i := 0; i < 50; i++ {
		points = append(points, geo.NewGeographicPoint(1+float64(i)*0.00001, 1))
	}
	rt := NewRtree()
	rt.Build(points, 0.01, zap.NewNop())

	assert.Len(t, rt.SearchWithinRadius(1, 1, 1), maxSearchResults)
	assert.Len(t, rt.Nearest(1, 1, 1), 50)
}
