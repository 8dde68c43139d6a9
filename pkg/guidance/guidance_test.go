package guidance

import (
	"context"
	"strings"
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetTurnDirection(t *testing.T) {
	testCases := []struct {
		name        string
		prevBearing float64
		bearing     float64
		want        TurnSign
	}{
		{name: "straight", prevBearing: 90, bearing: 95, want: CONTINUE_ON_STREET},
		{name: "slight right across north", prevBearing: 350, bearing: 10, want: TURN_SLIGHT_RIGHT},
		{name: "slight left across north", prevBearing: 10, bearing: 340, want: TURN_SLIGHT_LEFT},
		{name: "left", prevBearing: 90, bearing: 0, want: TURN_LEFT},
		{name: "right", prevBearing: 0, bearing: 90, want: TURN_RIGHT},
		{name: "sharp right", prevBearing: 0, bearing: 140, want: TURN_SHARP_RIGHT},
		{name: "sharp left", prevBearing: 0, bearing: 220, want: TURN_SHARP_LEFT},
		{name: "u-turn", prevBearing: 90, bearing: 270, want: U_TURN_RIGHT},
		{name: "u-turn left", prevBearing: 90, bearing: 275, want: U_TURN_LEFT},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getTurnDirection(tt.prevBearing, tt.bearing))
		})
	}
}

func TestBearingToCompass(t *testing.T) {
	assert.Equal(t, "North", bearingToCompass(0))
	assert.Equal(t, "North", bearingToCompass(350))
	assert.Equal(t, "East", bearingToCompass(90))
	assert.Equal(t, "South West", bearingToCompass(225))
	assert.Equal(t, "North West", bearingToCompass(-30))
}

func route(t *testing.T, data string, start, goal geo.GeographicPoint) (*routing.Route, graphloader.SegmentMap) {
	t.Helper()
	result, err := graphloader.LoadRoadMap(strings.NewReader(data), graphloader.WithSegments())
	require.NoError(t, err)
	re := routing.NewRoutingEngine(result.Graph, zap.NewNop())
	r, err := re.ShortestPath(context.Background(), routing.DIJKSTRA, start, goal)
	require.NoError(t, err)
	return r, result.Segments
}

func TestGetDrivingDirections(t *testing.T) {
	data := strings.Join([]string{
		"0 0 0 1 main residential",
		"0 1 0 2 other residential",
		"0 2 0 3 other residential",
		"0 3 1 3 side residential",
		// a spur keeps (0,2) an intersection
		"0 2 1 2 spur residential",
	}, "\n")
	r, segments := route(t, data, geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(1, 3))
	require.Len(t, r.Steps, 4)

	got := NewDirectionBuilder(segments).GetDrivingDirections(r.Steps)
	require.Len(t, got, 4)

	assert.Equal(t, START, got[0].Sign)
	assert.Equal(t, "Head East on main", got[0].Description)
	assert.InDelta(t, r.Steps[0].Length, got[0].Distance, 1e-12)

	assert.Equal(t, CONTINUE_ON_STREET, got[1].Sign)
	assert.Equal(t, "Continue onto other", got[1].Description)
	assert.Equal(t, geo.NewGeographicPoint(0, 1), got[1].Point)
	assert.InDelta(t, r.Steps[1].Length+r.Steps[2].Length, got[1].Distance, 1e-12)

	assert.Equal(t, TURN_LEFT, got[2].Sign)
	assert.Equal(t, "TURN_LEFT", got[2].Maneuver)
	assert.Equal(t, "Turn left onto side", got[2].Description)
	assert.Equal(t, geo.NewGeographicPoint(0, 3), got[2].Point)

	assert.Equal(t, FINISH, got[3].Sign)
	assert.Equal(t, geo.NewGeographicPoint(1, 3), got[3].Point)
	assert.Zero(t, got[3].Distance)

	total := 0.0
	for _, ins := range got {
		total += ins.Distance
	}
	assert.InDelta(t, r.Length, total, 1e-9)
}

func TestGetDrivingDirectionsMergesSameStreet(t *testing.T) {
	data := strings.Join([]string{
		"0 0 0 1 main residential",
		"0 1 0 2 main residential",
		"0 1 1 1 spur residential",
	}, "\n")
	r, segments := route(t, data, geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(0, 2))
	require.Len(t, r.Steps, 2)

	got := NewDirectionBuilder(segments).GetDrivingDirections(r.Steps)
	require.Len(t, got, 2)
	assert.Equal(t, START, got[0].Sign)
	assert.InDelta(t, r.Length, got[0].Distance, 1e-9)
	assert.Equal(t, FINISH, got[1].Sign)
}

func TestGetDrivingDirectionsUsesRoadGeometry(t *testing.T) {
	// main bends north at (0,1) before meeting side, which heads west
	data := strings.Join([]string{
		"0 0 0 1 main residential",
		"0 1 1 1 main residential",
		"1 1 1 0 side residential",
	}, "\n")
	r, segments := route(t, data, geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(1, 0))
	require.Len(t, r.Steps, 2)

	got := NewDirectionBuilder(segments).GetDrivingDirections(r.Steps)
	require.Len(t, got, 3)
	assert.Equal(t, TURN_LEFT, got[1].Sign)

	straight := NewDirectionBuilder(nil).GetDrivingDirections(r.Steps)
	assert.Equal(t, TURN_SHARP_LEFT, straight[1].Sign)
}

func TestGetDrivingDirectionsEmpty(t *testing.T) {
	assert.Empty(t, NewDirectionBuilder(nil).GetDrivingDirections(nil))
}
