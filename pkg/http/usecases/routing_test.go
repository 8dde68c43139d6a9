package usecases

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"github.com/lintang-b-s/roadgraph/pkg/guidance"
	"github.com/lintang-b-s/roadgraph/pkg/spatialindex"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRoadMap = `0 0 0 1 main residential
0 1 0 2 main residential
0 2 1 2 side residential
`

type countingEngine struct {
	RoutingEngine
	calls atomic.Int32
}

func (ce *countingEngine) ShortestPath(ctx context.Context, algorithm routing.Algorithm, start, goal geo.GeographicPoint,
	opts ...routing.SearchOption) (*routing.Route, error) {
	ce.calls.Add(1)
	return ce.RoutingEngine.ShortestPath(ctx, algorithm, start, goal, opts...)
}

func newTestService(t *testing.T) (*RoutingService, *countingEngine) {
	t.Helper()
	result, err := graphloader.LoadRoadMap(strings.NewReader(testRoadMap), graphloader.WithSegments())
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(result.Intersections, 0.05, zap.NewNop())

	engine := &countingEngine{RoutingEngine: routing.NewRoutingEngine(result.Graph, zap.NewNop())}
	svc, err := NewRoutingService(zap.NewNop(), engine, rt, result.Segments, result.Intersections, 0.5, 16)
	require.NoError(t, err)
	return svc, engine
}

func TestShortestPath(t *testing.T) {
	svc, _ := newTestService(t)

	for _, algorithm := range routing.Algorithms() {
		t.Run(algorithm.String(), func(t *testing.T) {
			res, err := svc.ShortestPath(context.Background(), algorithm, 0.001, 0.002, 1, 2.001)
			require.NoError(t, err)

			assert.Equal(t, geo.NewGeographicPoint(0, 0), res.Origin)
			assert.Equal(t, geo.NewGeographicPoint(1, 2), res.Destination)
			assert.Equal(t, []geo.GeographicPoint{
				geo.NewGeographicPoint(0, 0),
				geo.NewGeographicPoint(0, 2),
				geo.NewGeographicPoint(1, 2),
			}, res.Route.Path)
			assert.Equal(t, []geo.GeographicPoint{
				geo.NewGeographicPoint(0, 0),
				geo.NewGeographicPoint(0, 1),
				geo.NewGeographicPoint(0, 2),
				geo.NewGeographicPoint(1, 2),
			}, res.Geometry)

			decoded, err := geo.PointsFromPolyline(res.Polyline)
			require.NoError(t, err)
			require.Len(t, decoded, len(res.Geometry))
			for i := range decoded {
				assert.InDelta(t, res.Geometry[i].Lat, decoded[i].Lat, 1e-5)
				assert.InDelta(t, res.Geometry[i].Lon, decoded[i].Lon, 1e-5)
			}

			require.Len(t, res.Instructions, 3)
			assert.Equal(t, "Head East on main", res.Instructions[0].Description)
			assert.Equal(t, "Turn left onto side", res.Instructions[1].Description)
			assert.Equal(t, guidance.FINISH, res.Instructions[2].Sign)

			// the origin sits beside the main road, closer to it than to the intersection
			assert.InDelta(t, 0.1112, res.OriginSnapDistance, 1e-3)
			assert.Less(t, res.OriginSnapDistance, geo.NewGeographicPoint(0.001, 0.002).Distance(res.Origin))
		})
	}
}

func TestShortestPathErrors(t *testing.T) {
	svc, _ := newTestService(t)

	testCases := []struct {
		name     string
		orig     [2]float64
		dst      [2]float64
		wantErr  error
		wantCode error
	}{
		{
			name:     "origin far from any road",
			orig:     [2]float64{10, 10},
			dst:      [2]float64{1, 2},
			wantErr:  ErrOriginNotSnapped,
			wantCode: util.ErrNotFound,
		},
		{
			name:     "destination far from any road",
			orig:     [2]float64{0, 0},
			dst:      [2]float64{-5, 2},
			wantErr:  ErrDestinationNotSnapped,
			wantCode: util.ErrNotFound,
		},
		{
			name:     "against a one-way road",
			orig:     [2]float64{1, 2},
			dst:      [2]float64{0, 0},
			wantErr:  routing.ErrPathNotFound,
			wantCode: util.ErrNotFound,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ShortestPath(context.Background(), routing.DIJKSTRA, tt.orig[0], tt.orig[1],
				tt.dst[0], tt.dst[1])
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
		})
	}
}

func TestShortestPathIsCached(t *testing.T) {
	svc, engine := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.ShortestPath(context.Background(), routing.ASTAR, 0, 0, 1, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), engine.calls.Load())

	_, err := svc.ShortestPath(context.Background(), routing.BFS, 0, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), engine.calls.Load())

	// failed searches are not cached
	for i := 0; i < 2; i++ {
		_, err = svc.ShortestPath(context.Background(), routing.BFS, 1, 2, 0, 0)
		require.Error(t, err)
	}
	assert.Equal(t, int32(4), engine.calls.Load())
}

func TestSearchVisualization(t *testing.T) {
	svc, engine := newTestService(t)

	var visited []geo.GeographicPoint
	res, err := svc.SearchVisualization(context.Background(), routing.DIJKSTRA, 0, 0, 1, 2,
		func(p geo.GeographicPoint) {
			visited = append(visited, p)
		})
	require.NoError(t, err)
	assert.Equal(t, geo.NewGeographicPoint(0, 0), visited[0])
	assert.Equal(t, geo.NewGeographicPoint(1, 2), visited[len(visited)-1])
	assert.Equal(t, len(visited), res.Route.NumSettled)

	_, err = svc.SearchVisualization(context.Background(), routing.DIJKSTRA, 0, 0, 1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), engine.calls.Load())

	assert.Len(t, svc.Intersections(), 3)
}
