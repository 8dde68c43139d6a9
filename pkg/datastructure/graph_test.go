package datastructure

import (
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := NewMapGraph()
	p := geo.NewGeographicPoint(1, 2)

	assert.True(t, g.AddVertex(p))
	assert.False(t, g.AddVertex(p))
	assert.Equal(t, 1, g.NumVertices())
	assert.True(t, g.HasVertex(p))
	assert.False(t, g.HasVertex(geo.NewGeographicPoint(2, 1)))
}

func TestAddEdge(t *testing.T) {
	a := geo.NewGeographicPoint(0, 0)
	b := geo.NewGeographicPoint(0, 1)
	missing := geo.NewGeographicPoint(5, 5)

	testCases := []struct {
		name      string
		from, to  geo.GeographicPoint
		length    float64
		wantErr   error
		wantEdges int
	}{
		{name: "valid edge", from: a, to: b, length: 1.0, wantEdges: 1},
		{name: "missing start", from: missing, to: b, length: 1.0, wantErr: ErrVertexNotFound},
		{name: "missing end", from: a, to: missing, length: 1.0, wantErr: ErrVertexNotFound},
		{name: "zero length", from: a, to: b, length: 0, wantErr: ErrNonPositiveLength},
		{name: "negative length", from: a, to: b, length: -2, wantErr: ErrNonPositiveLength},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewMapGraph()
			g.AddVertex(a)
			g.AddVertex(b)

			err := g.AddEdge(tt.from, tt.to, "main", "residential", tt.length)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
				assert.Equal(t, 0, g.NumEdges())
				assert.Empty(t, g.OutEdges(a))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEdges, g.NumEdges())
		})
	}
}

func TestParallelEdges(t *testing.T) {
	g := NewMapGraph()
	a := geo.NewGeographicPoint(0, 0)
	b := geo.NewGeographicPoint(0, 1)
	g.AddVertex(a)
	g.AddVertex(b)

	require.NoError(t, g.AddEdge(a, b, "main", "residential", 2.0))
	require.NoError(t, g.AddEdge(a, b, "main", "residential", 2.0))
	assert.Equal(t, 1, g.NumEdges(), "identical edge is stored once")

	require.NoError(t, g.AddEdge(a, b, "side", "residential", 1.5))
	require.NoError(t, g.AddEdge(a, b, "main", "primary", 2.0))
	assert.Equal(t, 3, g.NumEdges())
	assert.Len(t, g.OutEdges(a), 3)
	assert.Equal(t, []geo.GeographicPoint{b}, g.Neighbors(a))

	best, ok := g.EdgeBetween(a, b)
	require.True(t, ok)
	assert.Equal(t, "side", best.GetRoadName())

	_, ok = g.EdgeBetween(b, a)
	assert.False(t, ok)
}

func TestPathLength(t *testing.T) {
	g := NewMapGraph()
	pts := []geo.GeographicPoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}
	for _, p := range pts {
		g.AddVertex(p)
	}
	require.NoError(t, g.AddEdge(pts[0], pts[1], "a", "residential", 1.25))
	require.NoError(t, g.AddEdge(pts[1], pts[2], "a", "residential", 0.75))

	total, ok := g.PathLength(pts)
	require.True(t, ok)
	assert.InDelta(t, 2.0, total, 1e-12)

	_, ok = g.PathLength([]geo.GeographicPoint{pts[2], pts[1]})
	assert.False(t, ok)

	assert.Equal(t, pts, g.Vertices())

	count := 0
	g.ForEdges(func(e MapEdge) {
		assert.True(t, g.HasVertex(e.GetFrom()))
		assert.True(t, g.HasVertex(e.GetTo()))
		count++
	})
	assert.Equal(t, g.NumEdges(), count)
}

func TestRunKosaraju(t *testing.T) {
	p := func(lat float64) geo.GeographicPoint { return geo.NewGeographicPoint(lat, 0) }
	g := NewMapGraph()
	for i := 0; i < 6; i++ {
		g.AddVertex(p(float64(i)))
	}
	// 0 <-> 1 <-> 2 is two-way, 2 -> 3 -> 4 -> 2 is a one-way loop, 5 is only reachable
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 4}, {4, 2}, {4, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(p(float64(e[0])), p(float64(e[1])), "r", "residential", 1))
	}

	sccs := g.RunKosaraju()
	require.Len(t, sccs, 2)
	assert.Equal(t, []geo.GeographicPoint{p(0), p(1), p(2), p(3), p(4)}, sccs[0])
	assert.Equal(t, []geo.GeographicPoint{p(5)}, sccs[1])

	assert.Empty(t, NewMapGraph().RunKosaraju())
}

func TestRunKosarajuLongChains(t *testing.T) {
	const n = 200000
	p := func(i int) geo.GeographicPoint { return geo.NewGeographicPoint(float64(i)*1e-4, 0) }

	testCases := []struct {
		name      string
		closeRing bool
		wantSCCs  int
	}{
		{name: "one-way chain", closeRing: false, wantSCCs: n},
		{name: "one-way ring", closeRing: true, wantSCCs: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewMapGraph()
			for i := 0; i < n; i++ {
				g.AddVertex(p(i))
			}
			for i := 0; i+1 < n; i++ {
				require.NoError(t, g.AddEdge(p(i), p(i+1), "r", "residential", 1))
			}
			if tt.closeRing {
				require.NoError(t, g.AddEdge(p(n-1), p(0), "r", "residential", 1))
			}

			sccs := g.RunKosaraju()
			require.Len(t, sccs, tt.wantSCCs)
			if tt.closeRing {
				assert.Len(t, sccs[0], n)
				assert.Equal(t, p(0), sccs[0][0])
				assert.Equal(t, p(n-1), sccs[0][n-1])
			}
		})
	}
}

func TestDfsPostOrder(t *testing.T) {
	// 0 -> 1 -> 3, 0 -> 2 -> 3, 3 -> 0
	adj := [][]Index{{1, 2}, {3}, {3}, {0}}
	visited := make([]bool, len(adj))
	var order []Index
	dfs(0, adj, &order, visited)
	assert.Equal(t, []Index{3, 1, 2, 0}, order)
	assert.Equal(t, []bool{true, true, true, true}, visited)
}
