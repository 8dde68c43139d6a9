package mapmaker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseBounds(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Bounds
		wantErr bool
	}{
		{name: "ucsd", in: "32.8709,-117.2382,32.8811,-117.2217", want: Bounds{32.8709, -117.2382, 32.8811, -117.2217}},
		{name: "spaces", in: " 1, 2 ,3,4", want: Bounds{1, 2, 3, 4}},
		{name: "too few", in: "1,2,3", wantErr: true},
		{name: "not a number", in: "1,2,x,4", wantErr: true},
		{name: "south above north", in: "3,2,1,4", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBounds(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBounds)
				assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{South: 0, West: 0, North: 1, East: 1}
	assert.True(t, b.Contains(geo.NewGeographicPoint(0.5, 0.5)))
	assert.True(t, b.Contains(geo.NewGeographicPoint(1, 0)))
	assert.False(t, b.Contains(geo.NewGeographicPoint(1.1, 0.5)))
	assert.False(t, b.Contains(geo.NewGeographicPoint(0.5, -0.1)))
}

func TestWayDirection(t *testing.T) {
	testCases := []struct {
		name string
		tags osm.Tags
		want direction
	}{
		{name: "untagged", tags: osm.Tags{{Key: "highway", Value: "residential"}}, want: bothWays},
		{name: "oneway yes", tags: osm.Tags{{Key: "oneway", Value: "yes"}}, want: forwardOnly},
		{name: "oneway 1", tags: osm.Tags{{Key: "oneway", Value: "1"}}, want: forwardOnly},
		{name: "oneway -1", tags: osm.Tags{{Key: "oneway", Value: "-1"}}, want: backwardOnly},
		{name: "roundabout", tags: osm.Tags{{Key: "junction", Value: "roundabout"}}, want: forwardOnly},
		{name: "motorway", tags: osm.Tags{{Key: "highway", Value: "motorway"}}, want: forwardOnly},
		{name: "motorway oneway no", tags: osm.Tags{{Key: "highway", Value: "motorway"}, {Key: "oneway", Value: "no"}}, want: bothWays},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wayDirection(tt.tags))
		})
	}
}

func TestAcceptWay(t *testing.T) {
	assert.True(t, acceptWay(osm.Tags{{Key: "highway", Value: "primary_link"}}))
	assert.False(t, acceptWay(osm.Tags{{Key: "highway", Value: "footway"}}))
	assert.False(t, acceptWay(osm.Tags{{Key: "highway", Value: "service"}}))
	assert.False(t, acceptWay(osm.Tags{{Key: "highway", Value: "residential"}, {Key: "access", Value: "private"}}))
	assert.False(t, acceptWay(osm.Tags{{Key: "building", Value: "yes"}}))
}

func TestNewWayRecord(t *testing.T) {
	way := &osm.Way{
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
		Tags:  osm.Tags{{Key: "highway", Value: "trunk"}, {Key: "ref", Value: `I "5"`}},
	}
	rec := newWayRecord(way)
	assert.Equal(t, []osm.NodeID{1, 2}, rec.nodes)
	assert.Equal(t, "I '5'", rec.name)
	assert.Equal(t, "trunk", rec.highway)
	assert.Equal(t, bothWays, rec.direction)
}

func TestCleanName(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "unchanged", in: "Gilman Drive", want: "Gilman Drive"},
		{name: "double quotes", in: `I "5"`, want: "I '5'"},
		{name: "control characters", in: "North\tTorrey\nPines\r", want: "North Torrey Pines"},
		{name: "backslash kept", in: `A\B`, want: `A\B`},
		{name: "format runes kept", in: "\u200eRue", want: "\u200eRue"},
		{name: "surrounding blanks", in: "  Voigt Dr \n", want: "Voigt Dr"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanName(tt.in))
		})
	}
}

func TestWayLines(t *testing.T) {
	coords := map[osm.NodeID]geo.GeographicPoint{
		1: geo.NewGeographicPoint(0, 0),
		2: geo.NewGeographicPoint(0, 1),
		3: geo.NewGeographicPoint(0, 2),
		4: geo.NewGeographicPoint(5, 5),
	}
	p := func(id osm.NodeID) geo.GeographicPoint { return coords[id] }

	testCases := []struct {
		name   string
		way    wayRecord
		bounds *Bounds
		want   []graphloader.RoadLineInfo
	}{
		{
			name: "two way",
			way:  wayRecord{nodes: []osm.NodeID{1, 2}, name: "Main", highway: "residential"},
			want: []graphloader.RoadLineInfo{
				graphloader.NewRoadLineInfo(p(1), p(2), "Main", "residential"),
				graphloader.NewRoadLineInfo(p(2), p(1), "Main", "residential"),
			},
		},
		{
			name: "one way skips repeated point",
			way:  wayRecord{nodes: []osm.NodeID{1, 1, 2, 3}, name: "Main", highway: "primary", direction: forwardOnly},
			want: []graphloader.RoadLineInfo{
				graphloader.NewRoadLineInfo(p(1), p(2), "Main", "primary"),
				graphloader.NewRoadLineInfo(p(2), p(3), "Main", "primary"),
			},
		},
		{
			name: "backward only",
			way:  wayRecord{nodes: []osm.NodeID{1, 2}, name: "Main", highway: "primary", direction: backwardOnly},
			want: []graphloader.RoadLineInfo{
				graphloader.NewRoadLineInfo(p(2), p(1), "Main", "primary"),
			},
		},
		{
			name: "missing node cuts the way",
			way:  wayRecord{nodes: []osm.NodeID{1, 9, 2, 3}, name: "Main", highway: "primary", direction: forwardOnly},
			want: []graphloader.RoadLineInfo{
				graphloader.NewRoadLineInfo(p(2), p(3), "Main", "primary"),
			},
		},
		{
			name:   "outside bounds",
			way:    wayRecord{nodes: []osm.NodeID{1, 2, 4}, name: "Main", highway: "primary", direction: forwardOnly},
			bounds: &Bounds{South: -1, West: -1, North: 1, East: 3},
			want: []graphloader.RoadLineInfo{
				graphloader.NewRoadLineInfo(p(1), p(2), "Main", "primary"),
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wayLines(tt.way, coords, tt.bounds))
		})
	}
}

func TestWriteRoadMapLoads(t *testing.T) {
	m := NewMapMaker(nil, zap.NewNop())
	m.coords = map[osm.NodeID]geo.GeographicPoint{
		1: geo.NewGeographicPoint(32.87, -117.24),
		2: geo.NewGeographicPoint(32.871, -117.24),
		3: geo.NewGeographicPoint(32.872, -117.24),
		4: geo.NewGeographicPoint(32.871, -117.239),
	}
	m.ways = []wayRecord{
		{nodes: []osm.NodeID{1, 2, 3}, name: "Gilman Drive", highway: "secondary"},
		{nodes: []osm.NodeID{2, 4}, name: "", highway: "residential", direction: forwardOnly},
	}

	var buf bytes.Buffer
	n, err := m.WriteRoadMap(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, strings.HasPrefix(buf.String(), `32.87 -117.24 32.871 -117.24 "Gilman Drive" secondary`+"\n"))

	result, err := graphloader.LoadRoadMap(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Graph.NumVertices())
	assert.Equal(t, 5, result.Graph.NumEdges())
}
