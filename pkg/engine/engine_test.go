package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEngine(t *testing.T) {
	mapFile := filepath.Join(t.TempDir(), "tiny.map")
	data := "0 0 0 1 main residential\n0 1 0 2 main residential\n0 2 1 2 side residential\n"
	require.NoError(t, os.WriteFile(mapFile, []byte(data), 0o644))

	e, err := NewEngine(mapFile, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, e.GetIntersections(), 3)
	assert.Equal(t, 1, len(e.GetSegments().Touching(geo.NewGeographicPoint(0, 0))))

	route, err := e.GetRoutingEngine().ShortestPath(context.Background(), routing.ASTAR,
		geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, route.NumHops())

	_, err = NewEngine(filepath.Join(t.TempDir(), "missing.map"), zap.NewNop())
	assert.Error(t, err)
}
