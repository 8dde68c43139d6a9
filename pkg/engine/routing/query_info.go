package routing

import (
	"math"

	da "github.com/lintang-b-s/roadgraph/pkg/datastructure"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

type vertexInfo struct {
	dist      float64
	parent    geo.GeographicPoint
	hasParent bool
	visited   bool
	heapNode  *da.PriorityQueueNode[geo.GeographicPoint]
}

// searchState is the working memory of one query. It is created by the query and dropped when it returns.
type searchState struct {
	info       map[geo.GeographicPoint]*vertexInfo
	numSettled int
	err        error
}

func newSearchState() *searchState {
	return &searchState{
		info: make(map[geo.GeographicPoint]*vertexInfo),
	}
}

// get returns v's info, creating it at +inf distance.
func (s *searchState) get(v geo.GeographicPoint) *vertexInfo {
	vi, ok := s.info[v]
	if !ok {
		vi = &vertexInfo{dist: math.Inf(1)}
		s.info[v] = vi
	}
	return vi
}

func (s *searchState) distance(v geo.GeographicPoint) float64 {
	vi, ok := s.info[v]
	if !ok {
		return math.Inf(1)
	}
	return vi.dist
}

const cancelCheckInterval = 256

// stopped reports whether ctx is done, checking only every cancelCheckInterval settled nodes.
func (s *searchState) stopped(o *searchOptions) bool {
	if s.numSettled%cancelCheckInterval != 0 {
		return false
	}
	if err := o.ctx.Err(); err != nil {
		s.err = err
		return true
	}
	return false
}

func (s *searchState) setParent(v, parent geo.GeographicPoint) {
	vi := s.get(v)
	vi.parent = parent
	vi.hasParent = true
}

// path walks parent links back from goal to start.
func (s *searchState) path(start, goal geo.GeographicPoint) []geo.GeographicPoint {
	reversed := []geo.GeographicPoint{goal}
	curr := goal
	for curr != start {
		vi, ok := s.info[curr]
		if !ok || !vi.hasParent {
			break
		}
		curr = vi.parent
		reversed = append(reversed, curr)
	}
	path := make([]geo.GeographicPoint, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	if path[0] != start {
		path = append([]geo.GeographicPoint{start}, path...)
	}
	return path
}
