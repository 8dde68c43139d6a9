package routing

import (
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

// BreadthFirstSearch returns a path from start to goal with the fewest hops, ignoring edge lengths.
// Returns false when start or goal is not in the graph or goal can not be reached.
func (re *RoutingEngine) BreadthFirstSearch(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool) {
	res := re.breadthFirstSearch(start, goal, buildSearchOptions(opts))
	return res.path, res.found
}

func (re *RoutingEngine) breadthFirstSearch(start, goal geo.GeographicPoint, o searchOptions) searchResult {
	if !re.graph.HasVertex(start) || !re.graph.HasVertex(goal) {
		return searchResult{}
	}

	state := newSearchState()
	queue := make([]geo.GeographicPoint, 0, 64)
	queue = append(queue, start)
	state.get(start).visited = true

	// nodes are marked visited when discovered so each one enters the queue once
	for head := 0; head < len(queue); head++ {
		if state.stopped(&o) {
			return searchResult{numSettled: state.numSettled, err: state.err}
		}

		curr := queue[head]
		state.numSettled++
		o.onVisit(curr)

		if curr == goal {
			return searchResult{path: state.path(start, goal), found: true, numSettled: state.numSettled}
		}

		for _, e := range re.graph.OutEdges(curr) {
			next := e.GetTo()
			vi := state.get(next)
			if vi.visited {
				continue
			}
			vi.visited = true
			state.setParent(next, curr)
			queue = append(queue, next)
		}
	}

	return searchResult{numSettled: state.numSettled}
}
