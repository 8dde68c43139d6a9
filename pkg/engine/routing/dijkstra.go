package routing

import (
	da "github.com/lintang-b-s/roadgraph/pkg/datastructure"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

type searchResult struct {
	path       []geo.GeographicPoint
	found      bool
	numSettled int
	err        error
}

type heuristicFunc func(v geo.GeographicPoint) float64

func zeroHeuristic(geo.GeographicPoint) float64 {
	return 0
}

// greatCircleHeuristic never overestimates: a road between two points is at least as long
// as the great-circle distance between them.
func greatCircleHeuristic(goal geo.GeographicPoint) heuristicFunc {
	return func(v geo.GeographicPoint) float64 {
		return v.Distance(goal)
	}
}

// Dijkstra returns a shortest path by total road length from start to goal.
func (re *RoutingEngine) Dijkstra(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool) {
	res := re.bestFirstSearch(start, goal, zeroHeuristic, buildSearchOptions(opts))
	return res.path, res.found
}

// AStarSearch returns a shortest path by total road length, guided by the great-circle distance to goal.
func (re *RoutingEngine) AStarSearch(start, goal geo.GeographicPoint, opts ...SearchOption) ([]geo.GeographicPoint, bool) {
	res := re.bestFirstSearch(start, goal, greatCircleHeuristic(goal), buildSearchOptions(opts))
	return res.path, res.found
}

// bestFirstSearch is dijkstra when heuristic is zero and A* otherwise. dist is always the length
// from start, the queue is ordered by dist + heuristic. A node is settled on its first extraction
// and never expanded again.
func (re *RoutingEngine) bestFirstSearch(start, goal geo.GeographicPoint, heuristic heuristicFunc,
	o searchOptions) searchResult {
	if !re.graph.HasVertex(start) || !re.graph.HasVertex(goal) {
		return searchResult{}
	}

	state := newSearchState()
	pq := da.NewFourAryHeap[geo.GeographicPoint]()

	sInfo := state.get(start)
	sInfo.dist = 0
	sInfo.heapNode = da.NewPriorityQueueNode(heuristic(start), start)
	pq.Insert(sInfo.heapNode)

	for !pq.IsEmpty() {
		if state.stopped(&o) {
			return searchResult{numSettled: state.numSettled, err: state.err}
		}

		node, _ := pq.ExtractMin()
		u := node.GetItem()
		uInfo := state.get(u)
		if uInfo.visited {
			continue
		}
		uInfo.visited = true
		state.numSettled++
		o.onVisit(u)

		if u == goal {
			return searchResult{path: state.path(start, goal), found: true, numSettled: state.numSettled}
		}

		for _, e := range re.graph.OutEdges(u) {
			v := e.GetTo()
			vInfo := state.get(v)
			if vInfo.visited {
				continue
			}

			newDist := uInfo.dist + e.GetLength()
			if newDist >= vInfo.dist {
				continue
			}
			vInfo.dist = newDist
			state.setParent(v, u)

			priority := newDist + heuristic(v)
			if vInfo.heapNode != nil && vInfo.heapNode.GetPos() >= 0 {
				if err := pq.DecreaseKey(vInfo.heapNode, priority); err == nil {
					continue
				}
			}
			vInfo.heapNode = da.NewPriorityQueueNode(priority, v)
			pq.Insert(vInfo.heapNode)
		}
	}

	return searchResult{numSettled: state.numSettled}
}

func buildSearchOptions(opts []SearchOption) searchOptions {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
