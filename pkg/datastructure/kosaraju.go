package datastructure

import (
	"sort"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
)

type Index uint32

// RunKosaraju. runs kosaraju's algorithm to find the strongly connected components (SCCs) of the road
// network. Components come largest first; vertices inside one keep insertion order.
func (g *MapGraph) RunKosaraju() [][]geo.GeographicPoint {
	n := len(g.vertices)
	index := make(map[geo.GeographicPoint]Index, n)
	for i, v := range g.vertices {
		index[v] = Index(i)
	}

	adj := make([][]Index, n)
	radj := make([][]Index, n)
	for i, v := range g.vertices {
		for _, e := range g.nodes[v].outEdges {
			to := index[e.to]
			adj[i] = append(adj[i], to)
			radj[to] = append(radj[to], Index(i))
		}
	}

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < Index(n); v++ {
		if !visited[v] {
			dfs(v, adj, &order, visited)
		}
	}
	order = util.ReverseG[Index](order)

	// reset visited
	visited = make([]bool, n)
	components := make([][]Index, 0, 10)
	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			dfs(v, radj, &component, visited)
			components = append(components, component)
		}
	}

	sccs := make([][]geo.GeographicPoint, len(components))
	for i, component := range components {
		sort.Slice(component, func(a, b int) bool { return component[a] < component[b] })
		sccs[i] = make([]geo.GeographicPoint, len(component))
		for j, v := range component {
			sccs[i][j] = g.vertices[v]
		}
	}
	sort.SliceStable(sccs, func(a, b int) bool { return len(sccs[a]) > len(sccs[b]) })
	return sccs
}

type dfsFrame struct {
	v    Index
	next int
}

// dfs appends the unvisited vertices reachable from v to output in post-order, walking an explicit
// stack instead of recursing.
func dfs(v Index, adj [][]Index, output *[]Index, visited []bool) {
	visited[v] = true
	stack := []dfsFrame{{v: v}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(adj[top.v]) {
			w := adj[top.v][top.next]
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, dfsFrame{v: w})
			}
			continue
		}
		*output = append(*output, top.v)
		stack = stack[:len(stack)-1]
	}
}
