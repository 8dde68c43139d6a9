package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
)

var (
	ErrVertexNotFound    = errors.New("edge endpoint is not a vertex of the graph")
	ErrNonPositiveLength = errors.New("edge length must be positive")
)

// MapEdge is a directed road between two intersections. All five fields make up its identity.
type MapEdge struct {
	from     geo.GeographicPoint
	to       geo.GeographicPoint
	roadName string
	roadType string
	length   float64
}

func NewMapEdge(from, to geo.GeographicPoint, roadName, roadType string, length float64) MapEdge {
	return MapEdge{
		from:     from,
		to:       to,
		roadName: roadName,
		roadType: roadType,
		length:   length,
	}
}

func (e MapEdge) GetFrom() geo.GeographicPoint {
	return e.from
}

func (e MapEdge) GetTo() geo.GeographicPoint {
	return e.to
}

func (e MapEdge) GetRoadName() string {
	return e.roadName
}

func (e MapEdge) GetRoadType() string {
	return e.roadType
}

// GetLength. length in km
func (e MapEdge) GetLength() float64 {
	return e.length
}

func (e MapEdge) String() string {
	return fmt.Sprintf("%s -> %s (%s, %s, %.6f km)", e.from, e.to, e.roadName, e.roadType, e.length)
}

// MapNode is an intersection with its outgoing edges in insertion order.
type MapNode struct {
	location geo.GeographicPoint
	outEdges []MapEdge
}

func newMapNode(location geo.GeographicPoint) *MapNode {
	return &MapNode{
		location: location,
		outEdges: make([]MapEdge, 0, 2),
	}
}

func (n *MapNode) GetLocation() geo.GeographicPoint {
	return n.location
}

func (n *MapNode) GetOutEdges() []MapEdge {
	return n.outEdges
}

func (n *MapNode) GetOutDegree() int {
	return len(n.outEdges)
}

// MapGraph is a directed road network whose vertices are intersections.
// It holds no per-search state, so any number of searches may read it at once.
type MapGraph struct {
	nodes    map[geo.GeographicPoint]*MapNode
	vertices []geo.GeographicPoint
	edges    map[MapEdge]struct{}
}

func NewMapGraph() *MapGraph {
	return &MapGraph{
		nodes:    make(map[geo.GeographicPoint]*MapNode),
		vertices: make([]geo.GeographicPoint, 0),
		edges:    make(map[MapEdge]struct{}),
	}
}

// AddVertex adds location as a vertex. Returns false when it is already present.
func (g *MapGraph) AddVertex(location geo.GeographicPoint) bool {
	if _, ok := g.nodes[location]; ok {
		return false
	}
	g.nodes[location] = newMapNode(location)
	g.vertices = append(g.vertices, location)
	return true
}

// AddEdge adds a directed edge. Both endpoints must already be vertices and length must be positive;
// otherwise the graph is left untouched. Adding an edge identical in every field is a no-op.
func (g *MapGraph) AddEdge(from, to geo.GeographicPoint, roadName, roadType string, length float64) error {
	if !(length > 0) {
		return util.WrapErrorf(ErrNonPositiveLength, util.ErrBadParamInput,
			"edge %s -> %s has length %v", from, to, length)
	}
	fromNode, ok := g.nodes[from]
	if !ok {
		return util.WrapErrorf(ErrVertexNotFound, util.ErrBadParamInput, "edge start %s", from)
	}
	if _, ok := g.nodes[to]; !ok {
		return util.WrapErrorf(ErrVertexNotFound, util.ErrBadParamInput, "edge end %s", to)
	}

	edge := NewMapEdge(from, to, roadName, roadType, length)
	if _, ok := g.edges[edge]; ok {
		return nil
	}
	g.edges[edge] = struct{}{}
	fromNode.outEdges = append(fromNode.outEdges, edge)
	return nil
}

func (g *MapGraph) NumVertices() int {
	return len(g.nodes)
}

func (g *MapGraph) NumEdges() int {
	return len(g.edges)
}

// Vertices returns the vertices in the order they were added.
func (g *MapGraph) Vertices() []geo.GeographicPoint {
	vertices := make([]geo.GeographicPoint, len(g.vertices))
	copy(vertices, g.vertices)
	return vertices
}

func (g *MapGraph) HasVertex(location geo.GeographicPoint) bool {
	_, ok := g.nodes[location]
	return ok
}

func (g *MapGraph) GetNode(location geo.GeographicPoint) (*MapNode, bool) {
	node, ok := g.nodes[location]
	return node, ok
}

func (g *MapGraph) OutEdges(location geo.GeographicPoint) []MapEdge {
	node, ok := g.nodes[location]
	if !ok {
		return nil
	}
	return node.outEdges
}

// Neighbors returns the distinct heads of location's outgoing edges.
func (g *MapGraph) Neighbors(location geo.GeographicPoint) []geo.GeographicPoint {
	edges := g.OutEdges(location)
	neighbors := make([]geo.GeographicPoint, 0, len(edges))
	seen := make(map[geo.GeographicPoint]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.to]; ok {
			continue
		}
		seen[e.to] = struct{}{}
		neighbors = append(neighbors, e.to)
	}
	return neighbors
}

// ForEdges calls handle for every edge, grouped by source vertex in vertex order.
func (g *MapGraph) ForEdges(handle func(e MapEdge)) {
	for _, v := range g.vertices {
		for _, e := range g.nodes[v].outEdges {
			handle(e)
		}
	}
}

// EdgeBetween returns the shortest edge from -> to.
func (g *MapGraph) EdgeBetween(from, to geo.GeographicPoint) (MapEdge, bool) {
	var (
		best  MapEdge
		found bool
	)
	for _, e := range g.OutEdges(from) {
		if e.to != to {
			continue
		}
		if !found || e.length < best.length {
			best = e
			found = true
		}
	}
	return best, found
}

// PathLength sums the shortest edge of every hop in path. Returns false if a hop has no edge.
func (g *MapGraph) PathLength(path []geo.GeographicPoint) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += e.length
	}
	return total, true
}
