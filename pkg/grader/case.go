package grader

import (
	"path/filepath"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

type MatchMode uint8

const (
	// MatchExact wants the same points in the same order.
	MatchExact MatchMode = iota
	// MatchSameNodes wants the same number of points, all of them on the expected path.
	MatchSameNodes
)

// Case loads MapFile, optionally checks its vertex and edge counts, and searches Start -> Goal.
type Case struct {
	Num         int
	Description string
	MapFile     string
	AnswerFile  string
	Start       geo.GeographicPoint
	Goal        geo.GeographicPoint
	Algorithm   routing.Algorithm
	CheckCounts bool
	Match       MatchMode
}

// numChecks is how many scored tests the case contributes.
func (c Case) numChecks() int {
	if c.CheckCounts {
		return 3
	}
	return 1
}

func (c Case) firstCheckNum() int {
	return (c.Num-1)*c.numChecks() + 1
}

func newCase(num int, dir, file, desc string, start, goal geo.GeographicPoint, algorithm routing.Algorithm,
	checkCounts bool, match MatchMode) Case {
	return Case{
		Num:         num,
		Description: desc,
		MapFile:     filepath.Join(dir, file),
		AnswerFile:  filepath.Join(dir, file+".answer"),
		Start:       start,
		Goal:        goal,
		Algorithm:   algorithm,
		CheckCounts: checkCounts,
		Match:       match,
	}
}

// SearchSuite checks loading and breadth first search on the maps in dir.
func SearchSuite(dir string) []Case {
	return []Case{
		newCase(1, dir, "map1.txt", "Straight line (0->1->2->3->...)",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(6, 6), routing.BFS, true, MatchExact),
		newCase(2, dir, "map2.txt", "Same as above (searching from 6 to 0)",
			geo.NewGeographicPoint(6, 6), geo.NewGeographicPoint(0, 0), routing.BFS, true, MatchExact),
		newCase(3, dir, "map3.txt", "Square graph - Each edge has 2 nodes",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(1, 2), routing.BFS, true, MatchExact),
		newCase(4, dir, "map4.txt", "Two disconnected one-way roads",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(5, 6), routing.BFS, true, MatchExact),
	}
}

// AStarSuite checks A* on the maps in dir.
func AStarSuite(dir string) []Case {
	return []Case{
		newCase(1, dir, "map1.txt", "MAP: Straight line (-3 <- -2 <- -1 <- 0 -> 1 -> 2-> 3 ->...)",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(6, 6), routing.ASTAR, false, MatchSameNodes),
		newCase(2, dir, "map2.txt", "MAP: Near straight route against a long detour",
			geo.NewGeographicPoint(7, 3), geo.NewGeographicPoint(4, -1), routing.ASTAR, false, MatchSameNodes),
		newCase(3, dir, "map3.txt", "MAP: Right triangle (with a little detour)",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(0, 4), routing.ASTAR, false, MatchSameNodes),
		newCase(4, dir, "map4.txt", "MAP: Goal behind a one-way road",
			geo.NewGeographicPoint(0, 0), geo.NewGeographicPoint(0, 2), routing.ASTAR, false, MatchSameNodes),
	}
}
