package routing

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm uint8

const (
	BFS Algorithm = iota
	DIJKSTRA
	ASTAR
)

var (
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrPathNotFound     = errors.New("no path found")
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DIJKSTRA:
		return "dijkstra"
	case ASTAR:
		return "astar"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm accepts bfs, dijkstra and astar (also a*), case insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return DIJKSTRA, nil
	case "astar", "a*", "a-star":
		return ASTAR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func Algorithms() []Algorithm {
	return []Algorithm{BFS, DIJKSTRA, ASTAR}
}
