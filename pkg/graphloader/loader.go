package graphloader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/roadgraph/pkg/datastructure"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"go.uber.org/zap"
)

// Edge is one reconstructed road between two intersections.
type Edge struct {
	From     geo.GeographicPoint
	To       geo.GeographicPoint
	Geometry []geo.GeographicPoint
	RoadName string
	RoadType string
	Length   float64
}

// Result of a load. Segments is nil unless WithSegments is given.
type Result struct {
	Graph         *datastructure.MapGraph
	Segments      SegmentMap
	Intersections []geo.GeographicPoint
	Edges         []Edge
}

type options struct {
	withSegments bool
	logger       *zap.Logger
}

type Option func(*options)

// WithSegments also builds the per-intersection road segment map.
func WithSegments() Option {
	return func(o *options) {
		o.withSegments = true
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// LoadRoadMapFile loads a map file. Files ending in .bz2 are decompressed on the fly.
func LoadRoadMapFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "open map file %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "open bzip2 map file %s", path)
		}
		defer bz.Close()
		r = bz
	}
	return LoadRoadMap(r, opts...)
}

// LoadRoadMap reads directed road segment records from r, collapses pass-through points and
// returns the intersection graph. Any malformed record fails the whole load.
func LoadRoadMap(r io.Reader, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	pm, err := buildPointMap(r, o.logger)
	if err != nil {
		return nil, err
	}

	intersections := pm.findIntersections()
	o.logger.Sugar().Infof("found %d intersections out of %d points", len(intersections), pm.numPoints())

	result := &Result{
		Graph:         datastructure.NewMapGraph(),
		Intersections: intersections,
		Edges:         make([]Edge, 0),
	}
	if o.withSegments {
		result.Segments = make(SegmentMap)
	}

	isNode := make(map[geo.GeographicPoint]struct{}, len(intersections))
	for _, p := range intersections {
		result.Graph.AddVertex(p)
		isNode[p] = struct{}{}
	}

	for _, start := range intersections {
		for _, line := range pm.outgoing(start) {
			edge, err := pm.walkChain(line, isNode)
			if err != nil {
				return nil, err
			}

			if err := result.Graph.AddEdge(edge.From, edge.To, edge.RoadName, edge.RoadType, edge.Length); err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "road %q from %s", edge.RoadName, edge.From)
			}
			result.Edges = append(result.Edges, edge)

			if result.Segments != nil {
				result.Segments.add(geo.NewRoadSegment(edge.From, edge.To, edge.Geometry, edge.RoadName,
					edge.RoadType, edge.Length))
			}
		}
	}

	o.logger.Sugar().Infof("road network loaded: %d vertices, %d edges", result.Graph.NumVertices(),
		result.Graph.NumEdges())
	return result, nil
}

func buildPointMap(r io.Reader, logger *zap.Logger) (*pointMap, error) {
	pm := newPointMap()
	br := bufio.NewReader(r)

	lineNumber := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "read road segments")
		}
		lineNumber++

		if strings.TrimSpace(line) == "" {
			continue
		}

		info, err := ParseRoadLine(line)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNumber)
		}
		pm.add(info)

		if lineNumber%100000 == 0 {
			logger.Sugar().Infof("reading road segments: %d...", lineNumber)
		}
	}
	return pm, nil
}

// walkChain follows line through pass-through points until it reaches an intersection.
// At a pass-through point with two outgoing lines the one not leading back is taken.
func (pm *pointMap) walkChain(line RoadLineInfo, isNode map[geo.GeographicPoint]struct{}) (Edge, error) {
	geometry := make([]geo.GeographicPoint, 0)
	prev := line.point1
	curr := line.point2

	for steps := 0; ; steps++ {
		if _, ok := isNode[curr]; ok {
			break
		}
		if steps > pm.numPoints() {
			return Edge{}, util.WrapErrorf(ErrBrokenChain, util.ErrBadParamInput,
				"chain starting at %s loops through pass-through points", line.point1)
		}

		nextLines := pm.outgoing(curr)
		if len(nextLines) == 0 || len(nextLines) > 2 {
			return Edge{}, util.WrapErrorf(ErrBrokenChain, util.ErrBadParamInput,
				"pass-through point %s has %d outgoing lines", curr, len(nextLines))
		}
		geometry = append(geometry, curr)

		next := nextLines[0]
		if len(nextLines) == 2 && next.point2 == prev {
			next = nextLines[1]
		}
		prev = curr
		curr = next.point2
	}

	return Edge{
		From:     line.point1,
		To:       curr,
		Geometry: geometry,
		RoadName: line.roadName,
		RoadType: line.roadType,
		Length:   geo.RoadLength(line.point1, curr, geometry),
	}, nil
}

// WriteIntersections writes one `lat lon lat lon` line per reconstructed edge.
func WriteIntersections(w io.Writer, result *Result) error {
	bw := bufio.NewWriter(w)
	for _, e := range result.Edges {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From.LineString(), e.To.LineString()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CreateIntersectionsFile loads mapFile and writes its edges to intersectionsFile.
func CreateIntersectionsFile(mapFile, intersectionsFile string, opts ...Option) error {
	result, err := LoadRoadMapFile(mapFile, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(intersectionsFile)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "create %s", intersectionsFile)
	}
	defer f.Close()

	if err := WriteIntersections(f, result); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "write %s", intersectionsFile)
	}
	return nil
}
