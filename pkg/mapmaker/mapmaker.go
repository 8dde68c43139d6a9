package mapmaker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/roadgraph/pkg"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type direction uint8

const (
	bothWays direction = iota
	forwardOnly
	backwardOnly
)

type wayRecord struct {
	nodes     []osm.NodeID
	name      string
	highway   string
	direction direction
}

// MapMaker turns an OpenStreetMap extract into a road map file, one line per road segment
// and travel direction.
type MapMaker struct {
	log    *zap.Logger
	bounds *Bounds
	ways   []wayRecord
	coords map[osm.NodeID]geo.GeographicPoint
}

// NewMapMaker. a nil bounds keeps every segment of the extract.
func NewMapMaker(bounds *Bounds, log *zap.Logger) *MapMaker {
	return &MapMaker{
		log:    log,
		bounds: bounds,
		coords: make(map[osm.NodeID]geo.GeographicPoint),
	}
}

// Parse reads the ways of the pbf file first, then the coordinates of the nodes they use.
func (m *MapMaker) Parse(ctx context.Context, pbfPath string) error {
	needed := make(map[osm.NodeID]struct{})
	err := scanFile(ctx, pbfPath, osm.TypeWay, func(o osm.Object) {
		way, ok := o.(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptWay(way.Tags) {
			return
		}
		rec := newWayRecord(way)
		for _, id := range rec.nodes {
			needed[id] = struct{}{}
		}
		m.ways = append(m.ways, rec)
		if len(m.ways)%50000 == 0 {
			m.log.Sugar().Infof("scanning openstreetmap ways: %d...", len(m.ways))
		}
	})
	if err != nil {
		return err
	}
	m.log.Info("road ways collected", zap.Int("ways", len(m.ways)), zap.Int("nodes", len(needed)))

	err = scanFile(ctx, pbfPath, osm.TypeNode, func(o osm.Object) {
		node, ok := o.(*osm.Node)
		if !ok {
			return
		}
		if _, ok := needed[node.ID]; !ok {
			return
		}
		m.coords[node.ID] = geo.NewGeographicPoint(node.Lat, node.Lon)
		if len(m.coords)%500000 == 0 {
			m.log.Sugar().Infof("scanning openstreetmap nodes: %d...", len(m.coords))
		}
	})
	if err != nil {
		return err
	}
	m.log.Info("node coordinates collected", zap.Int("nodes", len(m.coords)))
	return nil
}

// scanFile visits the objects of one type in the pbf file.
func scanFile(ctx context.Context, path string, objectType osm.Type, visit func(osm.Object)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, 0)
	defer scanner.Close()
	scanner.SkipNodes = objectType != osm.TypeNode
	scanner.SkipWays = objectType != osm.TypeWay
	scanner.SkipRelations = true
	for scanner.Scan() {
		visit(scanner.Object())
	}
	return scanner.Err()
}

// WriteRoadMap writes every collected segment and returns the number of lines written.
func (m *MapMaker) WriteRoadMap(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0
	for _, way := range m.ways {
		for _, line := range wayLines(way, m.coords, m.bounds) {
			if _, err := fmt.Fprintln(bw, line.String()); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, bw.Flush()
}

// CreateRoadMapFile converts pbfPath into a road map at out, bzip2 compressed when out ends in .bz2.
func CreateRoadMapFile(ctx context.Context, pbfPath, out string, bounds *Bounds, log *zap.Logger) error {
	m := NewMapMaker(bounds, log)
	if err := m.Parse(ctx, pbfPath); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.WriteCloser = nopCloser{f}
	if strings.HasSuffix(out, ".bz2") {
		w, err = bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
		if err != nil {
			return err
		}
	}
	n, err := m.WriteRoadMap(w)
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.Info("road map written", zap.String("out", out), zap.Int("lines", n))
	return f.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func acceptWay(tags osm.Tags) bool {
	if !pkg.IsRoadMapHighway(tags.Find("highway")) {
		return false
	}
	switch tags.Find("area") {
	case "yes":
		return false
	}
	switch tags.Find("access") {
	case "no", "private":
		return false
	}
	return true
}

func newWayRecord(way *osm.Way) wayRecord {
	nodes := make([]osm.NodeID, len(way.Nodes))
	for i, n := range way.Nodes {
		nodes[i] = n.ID
	}
	name := way.Tags.Find("name")
	if name == "" {
		name = way.Tags.Find("ref")
	}
	return wayRecord{
		nodes:     nodes,
		name:      cleanName(name),
		highway:   way.Tags.Find("highway"),
		direction: wayDirection(way.Tags),
	}
}

func wayDirection(tags osm.Tags) direction {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return forwardOnly
	case "-1", "reverse":
		return backwardOnly
	case "no", "false", "0":
		return bothWays
	}
	switch tags.Find("junction") {
	case "roundabout", "circular":
		return forwardOnly
	}
	if pkg.GetHighwayType(tags.Find("highway")) == pkg.MOTORWAY {
		return forwardOnly
	}
	return bothWays
}

// cleanName replaces characters the road map format cannot quote. Double quotes become single
// quotes and control characters become spaces.
func cleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '"':
			return '\''
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}

// wayLines splits a way into road lines. Nodes without coordinates or outside bounds cut the way,
// and repeated points are skipped.
func wayLines(way wayRecord, coords map[osm.NodeID]geo.GeographicPoint, bounds *Bounds) []graphloader.RoadLineInfo {
	lines := make([]graphloader.RoadLineInfo, 0, 2*len(way.nodes))
	var prev geo.GeographicPoint
	hasPrev := false
	for _, id := range way.nodes {
		p, ok := coords[id]
		if !ok || (bounds != nil && !bounds.Contains(p)) {
			hasPrev = false
			continue
		}
		if hasPrev && p == prev {
			continue
		}
		if hasPrev {
			if way.direction != backwardOnly {
				lines = append(lines, graphloader.NewRoadLineInfo(prev, p, way.name, way.highway))
			}
			if way.direction != forwardOnly {
				lines = append(lines, graphloader.NewRoadLineInfo(p, prev, way.name, way.highway))
			}
		}
		prev, hasPrev = p, true
	}
	return lines
}
