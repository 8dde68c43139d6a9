package graphloader

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

var (
	ErrMalformedRecord = errors.New("malformed road segment record")
	ErrBrokenChain     = errors.New("pass-through chain does not reach an intersection")
)

// a token is either a run of non-blank, non-quote characters or a double quoted string
var tokenSplitter = regexp.MustCompile(`[^\s"']+|"([^"]*)"`)

const recordTokens = 6

// RoadLineInfo is one directed input record: point1 -> point2 along roadName.
type RoadLineInfo struct {
	point1   geo.GeographicPoint
	point2   geo.GeographicPoint
	roadName string
	roadType string
}

func NewRoadLineInfo(point1, point2 geo.GeographicPoint, roadName, roadType string) RoadLineInfo {
	return RoadLineInfo{
		point1:   point1,
		point2:   point2,
		roadName: roadName,
		roadType: roadType,
	}
}

func (r RoadLineInfo) GetPoint1() geo.GeographicPoint {
	return r.point1
}

func (r RoadLineInfo) GetPoint2() geo.GeographicPoint {
	return r.point2
}

func (r RoadLineInfo) GetRoadName() string {
	return r.roadName
}

func (r RoadLineInfo) GetRoadType() string {
	return r.roadType
}

// IsReverse reports whether other runs between the same two points in the opposite direction
// along the same road.
func (r RoadLineInfo) IsReverse(other RoadLineInfo) bool {
	return r.point1 == other.point2 && r.point2 == other.point1 &&
		r.roadName == other.roadName && r.roadType == other.roadType
}

// swappedEndpoints only compares endpoints.
func (r RoadLineInfo) swappedEndpoints(other RoadLineInfo) bool {
	return r.point1 == other.point2 && r.point2 == other.point1
}

// String renders the record in the map file format. The name goes between double quotes without
// escaping; a double quote inside it is written as a single quote.
func (r RoadLineInfo) String() string {
	return fmt.Sprintf(`%s %s "%s" %s`, r.point1.LineString(), r.point2.LineString(),
		strings.ReplaceAll(r.roadName, `"`, "'"), r.roadType)
}

func splitTokens(line string) []string {
	matches := tokenSplitter.FindAllStringSubmatch(line, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m[0]) > 0 && m[0][0] == '"' {
			tokens = append(tokens, m[1])
		} else {
			tokens = append(tokens, m[0])
		}
	}
	return tokens
}

// ParseRoadLine parses `lat1 lon1 lat2 lon2 roadName roadType`. roadName may be double quoted.
func ParseRoadLine(line string) (RoadLineInfo, error) {
	tokens := splitTokens(line)
	if len(tokens) != recordTokens {
		return RoadLineInfo{}, fmt.Errorf("%w: want %d tokens, got %d", ErrMalformedRecord, recordTokens, len(tokens))
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return RoadLineInfo{}, fmt.Errorf("%w: token %q: %v", ErrMalformedRecord, tokens[i], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return RoadLineInfo{}, fmt.Errorf("%w: token %q is not a finite number", ErrMalformedRecord, tokens[i])
		}
		coords[i] = v
	}

	return NewRoadLineInfo(
		geo.NewGeographicPoint(coords[0], coords[1]),
		geo.NewGeographicPoint(coords[2], coords[3]),
		tokens[4], tokens[5],
	), nil
}
