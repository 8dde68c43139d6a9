package mapmaker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
)

var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is a lat/lon box, inclusive on every side.
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// ParseBounds reads "south,west,north,east" in decimal degrees.
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, util.WrapErrorf(ErrInvalidBounds, util.ErrBadParamInput,
			"want south,west,north,east, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := util.StringToFloat64(strings.TrimSpace(p))
		if err != nil {
			return Bounds{}, util.WrapErrorf(ErrInvalidBounds, util.ErrBadParamInput, "bound %q", p)
		}
		vals[i] = v
	}
	b := Bounds{South: vals[0], West: vals[1], North: vals[2], East: vals[3]}
	if b.South > b.North || b.West > b.East {
		return Bounds{}, util.WrapErrorf(ErrInvalidBounds, util.ErrBadParamInput, "empty box %s", b)
	}
	return b, nil
}

func (b Bounds) Contains(p geo.GeographicPoint) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lon >= b.West && p.Lon <= b.East
}

func (b Bounds) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", b.South, b.West, b.North, b.East)
}
