package guidance

import (
	"math"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

type TurnSign int

const (
	U_TURN_UNKNOWN     TurnSign = -999
	U_TURN_LEFT        TurnSign = -8
	TURN_SHARP_LEFT    TurnSign = -3
	TURN_LEFT          TurnSign = -2
	TURN_SLIGHT_LEFT   TurnSign = -1
	CONTINUE_ON_STREET TurnSign = 0
	TURN_SLIGHT_RIGHT  TurnSign = 1
	TURN_RIGHT         TurnSign = 2
	TURN_SHARP_RIGHT   TurnSign = 3
	FINISH             TurnSign = 4
	U_TURN_RIGHT       TurnSign = 8
	START              TurnSign = 101
)

func (s TurnSign) String() string {
	switch s {
	case U_TURN_UNKNOWN:
		return "U_TURN"
	case U_TURN_LEFT:
		return "U_TURN_LEFT"
	case U_TURN_RIGHT:
		return "U_TURN_RIGHT"
	case TURN_SHARP_LEFT:
		return "TURN_SHARP_LEFT"
	case TURN_LEFT:
		return "TURN_LEFT"
	case TURN_SLIGHT_LEFT:
		return "TURN_SLIGHT_LEFT"
	case CONTINUE_ON_STREET:
		return "CONTINUE_ON_STREET"
	case TURN_SLIGHT_RIGHT:
		return "TURN_SLIGHT_RIGHT"
	case TURN_RIGHT:
		return "TURN_RIGHT"
	case TURN_SHARP_RIGHT:
		return "TURN_SHARP_RIGHT"
	case FINISH:
		return "FINISH"
	case START:
		return "START"
	}
	return "UNKNOWN"
}

func (s TurnSign) isSlight() bool {
	return s == CONTINUE_ON_STREET || s == TURN_SLIGHT_LEFT || s == TURN_SLIGHT_RIGHT
}

// deltaBearing. signed change of heading in degrees, in (-180, 180]. positive is clockwise (right).
func deltaBearing(prevBearing, bearing float64) float64 {
	delta := math.Mod(bearing-prevBearing, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

func getTurnDirection(prevBearing, bearing float64) TurnSign {
	delta := deltaBearing(prevBearing, bearing)
	deltaDegree := math.Abs(delta)
	switch {
	case deltaDegree < 12:
		return CONTINUE_ON_STREET
	case deltaDegree < 40:
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	case deltaDegree < 105:
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	case deltaDegree < 165:
		if delta < 0 {
			return TURN_SHARP_LEFT
		}
		return TURN_SHARP_RIGHT
	case delta < 0:
		return U_TURN_LEFT
	case delta > 0:
		return U_TURN_RIGHT
	}
	return U_TURN_UNKNOWN
}

func bearingToCompass(bearing float64) string {
	bearing = math.Mod(bearing+360, 360)
	switch {
	case bearing < 22.5:
		return "North"
	case bearing < 67.5:
		return "North East"
	case bearing < 112.5:
		return "East"
	case bearing < 157.5:
		return "South East"
	case bearing < 202.5:
		return "South"
	case bearing < 247.5:
		return "South West"
	case bearing < 292.5:
		return "West"
	case bearing < 337.5:
		return "North West"
	}
	return "North"
}

// legBearings. bearing leaving the first point of a hop and bearing arriving at its last point.
func legBearings(points []geo.GeographicPoint) (float64, float64) {
	n := len(points)
	return geo.BearingTo(points[0], points[1]), geo.BearingTo(points[n-2], points[n-1])
}
