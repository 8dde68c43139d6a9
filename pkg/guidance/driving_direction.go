package guidance

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

// Instruction is one maneuver of a route. Distance is the length in km driven after the maneuver,
// up to the next one.
type Instruction struct {
	Sign        TurnSign            `json:"-"`
	Maneuver    string              `json:"maneuver"`
	Description string              `json:"description"`
	StreetName  string              `json:"street_name"`
	Point       geo.GeographicPoint `json:"point"`
	Distance    float64             `json:"distance"`
	Bearing     float64             `json:"bearing"`
}

type DirectionBuilder struct {
	segments     routing.SegmentLookup
	instructions []Instruction
	prevStep     routing.RouteStep
	prevBearing  float64 // heading when arriving at the end of prevStep
}

// NewDirectionBuilder. segments may be nil, hops are then treated as straight lines.
func NewDirectionBuilder(segments routing.SegmentLookup) *DirectionBuilder {
	return &DirectionBuilder{segments: segments}
}

// GetDrivingDirections turns the hops of a route into instructions. Hops along the same street that
// only bend slightly are merged into the previous instruction.
func (db *DirectionBuilder) GetDrivingDirections(steps []routing.RouteStep) []Instruction {
	db.instructions = make([]Instruction, 0, len(steps)+1)
	if len(steps) == 0 {
		return db.instructions
	}
	for i, step := range steps {
		db.buildInstruction(i, step)
	}
	db.buildFinalInstruction()

	for i := range db.instructions {
		db.instructions[i].Maneuver = db.instructions[i].Sign.String()
		db.instructions[i].Description = getTurnDescription(db.instructions[i])
	}
	return db.instructions
}

func (db *DirectionBuilder) buildInstruction(i int, step routing.RouteStep) {
	departBearing, arriveBearing := legBearings(db.hopPoints(step))
	defer func() {
		db.prevStep = step
		db.prevBearing = arriveBearing
	}()

	if i == 0 {
		db.instructions = append(db.instructions, Instruction{
			Sign:       START,
			StreetName: step.RoadName,
			Point:      step.From,
			Distance:   step.Length,
			Bearing:    departBearing,
		})
		return
	}

	sign := getTurnDirection(db.prevBearing, departBearing)
	last := &db.instructions[len(db.instructions)-1]
	if isSameName(step.RoadName, db.prevStep.RoadName) && sign.isSlight() {
		last.Distance += step.Length
		return
	}

	db.instructions = append(db.instructions, Instruction{
		Sign:       sign,
		StreetName: step.RoadName,
		Point:      step.From,
		Distance:   step.Length,
		Bearing:    departBearing,
	})
}

func (db *DirectionBuilder) buildFinalInstruction() {
	db.instructions = append(db.instructions, Instruction{
		Sign:       FINISH,
		StreetName: db.prevStep.RoadName,
		Point:      db.prevStep.To,
		Bearing:    db.prevBearing,
	})
}

func (db *DirectionBuilder) hopPoints(step routing.RouteStep) []geo.GeographicPoint {
	if db.segments != nil {
		if seg, ok := db.segments.Between(step.From, step.To); ok {
			if pts, err := seg.Points(step.From, step.To); err == nil {
				return pts
			}
		}
	}
	return []geo.GeographicPoint{step.From, step.To}
}

func getTurnDescription(ins Instruction) string {
	streetName := ins.StreetName
	switch ins.Sign {
	case START:
		if isEmpty(streetName) {
			return fmt.Sprintf("Head %s", bearingToCompass(ins.Bearing))
		}
		return fmt.Sprintf("Head %s on %s", bearingToCompass(ins.Bearing), streetName)
	case FINISH:
		return "You have arrived at your destination"
	case CONTINUE_ON_STREET:
		if isEmpty(streetName) {
			return "Continue"
		}
		return fmt.Sprintf("Continue onto %s", streetName)
	}

	dir := getDirectionDescription(ins.Sign)
	if isEmpty(streetName) {
		return dir
	}
	return fmt.Sprintf("%s onto %s", dir, streetName)
}

func getDirectionDescription(sign TurnSign) string {
	switch sign {
	case U_TURN_RIGHT:
		return "Make U-turn right"
	case U_TURN_LEFT:
		return "Make U-turn left"
	case TURN_SHARP_LEFT:
		return "Turn sharp left"
	case TURN_LEFT:
		return "Turn left"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right"
	case TURN_RIGHT:
		return "Turn right"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right"
	}
	return "Make U-turn"
}

func isSameName(name1, name2 string) bool {
	// unnamed roads never match
	if isEmpty(name1) || isEmpty(name2) {
		return false
	}
	return name1 == name2
}

func isEmpty(str string) bool {
	return strings.TrimSpace(str) == ""
}
