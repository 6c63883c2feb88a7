package domain

import (
	"strings"

	"github.com/paulmach/orb"
)

// RoadClass is the styling category of a road segment.
type RoadClass int

const (
	RoadDefault RoadClass = iota
	RoadResidential
	RoadTertiary
	RoadSecondary
	RoadPrimary
	RoadMotorway
)

func (c RoadClass) String() string {
	switch c {
	case RoadMotorway:
		return "motorway"
	case RoadPrimary:
		return "primary"
	case RoadSecondary:
		return "secondary"
	case RoadTertiary:
		return "tertiary"
	case RoadResidential:
		return "residential"
	}
	return "default"
}

// RoadStyle is the theme color key and stroke width (points) of a class.
type RoadStyle struct {
	ColorKey string
	Width    float64
}

var roadStyles = map[RoadClass]RoadStyle{
	RoadMotorway:    {ColorKey: ThemeKeyRoadMotorway, Width: 1.2},
	RoadPrimary:     {ColorKey: ThemeKeyRoadPrimary, Width: 1.0},
	RoadSecondary:   {ColorKey: ThemeKeyRoadSecondary, Width: 0.8},
	RoadTertiary:    {ColorKey: ThemeKeyRoadTertiary, Width: 0.6},
	RoadResidential: {ColorKey: ThemeKeyRoadResidential, Width: 0.4},
	RoadDefault:     {ColorKey: ThemeKeyRoadDefault, Width: 0.4},
}

// Style returns the fixed style of the class.
func (c RoadClass) Style() RoadStyle {
	return roadStyles[c]
}

// ClassifyHighway maps a highway tag to its road class. Multi-valued tags
// ("primary;secondary") are classified by their first value. Rules are
// applied in priority order; the motorway substring rule wins over the
// exact matches below it.
func ClassifyHighway(tag string) RoadClass {
	if i := strings.IndexByte(tag, ';'); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.TrimSpace(tag)

	switch {
	case strings.Contains(tag, "motorway"):
		return RoadMotorway
	case tag == "trunk" || tag == "primary":
		return RoadPrimary
	case tag == "secondary":
		return RoadSecondary
	case tag == "tertiary":
		return RoadTertiary
	case tag == "residential" || tag == "living_street" || tag == "unclassified":
		return RoadResidential
	}
	return RoadDefault
}

// StyledSegment is a road geometry with its resolved stroke.
type StyledSegment struct {
	Geometry orb.Geometry
	Class    RoadClass
	Color    string
	Width    float64
}
