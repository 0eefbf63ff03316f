package osm2map

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a loaded survey point. Immutable once loaded except for its projected position
type Node struct {
	ID   osm.NodeID
	Geom GeoPoint
	Tags osm.Tags

	local       orb.Point
	controlType ControlType
}

// ControlType is the intersection behavior marker of a road node
type ControlType uint16

const (
	CONTROL_NONE = ControlType(iota)
	CONTROL_SIGNAL
	CONTROL_STOP
)

func (iotaIdx ControlType) String() string {
	return [...]string{"none", "signal", "stop"}[iotaIdx]
}

func controlTypeFromTags(tags osm.Tags) ControlType {
	if controlType, ok := controlTypeByHighway[tags.Find("highway")]; ok {
		return controlType
	}
	return CONTROL_NONE
}
