package osm2map

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Nodes stuff */

type NetworkNodeID int

// NetworkNode is an entry of the node table: a projected point used by road geometry
type NetworkNode struct {
	ID          NetworkNodeID
	OSMNodeID   osm.NodeID
	ControlType ControlType
	Geom        orb.Point
}

func networkNodeFromOSM(id NetworkNodeID, nodeOSM *Node) *NetworkNode {
	return &NetworkNode{
		ID:          id,
		OSMNodeID:   nodeOSM.ID,
		ControlType: nodeOSM.controlType,
		Geom:        nodeOSM.local,
	}
}
