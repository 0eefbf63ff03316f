package osm2map

import (
	"github.com/paulmach/osm"
)

// NodeTable is the index-addressed set of road nodes. A point gets its index the first time
// a road references it and keeps it for the rest of the run.
//
// Registration is not safe for concurrent use: the table must have a single owner.
type NodeTable struct {
	nodes []*NetworkNode
	index map[osm.NodeID]NetworkNodeID
}

func newNodeTable() *NodeTable {
	return &NodeTable{
		nodes: make([]*NetworkNode, 0),
		index: make(map[osm.NodeID]NetworkNodeID),
	}
}

// register returns index of given node, adding it to the table on first use
func (table *NodeTable) register(node *Node) NetworkNodeID {
	if id, ok := table.index[node.ID]; ok {
		return id
	}
	id := NetworkNodeID(len(table.nodes))
	table.nodes = append(table.nodes, networkNodeFromOSM(id, node))
	table.index[node.ID] = id
	return id
}

// Len returns number of registered nodes
func (table *NodeTable) Len() int {
	return len(table.nodes)
}

// Nodes returns registered nodes in index order
func (table *NodeTable) Nodes() []*NetworkNode {
	return table.nodes
}
