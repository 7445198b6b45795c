package network

import "github.com/katalvlaran/hydronet/hydraulics"

// Node is a junction where pipes meet. Nodes are derived by the Network
// from pipe endpoints — one per distinct identifier — and hold non-owning
// references to their incident pipes. The external flow is signed:
// positive injects fluid into the network, negative withdraws it.
type Node struct {
	id       hydraulics.NodeID
	incident []*hydraulics.Pipe
	extFlow  float64 // m³/s
}

// newNode creates a node with its own fresh incident slice. Each node owns
// an independent collection; incident pipes are appended as the Network
// learns about them.
func newNode(id hydraulics.NodeID) *Node {
	return &Node{id: id, incident: make([]*hydraulics.Pipe, 0, 4)}
}

// ID returns the node identifier.
func (n *Node) ID() hydraulics.NodeID { return n.id }

// ExternalFlow returns the signed external flow, m³/s.
func (n *Node) ExternalFlow() float64 { return n.extFlow }

// Incident returns the pipes meeting at this node. The slice is shared
// with the node; callers must not mutate it.
func (n *Node) Incident() []*hydraulics.Pipe { return n.incident }

// Degree returns the number of incident pipes.
func (n *Node) Degree() int { return len(n.incident) }

// NetFlowRate returns the mass-balance residual at this node, m³/s: the
// external flow plus each incident pipe's signed contribution. At a
// steady-state solution it is zero. Pure read of current pipe state.
//
// Complexity: O(degree).
func (n *Node) NetFlowRate() float64 {
	q := n.extFlow
	for _, p := range n.incident {
		q += p.FlowInto(n.id)
	}

	return q
}

func (n *Node) attach(p *hydraulics.Pipe) { n.incident = append(n.incident, p) }
