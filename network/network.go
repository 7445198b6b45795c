package network

import (
	"math"

	"github.com/katalvlaran/hydronet/hydraulics"
)

const (
	// litersPerCubicMeter converts boundary flows (L/s) to the internal
	// volumetric unit (m³/s).
	litersPerCubicMeter = 1000.0

	// mmPerMeter converts stored diameters (m) back to the constructor
	// unit (mm) when replaying pipes in Clone.
	mmPerMeter = 1000.0

	// extFlowBalanceTol bounds |Σ external flows| (m³/s) at validation.
	// Well below any physically meaningful flow, well above FP noise from
	// summing boundary values.
	extFlowBalanceTol = 1e-9
)

// Network owns the pipe collection, the nodes derived from pipe endpoints,
// the declared loops, and the shared fluid. It is the single owner of
// every pipe; nodes and loops hold non-owning references into the same
// collection. Construction is not safe for concurrent use; a fully built
// network is read-only apart from per-pipe flow state written by a solver.
type Network struct {
	fluid  *hydraulics.Fluid
	pipes  []*hydraulics.Pipe
	byName map[string]*hydraulics.Pipe
	nodes  []*Node
	byID   map[hydraulics.NodeID]*Node
	loops  []*Loop
}

// New creates an empty network over the given fluid; a nil fluid defaults
// to water. Every collection is freshly allocated per instance.
func New(fluid *hydraulics.Fluid) *Network {
	if fluid == nil {
		fluid = hydraulics.Water()
	}

	return &Network{
		fluid:  fluid,
		pipes:  make([]*hydraulics.Pipe, 0, 8),
		byName: make(map[string]*hydraulics.Pipe, 8),
		nodes:  make([]*Node, 0, 8),
		byID:   make(map[hydraulics.NodeID]*Node, 8),
		loops:  make([]*Loop, 0, 2),
	}
}

// AddPipe constructs a pipe between u and v (order-independent; endpoints
// are canonicalized) and registers it. Each endpoint not seen before
// derives a new node, so nodes are never supplied by the caller.
//
// Units: lengthM and roughnessM in meters, diameterMM in millimeters.
//
// Errors: pipe construction errors from hydraulics, ErrDuplicatePipe for a
// repeated canonical endpoint pair.
//
// Complexity: O(1) amortized.
func (nw *Network) AddPipe(u, v hydraulics.NodeID, lengthM, diameterMM, roughnessM float64) (*hydraulics.Pipe, error) {
	p, err := hydraulics.NewPipe(u, v, lengthM, diameterMM, roughnessM, nw.fluid)
	if err != nil {
		return nil, err
	}
	if _, ok := nw.byName[p.Name()]; ok {
		return nil, ErrDuplicatePipe
	}

	nw.pipes = append(nw.pipes, p)
	nw.byName[p.Name()] = p
	nw.nodeFor(p.A()).attach(p)
	nw.nodeFor(p.B()).attach(p)

	return p, nil
}

// nodeFor returns the node for id, deriving it on first encounter.
func (nw *Network) nodeFor(id hydraulics.NodeID) *Node {
	if n, ok := nw.byID[id]; ok {
		return n
	}
	n := newNode(id)
	nw.nodes = append(nw.nodes, n)
	nw.byID[id] = n

	return n
}

// SetExternalFlow assigns the signed external flow at an existing node.
// Boundary unit: L/s (positive = injection, negative = withdrawal);
// stored internally in m³/s.
//
// Errors: ErrUnknownNode.
func (nw *Network) SetExternalFlow(id hydraulics.NodeID, lps float64) error {
	n, ok := nw.byID[id]
	if !ok {
		return ErrUnknownNode
	}
	n.extFlow = lps / litersPerCubicMeter

	return nil
}

// AddLoop declares a closed loop as an ordered sequence of existing pipe
// names (canonical "a-b" form). The pipe chain is verified to close back
// on its starting node immediately, so a mis-ordered loop is rejected here
// rather than silently corrupting head-loss signs during solving.
//
// Errors: ErrUnknownPipe, ErrDuplicateLoop, ErrOpenLoop.
//
// Complexity: O(len(pipeNames)).
func (nw *Network) AddLoop(name string, pipeNames ...string) (*Loop, error) {
	for _, l := range nw.loops {
		if l.id == name {
			return nil, ErrDuplicateLoop
		}
	}

	pipes := make([]*hydraulics.Pipe, 0, len(pipeNames))
	for _, pn := range pipeNames {
		p, ok := nw.byName[pn]
		if !ok {
			return nil, ErrUnknownPipe
		}
		pipes = append(pipes, p)
	}
	if !verifyClosed(pipes) {
		return nil, ErrOpenLoop
	}

	l := &Loop{id: name, pipes: pipes}
	nw.loops = append(nw.loops, l)

	return l, nil
}

// Validate checks the fully built network for configuration errors that
// would make a solve meaningless:
//
//   - ErrEmptyNetwork — no pipes at all.
//   - ErrUnbalancedSystem — loop count ≠ P−N+1, the cycle-space dimension
//     of a connected network; fewer loops leave the flow distribution
//     underdetermined, more make the declared set linearly dependent.
//   - ErrUnbalancedExternalFlow — external flows do not sum to ≈ 0, so no
//     steady state exists.
//
// Complexity: O(N).
func (nw *Network) Validate() error {
	if len(nw.pipes) == 0 {
		return ErrEmptyNetwork
	}
	if len(nw.loops) != len(nw.pipes)-len(nw.nodes)+1 {
		return ErrUnbalancedSystem
	}

	var ext float64
	for _, n := range nw.nodes {
		ext += n.extFlow
	}
	if math.Abs(ext) > extFlowBalanceTol {
		return ErrUnbalancedExternalFlow
	}

	return nil
}

// Fluid returns the shared fluid.
func (nw *Network) Fluid() *hydraulics.Fluid { return nw.fluid }

// Pipes returns the pipes in insertion order. Shared slice; do not mutate.
func (nw *Network) Pipes() []*hydraulics.Pipe { return nw.pipes }

// Nodes returns the nodes in derivation order. Shared slice; do not mutate.
func (nw *Network) Nodes() []*Node { return nw.nodes }

// Loops returns the loops in declaration order. Shared slice; do not mutate.
func (nw *Network) Loops() []*Loop { return nw.loops }

// Pipe returns the pipe with the canonical name, or nil.
func (nw *Network) Pipe(name string) *hydraulics.Pipe { return nw.byName[name] }

// Node returns the node with the given identifier, or nil.
func (nw *Network) Node(id hydraulics.NodeID) *Node { return nw.byID[id] }

// Clone returns a deep copy of the network: fresh pipes (including current
// flow state), nodes, and loops, sharing only the immutable fluid. A clone
// gives a concurrent residual evaluation an isolated pipe state, so
// finite-difference perturbation columns never race on shared segments.
//
// Complexity: O(P + N + Σ loop lengths).
func (nw *Network) Clone() *Network {
	c := New(nw.fluid)
	for _, p := range nw.pipes {
		// Construction cannot fail: p was already validated once.
		cp, _ := c.AddPipe(p.A(), p.B(), p.Length(), p.Diameter()*mmPerMeter, p.Roughness())
		cp.SetFlow(p.Flow())
	}
	for _, n := range nw.nodes {
		c.byID[n.id].extFlow = n.extFlow
	}
	for _, l := range nw.loops {
		names := make([]string, len(l.pipes))
		for i, p := range l.pipes {
			names[i] = p.Name()
		}
		// Closure was verified when l was declared.
		_, _ = c.AddLoop(l.id, names...)
	}

	return c
}
