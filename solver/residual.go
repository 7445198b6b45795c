package solver

import (
	"github.com/katalvlaran/hydronet/hydraulics"
	"github.com/katalvlaran/hydronet/network"
)

// system binds a network to the solver: stable orderings of pipes, nodes
// and loops, plus the running friction-fallback count. Residual rows are
// nodes first, loops after, matching the declaration orders.
type system struct {
	pipes []*hydraulics.Pipe
	nodes []*network.Node
	loops []*network.Loop

	fallbacks int
}

func newSystem(nw *network.Network) *system {
	return &system{
		pipes: nw.Pipes(),
		nodes: nw.Nodes(),
		loops: nw.Loops(),
	}
}

// unknowns returns P, the dimension of the flow vector.
func (s *system) unknowns() int { return len(s.pipes) }

// equations returns N+L, the residual dimension.
func (s *system) equations() int { return len(s.nodes) + len(s.loops) }

// eval writes the trial flow vector q (m³/s) into the pipes, refreshes
// every friction factor exactly once, and fills r with the stacked
// residuals. Friction-model failures on individual pipes are absorbed by
// the laminar fallback and counted; the evaluation itself always succeeds.
// Deterministic: transitional pipes use the blended mean, never a sample.
//
// Complexity: O(P + N·deg + Σ loop lengths) ≈ O(P).
func (s *system) eval(q, r []float64) {
	var i int
	for i = range s.pipes {
		s.pipes[i].SetFlow(q[i])
	}
	for i = range s.pipes {
		if err := s.pipes[i].RefreshFriction(); err != nil {
			s.fallbacks++
		}
	}
	for i = range s.nodes {
		r[i] = s.nodes[i].NetFlowRate()
	}
	n := len(s.nodes)
	for i = range s.loops {
		r[n+i] = s.loops[i].NetHeadLoss()
	}
}
