package network

import "github.com/katalvlaran/hydronet/hydraulics"

// Loop is one closed cycle of pipes, stored in traversal order. The
// traversal starts at the canonical A endpoint of the first pipe and
// advances, after each pipe, to whichever of that pipe's endpoints is not
// the current node. AddLoop verifies at construction that the chain is
// connected and returns to its start, so traversal here never re-checks.
//
// The advance rule is the whole correctness story: two adjacent loop pipes
// share a node at either end, and advancing to the wrong endpoint silently
// flips the sign of every subsequent head-loss term.
type Loop struct {
	id    string
	pipes []*hydraulics.Pipe
}

// ID returns the loop name.
func (l *Loop) ID() string { return l.id }

// Pipes returns the loop's pipes in traversal order. The slice is shared
// with the loop; callers must not mutate it.
func (l *Loop) Pipes() []*hydraulics.Pipe { return l.pipes }

// Start returns the traversal start node: the canonical A endpoint of the
// first pipe.
func (l *Loop) Start() hydraulics.NodeID { return l.pipes[0].A() }

// NetHeadLoss returns the signed head-loss sum around the loop, m of fluid
// column. At a solution it is zero: traversing the full cycle returns to
// the starting pressure. Pure read of current pipe state (flows and cached
// friction factors).
//
// Complexity: O(len(pipes)).
func (l *Loop) NetHeadLoss() float64 {
	var (
		total float64
		cur   = l.Start()
	)
	for _, p := range l.pipes {
		total += p.SignedHeadLoss(cur)
		cur = p.Other(cur)
	}

	return total
}

// verifyClosed walks the pipe chain from the first pipe's A endpoint and
// reports whether every consecutive pipe touches the running node and the
// walk ends where it began.
func verifyClosed(pipes []*hydraulics.Pipe) bool {
	if len(pipes) == 0 {
		return false
	}
	start := pipes[0].A()
	cur := start
	for _, p := range pipes {
		if !p.Contains(cur) {
			return false
		}
		cur = p.Other(cur)
	}

	return cur == start
}
