package network

import "errors"

// Sentinel errors for network construction and validation. All are
// configuration errors in the solver's taxonomy: fatal, surfaced before or
// instead of solving, never retried internally. Match with errors.Is.
var (
	// ErrDuplicatePipe indicates a second pipe between the same canonical
	// endpoint pair.
	ErrDuplicatePipe = errors.New("network: duplicate pipe between endpoints")

	// ErrUnknownNode indicates an external-flow assignment for a node that
	// no pipe endpoint has introduced.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrUnknownPipe indicates a loop referencing a pipe name that does not
	// exist in the network.
	ErrUnknownPipe = errors.New("network: unknown pipe")

	// ErrDuplicateLoop indicates a second loop declared under the same name.
	ErrDuplicateLoop = errors.New("network: duplicate loop name")

	// ErrOpenLoop indicates a declared loop whose pipe sequence does not
	// traverse back to its starting node (or breaks the chain midway).
	ErrOpenLoop = errors.New("network: loop does not close")

	// ErrEmptyNetwork indicates validation of a network with no pipes.
	ErrEmptyNetwork = errors.New("network: no pipes")

	// ErrUnbalancedSystem indicates the loop count does not square the
	// nonlinear system: a connected network with P pipes and N nodes has a
	// cycle space of dimension P−N+1, and exactly that many independent
	// loop-closure equations are required alongside the node balances.
	ErrUnbalancedSystem = errors.New("network: loop count does not match cycle space")

	// ErrUnbalancedExternalFlow indicates external inflows and withdrawals
	// that do not sum to zero; such a steady state cannot exist.
	ErrUnbalancedExternalFlow = errors.New("network: external flows do not sum to zero")
)
