package solver

import "errors"

// Sentinel errors for the solver package. Match with errors.Is.
var (
	// ErrNilNetwork indicates Solve was called with a nil network.
	ErrNilNetwork = errors.New("solver: nil network")

	// ErrBadOptions indicates non-positive tolerance, iteration budget, or
	// other meaningless option values.
	ErrBadOptions = errors.New("solver: invalid options")

	// ErrNotConverged indicates the residual norm stayed above tolerance
	// after exhausting the iteration or wall-clock budget. The accompanying
	// Result still carries the best iterate for inspection; callers may
	// retry with a different initial guess, a larger budget, or both —
	// the solver never retries internally.
	ErrNotConverged = errors.New("solver: did not converge")

	// ErrSingularSystem indicates the normal equations stayed unsolvable
	// even under Levenberg damping — typically a sign of a degenerate
	// topology that validation could not rule out.
	ErrSingularSystem = errors.New("solver: singular jacobian system")
)
