package hydraulics

import "errors"

// Sentinel errors for the hydraulics package.
//
// Callers branch with errors.Is; sentinels are never wrapped with formatted
// strings at definition site. Construction errors are fatal configuration
// mistakes; friction-model errors are local, per-evaluation conditions that
// callers may recover from (see FallbackFrictionFactor).
var (
	// ErrSameEndpoints indicates a pipe was constructed with identical
	// endpoint identifiers; a segment must connect two distinct nodes.
	ErrSameEndpoints = errors.New("hydraulics: pipe endpoints must differ")

	// ErrBadGeometry indicates non-positive length or diameter, or
	// negative roughness. Zero roughness (a hydraulically smooth pipe)
	// is valid.
	ErrBadGeometry = errors.New("hydraulics: invalid pipe geometry")

	// ErrNilFluid indicates a pipe was constructed without a fluid.
	ErrNilFluid = errors.New("hydraulics: nil fluid")

	// ErrBadFluid indicates non-positive viscosity or density.
	ErrBadFluid = errors.New("hydraulics: invalid fluid properties")

	// ErrReynoldsUndefined indicates the friction factor was requested for
	// a non-positive or non-finite Reynolds number (e.g. zero trial flow).
	ErrReynoldsUndefined = errors.New("hydraulics: reynolds number undefined")

	// ErrColebrookDiverged indicates the Colebrook-White Newton iteration
	// failed to reach tolerance within its iteration budget.
	ErrColebrookDiverged = errors.New("hydraulics: colebrook-white solve diverged")
)
