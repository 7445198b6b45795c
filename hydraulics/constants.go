package hydraulics

// Physical and numerical constants shared by the friction model.
//
// Regime thresholds and the Colebrook-White solve parameters are part of
// the public contract (tests pin behavior exactly at the boundaries), so
// the thresholds are exported; solver tuning knobs stay private.
const (
	// ReLaminarMax is the largest Reynolds number treated as laminar flow.
	ReLaminarMax = 2000.0

	// ReTurbulentMin is the smallest Reynolds number treated as fully
	// turbulent flow. Between ReLaminarMax and ReTurbulentMin the flow is
	// transitional and the friction factor is a blend of both regimes.
	ReTurbulentMin = 4000.0

	// Gravity is the standard gravitational acceleration, m/s².
	Gravity = 9.81

	// TransitionSigmaRatio scales the standard deviation of the stochastic
	// transitional friction sample: sigma = TransitionSigmaRatio * mean.
	TransitionSigmaRatio = 0.2

	// colebrookInitialGuess is the starting friction factor f₀ for the
	// Colebrook-White Newton iteration.
	colebrookInitialGuess = 0.01

	// colebrookTol bounds |g(x)| at acceptance, where g is the
	// Colebrook-White residual in x = 1/√f.
	colebrookTol = 1e-12

	// colebrookMaxIter bounds the Newton iteration count.
	colebrookMaxIter = 64

	// fallbackReynoldsFloor is the Reynolds number substituted when the
	// laminar fallback is requested for an undefined (≤ 0) Reynolds
	// number. Any positive floor works: at Re → 0 the velocity is also
	// → 0, so the resulting head loss vanishes regardless of the floor.
	fallbackReynoldsFloor = 1.0

	// mmPerMeter converts constructor diameters (mm) to meters.
	mmPerMeter = 1000.0
)
