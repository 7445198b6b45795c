package hydraulics

import (
	"math"
	"math/rand"
)

// Friction-factor model.
//
// Three regimes on the Reynolds number Re with relative roughness
// rr = roughness/diameter:
//
//	Re ≤ 2000   laminar      f = 64/Re                      (closed form)
//	Re ≥ 4000   turbulent    1/√f = −2·log10(rr/3.7 + 2.51/(Re·√f))
//	otherwise   transitional linear blend of both estimates
//
// The turbulent relation is implicit; it is solved by Newton iteration in
// the substituted variable x = 1/√f, where the residual
//
//	g(x) = x + 2·log10(rr/3.7 + 2.51·x/Re)
//
// is smooth and monotone for x > 0, so convergence from the equivalent of
// f₀ = 0.01 (x₀ = 10) is quadratic and takes a handful of steps.
//
// The transitional blend is deliberately stochastic: physically, the
// friction factor between Re 2000 and 4000 is not well characterized, so
// the model returns a Normal(mean, 0.2·mean) draw around the blended mean.
// Sampling is always explicit (caller-supplied *rand.Rand); the
// deterministic mean is available for use inside gradient-based solvers,
// where per-evaluation noise would corrupt Jacobian estimates.

// LaminarFactor returns the laminar friction factor 64/Re.
// Returns ErrReynoldsUndefined for non-positive or non-finite Re.
//
// Complexity: O(1).
func LaminarFactor(re float64) (float64, error) {
	if re <= 0 || math.IsNaN(re) || math.IsInf(re, 0) {
		return 0, ErrReynoldsUndefined
	}

	return 64.0 / re, nil
}

// ColebrookWhite solves the implicit Colebrook-White relation for the
// Darcy friction factor at Reynolds number re and relative roughness rr.
//
// Errors:
//   - ErrReynoldsUndefined — re ≤ 0 or non-finite, or rr < 0.
//   - ErrColebrookDiverged — Newton failed to reach tolerance in budget.
//
// Complexity: O(colebrookMaxIter) worst case, typically ~5 iterations.
func ColebrookWhite(re, rr float64) (float64, error) {
	if re <= 0 || math.IsNaN(re) || math.IsInf(re, 0) || rr < 0 {
		return 0, ErrReynoldsUndefined
	}

	const ln10 = math.Ln10

	// Newton on g(x) = x + 2·log10(rr/3.7 + 2.51·x/re), x = 1/√f.
	var (
		x    = 1.0 / math.Sqrt(colebrookInitialGuess)
		arg  float64
		g    float64
		dg   float64
		step float64
	)
	for i := 0; i < colebrookMaxIter; i++ {
		arg = rr/3.7 + 2.51*x/re
		if arg <= 0 || math.IsNaN(arg) {
			return 0, ErrColebrookDiverged
		}
		g = x + 2.0*math.Log10(arg)
		if math.Abs(g) <= colebrookTol {
			return 1.0 / (x * x), nil
		}
		dg = 1.0 + (2.0/ln10)*(2.51/re)/arg
		step = g / dg
		x -= step
		if x <= 0 || math.IsNaN(x) {
			return 0, ErrColebrookDiverged
		}
	}

	return 0, ErrColebrookDiverged
}

// TransitionMean returns the deterministic transitional friction factor:
// the laminar and turbulent estimates blended linearly in Re across the
// (ReLaminarMax, ReTurbulentMin) band.
//
// Complexity: O(1) plus one Colebrook-White solve.
func TransitionMean(re, rr float64) (float64, error) {
	lam, err := LaminarFactor(re)
	if err != nil {
		return 0, err
	}
	turb, err := ColebrookWhite(re, rr)
	if err != nil {
		return 0, err
	}
	frac := (re - ReLaminarMax) / (ReTurbulentMin - ReLaminarMax)

	return lam + frac*(turb-lam), nil
}

// FrictionFactor returns the deterministic friction factor for the given
// Reynolds number and relative roughness: the regime-appropriate value,
// with the transitional regime pinned to its blended mean. This is the
// function a root-finding solver must evaluate — it is locally consistent,
// so finite-difference derivative estimates stay meaningful.
//
// Errors: ErrReynoldsUndefined, ErrColebrookDiverged (see the regime
// functions above).
func FrictionFactor(re, rr float64) (float64, error) {
	switch RegimeFor(re) {
	case Laminar:
		return LaminarFactor(re)
	case Turbulent:
		return ColebrookWhite(re, rr)
	default:
		return TransitionMean(re, rr)
	}
}

// SampleFrictionFactor returns the friction factor with the transitional
// regime sampled stochastically: a Normal(mean, TransitionSigmaRatio·mean)
// draw from rng around the blended mean. Laminar and turbulent regimes are
// unaffected. A nil rng degrades to the deterministic mean, making the
// sampling opt-in and always reproducible under a seeded generator.
func SampleFrictionFactor(re, rr float64, rng *rand.Rand) (float64, error) {
	if RegimeFor(re) != Transitional || rng == nil {
		return FrictionFactor(re, rr)
	}

	mean, err := TransitionMean(re, rr)
	if err != nil {
		return 0, err
	}

	return mean + rng.NormFloat64()*TransitionSigmaRatio*mean, nil
}

// FallbackFrictionFactor returns the nearest well-defined closed-form
// estimate for inputs on which the full model failed: the laminar factor,
// evaluated at a small positive floor when Re itself is undefined. Callers
// use it to keep one bad trial iterate from aborting an entire nonlinear
// solve; the occurrence should still be recorded upstream.
//
// Complexity: O(1).
func FallbackFrictionFactor(re float64) float64 {
	if re < fallbackReynoldsFloor {
		re = fallbackReynoldsFloor
	}

	return 64.0 / re
}
