package solver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/hydronet/hydraulics"
	"github.com/katalvlaran/hydronet/network"
)

// Result is the user-visible report of one Solve call. Converged=false
// results are still fully populated so out-of-tolerance residuals are
// inspectable rather than silently discarded.
type Result struct {
	// Flows holds the converged signed flow per pipe (canonical name),
	// reported in the boundary unit L/s; positive flows from endpoint A
	// toward endpoint B.
	Flows map[string]float64

	// NodeImbalance holds each node's mass-balance residual, m³/s.
	// Expected ≈ 0 at a solution.
	NodeImbalance map[hydraulics.NodeID]float64

	// LoopClosure holds each loop's signed head-loss sum, m of fluid.
	// Expected ≈ 0 at a solution.
	LoopClosure map[string]float64

	// FrictionFactors holds the reporting-time friction factor per pipe:
	// transitional-regime pipes carry the single stochastic sample drawn
	// from the seeded generator, all others the deterministic value.
	FrictionFactors map[string]float64

	// Iterations is the number of Gauss-Newton iterations performed.
	Iterations int

	// ResidualNorm is ‖r‖∞ over the final residual stack.
	ResidualNorm float64

	// FrictionFallbacks counts friction-model failures absorbed by the
	// laminar fallback across all residual evaluations.
	FrictionFallbacks int

	// Converged reports whether ResidualNorm < Options.Tolerance.
	Converged bool
}

// OutOfTolerance lists the residual entries whose magnitude is ≥ tol, as
// human-readable labels ("node a", "loop B"). Empty for a clean solution.
func (res Result) OutOfTolerance(tol float64) []string {
	var bad []string
	for id, v := range res.NodeImbalance {
		if v >= tol || v <= -tol {
			bad = append(bad, "node "+string(id))
		}
	}
	for id, v := range res.LoopClosure {
		if v >= tol || v <= -tol {
			bad = append(bad, "loop "+id)
		}
	}

	return bad
}

// rngFromSeed returns a deterministic *rand.Rand for the reporting sample.
// Policy: seed == 0 ⇒ fixed default seed; never a time-based source.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Solve drives the damped Gauss-Newton iteration over the network's flow
// vector until every node balance and loop closure is below tolerance.
//
// On success the converged flows are resident in the network's pipes and
// summarized in the Result. On failure the best iterate is reported
// alongside a non-nil error:
//
//   - configuration errors from network.Validate (fatal, immediate);
//   - ErrBadOptions, ErrNilNetwork;
//   - ErrNotConverged (budget exhausted; caller may retry with different
//     options — the solver never retries internally);
//   - ErrSingularSystem (normal equations unsolvable even under damping).
//
// Determinism: repeated calls with identical network and options yield
// bit-identical Flows. The only stochastic output is the transitional
// entries of FrictionFactors, sampled once per pipe after convergence from
// a generator seeded by Options.Seed — reproducible under a fixed seed.
//
// Complexity per iteration: O(P) residual evaluations of O(P) each for the
// Jacobian, plus an O(P³) dense solve; P is small (tens) in practice.
func Solve(nw *network.Network, opts Options) (Result, error) {
	if nw == nil {
		return Result{}, ErrNilNetwork
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if err := nw.Validate(); err != nil {
		return Result{}, err
	}

	var (
		s = newSystem(nw)
		p = s.unknowns()
		m = s.equations()

		q       = make([]float64, p)
		qTrial  = make([]float64, p)
		r       = make([]float64, m)
		rTrial  = make([]float64, m)
		scratch = make([]float64, m)
		b       = make([]float64, p)
		jac     = newMatrix(m, p)
		a       = newMatrix(p, p)
	)
	for i := range q {
		q[i] = opts.InitialFlowLPS / 1000.0
	}
	s.eval(q, r)

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	var (
		iter      int
		converged bool
		stalled   bool
		singular  bool
	)
	for iter = 0; iter < opts.MaxIterations; iter++ {
		if normInf(r) < opts.Tolerance {
			converged = true

			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		jacobian(s.eval, q, r, jac, scratch)
		// The last perturbed evaluation left stale pipe state; restore the
		// base point (deterministic, so r is reproduced exactly).
		s.eval(q, r)

		// Damped normal-equations step: escalate λ only when the undamped
		// system is singular.
		lambda := 0.0
		for try := 0; ; try++ {
			normalEquations(jac, r, lambda, a, b)
			if err := solveLinear(a, b); err == nil {
				break
			}
			if try >= levenbergTries {
				singular = true

				break
			}
			if lambda == 0 {
				lambda = levenbergInitial
			} else {
				lambda *= levenbergGrowth
			}
		}
		if singular {
			break
		}

		// Halving line search on ‖r‖² with a sufficient-decrease margin.
		var (
			base     = norm2sq(r)
			alpha    = 1.0
			accepted bool
		)
		for h := 0; h <= lineSearchHalvings; h++ {
			for i := range q {
				qTrial[i] = q[i] + alpha*b[i]
			}
			s.eval(qTrial, rTrial)
			if norm2sq(rTrial) <= base*(1.0-armijoSlope*alpha) {
				accepted = true

				break
			}
			alpha /= 2.0
		}
		if !accepted {
			stalled = true

			break
		}
		copy(q, qTrial)
		copy(r, rTrial)
	}

	// Leave the final iterate resident in the pipes and reported.
	s.eval(q, r)
	if !converged {
		converged = normInf(r) < opts.Tolerance
	}
	res := buildResult(s, r, iter, converged, opts)

	switch {
	case singular:
		return res, ErrSingularSystem
	case !converged && stalled:
		return res, fmt.Errorf("%w: stalled after %d iterations (residual %g)", ErrNotConverged, iter, res.ResidualNorm)
	case !converged:
		return res, fmt.Errorf("%w: budget exhausted after %d iterations (residual %g)", ErrNotConverged, iter, res.ResidualNorm)
	default:
		return res, nil
	}
}

// buildResult assembles the report from the resident converged state. The
// stochastic reporting sample is drawn here, exactly once per transitional
// pipe, in stable pipe order from a freshly seeded generator.
func buildResult(s *system, r []float64, iter int, converged bool, opts Options) Result {
	res := Result{
		Flows:             make(map[string]float64, len(s.pipes)),
		NodeImbalance:     make(map[hydraulics.NodeID]float64, len(s.nodes)),
		LoopClosure:       make(map[string]float64, len(s.loops)),
		FrictionFactors:   make(map[string]float64, len(s.pipes)),
		Iterations:        iter,
		ResidualNorm:      normInf(r),
		FrictionFallbacks: s.fallbacks,
		Converged:         converged,
	}

	rng := rngFromSeed(opts.Seed)
	for _, p := range s.pipes {
		res.Flows[p.Name()] = p.Flow() * 1000.0
		f, err := p.SampleFriction(rng)
		if err != nil {
			f = p.Friction() // cached fallback from the last refresh
		}
		res.FrictionFactors[p.Name()] = f
	}
	for i, n := range s.nodes {
		res.NodeImbalance[n.ID()] = r[i]
	}
	for i, l := range s.loops {
		res.LoopClosure[l.ID()] = r[len(s.nodes)+i]
	}

	return res
}

// newMatrix allocates a rows×cols dense matrix as row slices.
func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}

	return m
}
