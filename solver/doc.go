// Package solver finds the steady-state flow distribution of a pipe
// network: the signed flow vector q (one entry per pipe, m³/s) at which
// every node's mass balance and every loop's head-loss closure vanish
// simultaneously.
//
// Residual stack:
//
//	r(q) = [ NetFlowRate(node₁) … NetFlowRate(node_N)      (m³/s)
//	         NetHeadLoss(loop₁) … NetHeadLoss(loop_L) ]    (m)
//
// Each evaluation writes the trial q into the pipes, refreshes every
// pipe's friction factor once, then reads the node and loop residuals.
// The N node equations of a connected network sum to −Σ external flows and
// are therefore rank N−1; with L = P−N+1 loops the stack has N+L = P+1
// rows of rank P. The driver is damped Gauss-Newton: a forward-difference
// Jacobian, a normal-equations step (with a Levenberg fallback when the
// normal matrix is near singular), and a halving line search on ½‖r‖².
// For a consistent stack this converges to the exact root, which is also
// how the original formulation behaved under a generic least-squares
// root-finder.
//
// Determinism: transitional-regime friction is pinned to its deterministic
// blended mean throughout iteration — a stochastic residual would corrupt
// finite-difference Jacobian columns and stall convergence. The stochastic
// transition model is applied exactly once, at reporting time, to the
// converged solution, from a generator seeded via Options.Seed. Two solves
// of the same network with the same options produce bit-identical flows.
//
// Failure policy (three classes):
//
//   - configuration errors — surfaced immediately by network validation,
//     before any iteration;
//   - friction-model failures on a trial iterate — local: the pipe falls
//     back to a closed-form laminar estimate for that one evaluation and
//     the occurrence is counted in Result.FrictionFallbacks;
//   - ErrNotConverged — the iteration or wall-clock budget ran out; the
//     partial Result is still returned with Converged=false so callers can
//     inspect residuals, and callers may retry with different options.
package solver
