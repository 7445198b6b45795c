// Package hydraulics provides the physical primitives of a pipe network:
// fluids, canonical pipe segments, and the flow-regime dependent Darcy
// friction-factor model.
//
// What lives here:
//
//   - Fluid — immutable dynamic viscosity / density pair with derived
//     kinematic viscosity, shared read-only across all pipes.
//   - NodeID — opaque node identifier with an explicit total order; pipe
//     endpoint canonicalization and every sign convention are defined
//     against this order, never against ad-hoc string comparisons at use
//     sites.
//   - Pipe — one segment with geometry, a fluid reference, and a signed
//     volumetric flow (positive from endpoint A toward endpoint B, where
//     A precedes B in the NodeID order regardless of construction order).
//   - Friction model — three regimes on the Reynolds number:
//     laminar (Re ≤ 2000) closed form 64/Re; turbulent (Re ≥ 4000) the
//     implicit Colebrook-White relation solved by scalar Newton iteration;
//     transitional (2000 < Re < 4000) a linear blend of both estimates,
//     either returned deterministically (the mean) or sampled from
//     N(mean, 0.2·mean) using an explicitly supplied *rand.Rand.
//
// Unit contract: lengths and roughness in meters, diameter accepted in
// millimeters at construction and stored in meters, flow stored in m³/s.
// Conversions from boundary units (L/s) happen in the network package,
// never inside the physics.
//
// Determinism: no package-global randomness. Stochastic transition sampling
// requires a caller-provided generator; a nil generator degrades to the
// deterministic blended mean. Same seed ⇒ identical samples.
//
// Error policy: sentinel errors only (errors.Is), no panics at runtime.
// Friction-model failures (undefined Reynolds number, diverged Colebrook
// solve) are reported as errors so callers can apply a local fallback
// instead of receiving garbage.
package hydraulics
