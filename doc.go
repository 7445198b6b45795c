// Package hydronet analyzes steady-state flow distribution in looped,
// incompressible pipe networks.
//
// 🚀 What is hydronet?
//
//	A small, deterministic library that brings together:
//		• Hydraulic primitives: fluids, canonical pipe segments, flow regimes
//		• Friction modeling: laminar, Colebrook-White turbulent, stochastic transition
//		• Topology: nodes derived from pipe endpoints, user-declared loops
//		• A nonlinear solver: mass balance at every node, zero head loss
//		  around every loop, solved simultaneously over all pipe flows
//		• YAML network definitions with struct-tag validation
//
// ✨ Why choose hydronet?
//
//   - Deterministic – seeded RNG threading, bit-identical repeated solves
//   - Honest reporting – per-node imbalance and per-loop closure are always
//     surfaced; non-convergence is flagged, never silently accepted
//   - Pure Go – no cgo, no hidden deps
//
// The module is organized under four subpackages:
//
//	hydraulics/ — Fluid, Pipe, Reynolds number & friction-factor regimes
//	network/    — Node, Loop, Network topology bookkeeping & validation
//	solver/     — residual assembly + damped Gauss-Newton root-finding
//	netdef/     — YAML network definitions → built Network
//
// Quick ASCII example (the classic 8-node grid):
//
//	a───b        +60 L/s enters at a
//	│   │        −30 L/s leaves at d
//	c───d───e    −15 L/s leaves at f and h
//	│   │   │
//	f───g───h
//
// Dive into examples/ for a complete network build-solve-report walkthrough.
//
//	go get github.com/katalvlaran/hydronet
package hydronet
