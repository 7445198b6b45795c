// Package network provides topology bookkeeping for looped pipe networks:
// junction nodes, closed loops, and the Network container that owns them.
//
// Ownership model:
//
//   - Network owns the pipe collection and the shared fluid.
//   - Nodes are derived automatically, exactly one per distinct pipe
//     endpoint; they hold non-owning references into the pipe collection.
//   - Loops are declared by the caller as ordered pipe-name sequences
//     (canonical "a-b" names) and resolved against the same collection.
//
// Construction is strictly phased: pipes first (nodes appear as endpoints
// are encountered), then external flows, then loops. A solver afterwards
// mutates only per-pipe flow state; topology is fixed.
//
// Unit contract: external flows are supplied in L/s at this boundary and
// stored in m³/s, the internal unit of every physics computation.
//
// Validation catches configuration mistakes before any solve is attempted:
// duplicate pipes, unknown pipe or node references, loops that do not close
// on their starting node, a loop count that does not square the nonlinear
// system, and external flows violating global mass conservation.
package network
