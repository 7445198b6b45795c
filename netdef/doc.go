// Package netdef loads pipe-network definitions from YAML and builds
// ready-to-solve network.Network instances.
//
// Definition shape (units match the construction API: lengths in meters,
// diameters in millimeters, roughness in meters, flows in L/s):
//
//	fluid:
//	  viscosity: 0.00089   # Pa·s
//	  density:   1000      # kg/m³
//	pipes:
//	  - {from: a, to: b, length: 250, diameter: 300, roughness: 0.00025}
//	  - {from: a, to: c, length: 100, diameter: 200, roughness: 0.00025}
//	flows:                  # L/s; positive injects, negative withdraws
//	  a: 60
//	  d: -30
//	loops:
//	  - {name: A, pipes: [a-b, b-e, d-e, c-d, a-c]}
//
// The fluid block is optional and defaults to water. Field-level
// constraints are declared as validator struct tags and checked in Parse,
// so a malformed file fails with ErrInvalidDefinition before any topology
// is built; topology-level mistakes (duplicate pipes, open loops, unknown
// references) surface from Build with the network package's sentinels.
package netdef
