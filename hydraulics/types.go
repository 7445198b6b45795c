package hydraulics

// NodeID identifies a junction node. It is an opaque identifier: the only
// operations the rest of the module relies on are equality and Less, the
// explicit total order used to canonicalize pipe endpoints. Keeping the
// order behind a named method decouples every sign convention from the
// incidental lexical properties of chosen names.
type NodeID string

// Less reports whether a precedes b in the canonical total order.
//
// Complexity: O(len(a)).
func (a NodeID) Less(b NodeID) bool { return a < b }

// FlowRegime classifies a Reynolds number into the three friction regimes.
type FlowRegime int

const (
	// Laminar flow: Re ≤ ReLaminarMax. Closed-form factor 64/Re.
	Laminar FlowRegime = iota

	// Transitional flow: ReLaminarMax < Re < ReTurbulentMin. The factor is
	// a linear blend of the laminar and turbulent estimates, modeled with
	// explicit uncertainty (see SampleFrictionFactor).
	Transitional

	// Turbulent flow: Re ≥ ReTurbulentMin. Implicit Colebrook-White root.
	Turbulent
)

// String returns a short human-readable regime name.
func (r FlowRegime) String() string {
	switch r {
	case Laminar:
		return "laminar"
	case Transitional:
		return "transitional"
	case Turbulent:
		return "turbulent"
	default:
		return "unknown"
	}
}

// RegimeFor classifies the given Reynolds number. The boundaries belong to
// the deterministic regimes: RegimeFor(ReLaminarMax) == Laminar and
// RegimeFor(ReTurbulentMin) == Turbulent.
//
// Complexity: O(1).
func RegimeFor(re float64) FlowRegime {
	switch {
	case re <= ReLaminarMax:
		return Laminar
	case re >= ReTurbulentMin:
		return Turbulent
	default:
		return Transitional
	}
}
