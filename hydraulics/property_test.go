package hydraulics_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/hydronet/hydraulics"
)

// TestPipeProperties uses property-based testing for invariants that must
// hold for any valid construction input, not just hand-picked cases.
func TestPipeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Canonicalization: regardless of argument order, A precedes B in the
	// NodeID total order and the name is "A-B".
	properties.Property("endpoints are canonicalized", prop.ForAll(
		func(u, v string) bool {
			if u == v {
				return true // rejected by construction, covered elsewhere
			}
			p, err := hydraulics.NewPipe(hydraulics.NodeID(u), hydraulics.NodeID(v), 100, 200, 0.00025, hydraulics.Water())
			if err != nil {
				return false
			}

			return p.A().Less(p.B()) &&
				p.Name() == string(p.A())+"-"+string(p.B()) &&
				p.Contains(hydraulics.NodeID(u)) && p.Contains(hydraulics.NodeID(v))
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	// Reynolds number is non-negative for any signed flow, and invariant
	// under flow reversal.
	properties.Property("reynolds number is sign-invariant", prop.ForAll(
		func(q float64) bool {
			p, err := hydraulics.NewPipe("a", "b", 100, 200, 0.00025, hydraulics.Water())
			if err != nil {
				return false
			}
			p.SetFlow(q)
			fwd := p.Reynolds()
			p.SetFlow(-q)

			return fwd >= 0 && fwd == p.Reynolds()
		},
		gen.Float64Range(-0.5, 0.5),
	))

	// Node contributions cancel: whatever enters at one endpoint leaves at
	// the other.
	properties.Property("endpoint contributions sum to zero", prop.ForAll(
		func(q float64) bool {
			p, err := hydraulics.NewPipe("a", "b", 100, 200, 0.00025, hydraulics.Water())
			if err != nil {
				return false
			}
			p.SetFlow(q)

			return p.FlowInto(p.A())+p.FlowInto(p.B()) == 0
		},
		gen.Float64Range(-0.5, 0.5),
	))

	properties.TestingRun(t)
}

// TestFrictionProperties checks regime-level invariants of the
// deterministic friction model across randomized inputs.
func TestFrictionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// The deterministic factor is finite and positive wherever defined.
	properties.Property("friction factor is positive and finite", prop.ForAll(
		func(re, rr float64) bool {
			f, err := hydraulics.FrictionFactor(re, rr)
			if err != nil {
				return false
			}

			return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
		},
		gen.Float64Range(1, 1e7),
		gen.Float64Range(0, 0.02),
	))

	// The transitional mean interpolates: it lies between the laminar and
	// turbulent estimates at the same Reynolds number.
	properties.Property("transitional mean stays between regime estimates", prop.ForAll(
		func(re, rr float64) bool {
			mean, err := hydraulics.TransitionMean(re, rr)
			if err != nil {
				return false
			}
			lam, err := hydraulics.LaminarFactor(re)
			if err != nil {
				return false
			}
			turb, err := hydraulics.ColebrookWhite(re, rr)
			if err != nil {
				return false
			}
			lo, hi := math.Min(lam, turb), math.Max(lam, turb)

			return mean >= lo && mean <= hi
		},
		gen.Float64Range(2000.001, 3999.999),
		gen.Float64Range(0, 0.02),
	))

	properties.TestingRun(t)
}
