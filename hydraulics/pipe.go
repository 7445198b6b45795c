package hydraulics

import (
	"errors"
	"math"
	"math/rand"
)

// Pipe models one segment of a pipe network and its flow-dependent
// hydraulics. Endpoints are stored canonically: A precedes B in the NodeID
// total order regardless of the order passed to NewPipe, and every sign
// convention (flow direction, traversal sign, node contribution) is defined
// against that canonical pair.
//
// A Pipe is mutable only through SetFlow and RefreshFriction; a nonlinear
// solver writes trial flows and refreshed friction factors on every residual
// evaluation, while geometry and the fluid reference stay fixed.
type Pipe struct {
	a, b      NodeID  // canonical endpoints, a.Less(b)
	length    float64 // m
	diameter  float64 // m
	roughness float64 // m
	fluid     *Fluid  // shared, read-only
	area      float64 // cross-section, m²

	flow     float64 // signed volumetric flow, m³/s; positive a → b
	friction float64 // cached Darcy factor from the last RefreshFriction
}

// NewPipe constructs a canonical pipe segment between nodes u and v.
// The endpoint order is normalized internally, so NewPipe("b","a",…) and
// NewPipe("a","b",…) describe the same segment.
//
// Units: lengthM and roughnessM in meters, diameterMM in millimeters
// (converted to meters internally). Zero roughness is a smooth pipe.
//
// Errors: ErrSameEndpoints, ErrBadGeometry, ErrNilFluid.
//
// Complexity: O(1).
func NewPipe(u, v NodeID, lengthM, diameterMM, roughnessM float64, fluid *Fluid) (*Pipe, error) {
	if u == v {
		return nil, ErrSameEndpoints
	}
	if lengthM <= 0 || diameterMM <= 0 || roughnessM < 0 {
		return nil, ErrBadGeometry
	}
	if fluid == nil {
		return nil, ErrNilFluid
	}

	a, b := u, v
	if b.Less(a) {
		a, b = b, a
	}

	d := diameterMM / mmPerMeter
	p := &Pipe{
		a:         a,
		b:         b,
		length:    lengthM,
		diameter:  d,
		roughness: roughnessM,
		fluid:     fluid,
		area:      math.Pi * d * d / 4.0,
	}

	return p, nil
}

// A returns the canonical first endpoint (A.Less(B) holds).
func (p *Pipe) A() NodeID { return p.a }

// B returns the canonical second endpoint.
func (p *Pipe) B() NodeID { return p.b }

// Name returns the canonical segment name "A-B".
func (p *Pipe) Name() string { return string(p.a) + "-" + string(p.b) }

// Length returns the pipe length, m.
func (p *Pipe) Length() float64 { return p.length }

// Diameter returns the pipe diameter, m.
func (p *Pipe) Diameter() float64 { return p.diameter }

// Roughness returns the absolute wall roughness, m.
func (p *Pipe) Roughness() float64 { return p.roughness }

// Area returns the flow cross-section, m².
func (p *Pipe) Area() float64 { return p.area }

// Fluid returns the shared fluid reference.
func (p *Pipe) Fluid() *Fluid { return p.fluid }

// Contains reports whether id is one of the pipe's endpoints.
func (p *Pipe) Contains(id NodeID) bool { return id == p.a || id == p.b }

// Other returns the endpoint opposite to id. It assumes Contains(id);
// for a foreign id it returns the canonical A endpoint, which loop
// construction rejects before any traversal can observe it.
func (p *Pipe) Other(id NodeID) NodeID {
	if id == p.a {
		return p.b
	}

	return p.a
}

// Flow returns the current signed flow, m³/s (positive from A toward B).
func (p *Pipe) Flow() float64 { return p.flow }

// SetFlow stores a trial signed flow q in m³/s. Velocity and Reynolds
// number are derived on demand; the cached friction factor is refreshed
// separately (RefreshFriction) so that one residual evaluation performs
// exactly one friction solve per pipe.
func (p *Pipe) SetFlow(q float64) { p.flow = q }

// Velocity returns the signed mean velocity flow/area, m/s.
func (p *Pipe) Velocity() float64 { return p.flow / p.area }

// Reynolds returns the Reynolds number rho·|v|·D/mu computed from the flow
// speed magnitude. Reversed flow therefore yields the same positive
// Reynolds number as forward flow of equal magnitude — the regime depends
// on speed, not on direction.
func (p *Pipe) Reynolds() float64 {
	return p.fluid.rho * math.Abs(p.Velocity()) * p.diameter / p.fluid.mu
}

// RelativeRoughness returns roughness/diameter.
func (p *Pipe) RelativeRoughness() float64 { return p.roughness / p.diameter }

// RefreshFriction recomputes and caches the deterministic friction factor
// for the current flow. On a friction-model failure (undefined Reynolds
// number, diverged Colebrook solve) it caches the closed-form laminar
// fallback instead and returns the error, so the caller can record the
// occurrence while the evaluation as a whole stays well-defined.
func (p *Pipe) RefreshFriction() error {
	re := p.Reynolds()
	f, err := FrictionFactor(re, p.RelativeRoughness())
	if err != nil {
		p.friction = FallbackFrictionFactor(re)

		return err
	}
	p.friction = f

	return nil
}

// Friction returns the friction factor cached by the last RefreshFriction.
// Zero until the first refresh.
func (p *Pipe) Friction() float64 { return p.friction }

// SampleFriction returns a one-off stochastic friction factor for the
// current flow: in the transitional regime, a draw from
// N(mean, 0.2·mean) using rng; otherwise the deterministic value.
// The cached factor is not touched — this is a reporting-time operation,
// never part of solver iteration.
func (p *Pipe) SampleFriction(rng *rand.Rand) (float64, error) {
	return SampleFrictionFactor(p.Reynolds(), p.RelativeRoughness(), rng)
}

// HeadLoss returns the Darcy-Weisbach head-loss magnitude
// f·(L/D)·(v²/2g) in meters of fluid column, using the cached friction
// factor and the current flow.
//
// Complexity: O(1).
func (p *Pipe) HeadLoss() float64 {
	v := p.Velocity()

	return p.friction * (p.length / p.diameter) * (v * v / (2.0 * Gravity))
}

// SignedHeadLoss returns the head loss observed while traversing the pipe
// from the given start node: the magnitude times the traversal sign
// (+1 when start == A, −1 otherwise) times the flow sign (+1 when
// flow ≥ 0). Traversing with the flow yields a positive loss; against it,
// a gain.
func (p *Pipe) SignedHeadLoss(start NodeID) float64 {
	traversal := 1.0
	if start != p.a {
		traversal = -1.0
	}
	dir := 1.0
	if p.flow < 0 {
		dir = -1.0
	}

	return traversal * dir * p.HeadLoss()
}

// FlowInto returns this pipe's signed contribution to the mass balance of
// node id, m³/s: positive flow leaves A (−flow) and arrives at B (+flow).
func (p *Pipe) FlowInto(id NodeID) float64 {
	if id == p.a {
		return -p.flow
	}

	return p.flow
}

// IsFrictionError reports whether err is one of the local friction-model
// failures a solver may recover from with FallbackFrictionFactor.
func IsFrictionError(err error) bool {
	return errors.Is(err, ErrReynoldsUndefined) || errors.Is(err, ErrColebrookDiverged)
}
