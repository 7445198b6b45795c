package hydraulics

// Fluid holds the transport properties of an incompressible working fluid.
// It is immutable after construction and intended to be shared by reference
// across every pipe of a network; no component mutates it.
type Fluid struct {
	mu  float64 // dynamic viscosity, Pa·s
	rho float64 // density, kg/m³
}

// NewFluid constructs a Fluid from dynamic viscosity mu (Pa·s) and density
// rho (kg/m³). Returns ErrBadFluid when either value is non-positive.
//
// Complexity: O(1).
func NewFluid(mu, rho float64) (*Fluid, error) {
	if mu <= 0 || rho <= 0 {
		return nil, ErrBadFluid
	}

	return &Fluid{mu: mu, rho: rho}, nil
}

// Water returns the default working fluid: water at roughly 25 °C
// (mu = 0.00089 Pa·s, rho = 1000 kg/m³).
func Water() *Fluid {
	return &Fluid{mu: 0.00089, rho: 1000}
}

// Mu returns the dynamic viscosity, Pa·s.
func (f *Fluid) Mu() float64 { return f.mu }

// Rho returns the density, kg/m³.
func (f *Fluid) Rho() float64 { return f.rho }

// Nu returns the kinematic viscosity mu/rho, m²/s.
func (f *Fluid) Nu() float64 { return f.mu / f.rho }
