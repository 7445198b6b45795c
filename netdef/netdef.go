package netdef

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hydronet/hydraulics"
	"github.com/katalvlaran/hydronet/network"
)

// validate is the shared, read-only validator instance; creating one per
// Parse would re-parse every struct tag each time.
var validate = validator.New()

// FluidDef declares the working fluid. Optional; nil means water.
type FluidDef struct {
	Viscosity float64 `yaml:"viscosity" validate:"gt=0"` // Pa·s
	Density   float64 `yaml:"density"   validate:"gt=0"` // kg/m³
}

// PipeDef declares one pipe segment. Endpoint order is irrelevant; the
// built pipe is canonicalized by the hydraulics package.
type PipeDef struct {
	From      string  `yaml:"from"      validate:"required"`
	To        string  `yaml:"to"        validate:"required,nefield=From"`
	Length    float64 `yaml:"length"    validate:"gt=0"`  // m
	Diameter  float64 `yaml:"diameter"  validate:"gt=0"`  // mm
	Roughness float64 `yaml:"roughness" validate:"gte=0"` // m
}

// LoopDef declares one closed loop as an ordered list of canonical pipe
// names. A cycle needs at least three segments.
type LoopDef struct {
	Name  string   `yaml:"name"  validate:"required"`
	Pipes []string `yaml:"pipes" validate:"min=3,dive,required"`
}

// Definition is a complete network description.
type Definition struct {
	Fluid *FluidDef          `yaml:"fluid,omitempty" validate:"omitempty"`
	Pipes []PipeDef          `yaml:"pipes"           validate:"min=1,dive"`
	Flows map[string]float64 `yaml:"flows,omitempty"` // L/s per node
	Loops []LoopDef          `yaml:"loops,omitempty" validate:"dive"`
}

// Parse decodes and validates a YAML definition.
//
// Errors: ErrUnreadable (YAML decode failure), ErrInvalidDefinition
// (struct-tag constraint violation); both wrap the underlying detail.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	return &d, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Build constructs the network the definition describes: pipes in
// declaration order (nodes derive from endpoints), then external flows,
// then loops. Topology errors surface as the network package's sentinels
// (ErrDuplicatePipe, ErrUnknownNode, ErrUnknownPipe, ErrOpenLoop, …),
// each wrapped with the offending definition entry.
func (d *Definition) Build() (*network.Network, error) {
	var fluid *hydraulics.Fluid
	if d.Fluid != nil {
		var err error
		if fluid, err = hydraulics.NewFluid(d.Fluid.Viscosity, d.Fluid.Density); err != nil {
			return nil, err
		}
	}

	nw := network.New(fluid)
	for _, pd := range d.Pipes {
		if _, err := nw.AddPipe(hydraulics.NodeID(pd.From), hydraulics.NodeID(pd.To), pd.Length, pd.Diameter, pd.Roughness); err != nil {
			return nil, fmt.Errorf("pipe %s-%s: %w", pd.From, pd.To, err)
		}
	}
	for id, lps := range d.Flows {
		if err := nw.SetExternalFlow(hydraulics.NodeID(id), lps); err != nil {
			return nil, fmt.Errorf("flow at %q: %w", id, err)
		}
	}
	for _, ld := range d.Loops {
		if _, err := nw.AddLoop(ld.Name, ld.Pipes...); err != nil {
			return nil, fmt.Errorf("loop %q: %w", ld.Name, err)
		}
	}

	return nw, nil
}
