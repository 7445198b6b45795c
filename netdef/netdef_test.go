// Package netdef_test exercises YAML parsing, struct-tag validation, and
// definition-to-network building, ending with a full solve of a loaded
// reference file.
package netdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/netdef"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/solver"
)

// TestParse_Minimal verifies a small well-formed definition decodes with
// defaults applied where fields are omitted.
func TestParse_Minimal(t *testing.T) {
	d, err := netdef.Parse([]byte(`
pipes:
  - {from: a, to: b, length: 100, diameter: 200, roughness: 0.00025}
  - {from: b, to: c, length: 100, diameter: 200, roughness: 0.00025}
  - {from: a, to: c, length: 100, diameter: 200}
`))
	require.NoError(t, err)
	assert.Nil(t, d.Fluid, "fluid block is optional")
	assert.Len(t, d.Pipes, 3)
	assert.Zero(t, d.Pipes[2].Roughness, "omitted roughness is a smooth pipe")

	nw, err := d.Build()
	require.NoError(t, err)
	assert.Len(t, nw.Nodes(), 3)
	assert.NotNil(t, nw.Fluid(), "nil fluid block defaults to water")
}

// TestParse_Unreadable verifies undecodable YAML maps to ErrUnreadable.
func TestParse_Unreadable(t *testing.T) {
	_, err := netdef.Parse([]byte("pipes: [{from: a"))
	assert.ErrorIs(t, err, netdef.ErrUnreadable)
}

// TestParse_ValidationFailures verifies the struct-tag constraints.
func TestParse_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no pipes", `flows: {a: 1}`},
		{"missing endpoint", `
pipes:
  - {from: a, length: 100, diameter: 200}`},
		{"self loop", `
pipes:
  - {from: a, to: a, length: 100, diameter: 200}`},
		{"non-positive length", `
pipes:
  - {from: a, to: b, length: 0, diameter: 200}`},
		{"negative roughness", `
pipes:
  - {from: a, to: b, length: 100, diameter: 200, roughness: -0.001}`},
		{"bad fluid", `
fluid: {viscosity: 0, density: 1000}
pipes:
  - {from: a, to: b, length: 100, diameter: 200}`},
		{"two-pipe loop", `
pipes:
  - {from: a, to: b, length: 100, diameter: 200}
  - {from: b, to: c, length: 100, diameter: 200}
loops:
  - {name: A, pipes: [a-b, b-c]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netdef.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, netdef.ErrInvalidDefinition)
		})
	}
}

// TestBuild_TopologyErrors verifies that topology-level mistakes surface
// as the network package's sentinels, wrapped with the offending entry.
func TestBuild_TopologyErrors(t *testing.T) {
	d, err := netdef.Parse([]byte(`
pipes:
  - {from: a, to: b, length: 100, diameter: 200}
  - {from: b, to: a, length: 50, diameter: 100}
`))
	require.NoError(t, err)
	_, err = d.Build()
	assert.ErrorIs(t, err, network.ErrDuplicatePipe)

	d, err = netdef.Parse([]byte(`
pipes:
  - {from: a, to: b, length: 100, diameter: 200}
flows: {z: 5}
`))
	require.NoError(t, err)
	_, err = d.Build()
	assert.ErrorIs(t, err, network.ErrUnknownNode)

	d, err = netdef.Parse([]byte(`
pipes:
  - {from: a, to: b, length: 100, diameter: 200}
loops:
  - {name: A, pipes: [a-b, b-c, a-c]}
`))
	require.NoError(t, err)
	_, err = d.Build()
	assert.ErrorIs(t, err, network.ErrUnknownPipe)
}

// TestLoad_EightNodeFile loads the reference definition from testdata,
// builds it, and solves it end to end.
func TestLoad_EightNodeFile(t *testing.T) {
	d, err := netdef.Load("testdata/eight_node.yaml")
	require.NoError(t, err)
	require.Len(t, d.Pipes, 10)
	require.Len(t, d.Loops, 3)

	nw, err := d.Build()
	require.NoError(t, err)
	require.Len(t, nw.Nodes(), 8)
	require.NoError(t, nw.Validate())

	res, err := solver.Solve(nw, solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 60.0, res.Flows["a-b"]+res.Flows["a-c"], 1e-3)
}

// TestLoad_MissingFile verifies filesystem errors pass through.
func TestLoad_MissingFile(t *testing.T) {
	_, err := netdef.Load("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}
