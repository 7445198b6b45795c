package solver_test

import (
	"fmt"

	"github.com/katalvlaran/hydronet/netdef"
	"github.com/katalvlaran/hydronet/solver"
)

// ExampleSolve demonstrates the full pipeline: load a YAML definition,
// build the network, solve it, and inspect the report. Flow values are
// deterministic across runs, so the aggregate below is stable.
func ExampleSolve() {
	def, err := netdef.Load("../netdef/testdata/eight_node.yaml")
	if err != nil {
		fmt.Println("load:", err)

		return
	}
	nw, err := def.Build()
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	res, err := solver.Solve(nw, solver.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)

		return
	}

	fmt.Println("converged:", res.Converged)
	fmt.Printf("outflow from a: %.1f L/s\n", res.Flows["a-b"]+res.Flows["a-c"])
	fmt.Println("residuals out of tolerance:", len(res.OutOfTolerance(1e-6)))

	// Output:
	// converged: true
	// outflow from a: 60.0 L/s
	// residuals out of tolerance: 0
}
