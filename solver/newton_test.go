package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Internal tests for the dense linear-algebra helpers; the systems are
// tiny, so exact expectations are practical.

// TestSolveLinear_Known checks elimination with pivoting on a 3×3 system
// with a known solution.
func TestSolveLinear_Known(t *testing.T) {
	a := [][]float64{
		{0, 2, 1},
		{1, -2, -3},
		{-1, 1, 2},
	}
	b := []float64{-8, 0, 3}
	// Row one starts with a zero pivot, forcing a swap.
	require.NoError(t, solveLinear(a, b))
	// Solution of the classic system: x=-4, y=-5, z=2.
	assert.InDelta(t, -4.0, b[0], 1e-12)
	assert.InDelta(t, -5.0, b[1], 1e-12)
	assert.InDelta(t, 2.0, b[2], 1e-12)
}

// TestSolveLinear_Singular verifies the singularity sentinel.
func TestSolveLinear_Singular(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{1, 2}
	assert.ErrorIs(t, solveLinear(a, b), ErrSingularSystem)
}

// TestNorms pins the helper semantics.
func TestNorms(t *testing.T) {
	v := []float64{3, -4, 0.5}
	assert.Equal(t, 4.0, normInf(v))
	assert.InDelta(t, 9+16+0.25, norm2sq(v), 1e-15)
	assert.Equal(t, 0.0, normInf(nil))
}

// TestJacobian_LinearMap verifies forward differences reproduce a linear
// map exactly up to first-order error.
func TestJacobian_LinearMap(t *testing.T) {
	// r = A·q for a fixed 3×2 matrix A.
	A := [][]float64{{2, -1}, {0, 3}, {1, 1}}
	eval := func(q, r []float64) {
		for i := range A {
			r[i] = A[i][0]*q[0] + A[i][1]*q[1]
		}
	}

	q := []float64{0.3, -0.7}
	r0 := make([]float64, 3)
	eval(q, r0)

	jac := newMatrix(3, 2)
	scratch := make([]float64, 3)
	jacobian(eval, q, r0, jac, scratch)

	for i := range A {
		for j := range A[i] {
			assert.InDelta(t, A[i][j], jac[i][j], 1e-6, "entry (%d,%d)", i, j)
		}
	}
	// The base point must be restored.
	assert.Equal(t, []float64{0.3, -0.7}, q)
	if math.IsNaN(jac[0][0]) {
		t.Fatal("jacobian produced NaN")
	}
}
