package solver

import "math"

// Dense linear-algebra helpers for the Gauss-Newton step. The systems here
// are tiny (tens of unknowns), so plain Gaussian elimination with partial
// pivoting is both adequate and fully deterministic.

// Finite-difference and damping tuning.
const (
	// fdRelStep scales the forward-difference perturbation per column:
	// h = fdRelStep · max(|qᵢ|, fdAbsFloor). √ε balances truncation
	// against round-off for a first-order difference.
	fdRelStep = 1.4901161193847656e-08 // √(machine epsilon)

	// fdAbsFloor keeps the perturbation meaningful when a trial flow
	// passes through zero (m³/s).
	fdAbsFloor = 1e-4

	// pivotTol is the smallest acceptable pivot magnitude before the
	// elimination is declared singular.
	pivotTol = 1e-14

	// levenbergInitial and levenbergGrowth control the damping escalation
	// when the undamped normal equations are singular.
	levenbergInitial = 1e-10
	levenbergGrowth  = 100.0
	levenbergTries   = 8

	// lineSearchHalvings bounds the step-halving loop; 2⁻³⁰ of a Newton
	// step below which the iteration is considered stalled.
	lineSearchHalvings = 30

	// armijoSlope is the sufficient-decrease fraction for accepting a step.
	armijoSlope = 1e-4
)

// normInf returns max|vᵢ|.
func normInf(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

// norm2sq returns Σvᵢ², the least-squares objective up to a factor ½.
func norm2sq(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return s
}

// jacobian fills jac (m rows × p cols, row-major) with forward differences
// of eval around base q with residual r0. It perturbs one column at a
// time, restoring q between columns; the caller must re-evaluate at the
// base point afterwards to restore pipe state.
func jacobian(eval func(q, r []float64), q, r0 []float64, jac [][]float64, scratch []float64) {
	m, p := len(r0), len(q)
	var (
		i, j int
		h    float64
		orig float64
	)
	for j = 0; j < p; j++ {
		orig = q[j]
		h = fdRelStep * math.Max(math.Abs(orig), fdAbsFloor)
		q[j] = orig + h
		eval(q, scratch)
		for i = 0; i < m; i++ {
			jac[i][j] = (scratch[i] - r0[i]) / h
		}
		q[j] = orig
	}
}

// normalEquations forms A = JᵀJ + λI and b = −Jᵀr for the damped
// Gauss-Newton step A·dx = b.
func normalEquations(jac [][]float64, r []float64, lambda float64, a [][]float64, b []float64) {
	m := len(r)
	p := len(b)
	var (
		i, j, k int
		s       float64
	)
	for i = 0; i < p; i++ {
		for j = i; j < p; j++ {
			s = 0
			for k = 0; k < m; k++ {
				s += jac[k][i] * jac[k][j]
			}
			a[i][j] = s
			a[j][i] = s
		}
		a[i][i] += lambda
		s = 0
		for k = 0; k < m; k++ {
			s += jac[k][i] * r[k]
		}
		b[i] = -s
	}
}

// solveLinear solves a·x = b in place by Gaussian elimination with partial
// pivoting, writing the solution into b. Returns ErrSingularSystem when a
// pivot falls below pivotTol. Both a and b are destroyed.
func solveLinear(a [][]float64, b []float64) error {
	n := len(b)
	var (
		col, row, k int
		pivot       int
		best, f     float64
	)
	for col = 0; col < n; col++ {
		pivot = col
		best = math.Abs(a[col][col])
		for row = col + 1; row < n; row++ {
			if f = math.Abs(a[row][col]); f > best {
				best, pivot = f, row
			}
		}
		if best < pivotTol {
			return ErrSingularSystem
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}
		for row = col + 1; row < n; row++ {
			f = a[row][col] / a[col][col]
			if f == 0 {
				continue
			}
			for k = col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}
	for col = n - 1; col >= 0; col-- {
		f = b[col]
		for k = col + 1; k < n; k++ {
			f -= a[col][k] * b[k]
		}
		b[col] = f / a[col][col]
	}

	return nil
}
