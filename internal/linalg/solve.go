package linalg

import (
	"fmt"
	"math"
)

// Pivots smaller than this are treated as zero rather than divided by.
const pivotTolerance = 1e-14

// Solve computes x such that a*x = b using Gaussian elimination with
// partial pivoting. Both inputs are copied, so the caller's matrix and
// right-hand side are never modified. A square matrix is required; a
// pivot with magnitude below pivotTolerance after row selection returns
// ErrSingular instead of propagating Inf/NaN into the result.
//
// Runs in O(n^3) time and O(n^2) extra space.
func Solve(a Matrix, b Vector) (Vector, error) {
	n := len(b)
	if a.Rows() != n || a.Cols() != n {
		return nil, fmt.Errorf("%w: matrix is %dx%d, rhs has length %d",
			ErrDimension, a.Rows(), a.Cols(), n)
	}

	m := a.Clone()
	rhs := b.Clone()

	// Forward elimination.
	for i := 0; i < n; i++ {
		// Swap in the row with the largest magnitude entry in column i.
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(m[k][i]) > math.Abs(m[maxRow][i]) {
				maxRow = k
			}
		}
		m[i], m[maxRow] = m[maxRow], m[i]
		rhs[i], rhs[maxRow] = rhs[maxRow], rhs[i]

		if math.Abs(m[i][i]) < pivotTolerance {
			return nil, fmt.Errorf("%w: pivot %g in column %d", ErrSingular, m[i][i], i)
		}

		for k := i + 1; k < n; k++ {
			factor := m[k][i] / m[i][i]
			for j := i; j < n; j++ {
				m[k][j] -= factor * m[i][j]
			}
			rhs[k] -= factor * rhs[i]
		}
	}

	// Back substitution.
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = rhs[i]
		for j := i + 1; j < n; j++ {
			x[i] -= m[i][j] * x[j]
		}
		x[i] /= m[i][i]
	}

	return x, nil
}
