// Package diff provides finite-difference derivative approximations.
package diff

import (
	"fmt"

	"github.com/san-kum/integro/internal/linalg"
)

// DefaultStep balances truncation error, which shrinks with h, against
// floating-point cancellation, which grows as h approaches zero.
const DefaultStep = 1e-8

// Jacobian approximates the Jacobian of f at x by forward differences:
// column j is (f(x + h*e_j) - f(x)) / h. The function is evaluated once
// at x and once per coordinate, len(x)+1 evaluations in total. f may map
// R^n to R^m; the result is m x n.
func Jacobian(f func(linalg.Vector) linalg.Vector, x linalg.Vector, h float64) (linalg.Matrix, error) {
	if h <= 0 {
		return nil, fmt.Errorf("diff: step must be positive, got %g", h)
	}

	fx := f(x)
	m, n := len(fx), len(x)
	jac := linalg.NewMatrix(m, n)

	for j := 0; j < n; j++ {
		perturbed := x.Clone()
		perturbed[j] += h
		fp := f(perturbed)

		for i := 0; i < m; i++ {
			jac[i][j] = (fp[i] - fx[i]) / h
		}
	}

	return jac, nil
}
