// Package roots finds roots of nonlinear vector functions.
package roots

import (
	"fmt"

	"github.com/san-kum/integro/internal/diff"
	"github.com/san-kum/integro/internal/linalg"
)

const (
	DefaultMaxIter = 100
	DefaultTol     = 1e-10
)

// Func evaluates the residual F(x) whose root is sought. It must not
// modify x.
type Func func(x linalg.Vector) linalg.Vector

// JacobianFunc returns the Jacobian of the residual at x.
type JacobianFunc func(x linalg.Vector) linalg.Matrix

// Jacobian selects how the solver obtains the Jacobian: either an
// analytic function supplied by the caller or a forward-difference
// approximation of the residual. The zero value approximates.
type Jacobian struct {
	analytic JacobianFunc
}

// Analytic uses the caller-supplied exact Jacobian.
func Analytic(fn JacobianFunc) Jacobian { return Jacobian{analytic: fn} }

// ForwardDifference approximates the Jacobian from residual evaluations
// with the default finite-difference step.
func ForwardDifference() Jacobian { return Jacobian{} }

func (j Jacobian) at(f Func, x linalg.Vector) (linalg.Matrix, error) {
	if j.analytic != nil {
		return j.analytic(x), nil
	}
	return diff.Jacobian(f, x, diff.DefaultStep)
}

// Options configures a Newton-Raphson solve. Zero values fall back to
// the package defaults.
type Options struct {
	MaxIter  int
	Tol      float64
	Jacobian Jacobian
}

func DefaultOptions() Options {
	return Options{
		MaxIter:  DefaultMaxIter,
		Tol:      DefaultTol,
		Jacobian: ForwardDifference(),
	}
}

// Result reports the outcome of a solve. Converged distinguishes a root
// meeting the tolerance from a best-effort iterate returned after
// exhausting MaxIter.
type Result struct {
	Root         linalg.Vector
	Converged    bool
	Iterations   int
	ResidualNorm float64
}

// Solve runs Newton-Raphson iteration on f starting from x0. Each
// iteration evaluates the residual, checks ||F(x)|| against the
// tolerance before any Jacobian work, then solves J*delta = -F(x) for
// the Newton correction and forms a new iterate x + delta. A root
// supplied as the initial guess therefore costs zero Jacobian
// evaluations.
//
// Exhausting MaxIter is not an error; the Result carries the final
// iterate with Converged reporting whether it met the tolerance. An
// error is returned only when the Jacobian cannot be formed or the
// correction system is singular, with the last iterate still present in
// the Result.
func Solve(f Func, x0 linalg.Vector, opts Options) (Result, error) {
	if opts.MaxIter <= 0 {
		opts.MaxIter = DefaultMaxIter
	}
	if opts.Tol <= 0 {
		opts.Tol = DefaultTol
	}

	x := x0.Clone()

	for iter := 0; iter < opts.MaxIter; iter++ {
		fx := f(x)
		norm := fx.Norm()
		if norm < opts.Tol {
			return Result{Root: x, Converged: true, Iterations: iter, ResidualNorm: norm}, nil
		}

		jac, err := opts.Jacobian.at(f, x)
		if err != nil {
			return Result{Root: x, Iterations: iter, ResidualNorm: norm},
				fmt.Errorf("roots: jacobian at iteration %d: %w", iter, err)
		}

		delta, err := linalg.Solve(jac, fx.Scale(-1))
		if err != nil {
			return Result{Root: x, Iterations: iter, ResidualNorm: norm},
				fmt.Errorf("roots: newton correction at iteration %d: %w", iter, err)
		}

		x = x.Add(delta)
	}

	norm := f(x).Norm()
	return Result{
		Root:         x,
		Converged:    norm < opts.Tol,
		Iterations:   opts.MaxIter,
		ResidualNorm: norm,
	}, nil
}
