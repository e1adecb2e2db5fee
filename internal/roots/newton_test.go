package roots

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/integro/internal/linalg"
)

func TestSolveLinearOneIteration(t *testing.T) {
	// F(x) = x - r with the exact identity Jacobian converges in a
	// single iteration from any start.
	r := linalg.Vector{3.5, -1.25, 0.75}
	f := func(x linalg.Vector) linalg.Vector { return x.Sub(r) }
	identity := func(x linalg.Vector) linalg.Matrix { return linalg.Identity(len(x)) }

	starts := []linalg.Vector{
		{0, 0, 0},
		{100, -100, 42},
		{3.5, -1.25, 0.75},
	}

	for _, x0 := range starts {
		opts := DefaultOptions()
		opts.Jacobian = Analytic(identity)

		res, err := Solve(f, x0, opts)
		if err != nil {
			t.Fatalf("solve from %v failed: %v", x0, err)
		}
		if !res.Converged {
			t.Errorf("solve from %v did not converge", x0)
		}
		if res.Iterations > 1 {
			t.Errorf("solve from %v took %d iterations, expected at most 1", x0, res.Iterations)
		}
		for i := range r {
			if math.Abs(res.Root[i]-r[i]) > 1e-12 {
				t.Errorf("root[%d] = %.14f, expected %.14f", i, res.Root[i], r[i])
			}
		}
	}
}

func TestSolveRootAsInitialGuess(t *testing.T) {
	// Tolerance is met at the top of the first iteration, before any
	// Jacobian work.
	jacobianCalls := 0
	f := func(x linalg.Vector) linalg.Vector { return linalg.Vector{x[0] - 2} }
	jac := func(x linalg.Vector) linalg.Matrix {
		jacobianCalls++
		return linalg.Identity(1)
	}

	opts := DefaultOptions()
	opts.Jacobian = Analytic(jac)

	res, err := Solve(f, linalg.Vector{2}, opts)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged || res.Iterations != 0 {
		t.Errorf("expected immediate convergence, got converged=%v iterations=%d",
			res.Converged, res.Iterations)
	}
	if jacobianCalls != 0 {
		t.Errorf("jacobian evaluated %d times for an exact initial guess", jacobianCalls)
	}
}

func sqrtProblem() Func {
	return func(x linalg.Vector) linalg.Vector {
		return linalg.Vector{x[0]*x[0] - 2}
	}
}

func TestSolveSqrt2Analytic(t *testing.T) {
	opts := DefaultOptions()
	opts.Jacobian = Analytic(func(x linalg.Vector) linalg.Matrix {
		return linalg.Matrix{{2 * x[0]}}
	})

	res, err := Solve(sqrtProblem(), linalg.Vector{1.0}, opts)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("did not converge")
	}
	if res.Iterations >= 50 {
		t.Errorf("took %d iterations, expected fewer than 50", res.Iterations)
	}
	if math.Abs(res.Root[0]-math.Sqrt2) > 1e-9 {
		t.Errorf("root = %.12f, expected %.12f", res.Root[0], math.Sqrt2)
	}
}

func TestSolveSqrt2ForwardDifference(t *testing.T) {
	res, err := Solve(sqrtProblem(), linalg.Vector{1.0}, DefaultOptions())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("did not converge")
	}
	if res.Iterations >= 50 {
		t.Errorf("took %d iterations, expected fewer than 50", res.Iterations)
	}
	if math.Abs(res.Root[0]-math.Sqrt2) > 1e-9 {
		t.Errorf("root = %.12f, expected %.12f", res.Root[0], math.Sqrt2)
	}
}

func TestSolveCoupledSystem(t *testing.T) {
	// x^2 + y^2 = 4, x*y = 1 has a solution near (1.93, 0.52).
	f := func(v linalg.Vector) linalg.Vector {
		x, y := v[0], v[1]
		return linalg.Vector{x*x + y*y - 4, x*y - 1}
	}

	res, err := Solve(f, linalg.Vector{2, 0.5}, DefaultOptions())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("did not converge")
	}

	if res.ResidualNorm > DefaultTol {
		t.Errorf("residual norm %e above tolerance", res.ResidualNorm)
	}
	check := f(res.Root).Norm()
	if check > 1e-9 {
		t.Errorf("reported root has residual %e", check)
	}
}

func TestSolveExhaustion(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIter = 1

	res, err := Solve(sqrtProblem(), linalg.Vector{1.0}, opts)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if res.Converged {
		t.Error("one iteration should not reach 1e-10 from x0=1")
	}
	if res.Iterations != 1 {
		t.Errorf("iterations = %d, expected 1", res.Iterations)
	}
	if res.ResidualNorm <= 0 {
		t.Errorf("expected a positive final residual norm, got %g", res.ResidualNorm)
	}
}

func TestSolveSingularJacobian(t *testing.T) {
	// A rank-deficient Jacobian makes the correction system unsolvable.
	f := func(v linalg.Vector) linalg.Vector {
		return linalg.Vector{v[0] - 1, v[1] - 2}
	}
	opts := DefaultOptions()
	opts.Jacobian = Analytic(func(v linalg.Vector) linalg.Matrix {
		return linalg.Matrix{{1, 1}, {1, 1}}
	})

	res, err := Solve(f, linalg.Vector{0, 0}, opts)
	if !errors.Is(err, linalg.ErrSingular) {
		t.Fatalf("expected ErrSingular in chain, got %v", err)
	}
	// The last iterate is still reported alongside the error.
	if res.Root == nil {
		t.Error("expected last iterate in result")
	}
	if res.ResidualNorm <= 0 {
		t.Errorf("expected positive residual norm, got %g", res.ResidualNorm)
	}
}

func TestSolveDefaultsApplied(t *testing.T) {
	// Zero-valued options behave like DefaultOptions.
	res, err := Solve(sqrtProblem(), linalg.Vector{1.0}, Options{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Error("did not converge with zero-valued options")
	}
}

func TestSolveDoesNotMutateInitialGuess(t *testing.T) {
	x0 := linalg.Vector{1.0}
	if _, err := Solve(sqrtProblem(), x0, DefaultOptions()); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if x0[0] != 1.0 {
		t.Errorf("initial guess mutated: %v", x0)
	}
}
