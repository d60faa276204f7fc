package main

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularJacobian reports a Newton step the linear solver rejected.
var ErrSingularJacobian = errors.New("jacobian is singular")

// residual function of a square nonlinear system
type ResidualFunc func(x []float64) []float64

// outcome of a vector root search
type RootResult struct {
	x             []float64 // final estimate
	residual_norm float64   // euclidean norm of the residuals at x
	iterations    int       // iterations spent
	converged     bool      // residual norm reached the tolerance
}

// VectorRootFinder searches a root of f starting from the seed x0.
// Implementations return their best estimate with diagnostics; the
// converged flag must be checked before the root is trusted.
type VectorRootFinder interface {
	FindRoot(f ResidualFunc, x0 []float64) (*RootResult, error)
}

// Newton root finder with a forward difference Jacobian and a
// backtracking damped step
type NewtonRaphson struct {
	tolerance      float64 // residual norm target
	max_iterations int     // iteration cap
}

func NewNewtonRaphson(tolerance float64, max_iterations int) *NewtonRaphson {
	return &NewtonRaphson{tolerance: tolerance, max_iterations: max_iterations}
}

func (self *NewtonRaphson) FindRoot(f ResidualFunc, x0 []float64) (*RootResult, error) {
	x := append([]float64(nil), x0...)
	fx := f(x)
	norm := floats.Norm(fx, 2)

	for k := 0; k < self.max_iterations; k++ {
		if norm <= self.tolerance {
			return &RootResult{x: x, residual_norm: norm, iterations: k, converged: true}, nil
		}

		jac := numerical_jacobian(f, x, fx)

		dx, err := solve_newton_step(jac, fx)
		if err != nil {
			return &RootResult{x: x, residual_norm: norm, iterations: k}, err
		}

		x, fx, norm = damped_step(f, x, norm, dx)
	}

	return &RootResult{
		x:             x,
		residual_norm: norm,
		iterations:    self.max_iterations,
		converged:     norm <= self.tolerance,
	}, nil
}

// Broyden root finder. The Jacobian is built once by forward differences
// and maintained with rank one updates afterwards.
type Broyden struct {
	tolerance      float64 // residual norm target
	max_iterations int     // iteration cap
}

func NewBroyden(tolerance float64, max_iterations int) *Broyden {
	return &Broyden{tolerance: tolerance, max_iterations: max_iterations}
}

func (self *Broyden) FindRoot(f ResidualFunc, x0 []float64) (*RootResult, error) {
	n := len(x0)

	x := append([]float64(nil), x0...)
	fx := f(x)
	norm := floats.Norm(fx, 2)

	jac := numerical_jacobian(f, x, fx)

	for k := 0; k < self.max_iterations; k++ {
		if norm <= self.tolerance {
			return &RootResult{x: x, residual_norm: norm, iterations: k, converged: true}, nil
		}

		dx, err := solve_newton_step(jac, fx)
		if err != nil {
			return &RootResult{x: x, residual_norm: norm, iterations: k}, err
		}

		xn, fn, nn := damped_step(f, x, norm, dx)

		if nn < norm {
			// step actually taken and change of the residuals
			s := make([]float64, n)
			df := make([]float64, n)
			for i := 0; i < n; i++ {
				s[i] = xn[i] - x[i]
				df[i] = fn[i] - fx[i]
			}

			// good Broyden update J += (df - J s) s^T / (s . s)
			dot := floats.Dot(s, s)
			if dot > 0.0 {
				var js mat.VecDense
				js.MulVec(jac, mat.NewVecDense(n, s))

				u := make([]float64, n)
				for i := 0; i < n; i++ {
					u[i] = df[i] - js.AtVec(i)
				}

				jac.RankOne(jac, 1.0/dot, mat.NewVecDense(n, u), mat.NewVecDense(n, s))
			}
		} else {
			// a step without progress discards the updated Jacobian
			jac = numerical_jacobian(f, xn, fn)
		}

		x, fx, norm = xn, fn, nn
	}

	return &RootResult{
		x:             x,
		residual_norm: norm,
		iterations:    self.max_iterations,
		converged:     norm <= self.tolerance,
	}, nil
}

/*
Build the Jacobian of f at x by forward differences.

	Args:
	    f: residual function
	    x: current estimate, [n]
	    fx: residuals at x, [n]

	Returns:
	    Jacobian matrix, [n, n]
*/
func numerical_jacobian(f ResidualFunc, x, fx []float64) *mat.Dense {
	n := len(x)

	jac := mat.NewDense(n, n, nil)
	xp := make([]float64, n)

	for j := 0; j < n; j++ {
		copy(xp, x)

		// square root of the double precision epsilon, scaled to the variable
		h := 1.4901161193847656e-08 * math.Max(math.Abs(x[j]), 1.0)
		xp[j] += h

		fp := f(xp)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (fp[i]-fx[i])/h)
		}
	}

	return jac
}

/*
Solve J dx = -f for the step dx.

	Args:
	    jac: Jacobian matrix, [n, n]
	    fx: residuals at the current estimate, [n]

	Returns:
	    step dx, [n]
*/
func solve_newton_step(jac *mat.Dense, fx []float64) ([]float64, error) {
	n := len(fx)

	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		rhs.SetVec(i, -fx[i])
	}

	var v mat.VecDense
	if err := v.SolveVec(jac, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularJacobian, err)
	}

	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = v.AtVec(i)
	}

	return dx, nil
}

/*
Apply the step dx to x with backtracking.

	Args:
	    f: residual function
	    x: current estimate, [n]
	    norm: residual norm at x
	    dx: full step, [n]

	Returns:
	    next estimate, its residuals and its residual norm

	Notes:
	    The step is halved while the residual norm grows, at most 8
	    times; after the last halving the trial is taken regardless.
*/
func damped_step(f ResidualFunc, x []float64, norm float64, dx []float64) ([]float64, []float64, float64) {
	n := len(x)

	lambda := 1.0
	for t := 0; ; t++ {
		trial := make([]float64, n)
		for i := 0; i < n; i++ {
			trial[i] = x[i] + lambda*dx[i]
		}

		ft := f(trial)
		nt := floats.Norm(ft, 2)

		if nt < norm || t >= 8 {
			return trial, ft, nt
		}

		lambda /= 2.0
	}
}
