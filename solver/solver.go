// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the nonlinear optimizers driving a sketch's
// parameter vector towards zero total loss: steepest descent and BFGS
// with a Wolfe line search, and the residual-based Gauss-Newton and
// Levenberg-Marquardt drivers
package solver

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosketch/sketch"
)

// numerical errors surfaced by the solvers. They are sentinel values so
// callers can match them with errors.Is
var (

	// ErrNotDescentDirection indicates g⋅p ≥ 0 at the line-search entry
	ErrNotDescentDirection = errors.New("line search: search direction is not a descent direction")

	// ErrSearchFailed indicates no step satisfying the Wolfe conditions
	// within the trial budget
	ErrSearchFailed = errors.New("line search: cannot find a suitable step size")

	// ErrNonFiniteGradient indicates NaN/Inf entries in the gradient
	ErrNonFiniteGradient = errors.New("solver: gradient is not finite")

	// ErrNonFiniteSearchDirection indicates NaN/Inf entries in the search direction
	ErrNonFiniteSearchDirection = errors.New("solver: search direction is not finite")

	// ErrPseudoInverseFailed indicates a failure of the Moore-Penrose inversion
	ErrPseudoInverseFailed = errors.New("solver: pseudo inverse failed")

	// ErrRepeatedLineSearchFailure indicates two consecutive line-search
	// failures; for BFGS, after one Hessian reset
	ErrRepeatedLineSearchFailure = errors.New("solver: line search failed twice in a row")
)

// Solver drives a sketch's parameter vector to a (local) minimum of the
// total loss. Solve returns nil on convergence or iteration-cap
// exhaustion, and a descriptive error when a numerical precondition is
// violated. A failed Solve leaves the parameter vector at the last
// attempted value
type Solver interface {
	Init(prms fun.Prms) error
	Solve(sk *sketch.Sketch) error
}

// allocators holds all available solvers
var allocators = make(map[string]func() Solver)

// New returns a solver by name, initialised with prms.
// Available: "graddesc", "bfgs", "gaussnewton", "levmarq"
func New(name string, prms fun.Prms) (Solver, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find solver named %q", name)
	}
	o := alloc()
	if err := o.Init(prms); err != nil {
		return nil, err
	}
	return o, nil
}

// SolverNames returns the names of all registered solvers
func SolverNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// isFinite tells whether x is neither NaN nor ±Inf
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
